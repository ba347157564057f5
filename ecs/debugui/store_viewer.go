package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ember/ecs"
)

func NewStoreViewer(w *ecs.World) *StoreViewer {
	return &StoreViewer{world: w, sortAscending: true}
}

func (sv *StoreViewer) Render() {
	if !imgui.BeginV("Store Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := sv.world.Stats()
	stores := stats.Stores

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if imgui.BeginTableV("StoreTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component Type")
		imgui.TableSetupColumn("Dense Size")
		imgui.TableSetupColumn("Sparse Capacity")
		imgui.TableSetupColumn("Utilization")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.sortColumn = int(spec.ColumnIndex())
			sv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		sv.sortStores(stores)

		for _, st := range stores {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(st.Type.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", st.Size))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", st.SparseCapacity))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.0f%%", utilization(st)*100))
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("%d stores, %d live entities, %d spawned total",
		len(stores), stats.AliveEntities, stats.TotalSpawned))
	imgui.End()
}

func (sv *StoreViewer) sortStores(stores []ecs.StoreStats) {
	sort.SliceStable(stores, func(i, j int) bool {
		var less bool
		switch sv.sortColumn {
		case 1:
			less = stores[i].Size < stores[j].Size
		case 2:
			less = stores[i].SparseCapacity < stores[j].SparseCapacity
		case 3:
			less = utilization(stores[i]) < utilization(stores[j])
		default:
			less = stores[i].Type.String() < stores[j].Type.String()
		}
		if !sv.sortAscending {
			return !less
		}
		return less
	})
}

// utilization is dense size over sparse capacity: how much of the ID range
// the store has seen actually holds a component right now.
func utilization(st ecs.StoreStats) float64 {
	if st.SparseCapacity == 0 {
		return 0
	}
	return float64(st.Size) / float64(st.SparseCapacity)
}
