package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ember/ecs"
)

func NewEntityBrowser(w *ecs.World, maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		world:              w,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

// Selected returns the currently selected entity, if any.
func (eb *EntityBrowser) Selected() (ecs.Entity, bool) {
	if !eb.hasSelection || !eb.world.Alive(eb.selected) {
		return ecs.Entity{}, false
	}
	for e := range eb.world.Entities() {
		if e.ID == eb.selected {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

type entityRow struct {
	entity     ecs.Entity
	components []string
}

func (eb *EntityBrowser) Render() {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Filter by component type...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		eb.filterText = ""
	}

	rows := eb.collectRows()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(rows))

		for i := startIdx; i < endIdx; i++ {
			row := rows[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasSelection && eb.selected == row.entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = row.entity.ID
				eb.hasSelection = true
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.components, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(row.components)))
		}

		imgui.EndTable()
	}

	totalPages := (len(rows) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
	if totalPages > 1 {
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		imgui.Text(fmt.Sprintf("Page %d/%d", eb.currentPage+1, totalPages))
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		eb.currentPage = 0
	}

	imgui.Text(fmt.Sprintf("%d live entities", len(rows)))
	imgui.End()
}

func (eb *EntityBrowser) collectRows() []entityRow {
	filter := strings.ToLower(strings.TrimSpace(eb.filterText))

	var rows []entityRow
	for e := range eb.world.Entities() {
		var names []string
		for _, t := range eb.world.ComponentTypes(e) {
			names = append(names, t.String())
		}

		if filter != "" {
			matched := false
			for _, n := range names {
				if strings.Contains(strings.ToLower(n), filter) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}

		rows = append(rows, entityRow{entity: e, components: names})
	}
	return rows
}
