package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ember/ecs"
)

func NewPerformanceStats(w *ecs.World, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		world:         w,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) Render() {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if tm, err := ecs.GetResource[ecs.Time](ps.world); err == nil {
		ps.frameHistory[ps.frameIndex] = float32(tm.DeltaSeconds) * 1000.0
		ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	}

	stats := ps.world.Stats()
	imgui.Text(fmt.Sprintf("Live Entities: %d", stats.AliveEntities))
	imgui.Text(fmt.Sprintf("Total Spawned: %d", stats.TotalSpawned))
	imgui.Text(fmt.Sprintf("Stores: %d", len(stats.Stores)))
	imgui.Text(fmt.Sprintf("Resources: %d", len(stats.ResourceTypes)))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	sched := ps.world.SchedulerStats()
	ps.renderSystemTable("Update Systems", sched.Update)
	ps.renderSystemTable("Render Systems", sched.Render)

	imgui.End()
}

func (ps *PerformanceStats) renderSystemTable(title string, systems []ecs.SystemStats) {
	if !imgui.TreeNodeStr(title) {
		return
	}
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV(fmt.Sprintf("##%s", title), 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Last")
		imgui.TableHeadersRow()

		for _, s := range systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(s.Label)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(s.AvgDuration.Round(time.Microsecond).String())
			imgui.TableNextColumn()
			imgui.Text(s.LastDuration.Round(time.Microsecond).String())
		}

		imgui.EndTable()
	}
	imgui.TreePop()
}
