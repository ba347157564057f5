package debugui

import "github.com/plus3/ember/ecs"

// Spawn creates one debug UI entity per inspection window and registers the
// ImguiInputState resource. Call after RegisterComponents, then add System
// to the render pipeline.
func Spawn(w *ecs.World) {
	ecs.AddResource(w, &ImguiInputState{})

	browser := NewEntityBrowser(w, 100)
	inspector := NewComponentInspector(w, browser)

	ecs.With(w.Spawn(), ImguiItem{Render: browser.Render})
	ecs.With(w.Spawn(), ImguiItem{Render: inspector.Render})
	ecs.With(w.Spawn(), ImguiItem{Render: NewStoreViewer(w).Render})
	ecs.With(w.Spawn(), ImguiItem{Render: NewPerformanceStats(w, 120).Render})
	ecs.With(w.Spawn(), ImguiItem{Render: NewQueryDebugger(w).Render})
}
