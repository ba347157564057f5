// Package debugui provides immediate-mode GUI inspection for ECS worlds
// using Dear ImGui. It ships an entity browser, a component inspector, a
// store viewer, a query debugger, and a performance panel, all rendered
// through ImguiItem components on the world's render pipeline.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ember/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a resource.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// RegisterComponents registers the debug UI component types with a registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// System is the render-pipeline system driving the debug UI. It refreshes
// the ImguiInputState resource and defers every ImguiItem render function to
// the end of the pass, so widget code runs after all other render systems.
func System(w *ecs.World) error {
	state, err := ecs.GetResource[ImguiInputState](w)
	if err == nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for _, item := range ecs.NewQuery[struct{ *ImguiItem }](w).Iter() {
		w.Commands().Defer(item.ImguiItem.Render)
	}
	return nil
}
