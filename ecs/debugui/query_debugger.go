package debugui

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ember/ecs"
)

func NewQueryDebugger(w *ecs.World) *QueryDebugger {
	return &QueryDebugger{
		world:    w,
		selected: make(map[string]bool),
		types:    make(map[string]reflect.Type),
	}
}

func (qd *QueryDebugger) Render() {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	names := qd.refreshTypes()

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selected = make(map[string]bool)
	}

	for _, name := range names {
		checked := qd.selected[name]
		if imgui.Checkbox(name, &checked) {
			if checked {
				qd.selected[name] = true
			} else {
				delete(qd.selected, name)
			}
		}
	}

	imgui.Separator()

	var queryTypes []reflect.Type
	for name := range qd.selected {
		if t, ok := qd.types[name]; ok {
			queryTypes = append(queryTypes, t)
		}
	}

	if len(queryTypes) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	// Same smallest-store intersection a Query runs, counted live.
	imgui.Text(fmt.Sprintf("Matching Entities: %d", qd.world.MatchCount(queryTypes)))
	imgui.End()
}

func (qd *QueryDebugger) refreshTypes() []string {
	var names []string
	for _, t := range qd.world.Registry().Types() {
		name := t.String()
		qd.types[name] = t
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
