package debugui

import (
	"reflect"

	"github.com/plus3/ember/ecs"
)

// EntityBrowser lists live entities with filtering, paging, and selection.
type EntityBrowser struct {
	world              *ecs.World
	selected           ecs.EntityID
	hasSelection       bool
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// ComponentInspector edits the components of the entity selected in an
// EntityBrowser.
type ComponentInspector struct {
	world   *ecs.World
	browser *EntityBrowser
}

// StoreViewer shows per-component-store occupancy: dense size, sparse
// capacity, and utilization.
type StoreViewer struct {
	world         *ecs.World
	sortColumn    int
	sortAscending bool
}

// PerformanceStats plots frame times and tabulates scheduler statistics.
type PerformanceStats struct {
	world         *ecs.World
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// QueryDebugger counts live matches for an ad-hoc component intersection.
type QueryDebugger struct {
	world    *ecs.World
	selected map[string]bool
	types    map[string]reflect.Type
}
