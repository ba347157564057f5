package ecs

import (
	"iter"
	"reflect"
	"sort"
)

// WorldStats is a point-in-time snapshot of world occupancy, used by the
// debug UI and the stress tooling.
type WorldStats struct {
	// AliveEntities is the number of currently live entities.
	AliveEntities int
	// TotalSpawned counts every entity ever spawned. Because IDs are not
	// recycled, liveness and sparse arrays grow with this number.
	TotalSpawned uint64
	// Stores describes every component store that has been materialized.
	Stores []StoreStats
	// ResourceTypes lists registered resource type names, sorted.
	ResourceTypes []string
	// EventTypes is the number of event types with at least one listener.
	EventTypes int
	// UpdateSystems and RenderSystems list pipeline labels in run order.
	UpdateSystems []string
	RenderSystems []string
}

// StoreStats describes a single component store.
type StoreStats struct {
	Type reflect.Type
	// Size is the number of components currently stored (dense length).
	Size int
	// SparseCapacity is the length of the sparse lookup table, which grows
	// with the highest entity ID ever inserted.
	SparseCapacity int
}

// Stats collects a snapshot of world occupancy.
func (w *World) Stats() WorldStats {
	stats := WorldStats{
		TotalSpawned: uint64(w.nextID),
		EventTypes:   len(w.listeners),
	}

	for _, a := range w.alive {
		if a {
			stats.AliveEntities++
		}
	}

	for _, st := range w.stores {
		if st == nil {
			continue
		}
		stats.Stores = append(stats.Stores, StoreStats{
			Type:           st.componentType(),
			Size:           st.size(),
			SparseCapacity: st.sparseLen(),
		})
	}

	for t := range w.resources {
		stats.ResourceTypes = append(stats.ResourceTypes, t.String())
	}
	sort.Strings(stats.ResourceTypes)

	for _, s := range w.updateSystems {
		stats.UpdateSystems = append(stats.UpdateSystems, s.label)
	}
	for _, s := range w.renderSystems {
		stats.RenderSystems = append(stats.RenderSystems, s.label)
	}

	return stats
}

// Entities yields every live entity in ascending ID order.
func (w *World) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for id, a := range w.alive {
			if !a {
				continue
			}
			if !yield(Entity{ID: EntityID(id), world: w}) {
				return
			}
		}
	}
}

// ComponentTypes returns the types of every component the entity currently
// holds, in registration-ID order.
func (w *World) ComponentTypes(e Entity) []reflect.Type {
	var out []reflect.Type
	for _, st := range w.stores {
		if st != nil && st.has(e.ID) {
			out = append(out, st.componentType())
		}
	}
	return out
}

// ComponentValue returns a pointer to the entity's component of the given
// type, boxed in an any, or nil when absent. This is the type-erased read
// used by inspection tooling; typed code should use GetComponent.
func (w *World) ComponentValue(e Entity, t reflect.Type) any {
	id, ok := w.registry.lookup(t)
	if !ok {
		return nil
	}
	st := w.storeFor(id)
	if st == nil {
		return nil
	}
	return st.value(e.ID)
}

// MatchCount returns how many live entities hold every one of the given
// component types. It runs the same smallest-store intersection a Query
// uses, without materializing matches. Types with no store yield zero.
func (w *World) MatchCount(types []reflect.Type) int {
	if len(types) == 0 {
		return 0
	}

	stores := make([]iComponentStore, len(types))
	var driver iComponentStore
	for i, t := range types {
		id, ok := w.registry.lookup(t)
		if !ok {
			return 0
		}
		st := w.storeFor(id)
		if st == nil {
			return 0
		}
		stores[i] = st
		if driver == nil || st.size() < driver.size() {
			driver = st
		}
	}

	count := 0
outer:
	for _, id := range driver.entityList() {
		if !w.Alive(id) {
			continue
		}
		for _, st := range stores {
			if !st.has(id) {
				continue outer
			}
		}
		count++
	}
	return count
}
