package ecs

import "reflect"

// World owns every piece of ECS state: entity liveness, one sparse-set store
// per registered component type, type-keyed singleton resources, event
// listeners, and the two ordered system pipelines.
//
// A World is single-threaded by design. It spawns no goroutines, takes no
// locks, and every mutating call runs to completion before returning.
// Systems and event listeners get unrestricted access to the whole world for
// the duration of their invocation; guarding against aliasing inside a
// single callback is the caller's job.
type World struct {
	registry *ComponentRegistry
	stores   []iComponentStore // indexed by ComponentID, nil until first use

	alive  []bool
	nextID EntityID

	resources map[reflect.Type]any
	listeners map[reflect.Type][]any

	updateSystems []systemInfo
	renderSystems []systemInfo

	commands *Commands
}

// NewWorld creates a world bound to the given component registry. The
// built-in Time resource is registered immediately, so GetResource[Time]
// never fails on a fresh world.
func NewWorld(registry *ComponentRegistry) *World {
	w := &World{
		registry:  registry,
		resources: make(map[reflect.Type]any),
		listeners: make(map[reflect.Type][]any),
		commands:  newCommands(),
	}
	AddResource(w, &Time{Scale: 1})
	return w
}

// Registry returns the component registry this world was built with.
func (w *World) Registry() *ComponentRegistry {
	return w.registry
}

// Spawn allocates the next entity ID, marks it live, and emits
// EntityCreated. IDs grow monotonically and are never reused, so the
// liveness array grows with the total number of entities ever spawned, not
// the number currently alive.
func (w *World) Spawn() Entity {
	id := w.nextID
	w.nextID++
	// append grows capacity geometrically, keeping spawn O(1) amortized.
	for int(id) >= len(w.alive) {
		w.alive = append(w.alive, false)
	}
	w.alive[id] = true

	e := Entity{ID: id, world: w}
	Emit(w, EntityCreated{Entity: e})
	return e
}

// Destroy removes the entity from the world: it emits EntityDestroyed, then
// one ComponentRemoved per component the entity still holds, then clears
// liveness and every store membership. Destroying a dead or never-issued ID
// is a no-op.
func (w *World) Destroy(e Entity) {
	if int(e.ID) >= len(w.alive) || !w.alive[e.ID] {
		return
	}

	e.world = w
	Emit(w, EntityDestroyed{Entity: e})

	w.alive[e.ID] = false
	for _, st := range w.stores {
		if st == nil {
			continue
		}
		if st.has(e.ID) {
			Emit(w, ComponentRemoved{Entity: e, Type: st.componentType()})
		}
		st.removeEntity(e.ID)
	}
}

// Alive reports whether the ID names a spawned, not-yet-destroyed entity.
func (w *World) Alive(id EntityID) bool {
	return int(id) < len(w.alive) && w.alive[id]
}

// Commands returns the world's deferred command buffer. Commands queued on
// it are applied after the current Update or Render pass completes.
func (w *World) Commands() *Commands {
	return w.commands
}

// storeFor returns the store for an ID, or nil if no component of that type
// has ever been set.
func (w *World) storeFor(id ComponentID) iComponentStore {
	if int(id) >= len(w.stores) {
		return nil
	}
	return w.stores[id]
}

// ensureStore creates the store for an ID on first use.
func (w *World) ensureStore(id ComponentID) iComponentStore {
	if int(id) >= len(w.stores) {
		grown := make([]iComponentStore, w.registry.count())
		copy(grown, w.stores)
		w.stores = grown
	}
	if w.stores[id] == nil {
		w.stores[id] = w.registry.factories[id]()
	}
	return w.stores[id]
}

// setComponentValue is the type-erased SetComponent used by the command
// buffer. The component may be a value or a pointer to one; its dynamic type
// must be registered.
func (w *World) setComponentValue(e Entity, component any) {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	id, ok := w.registry.lookup(t)
	if !ok {
		panic("ecs: component type " + t.String() + " not registered")
	}
	if w.ensureStore(id).insertValue(e.ID, component) {
		e.world = w
		Emit(w, ComponentAdded{Entity: e, Type: t})
	}
}

// removeComponentType removes a component by reflect.Type, emitting
// ComponentRemoved when the entity held one. Unregistered types are a no-op.
func (w *World) removeComponentType(e Entity, t reflect.Type) {
	id, ok := w.registry.lookup(t)
	if !ok {
		return
	}
	st := w.storeFor(id)
	if st == nil {
		return
	}
	if st.removeEntity(e.ID) {
		e.world = w
		Emit(w, ComponentRemoved{Entity: e, Type: t})
	}
}
