package ecs

import "reflect"

// ComponentID is a dense index assigned to a component type at registration
// time. IDs depend only on registration order, which is explicit in setup
// code, so they are stable across runs of the same program.
type ComponentID uint32

// ComponentRegistry manages component type registration for a set of worlds.
// Each World takes a registry at construction; registering a type assigns it
// the next dense ComponentID and records a factory for its sparse-set store.
// This must be done for each component type before it can be attached to an
// entity.
type ComponentRegistry struct {
	ids       map[reflect.Type]ComponentID
	types     []reflect.Type
	factories []func() iComponentStore
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		ids: make(map[reflect.Type]ComponentID),
	}
}

// RegisterComponent registers T with the registry and returns its ID.
// Registering the same type twice returns the original ID.
func RegisterComponent[T any](r *ComponentRegistry) ComponentID {
	t := reflect.TypeFor[T]()
	if id, ok := r.ids[t]; ok {
		return id
	}

	// Components must be value types. Pointers, maps, channels, and
	// functions would alias external state across copies.
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("ecs: component type " + t.String() + " must be a value type")
	}

	id := ComponentID(len(r.types))
	r.ids[t] = id
	r.types = append(r.types, t)
	r.factories = append(r.factories, func() iComponentStore {
		return newStore[T]()
	})
	return id
}

// lookup returns the ID for a component type, if registered.
func (r *ComponentRegistry) lookup(t reflect.Type) (ComponentID, bool) {
	id, ok := r.ids[t]
	return id, ok
}

func (r *ComponentRegistry) count() int {
	return len(r.types)
}

func (r *ComponentRegistry) typeOf(id ComponentID) reflect.Type {
	return r.types[id]
}

// Types returns the registered component types in registration order.
func (r *ComponentRegistry) Types() []reflect.Type {
	out := make([]reflect.Type, len(r.types))
	copy(out, r.types)
	return out
}
