package ecs

import (
	"fmt"
	"reflect"
)

// SetComponent attaches a component to the entity, creating the type's store
// on first use. If the entity already holds T the value is overwritten in
// place and no ComponentAdded event fires; otherwise the component is
// appended and ComponentAdded is emitted. T must be registered with the
// world's registry.
func SetComponent[T any](w *World, e Entity, component T) {
	t := reflect.TypeFor[T]()
	id, ok := w.registry.lookup(t)
	if !ok {
		panic("ecs: component type " + t.String() + " not registered")
	}
	st := w.ensureStore(id).(*store[T])
	if st.insert(e.ID, component) {
		e.world = w
		Emit(w, ComponentAdded{Entity: e, Type: t})
	}
}

// GetComponent returns a pointer to the entity's component of type T. The
// pointer aliases store memory and stays valid until the next structural
// change to that store. Fails with ErrComponentNotFound when the entity does
// not hold T, including when no component of type T was ever stored.
func GetComponent[T any](w *World, e Entity) (*T, error) {
	t := reflect.TypeFor[T]()
	id, ok := w.registry.lookup(t)
	if !ok {
		return nil, fmt.Errorf("%s: %w", t, ErrComponentNotFound)
	}
	st := w.storeFor(id)
	if st == nil {
		return nil, fmt.Errorf("%s: %w", t, ErrComponentNotFound)
	}
	p := st.(*store[T]).get(e.ID)
	if p == nil {
		return nil, fmt.Errorf("%s on %s: %w", t, e, ErrComponentNotFound)
	}
	return p, nil
}

// HasComponent reports whether the entity holds a component of type T.
func HasComponent[T any](w *World, e Entity) bool {
	id, ok := w.registry.lookup(reflect.TypeFor[T]())
	if !ok {
		return false
	}
	st := w.storeFor(id)
	return st != nil && st.has(e.ID)
}

// RemoveComponent detaches T from the entity, emitting ComponentRemoved when
// it was present. Removing an absent component is a no-op.
func RemoveComponent[T any](w *World, e Entity) {
	w.removeComponentType(e, reflect.TypeFor[T]())
}
