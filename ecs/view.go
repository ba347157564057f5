package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View is a reusable accessor for entities holding a specific combination of
// components. The type T must be a struct whose fields are pointers to
// component types; embedded fields are always required, and named fields can
// be marked optional with the `ecs:"optional"` struct tag:
//
//	type Moving struct {
//		*Position
//		*Velocity
//		Tint *Color `ecs:"optional"`
//	}
//
// A View iterates live store order, which is not stable across removals. Use
// Query for the sorted, snapshot-based form.
type View[T any] struct {
	world       *World
	types       []reflect.Type
	ids         []ComponentID
	registered  []bool
	optional    []bool
	fieldOffset []uintptr
}

// NewView creates a view over the given world. Panics if T is not a struct
// of pointer fields, or carries an unknown ecs tag.
func NewView[T any](w *World) *View[T] {
	var zero T
	structType := reflect.TypeOf(zero)

	if structType == nil || structType.Kind() != reflect.Struct {
		panic("ecs: View type parameter must be a struct")
	}

	n := structType.NumField()
	v := &View[T]{
		world:       w,
		types:       make([]reflect.Type, 0, n),
		ids:         make([]ComponentID, 0, n),
		registered:  make([]bool, 0, n),
		optional:    make([]bool, 0, n),
		fieldOffset: make([]uintptr, 0, n),
	}

	for i := 0; i < n; i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("ecs: View struct fields must be pointer types")
		}
		componentType := field.Type.Elem()

		isOptional := false
		if !field.Anonymous {
			if tag := field.Tag.Get("ecs"); tag != "" {
				if tag != "optional" {
					panic("ecs: invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
				isOptional = true
			}
		}

		id, ok := w.registry.lookup(componentType)

		v.types = append(v.types, componentType)
		v.ids = append(v.ids, id)
		v.registered = append(v.registered, ok)
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	return v
}

// Fill populates out with pointers into the component stores for the given
// entity. Returns false if the entity is missing any required component;
// optional fields are set to nil when absent.
func (v *View[T]) Fill(e Entity, out *T) bool {
	structPtr := unsafe.Pointer(out)

	for i := range v.types {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])

		var component any
		if v.registered[i] {
			if st := v.world.storeFor(v.ids[i]); st != nil {
				component = st.value(e.ID)
			}
		}

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		// component is a *T' boxed in an interface; pull the raw
		// pointer out and write it straight into the struct field.
		componentPtr := (*iface)(unsafe.Pointer(&component)).data
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}

	return true
}

// Get returns a populated view struct for the entity, or nil if it is
// missing a required component.
func (v *View[T]) Get(e Entity) *T {
	var result T
	if !v.Fill(e, &result) {
		return nil
	}
	return &result
}

// driver picks the smallest required store as the iteration base. The second
// result is false when some required type has no store yet, which means no
// entity can match.
func (v *View[T]) driver() (iComponentStore, bool) {
	var smallest iComponentStore
	for i := range v.types {
		if v.optional[i] {
			continue
		}
		if !v.registered[i] {
			return nil, false
		}
		st := v.world.storeFor(v.ids[i])
		if st == nil {
			return nil, false
		}
		if smallest == nil || st.size() < smallest.size() {
			smallest = st
		}
	}
	return smallest, smallest != nil
}

// matches reports whether a live entity holds every required component.
func (v *View[T]) matches(id EntityID) bool {
	if !v.world.Alive(id) {
		return false
	}
	for i := range v.types {
		if v.optional[i] {
			continue
		}
		st := v.world.storeFor(v.ids[i])
		if st == nil || !st.has(id) {
			return false
		}
	}
	return true
}

// Iter yields (Entity, T) pairs for every live entity holding all required
// components, in store order. Store order is unstable across removals; do
// not rely on it.
func (v *View[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		drv, ok := v.driver()
		if !ok {
			return
		}
		for _, id := range drv.entityList() {
			if !v.matches(id) {
				continue
			}
			var result T
			if !v.Fill(Entity{ID: id, world: v.world}, &result) {
				continue
			}
			if !yield(Entity{ID: id, world: v.world}, result) {
				return
			}
		}
	}
}

// Values yields just the view structs, without entity handles.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
