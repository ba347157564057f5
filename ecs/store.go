package ecs

import "reflect"

// noIndex marks an entity with no slot in the dense arrays.
const noIndex = int32(-1)

// store is a sparse set holding components of type T. The sparse slice maps
// an entity ID to an index into the packed dense arrays; absence is the
// noIndex sentinel, never a scan. Invariant: sparse[entities[i]] == i for
// every valid i.
//
// Removal swap-moves the last dense element into the vacated slot, so
// iteration order over the dense arrays is not stable across removals.
type store[T any] struct {
	sparse   []int32
	dense    []T
	entities []EntityID
}

func newStore[T any]() *store[T] {
	return &store[T]{}
}

// insert adds or overwrites the component for an entity. Returns true when
// the entity did not previously hold T (a genuine addition), false on an
// in-place overwrite.
func (s *store[T]) insert(id EntityID, component T) bool {
	// append grows capacity geometrically, keeping insert O(1) amortized.
	for int(id) >= len(s.sparse) {
		s.sparse = append(s.sparse, noIndex)
	}

	if idx := s.sparse[id]; idx != noIndex {
		s.dense[idx] = component
		return false
	}

	s.sparse[id] = int32(len(s.dense))
	s.dense = append(s.dense, component)
	s.entities = append(s.entities, id)
	return true
}

// get returns a pointer to the entity's component, or nil if absent. The
// pointer is valid until the next structural change to the store.
func (s *store[T]) get(id EntityID) *T {
	if int(id) >= len(s.sparse) {
		return nil
	}
	idx := s.sparse[id]
	if idx == noIndex {
		return nil
	}
	return &s.dense[idx]
}

func (s *store[T]) has(id EntityID) bool {
	return int(id) < len(s.sparse) && s.sparse[id] != noIndex
}

// removeEntity swap-removes the entity's component. Returns true when the
// entity held one.
func (s *store[T]) removeEntity(id EntityID) bool {
	if int(id) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id]
	if idx == noIndex {
		return false
	}

	last := int32(len(s.dense) - 1)
	if idx != last {
		s.dense[idx] = s.dense[last]
		s.entities[idx] = s.entities[last]
		s.sparse[s.entities[idx]] = idx
	}

	s.sparse[id] = noIndex
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	return true
}

func (s *store[T]) size() int {
	return len(s.dense)
}

// entityList exposes the dense entity slice. Callers must not mutate it and
// must not hold it across structural changes.
func (s *store[T]) entityList() []EntityID {
	return s.entities
}

func (s *store[T]) sparseLen() int {
	return len(s.sparse)
}

func (s *store[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}

// insertValue is the type-erased insert used by the deferred command buffer.
// Accepts T or *T; anything else is ignored.
func (s *store[T]) insertValue(id EntityID, item any) bool {
	switch v := item.(type) {
	case T:
		return s.insert(id, v)
	case *T:
		return s.insert(id, *v)
	}
	return false
}

// value returns the entity's component as *T boxed in an any, or nil.
func (s *store[T]) value(id EntityID) any {
	p := s.get(id)
	if p == nil {
		return nil
	}
	return p
}
