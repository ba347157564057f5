package ecs

import (
	"iter"
	"sort"
)

// Query computes the set of live entities holding every required component
// of the view struct T, at construction time. Unlike View, a Query is a
// snapshot: the matching entity IDs are collected once, sorted ascending,
// and iterated in that deterministic order regardless of the unstable order
// inside the sparse-set stores.
//
// Construction walks the smallest required store and filters the rest with
// O(1) membership checks. If any required component type has no store yet,
// the query is empty; this is a deliberate graceful no-match, in contrast
// with GetComponent, which fails with ErrComponentNotFound.
//
// Structural changes between construction and iteration are tolerated:
// component pointers are resolved per entity as it is yielded, and an entity
// that lost a required component since construction is skipped. Prefer
// World.Commands for structural mutation from inside an iteration.
type Query[T any] struct {
	view    *View[T]
	world   *World
	matches []EntityID
}

// NewQuery builds a query against the world's current state. See View for
// the shape of T.
func NewQuery[T any](w *World) *Query[T] {
	q := &Query[T]{
		view:  NewView[T](w),
		world: w,
	}

	drv, ok := q.view.driver()
	if !ok {
		return q
	}

	q.matches = make([]EntityID, 0, drv.size())
	for _, id := range drv.entityList() {
		if q.view.matches(id) {
			q.matches = append(q.matches, id)
		}
	}

	sort.Slice(q.matches, func(i, j int) bool {
		return q.matches[i] < q.matches[j]
	})

	return q
}

// Count returns the number of entities matched at construction time.
func (q *Query[T]) Count() int {
	return len(q.matches)
}

// Entities returns the matched entities in ascending ID order.
func (q *Query[T]) Entities() []Entity {
	out := make([]Entity, len(q.matches))
	for i, id := range q.matches {
		out[i] = Entity{ID: id, world: q.world}
	}
	return out
}

// Iter yields (Entity, T) pairs in ascending entity ID order. The pointer
// fields of T alias store memory, so mutating through them writes directly
// into the component stores. The iterator is forward-only and single-pass
// over the construction-time snapshot.
func (q *Query[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		for _, id := range q.matches {
			e := Entity{ID: id, world: q.world}
			var result T
			if !q.view.Fill(e, &result) {
				continue
			}
			if !yield(e, result) {
				return
			}
		}
	}
}

// Values yields just the view structs, in the same order as Iter.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range q.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
