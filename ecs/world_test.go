package ecs_test

import (
	"errors"
	"reflect"
	"runtime"
	"testing"

	"github.com/plus3/ember/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnAssignsMonotonicIds(t *testing.T) {
	w := newTestWorld()

	a := w.Spawn()
	b := w.Spawn()
	c := w.Spawn()

	assert.Equal(t, ecs.EntityID(0), a.ID)
	assert.Equal(t, ecs.EntityID(1), b.ID)
	assert.Equal(t, ecs.EntityID(2), c.ID)

	assert.True(t, a.Alive())
	assert.True(t, b.Alive())
	assert.True(t, c.Alive())
}

func TestDestroyedIdsAreNeverRecycled(t *testing.T) {
	w := newTestWorld()

	a := w.Spawn()
	w.Destroy(a)

	b := w.Spawn()
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, ecs.EntityID(1), b.ID)
	assert.False(t, w.Alive(a.ID))
}

func TestDestroyIsIdempotent(t *testing.T) {
	w := newTestWorld()

	e := w.Spawn()
	w.Destroy(e)
	w.Destroy(e) // already dead: no-op

	// An ID the world never issued is also a no-op.
	w.Destroy(ecs.Entity{ID: 9999})
}

func TestDestroyClearsEveryComponent(t *testing.T) {
	w := newTestWorld()

	e := ecs.With(ecs.With(w.Spawn(), Position{X: 1}), Velocity{DX: 2})
	require.True(t, ecs.HasComponent[Position](w, e))
	require.True(t, ecs.HasComponent[Velocity](w, e))

	w.Destroy(e)

	assert.False(t, ecs.HasComponent[Position](w, e))
	assert.False(t, ecs.HasComponent[Velocity](w, e))

	_, err := ecs.GetComponent[Position](w, e)
	assert.ErrorIs(t, err, ecs.ErrComponentNotFound)
}

func TestSetAndGetComponent(t *testing.T) {
	w := newTestWorld()

	e := w.Spawn()
	ecs.SetComponent(w, e, Position{X: 3, Y: 4})
	ecs.SetComponent(w, e, Name{Value: "test entity"})

	pos, err := ecs.GetComponent[Position](w, e)
	require.NoError(t, err)
	assert.Equal(t, float32(3), pos.X)
	assert.Equal(t, float32(4), pos.Y)

	name, err := ecs.GetComponent[Name](w, e)
	require.NoError(t, err)
	assert.Equal(t, "test entity", name.Value)

	_, err = ecs.GetComponent[Velocity](w, e)
	assert.ErrorIs(t, err, ecs.ErrComponentNotFound)
}

func TestGetComponentReturnsLiveStorePointer(t *testing.T) {
	w := newTestWorld()

	e := ecs.With(w.Spawn(), Health{Current: 100, Max: 100})

	h, err := ecs.GetComponent[Health](w, e)
	require.NoError(t, err)
	h.Current = 42

	h2, err := ecs.GetComponent[Health](w, e)
	require.NoError(t, err)
	assert.Equal(t, 42, h2.Current)
}

func TestSetComponentOverwritesInPlace(t *testing.T) {
	w := newTestWorld()

	e := ecs.With(w.Spawn(), Score(10))
	ecs.SetComponent(w, e, Score(99))

	s, err := ecs.GetComponent[Score](w, e)
	require.NoError(t, err)
	assert.Equal(t, Score(99), *s)
}

func TestSetComponentUnregisteredTypePanics(t *testing.T) {
	type Unregistered struct{ N int }
	w := newTestWorld()
	e := w.Spawn()

	assert.Panics(t, func() {
		ecs.SetComponent(w, e, Unregistered{N: 1})
	})
}

func TestRemoveComponent(t *testing.T) {
	w := newTestWorld()

	e := ecs.With(ecs.With(w.Spawn(), Position{X: 1}), Velocity{DX: 1})
	ecs.RemoveComponent[Velocity](w, e)

	assert.False(t, ecs.HasComponent[Velocity](w, e))
	assert.True(t, ecs.HasComponent[Position](w, e))

	// Removing again is a no-op.
	ecs.RemoveComponent[Velocity](w, e)
}

func TestInsertRemoveInsertMatchesSingleInsert(t *testing.T) {
	w := newTestWorld()

	filler := ecs.With(w.Spawn(), Health{Current: 1, Max: 1})
	e := ecs.With(w.Spawn(), Health{Current: 50, Max: 100})

	sizeBefore := storeSize(w, reflect.TypeFor[Health]())

	ecs.RemoveComponent[Health](w, e)
	ecs.SetComponent(w, e, Health{Current: 50, Max: 100})

	h, err := ecs.GetComponent[Health](w, e)
	require.NoError(t, err)
	assert.Equal(t, Health{Current: 50, Max: 100}, *h)
	assert.Equal(t, sizeBefore, storeSize(w, reflect.TypeFor[Health]()))

	// The swap-removed neighbor is untouched.
	fh, err := ecs.GetComponent[Health](w, filler)
	require.NoError(t, err)
	assert.Equal(t, Health{Current: 1, Max: 1}, *fh)
}

// TestSparseDenseConsistency runs a scripted churn of inserts and removes
// against a plain map model and checks that every surviving entity reads
// back its last-written value.
func TestSparseDenseConsistency(t *testing.T) {
	w := newTestWorld()

	const n = 64
	entities := make([]ecs.Entity, n)
	for i := range entities {
		entities[i] = w.Spawn()
	}

	model := make(map[ecs.EntityID]Score)
	for round := 0; round < 5; round++ {
		for i, e := range entities {
			switch (i + round) % 3 {
			case 0:
				v := Score(round*1000 + i)
				ecs.SetComponent(w, e, v)
				model[e.ID] = v
			case 1:
				ecs.RemoveComponent[Score](w, e)
				delete(model, e.ID)
			case 2:
				v := Score(-(round*1000 + i))
				ecs.SetComponent(w, e, v)
				model[e.ID] = v
			}
		}
	}

	assert.Equal(t, len(model), storeSize(w, reflect.TypeFor[Score]()))
	for _, e := range entities {
		want, ok := model[e.ID]
		if !ok {
			assert.False(t, ecs.HasComponent[Score](w, e))
			continue
		}
		got, err := ecs.GetComponent[Score](w, e)
		require.NoError(t, err)
		assert.Equal(t, want, *got)
	}
}

func TestComponentTypesAndValue(t *testing.T) {
	w := newTestWorld()

	e := ecs.With(ecs.With(w.Spawn(), Position{X: 7}), Name{Value: "x"})

	types := w.ComponentTypes(e)
	assert.ElementsMatch(t, []reflect.Type{reflect.TypeFor[Position](), reflect.TypeFor[Name]()}, types)

	v := w.ComponentValue(e, reflect.TypeFor[Position]())
	require.NotNil(t, v)
	assert.Equal(t, float32(7), v.(*Position).X)

	assert.Nil(t, w.ComponentValue(e, reflect.TypeFor[Velocity]()))
}

func TestErrorsAreWrappedSentinels(t *testing.T) {
	w := newTestWorld()
	e := w.Spawn()

	_, err := ecs.GetComponent[Position](w, e)
	assert.True(t, errors.Is(err, ecs.ErrComponentNotFound))
	assert.Contains(t, err.Error(), "Position")
}

// The liveness and sparse arrays must grow with geometric capacity: exact-fit
// reallocation on every spawn would copy the whole array each time, turning n
// spawns into O(n^2) total work. Total bytes allocated should scale linearly
// with the spawn count, so doubling it must not quadruple the allocation.
func TestSpawnAllocationIsAmortized(t *testing.T) {
	allocBytes := func(n int) uint64 {
		w := newTestWorld()
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		for i := 0; i < n; i++ {
			ecs.SetComponent(w, w.Spawn(), Score(i))
		}
		runtime.ReadMemStats(&after)
		return after.TotalAlloc - before.TotalAlloc
	}

	small := allocBytes(50000)
	large := allocBytes(100000)

	if large > 3*small {
		t.Errorf("allocation grew superlinearly: %d bytes for 50k spawns, %d bytes for 100k", small, large)
	}
}

func storeSize(w *ecs.World, t reflect.Type) int {
	for _, s := range w.Stats().Stores {
		if s.Type == t {
			return s.Size
		}
	}
	return 0
}
