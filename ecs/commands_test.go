package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/ember/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsApplyAfterUpdatePass(t *testing.T) {
	w := newTestWorld()

	w.AddSystem("spawner", func(w *ecs.World) error {
		w.Commands().Spawn(Position{X: 1}, Velocity{DX: 2})
		// Nothing is visible until the pass completes.
		if ecs.NewQuery[moving](w).Count() != 0 {
			t.Error("expected spawn to be deferred")
		}
		return nil
	}, 0, false)

	require.NoError(t, w.Update(0.016))

	q := ecs.NewQuery[moving](w)
	require.Equal(t, 1, q.Count())
	for _, item := range q.Iter() {
		assert.Equal(t, float32(1), item.Position.X)
		assert.Equal(t, float32(2), item.Velocity.DX)
	}
}

func TestCommandsDestroyDuringIteration(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 5; i++ {
		ecs.With(w.Spawn(), Health{Current: i, Max: 10})
	}

	w.AddSystem("reaper", func(w *ecs.World) error {
		for e, item := range ecs.NewQuery[struct{ *Health }](w).Iter() {
			if item.Health.Current < 2 {
				w.Commands().Destroy(e)
			}
		}
		return nil
	}, 0, false)

	require.NoError(t, w.Update(0.016))

	assert.Equal(t, 3, ecs.NewQuery[struct{ *Health }](w).Count())
	assert.Equal(t, 3, w.Stats().AliveEntities)
}

func TestCommandsSetAndRemove(t *testing.T) {
	w := newTestWorld()

	e := ecs.With(w.Spawn(), Position{})

	c := w.Commands()
	c.Set(e, Velocity{DX: 7})
	c.Remove(e, reflect.TypeFor[Position]())
	c.Flush(w)

	assert.False(t, ecs.HasComponent[Position](w, e))
	v, err := ecs.GetComponent[Velocity](w, e)
	require.NoError(t, err)
	assert.Equal(t, float32(7), v.DX)
}

// Sets and removes targeting an entity destroyed in the same flush are
// dropped instead of touching a dead ID.
func TestCommandsDestroyedEntityDropsLaterOps(t *testing.T) {
	w := newTestWorld()

	e := ecs.With(w.Spawn(), Position{})

	c := w.Commands()
	c.Destroy(e)
	c.Set(e, Velocity{DX: 1})
	c.Remove(e, reflect.TypeFor[Position]())
	c.Flush(w)

	assert.False(t, w.Alive(e.ID))
	assert.False(t, ecs.HasComponent[Velocity](w, e))
}

func TestCommandsDefer(t *testing.T) {
	w := newTestWorld()

	var order []string
	c := w.Commands()
	c.Defer(func() { order = append(order, "deferred") })
	c.Spawn(Position{})
	order = append(order, "queued")
	c.Flush(w)

	// Defers run last, after structural changes.
	assert.Equal(t, []string{"queued", "deferred"}, order)
	assert.Equal(t, 1, w.Stats().AliveEntities)
}

// Commands queued while the flush itself is running must not be lost: a
// Defer callback that queues a spawn gets a follow-up round.
func TestCommandsQueuedDuringFlushAreApplied(t *testing.T) {
	w := newTestWorld()

	c := w.Commands()
	c.Defer(func() {
		c.Spawn(Position{X: 5})
	})
	c.Flush(w)

	q := ecs.NewQuery[struct{ *Position }](w)
	require.Equal(t, 1, q.Count())
	for _, item := range q.Iter() {
		assert.Equal(t, float32(5), item.Position.X)
	}
}

// Event listeners fire synchronously from inside the flush; anything they
// queue lands in the next round of the same flush.
func TestCommandsQueuedByListenerDuringFlushAreApplied(t *testing.T) {
	w := newTestWorld()

	ecs.Subscribe(w, func(ev ecs.EntityCreated) {
		w.Commands().Set(ev.Entity, Name{Value: "labeled"})
	})

	c := w.Commands()
	c.Spawn(Position{})
	c.Flush(w)

	assert.Equal(t, 1, w.Stats().AliveEntities)
	for e := range w.Entities() {
		name, err := ecs.GetComponent[Name](w, e)
		require.NoError(t, err)
		assert.Equal(t, "labeled", name.Value)
	}
}

func TestCommandsFlushResetsBuffer(t *testing.T) {
	w := newTestWorld()

	c := w.Commands()
	c.Spawn(Position{})
	c.Flush(w)
	c.Flush(w) // nothing queued: no second spawn

	assert.Equal(t, 1, w.Stats().AliveEntities)
}
