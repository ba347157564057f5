package ecs_test

import (
	"testing"

	"github.com/plus3/ember/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewGetAndFill(t *testing.T) {
	w := newTestWorld()

	e := ecs.With(ecs.With(w.Spawn(), Position{X: 1, Y: 2}), Velocity{DX: 3})
	bare := ecs.With(w.Spawn(), Position{})

	v := ecs.NewView[moving](w)

	got := v.Get(e)
	require.NotNil(t, got)
	assert.Equal(t, float32(1), got.Position.X)
	assert.Equal(t, float32(3), got.Velocity.DX)

	assert.Nil(t, v.Get(bare))
}

func TestViewPointersWriteThrough(t *testing.T) {
	w := newTestWorld()

	e := ecs.With(ecs.With(w.Spawn(), Position{}), Velocity{DX: 2, DY: 4})

	v := ecs.NewView[moving](w)
	item := v.Get(e)
	require.NotNil(t, item)
	item.Position.X = 8

	pos, err := ecs.GetComponent[Position](w, e)
	require.NoError(t, err)
	assert.Equal(t, float32(8), pos.X)
}

func TestViewOptionalFields(t *testing.T) {
	type withName struct {
		*Position
		Name *Name `ecs:"optional"`
	}

	w := newTestWorld()

	named := ecs.With(ecs.With(w.Spawn(), Position{X: 1}), Name{Value: "a"})
	anon := ecs.With(w.Spawn(), Position{X: 2})

	v := ecs.NewView[withName](w)

	got := v.Get(named)
	require.NotNil(t, got)
	require.NotNil(t, got.Name)
	assert.Equal(t, "a", got.Name.Value)

	got = v.Get(anon)
	require.NotNil(t, got)
	assert.Nil(t, got.Name)
}

func TestViewIterSkipsDead(t *testing.T) {
	w := newTestWorld()

	alive := ecs.With(w.Spawn(), Position{})
	dead := ecs.With(w.Spawn(), Position{})
	w.Destroy(dead)

	count := 0
	for e := range ecs.NewView[struct{ *Position }](w).Iter() {
		count++
		assert.Equal(t, alive.ID, e.ID)
	}
	assert.Equal(t, 1, count)
}

func TestViewInvalidShapesPanic(t *testing.T) {
	w := newTestWorld()

	assert.Panics(t, func() {
		ecs.NewView[struct{ Position Position }](w) // non-pointer field
	})
	assert.Panics(t, func() {
		type bad struct {
			P *Position `ecs:"unique"`
		}
		ecs.NewView[bad](w)
	})
}
