package ecs

import "fmt"

// EntityID is a world-unique numeric handle for an entity. IDs are assigned
// monotonically by World.Spawn and are never recycled, so a destroyed ID
// stays dead for the lifetime of the world.
type EntityID uint32

// Entity pairs an EntityID with the world that issued it. An entity carries
// no data of its own; components live in per-type stores inside the world.
type Entity struct {
	ID EntityID

	world *World
}

// Alive reports whether the entity has been spawned and not yet destroyed.
func (e Entity) Alive() bool {
	if e.world == nil {
		return false
	}
	return e.world.Alive(e.ID)
}

// World returns the world that owns this entity.
func (e Entity) World() *World {
	return e.world
}

func (e Entity) String() string {
	return fmt.Sprintf("entity(%d)", e.ID)
}

// With attaches a component to the entity and returns the entity unchanged,
// allowing spawn-time chaining:
//
//	e := ecs.With(ecs.With(w.Spawn(), Position{}), Velocity{DX: 1})
//
// Semantics are identical to SetComponent.
func With[T any](e Entity, component T) Entity {
	SetComponent(e.world, e, component)
	return e
}
