package ecs

import "reflect"

// Built-in lifecycle events, emitted by the world itself. Subscribe to them
// like any other event type.

// EntityCreated fires after Spawn marks the entity live.
type EntityCreated struct {
	Entity Entity
}

// EntityDestroyed fires at the start of Destroy, while the entity's
// components are still attached and readable.
type EntityDestroyed struct {
	Entity Entity
}

// ComponentAdded fires when SetComponent attaches a type the entity did not
// already hold. Overwriting an existing component does not fire it.
type ComponentAdded struct {
	Entity Entity
	Type   reflect.Type
}

// ComponentRemoved fires on explicit removal and once per attached type
// during Destroy.
type ComponentRemoved struct {
	Entity Entity
	Type   reflect.Type
}
