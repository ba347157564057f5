package ecs

import "reflect"

// iComponentStore is the type-erased face of a sparse-set component store.
// One store exists per registered component type per world.
type iComponentStore interface {
	componentType() reflect.Type
	insertValue(id EntityID, item any) bool
	value(id EntityID) any
	has(id EntityID) bool
	removeEntity(id EntityID) bool
	size() int
	entityList() []EntityID
	sparseLen() int
}
