package ecs

import (
	"fmt"
	"reflect"
)

// AddResource registers a singleton resource of type T, replacing any
// existing instance of the same type. Last write wins; no error is raised on
// replacement. The world stores the pointer itself, so every GetResource
// returns the same underlying instance.
func AddResource[T any](w *World, resource *T) {
	if resource == nil {
		panic("ecs: nil resource")
	}
	w.resources[reflect.TypeFor[T]()] = resource
}

// GetResource returns the registered instance of type T. Fails with
// ErrResourceNotFound if the type was never added.
func GetResource[T any](w *World) (*T, error) {
	t := reflect.TypeFor[T]()
	res, ok := w.resources[t]
	if !ok {
		return nil, fmt.Errorf("%s: %w", t, ErrResourceNotFound)
	}
	return res.(*T), nil
}

// HasResource reports whether a resource of type T is registered.
func HasResource[T any](w *World) bool {
	_, ok := w.resources[reflect.TypeFor[T]()]
	return ok
}
