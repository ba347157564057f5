package ecs

import "errors"

// ErrComponentNotFound is returned by GetComponent when the entity does not
// hold the requested component type, or the type has never been stored in
// the world. Note the asymmetry with queries: a Query over a type with no
// store yields an empty result instead of failing.
var ErrComponentNotFound = errors.New("component not found")

// ErrResourceNotFound is returned by GetResource for a type that was never
// registered with AddResource.
var ErrResourceNotFound = errors.New("resource not found")
