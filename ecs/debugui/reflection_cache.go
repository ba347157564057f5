package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported field of a component struct, precomputed
// for the inspector's edit widgets.
type FieldInfo struct {
	Name string
	Type reflect.Type
	// Index is the field's position in the struct, for reflect.Value.Field.
	Index int
	// IsPointer marks fields the inspector must dereference before editing.
	// The pointed-to type is recorded in Type.
	IsPointer bool
}

// ReflectionCache memoizes per-type field metadata. World.ComponentValue
// hands the inspector a fresh pointer every frame, but the shape of a
// component type never changes, so the field walk happens once per type.
type ReflectionCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fields: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields returns the editable fields of t. Non-struct types and
// unexported fields yield no entries; the inspector renders those values
// read-only through other paths.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fields[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	collected := collectFields(t)

	rc.mu.Lock()
	rc.fields[t] = collected
	rc.mu.Unlock()
	return collected
}

func collectFields(t reflect.Type) []FieldInfo {
	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields []FieldInfo
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		info := FieldInfo{
			Name:  field.Name,
			Type:  field.Type,
			Index: i,
		}
		if field.Type.Kind() == reflect.Ptr {
			info.IsPointer = true
			info.Type = field.Type.Elem()
		}
		fields = append(fields, info)
	}
	return fields
}

var globalReflectionCache = NewReflectionCache()
