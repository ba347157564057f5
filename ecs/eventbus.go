package ecs

import "reflect"

// Subscribe registers a listener for events of type T. Listeners are invoked
// in subscription order. There is no unsubscribe; listener lists live as
// long as the world.
func Subscribe[T any](w *World, listener func(T)) {
	t := reflect.TypeFor[T]()
	w.listeners[t] = append(w.listeners[t], listener)
}

// Emit synchronously invokes every listener registered for T, in
// subscription order. Dispatch runs over a snapshot of the listener list
// taken at the start of the call: a listener that subscribes to T during its
// own event's dispatch will not be invoked until the next Emit.
func Emit[T any](w *World, event T) {
	ls := w.listeners[reflect.TypeFor[T]()]
	if len(ls) == 0 {
		return
	}
	// Capping the slice pins this dispatch to the current backing array;
	// re-entrant Subscribe appends past the cap or reallocates.
	snapshot := ls[:len(ls):len(ls)]
	for _, l := range snapshot {
		l.(func(T))(event)
	}
}
