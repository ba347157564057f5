package ecs

// Time is the built-in frame clock resource. NewWorld registers one with
// Scale 1, and Update writes the tick's delta into it before any system
// runs.
//
// Scale and Paused are honored by World.Run when it computes the delta for a
// tick; calling Update directly passes the delta through unmodified.
type Time struct {
	// DeltaSeconds is the duration of the current tick.
	DeltaSeconds float64
	// Total accumulates DeltaSeconds across every Update call.
	Total float64
	// Scale multiplies the raw frame delta inside World.Run.
	Scale float64
	// Paused makes World.Run tick with a zero delta.
	Paused bool
}
