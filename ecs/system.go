package ecs

// SystemFunc is the contract between the world and every feature system
// built on top of it. A system receives the whole world and may freely read
// or write any store or resource, spawn or destroy entities, and emit
// events. Returning a non-nil error aborts the remaining systems in the
// current pass.
type SystemFunc func(*World) error

type systemInfo struct {
	label    string
	fn       SystemFunc
	priority int
	stats    *systemStatsInternal
}
