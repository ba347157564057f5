package ecs

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// maxRunDelta caps the per-tick delta computed by Run, so a stall (debugger,
// window drag, suspend) does not produce one enormous simulation step.
const maxRunDelta = 0.1

// SchedulerStats provides execution statistics for both system pipelines.
type SchedulerStats struct {
	TotalExecutions int64
	Update          []SystemStats
	Render          []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Label          string
	Priority       int
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// AddSystem appends a system to the update pipeline, or to the render
// pipeline when render is true. Each pipeline is kept stably sorted by
// ascending priority: lower priorities run first, and systems sharing a
// priority run in registration order.
func (w *World) AddSystem(label string, fn SystemFunc, priority int, render bool) {
	info := systemInfo{
		label:    label,
		fn:       fn,
		priority: priority,
		stats:    &systemStatsInternal{minDuration: time.Duration(1<<63 - 1)},
	}

	if render {
		w.renderSystems = append(w.renderSystems, info)
		sort.SliceStable(w.renderSystems, func(i, j int) bool {
			return w.renderSystems[i].priority < w.renderSystems[j].priority
		})
	} else {
		w.updateSystems = append(w.updateSystems, info)
		sort.SliceStable(w.updateSystems, func(i, j int) bool {
			return w.updateSystems[i].priority < w.updateSystems[j].priority
		})
	}
}

// Update writes deltaSeconds into the Time resource, then runs every update
// system once, in pipeline order. The first system error aborts the
// remaining systems for this tick and is returned. After a completed pass
// the deferred command buffer is flushed.
func (w *World) Update(deltaSeconds float64) error {
	if t, err := GetResource[Time](w); err == nil {
		t.DeltaSeconds = deltaSeconds
		t.Total += deltaSeconds
	}
	return w.runPass("update", w.updateSystems)
}

// Render runs every render system once, in pipeline order, without touching
// the Time resource. Fail-fast like Update.
func (w *World) Render() error {
	return w.runPass("render", w.renderSystems)
}

func (w *World) runPass(pass string, systems []systemInfo) error {
	for i := range systems {
		sys := &systems[i]

		start := time.Now()
		err := sys.fn(w)
		duration := time.Since(start)

		stats := sys.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if err != nil {
			return fmt.Errorf("%s system %q: %w", pass, sys.label, err)
		}
	}

	w.commands.Flush(w)
	return nil
}

// Run drives Update and Render at the given interval until the context is
// cancelled or a system fails. The raw frame delta is capped at 100ms and
// then adjusted by the Time resource's Scale and Paused fields.
func (w *World) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if dt > maxRunDelta {
				dt = maxRunDelta
			}
			if t, err := GetResource[Time](w); err == nil {
				if t.Paused {
					dt = 0
				} else {
					dt *= t.Scale
				}
			}
			if err := w.Update(dt); err != nil {
				return err
			}
			if err := w.Render(); err != nil {
				return err
			}
		}
	}
}

// SchedulerStats returns execution statistics for every registered system.
func (w *World) SchedulerStats() *SchedulerStats {
	out := &SchedulerStats{
		Update: collectSystemStats(w.updateSystems),
		Render: collectSystemStats(w.renderSystems),
	}
	for _, s := range out.Update {
		out.TotalExecutions += s.ExecutionCount
	}
	for _, s := range out.Render {
		out.TotalExecutions += s.ExecutionCount
	}
	return out
}

func collectSystemStats(systems []systemInfo) []SystemStats {
	out := make([]SystemStats, len(systems))
	for i := range systems {
		internal := systems[i].stats
		avg := time.Duration(0)
		if internal.executionCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.executionCount)
		}
		out[i] = SystemStats{
			Label:          systems[i].label,
			Priority:       systems[i].priority,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avg,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}
	return out
}
