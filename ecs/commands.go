package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// Commands buffers structural world mutations for execution after the
// current pass finishes. Systems that are iterating a Query should queue
// spawns, destroys, and component changes here instead of applying them
// mid-iteration; the world flushes the buffer at the end of each completed
// Update and Render pass.
type Commands struct {
	spawns   []spawnCommand
	destroys []Entity
	sets     []setCommand
	removes  []removeCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
}

type setCommand struct {
	entity    Entity
	component any
}

type removeCommand struct {
	entity   Entity
	compType reflect.Type
}

// Spawn queues an entity spawn with the given components. Components may be
// values or pointers to values of registered types.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// Set queues a component attach or overwrite.
func (c *Commands) Set(e Entity, component any) {
	c.sets = append(c.sets, setCommand{entity: e, component: component})
}

// Remove queues a component removal by type.
func (c *Commands) Remove(e Entity, compType reflect.Type) {
	c.removes = append(c.removes, removeCommand{entity: e, compType: compType})
}

// Defer queues an arbitrary function, run after all queued structural
// changes have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued commands to the world. Within one round destroys
// run first; sets and removes targeting a just-destroyed entity are dropped
// rather than resurrecting its ID. Commands queued while the flush itself
// runs (by a Defer callback, or by an event listener reacting to a flushed
// destroy or spawn) are applied in a follow-up round, so the buffer is
// always empty when Flush returns.
func (c *Commands) Flush(w *World) {
	for !c.empty() {
		spawns, destroys := c.spawns, c.destroys
		sets, removes, defers := c.sets, c.removes, c.defers
		c.spawns, c.destroys, c.sets, c.removes, c.defers = nil, nil, nil, nil, nil

		destroyed := intmap.NewSet[EntityID](len(destroys))
		for _, e := range destroys {
			w.Destroy(e)
			destroyed.Add(e.ID)
		}

		for _, cmd := range removes {
			if !destroyed.Has(cmd.entity.ID) {
				w.removeComponentType(cmd.entity, cmd.compType)
			}
		}

		for _, cmd := range sets {
			if !destroyed.Has(cmd.entity.ID) {
				w.setComponentValue(cmd.entity, cmd.component)
			}
		}

		for _, cmd := range spawns {
			e := w.Spawn()
			for _, comp := range cmd.components {
				w.setComponentValue(e, comp)
			}
		}

		for _, fn := range defers {
			fn()
		}
	}
}

func (c *Commands) empty() bool {
	return len(c.spawns) == 0 && len(c.destroys) == 0 && len(c.sets) == 0 &&
		len(c.removes) == 0 && len(c.defers) == 0
}
