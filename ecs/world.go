package ecs

import "github.com/CindyYangCS/CircuitCider/ecs/component"

// World owns entities, their component stores and the deferred command queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	commands *Commands
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	w := &World{stores: make(map[component.ComponentID]componentStore)}
	w.commands = &Commands{world: w}
	return w
}

// CreateEntity allocates a new entity immediately. Systems should prefer
// Commands.Spawn so that mutation happens after every system has run.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.live)
	for i := range w.entities.gens {
		if e, ok := w.entities.handle(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// Commands returns the world's deferred command queue.
func (w *World) Commands() *Commands {
	if w == nil {
		return nil
	}
	return w.commands
}
