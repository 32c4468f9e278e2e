package ecs

import (
	"log"

	"github.com/CindyYangCS/CircuitCider/ecs/component"
)

// Inserter is a type-erased component value waiting to be added to an entity.
type Inserter interface {
	insert(w *World, e Entity) error
}

// Remover is a type-erased component kind waiting to be removed from an entity.
type Remover interface {
	remove(w *World, e Entity) bool
}

type inserter[T any] struct {
	kind  component.ComponentKind[T]
	value T
}

func (i inserter[T]) insert(w *World, e Entity) error {
	v := i.value
	return Add(w, e, i.kind, &v)
}

type remover[T any] struct {
	kind component.ComponentKind[T]
}

func (r remover[T]) remove(w *World, e Entity) bool {
	return Remove(w, e, r.kind)
}

// With captures a copy of v for a later Spawn or Insert.
func With[T any](kind component.ComponentKind[T], v T) Inserter {
	return inserter[T]{kind: kind, value: v}
}

// Without names a component kind for a later Remove.
func Without[T any](kind component.ComponentKind[T]) Remover {
	return remover[T]{kind: kind}
}

type commandOp uint8

const (
	opSpawn commandOp = iota
	opDespawn
	opInsert
	opRemove
)

func (op commandOp) String() string {
	switch op {
	case opSpawn:
		return "spawn"
	case opDespawn:
		return "despawn"
	case opInsert:
		return "insert"
	case opRemove:
		return "remove"
	default:
		return "unknown"
	}
}

type command struct {
	op       commandOp
	target   Entity
	inserts  []Inserter
	removers []Remover
}

// Commands queues structural changes so systems never mutate the world while
// other systems of the same frame are still reading it. The queue is applied
// in order by ApplyCommands.
type Commands struct {
	world *World
	queue []command
}

func (c *Commands) Spawn(inserts ...Inserter) {
	if c == nil {
		return
	}
	c.queue = append(c.queue, command{op: opSpawn, inserts: inserts})
}

func (c *Commands) Despawn(e Entity) {
	if c == nil {
		return
	}
	c.queue = append(c.queue, command{op: opDespawn, target: e})
}

func (c *Commands) Insert(e Entity, inserts ...Inserter) {
	if c == nil || len(inserts) == 0 {
		return
	}
	c.queue = append(c.queue, command{op: opInsert, target: e, inserts: inserts})
}

func (c *Commands) Remove(e Entity, removers ...Remover) {
	if c == nil || len(removers) == 0 {
		return
	}
	c.queue = append(c.queue, command{op: opRemove, target: e, removers: removers})
}

// Len reports how many commands are pending.
func (c *Commands) Len() int {
	if c == nil {
		return 0
	}
	return len(c.queue)
}

// ApplyCommands drains the queue and returns the entities spawned by it, in
// queue order. Commands aimed at entities that are no longer alive are logged
// and skipped.
func ApplyCommands(w *World) []Entity {
	if w == nil || w.commands == nil || len(w.commands.queue) == 0 {
		return nil
	}
	queue := w.commands.queue
	w.commands.queue = nil

	var spawned []Entity
	for _, cmd := range queue {
		switch cmd.op {
		case opSpawn:
			e := CreateEntity(w)
			for _, ins := range cmd.inserts {
				if err := ins.insert(w, e); err != nil {
					log.Printf("ecs: spawn %v: %v", e, err)
				}
			}
			spawned = append(spawned, e)
		case opDespawn:
			if !DestroyEntity(w, cmd.target) {
				log.Printf("ecs: %s %v: %v", cmd.op, cmd.target, component.ErrEntityNotAlive)
			}
		case opInsert:
			if !IsAlive(w, cmd.target) {
				log.Printf("ecs: %s %v: %v", cmd.op, cmd.target, component.ErrEntityNotAlive)
				continue
			}
			for _, ins := range cmd.inserts {
				if err := ins.insert(w, cmd.target); err != nil {
					log.Printf("ecs: %s %v: %v", cmd.op, cmd.target, err)
				}
			}
		case opRemove:
			if !IsAlive(w, cmd.target) {
				log.Printf("ecs: %s %v: %v", cmd.op, cmd.target, component.ErrEntityNotAlive)
				continue
			}
			for _, rm := range cmd.removers {
				rm.remove(w, cmd.target)
			}
		}
	}

	return spawned
}
