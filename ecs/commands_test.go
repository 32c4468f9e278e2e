package ecs

import (
	"testing"

	"github.com/CindyYangCS/CircuitCider/ecs/component"
)

func TestCommandsDeferUntilApplied(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	w.Commands().Spawn(With(h.Kind(), 7))
	if len(Entities(w)) != 0 {
		t.Fatalf("spawn must not run before ApplyCommands")
	}
	if w.Commands().Len() != 1 {
		t.Fatalf("expected 1 pending command, got %d", w.Commands().Len())
	}

	spawned := ApplyCommands(w)
	if len(spawned) != 1 {
		t.Fatalf("expected 1 spawned entity, got %d", len(spawned))
	}
	v, ok := Get(w, spawned[0], h.Kind())
	if !ok || *v != 7 {
		t.Fatalf("expected spawned entity to carry 7, got %v ok=%v", v, ok)
	}
	if w.Commands().Len() != 0 {
		t.Fatalf("queue should be drained")
	}
}

func TestCommandsApplyInOrder(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	tag := component.NewComponent[struct{}]()

	e := CreateEntity(w)
	_ = Add(w, e, h.Kind(), intPtr(1))

	cmds := w.Commands()
	cmds.Insert(e, With(h.Kind(), 2), With(tag.Kind(), struct{}{}))
	cmds.Remove(e, Without(tag.Kind()))
	cmds.Insert(e, With(h.Kind(), 3))
	ApplyCommands(w)

	v, _ := Get(w, e, h.Kind())
	if *v != 3 {
		t.Fatalf("expected last insert to win, got %d", *v)
	}
	if Has(w, e, tag.Kind()) {
		t.Fatalf("tag should have been removed by the second command")
	}
}

func TestCommandsStaleHandles(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := CreateEntity(w)
	cmds := w.Commands()
	cmds.Despawn(e)
	cmds.Despawn(e)
	cmds.Insert(e, With(h.Kind(), 1))
	cmds.Remove(e, Without(h.Kind()))

	// Every command after the first despawn targets a dead entity and must be
	// skipped without panicking.
	ApplyCommands(w)

	if IsAlive(w, e) {
		t.Fatalf("entity should be despawned")
	}
	if Count(w, h.Kind()) != 0 {
		t.Fatalf("insert on a dead entity must not store a component")
	}
}

func TestWithCopiesValue(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[[]int]()

	src := []int{1}
	ins := With(h.Kind(), src)
	w.Commands().Spawn(ins)
	w.Commands().Spawn(ins)
	spawned := ApplyCommands(w)

	a, _ := Get(w, spawned[0], h.Kind())
	b, _ := Get(w, spawned[1], h.Kind())
	if a == b {
		t.Fatalf("each spawn should receive its own component pointer")
	}
}

type countingSystem struct {
	kind  component.ComponentKind[int]
	calls *[]string
	name  string
}

func (s countingSystem) Update(w *World) {
	*s.calls = append(*s.calls, s.name)
	w.Commands().Spawn(With(s.kind, len(*s.calls)))
}

func TestSchedulerRunsInOrderThenApplies(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	var calls []string

	s := NewScheduler(
		countingSystem{kind: h.Kind(), calls: &calls, name: "a"},
		nil,
		countingSystem{kind: h.Kind(), calls: &calls, name: "b"},
	)
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems must be ignored, got %d", len(s.Systems()))
	}

	spawned := s.Update(w)
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("unexpected call order %v", calls)
	}
	if len(spawned) != 2 {
		t.Fatalf("expected 2 spawned entities, got %d", len(spawned))
	}
	first, _ := Get(w, spawned[0], h.Kind())
	if *first != 1 {
		t.Fatalf("expected queue order to be preserved, got %d", *first)
	}
}
