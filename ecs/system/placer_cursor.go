package system

import (
	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
)

// PlacerCursorSystem moves the edited placer to the ground point under the
// cursor and drops it on a left click.
type PlacerCursorSystem struct {
	frame *Frame
}

func NewPlacerCursorSystem(frame *Frame) *PlacerCursorSystem {
	return &PlacerCursorSystem{frame: frame}
}

func (s *PlacerCursorSystem) Update(w *ecs.World) {
	if w == nil || !s.frame.ready() {
		return
	}
	if resource.Mode(w) != resource.PlacerMode || resource.MouseOver(w) {
		return
	}
	in := s.frame.Pointer
	x, y, ok := in.Cursor()
	if !ok {
		return
	}
	view := resource.ViewOf(w)
	if view == nil {
		return
	}

	ground := view.ScreenToGround(x, y)
	cmds := w.Commands()
	ecs.ForEach2(w, component.EditedComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Edited, t *component.Transform) {
		t.Position = ground
		if in.LeftPressed {
			cmds.Remove(e, ecs.Without(component.EditedComponent.Kind()))
		}
	})
}
