package system

import (
	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
)

const (
	featureOffsetX = 10
	featureOffsetY = -10
)

// PlacerEditorSystem lists the features of every placer for a window that
// trails the cursor. Holding left Control leaves the window where it is.
type PlacerEditorSystem struct {
	frame *Frame
}

func NewPlacerEditorSystem(frame *Frame) *PlacerEditorSystem {
	return &PlacerEditorSystem{frame: frame}
}

func (s *PlacerEditorSystem) Update(w *ecs.World) {
	if w == nil || !s.frame.ready() {
		return
	}
	f := &s.frame.Features
	f.Lines = f.Lines[:0]
	f.Visible = false

	if ecs.Count(w, component.PlacerComponent.Kind()) == 0 {
		return
	}
	x, y, ok := s.frame.Pointer.Cursor()
	if !ok {
		return
	}

	f.Visible = true
	f.Follow = !s.frame.Pointer.CtrlLeft
	if f.Follow {
		f.X, f.Y = x+featureOffsetX, y+featureOffsetY
	}
	ecs.ForEach2(w, component.PlacerComponent.Kind(), component.NameComponent.Kind(), func(_ ecs.Entity, placer *component.Placer, name *component.Name) {
		f.Lines = append(f.Lines, "name: "+name.Value, "Placer type: "+placer.String())
	})
}
