package system

import (
	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
)

// MouseOverUISystem records whether the pointer is over any UI widget so
// world picking can ignore it.
type MouseOverUISystem struct {
	frame *Frame
}

func NewMouseOverUISystem(frame *Frame) *MouseOverUISystem {
	return &MouseOverUISystem{frame: frame}
}

func (s *MouseOverUISystem) Update(w *ecs.World) {
	if w == nil || !s.frame.ready() {
		return
	}
	p := s.frame.Pointer
	resource.SetMouseOver(w, p.Known && p.OverUI)
}
