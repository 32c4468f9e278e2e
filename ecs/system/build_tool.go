package system

import (
	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
)

// BuildToolSystem applies the mode picked in the mode selector window.
type BuildToolSystem struct {
	frame *Frame
}

func NewBuildToolSystem(frame *Frame) *BuildToolSystem {
	return &BuildToolSystem{frame: frame}
}

func (s *BuildToolSystem) Update(w *ecs.World) {
	if w == nil || !s.frame.ready() {
		return
	}
	in := s.frame.Intents
	if in.ModePicked && in.Mode != resource.Mode(w) {
		resource.SetMode(w, in.Mode)
	}
}
