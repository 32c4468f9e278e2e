package system

import (
	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
)

const defaultFrameTime = 1.0 / 60

// DisplayModelSystem advances the pulse of hover previews.
type DisplayModelSystem struct {
	frame *Frame
}

func NewDisplayModelSystem(frame *Frame) *DisplayModelSystem {
	return &DisplayModelSystem{frame: frame}
}

func (s *DisplayModelSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := defaultFrameTime
	if s.frame != nil && s.frame.Dt > 0 {
		dt = s.frame.Dt
	}
	ecs.ForEach(w, component.DisplayModelComponent.Kind(), func(_ ecs.Entity, dm *component.DisplayModel) {
		if dm.Pulse == nil {
			return
		}
		alpha, _, _ := dm.Pulse.Update(float32(dt))
		dm.Alpha = float64(alpha)
	})
}
