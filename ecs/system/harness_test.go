package system

import (
	"testing"
	"testing/fstest"

	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
	"github.com/CindyYangCS/CircuitCider/parts"
)

const (
	screenW = 800
	screenH = 600
)

type harness struct {
	t     *testing.T
	w     *ecs.World
	frame *Frame
	sched *ecs.Scheduler
}

func testRegistry(t *testing.T) *parts.Registry {
	t.Helper()
	reg, err := parts.LoadFolder(fstest.MapFS{
		"parts/wheel.glb":        {Data: []byte("{}")},
		"parts/hull_section.glb": {Data: []byte("{}")},
		"parts/misc_bracket.glb": {Data: []byte("{}")},
	}, "parts")
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	return reg
}

func newHarness(t *testing.T, reg *parts.Registry, systems func(f *Frame) []ecs.System) *harness {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := resource.Install(w, resource.View{Scale: 50, ScreenW: screenW, ScreenH: screenH}); err != nil {
		t.Fatalf("install resources: %v", err)
	}
	frame := &Frame{Parts: reg, Dt: 1.0 / 60}
	return &harness{
		t:     t,
		w:     w,
		frame: frame,
		sched: ecs.NewScheduler(systems(frame)...),
	}
}

func idle() Pointer {
	return Pointer{X: screenW - 1, Y: screenH - 1, Known: true}
}

func at(x, y float64) Pointer {
	p := idle()
	p.X, p.Y = x, y
	return p
}

// step runs one frame with the pointer at p and the intents queued so far.
func (h *harness) step(p Pointer) []ecs.Entity {
	h.frame.Pointer = p
	spawned := h.sched.Update(h.w)
	h.frame.ResetIntents()
	return spawned
}

func (h *harness) hover(mesh string) {
	h.frame.Intents.Hovered = mesh
}

func (h *harness) click(mesh string) {
	h.frame.Intents.Clicked = append(h.frame.Intents.Clicked, mesh)
}
