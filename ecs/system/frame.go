package system

import (
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
	"github.com/CindyYangCS/CircuitCider/parts"
)

// Pointer is the mouse and keyboard state systems need for one frame.
type Pointer struct {
	X, Y float64
	// Known is false while the pointer is outside the window.
	Known       bool
	LeftPressed bool
	CtrlLeft    bool
	// OverUI is set when a UI widget is under the pointer.
	OverUI bool
}

// Cursor returns the pointer position and whether it is known.
func (p Pointer) Cursor() (float64, float64, bool) {
	return p.X, p.Y, p.Known
}

// Intents are what the user asked for through the UI this frame. Widget
// handlers fill them in; systems consume them.
type Intents struct {
	// Hovered is the mesh path of the palette entry under the pointer.
	Hovered string
	// Clicked lists palette mesh paths in click order.
	Clicked []string

	Mode       resource.BuildToolMode
	ModePicked bool

	Save bool
	Load bool
}

// Features is what the model features window shows. The placer editor
// system fills it in every frame.
type Features struct {
	Visible bool
	// Follow is false while left Control pins the window in place.
	Follow bool
	X, Y   float64
	Lines  []string
}

// Frame is the per-tick context the editor shares with its systems. The
// editor updates it before running the scheduler.
type Frame struct {
	Pointer   Pointer
	Intents   Intents
	Features  Features
	Parts     *parts.Registry
	RobotPath string
	// Status is the outcome of the last save or load.
	Status string
	// Dt is the frame time in seconds.
	Dt float64
}

// ResetIntents clears the one-shot intents once the systems have run. The
// hovered entry persists until the pointer leaves it.
func (f *Frame) ResetIntents() {
	hovered := f.Intents.Hovered
	f.Intents = Intents{Hovered: hovered}
}

func (f *Frame) ready() bool {
	return f != nil
}
