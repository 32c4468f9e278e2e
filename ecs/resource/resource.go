// Package resource holds the editor's process-wide values. Each one lives as
// a component on a single entity created by Install.
package resource

import (
	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
)

// MouseOverWindow reports whether the pointer was over any UI area this
// frame. World picking ignores the cursor while it is set.
type MouseOverWindow struct {
	Over bool
}

var (
	BuildToolModeComponent   = component.NewComponent[BuildToolMode]()
	MouseOverWindowComponent = component.NewComponent[MouseOverWindow]()
	ViewComponent            = component.NewComponent[View]()
)

// Install creates the resource entity with default values. Calling it twice
// is a no-op.
func Install(w *ecs.World, view View) (ecs.Entity, error) {
	if e, ok := ecs.First(w, BuildToolModeComponent.Kind()); ok {
		return e, nil
	}
	e := ecs.CreateEntity(w)
	mode := GizmoMode
	if err := ecs.Add(w, e, BuildToolModeComponent.Kind(), &mode); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, MouseOverWindowComponent.Kind(), &MouseOverWindow{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, ViewComponent.Kind(), &view); err != nil {
		return 0, err
	}
	return e, nil
}

func Mode(w *ecs.World) BuildToolMode {
	e, ok := ecs.First(w, BuildToolModeComponent.Kind())
	if !ok {
		return GizmoMode
	}
	m, _ := ecs.Get(w, e, BuildToolModeComponent.Kind())
	return *m
}

func SetMode(w *ecs.World, mode BuildToolMode) {
	e, ok := ecs.First(w, BuildToolModeComponent.Kind())
	if !ok {
		return
	}
	m, _ := ecs.Get(w, e, BuildToolModeComponent.Kind())
	*m = mode
}

func MouseOver(w *ecs.World) bool {
	e, ok := ecs.First(w, MouseOverWindowComponent.Kind())
	if !ok {
		return false
	}
	m, _ := ecs.Get(w, e, MouseOverWindowComponent.Kind())
	return m.Over
}

func SetMouseOver(w *ecs.World, over bool) {
	e, ok := ecs.First(w, MouseOverWindowComponent.Kind())
	if !ok {
		return
	}
	m, _ := ecs.Get(w, e, MouseOverWindowComponent.Kind())
	m.Over = over
}

// ViewOf returns a pointer to the world's view so callers can resize or pan
// it in place.
func ViewOf(w *ecs.World) *View {
	e, ok := ecs.First(w, ViewComponent.Kind())
	if !ok {
		return nil
	}
	v, _ := ecs.Get(w, e, ViewComponent.Kind())
	return v
}
