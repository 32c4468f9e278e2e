package main

import (
	"slices"
	"testing"
	"testing/fstest"

	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
	"github.com/CindyYangCS/CircuitCider/ecs/system"
	"github.com/CindyYangCS/CircuitCider/parts"
	"github.com/ebitenui/ebitenui/event"
	"github.com/ebitenui/ebitenui/widget"
)

const testScreenW = 800

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

func newTestUI(t *testing.T, reg *parts.Registry) (*EditorUI, *system.Frame) {
	t.Helper()
	frame := &system.Frame{Parts: reg}
	u, err := BuildEditorUI(frame)
	if err != nil {
		t.Fatalf("build ui: %v", err)
	}
	event.ExecuteDeferred()
	return u, frame
}

func click(b *widget.Button) {
	b.Click()
	event.ExecuteDeferred()
}

func enter(b *widget.Button) {
	b.CursorEnteredEvent.Fire(&widget.ButtonHoverEventArgs{Button: b, Entered: true})
	event.ExecuteDeferred()
}

func exit(b *widget.Button) {
	b.CursorExitedEvent.Fire(&widget.ButtonHoverEventArgs{Button: b})
	event.ExecuteDeferred()
}

func labelsOf(c *widget.Container) []string {
	var out []string
	for _, child := range c.Children() {
		if l, ok := child.(*widget.Label); ok {
			out = append(out, l.Label)
		}
	}
	return out
}

func TestPaletteListsMeshes(t *testing.T) {
	u, _ := newTestUI(t, testRegistry(t))

	want := []string{"parts/hull_section.glb", "parts/misc_bracket.glb", "parts/wheel.glb"}
	if !slices.Equal(u.palette.order, want) {
		t.Fatalf("expected entries %v, got %v", want, u.palette.order)
	}
	if got := labelsOf(u.palette.Container); !slices.Equal(got, []string{paletteTitle}) {
		t.Fatalf("expected only the heading label, got %v", got)
	}
}

func TestPaletteFolderNotLoaded(t *testing.T) {
	for _, reg := range []*parts.Registry{nil, {}} {
		u, _ := newTestUI(t, reg)
		if len(u.palette.buttons) != 0 {
			t.Fatalf("unloaded folder must not list entries")
		}
		if got := labelsOf(u.palette.Container); !slices.Equal(got, []string{paletteTitle, paletteNotLoaded}) {
			t.Fatalf("expected fallback label, got %v", got)
		}
	}
}

func TestPaletteRecordsIntents(t *testing.T) {
	u, frame := newTestUI(t, testRegistry(t))
	wheel := u.palette.buttons["parts/wheel.glb"]
	bracket := u.palette.buttons["parts/misc_bracket.glb"]

	enter(wheel)
	if frame.Intents.Hovered != "parts/wheel.glb" {
		t.Fatalf("hovering should record the entry, got %q", frame.Intents.Hovered)
	}
	enter(bracket)
	exit(wheel)
	if frame.Intents.Hovered != "parts/misc_bracket.glb" {
		t.Fatalf("leaving an old entry must not clear the new one, got %q", frame.Intents.Hovered)
	}
	exit(bracket)
	if frame.Intents.Hovered != "" {
		t.Fatalf("leaving the entry should clear the hover, got %q", frame.Intents.Hovered)
	}

	click(wheel)
	click(wheel)
	click(bracket)
	want := []string{"parts/wheel.glb", "parts/wheel.glb", "parts/misc_bracket.glb"}
	if !slices.Equal(frame.Intents.Clicked, want) {
		t.Fatalf("expected clicks %v, got %v", want, frame.Intents.Clicked)
	}
}

func TestPaletteRebuildsOnReload(t *testing.T) {
	u, frame := newTestUI(t, testRegistry(t))
	enter(u.palette.buttons["parts/wheel.glb"])

	reloaded, err := parts.LoadFolder(fstest.MapFS{
		"parts/arm.glb": {Data: []byte("{}")},
	}, "parts")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	frame.Parts = reloaded
	u.palette.SetRegistry(frame.Parts)

	if !slices.Equal(u.palette.order, []string{"parts/arm.glb"}) {
		t.Fatalf("expected the reloaded entries, got %v", u.palette.order)
	}
	if frame.Intents.Hovered != "" {
		t.Fatalf("a vanished entry must not stay hovered, got %q", frame.Intents.Hovered)
	}
}

func TestModeWindow(t *testing.T) {
	u, frame := newTestUI(t, nil)
	w := ecs.NewWorld()
	if _, err := resource.Install(w, resource.View{}); err != nil {
		t.Fatalf("install: %v", err)
	}

	u.Sync(w, testScreenW)
	if !u.ui.IsWindowOpen(u.modes.Window) {
		t.Fatalf("mode window should open on the first sync")
	}
	if u.modes.current.Label != "Current mode: GizmoMode" {
		t.Fatalf("unexpected label %q", u.modes.current.Label)
	}
	for _, m := range resource.AllBuildToolModes() {
		if u.modes.buttons[m] == nil {
			t.Fatalf("missing button for %v", m)
		}
	}

	click(u.modes.buttons[resource.AttachMode])
	if !frame.Intents.ModePicked || frame.Intents.Mode != resource.AttachMode {
		t.Fatalf("expected an AttachMode pick, got %+v", frame.Intents)
	}

	system.NewBuildToolSystem(frame).Update(w)
	u.Sync(w, testScreenW)
	if u.modes.current.Label != "Current mode: AttachMode" {
		t.Fatalf("label should follow the selected mode, got %q", u.modes.current.Label)
	}
}

func TestSaveLoadWindow(t *testing.T) {
	u, frame := newTestUI(t, nil)
	w := ecs.NewWorld()

	click(u.saveLoad.Save)
	if !frame.Intents.Save || frame.Intents.Load {
		t.Fatalf("expected a save intent, got %+v", frame.Intents)
	}
	frame.ResetIntents()
	click(u.saveLoad.Load)
	if !frame.Intents.Load || frame.Intents.Save {
		t.Fatalf("expected a load intent, got %+v", frame.Intents)
	}

	frame.Status = "saved 2 parts to robot.json"
	u.Sync(w, testScreenW)
	if !u.ui.IsWindowOpen(u.saveLoad.Window) {
		t.Fatalf("save window should be open")
	}
	if u.saveLoad.status.Label != frame.Status {
		t.Fatalf("status label %q, want %q", u.saveLoad.status.Label, frame.Status)
	}
	r := u.saveLoad.Window.GetContainer().GetWidget().Rect
	if r.Max.X != testScreenW || r.Min.Y != 0 {
		t.Fatalf("window should hug the top right corner, got %v", r)
	}

	u.Sync(w, 1024)
	r = u.saveLoad.Window.GetContainer().GetWidget().Rect
	if r.Max.X != 1024 {
		t.Fatalf("window should follow a resize, got %v", r)
	}
}

func TestFeaturesWindow(t *testing.T) {
	u, frame := newTestUI(t, nil)
	w := ecs.NewWorld()

	u.Sync(w, testScreenW)
	if u.ui.IsWindowOpen(u.features.Window) {
		t.Fatalf("features window should start closed")
	}

	frame.Features = system.Features{Visible: true, Follow: true, X: 310, Y: 290, Lines: []string{"name: wheel.glb", "Placer type: Wheel"}}
	u.Sync(w, testScreenW)
	if !u.ui.IsWindowOpen(u.features.Window) {
		t.Fatalf("features window should open")
	}
	if got := labelsOf(u.features.contents); !slices.Equal(got, frame.Features.Lines) {
		t.Fatalf("expected lines %v, got %v", frame.Features.Lines, got)
	}
	r := u.features.Window.GetContainer().GetWidget().Rect
	if r.Min.X != 310 || r.Min.Y != 290 {
		t.Fatalf("window should sit at the requested corner, got %v", r)
	}

	frame.Features.Visible = false
	u.Sync(w, testScreenW)
	if u.ui.IsWindowOpen(u.features.Window) {
		t.Fatalf("features window should close")
	}
}

func TestPaletteClickSpawnsPlacer(t *testing.T) {
	u, frame := newTestUI(t, testRegistry(t))
	w := ecs.NewWorld()
	if _, err := resource.Install(w, resource.View{Scale: 50, ScreenW: testScreenW, ScreenH: 600}); err != nil {
		t.Fatalf("install: %v", err)
	}
	sched := ecs.NewScheduler(
		system.NewMouseOverUISystem(frame),
		system.NewPlacerSpawnerSystem(frame),
		system.NewPlacerEditorSystem(frame),
	)

	wheel := u.palette.buttons["parts/wheel.glb"]
	enter(wheel)
	click(wheel)
	frame.Pointer = system.Pointer{X: 30, Y: 30, Known: true, OverUI: true}
	sched.Update(w)
	u.Sync(w, testScreenW)
	frame.ResetIntents()

	if got := ecs.Count(w, component.PlacerComponent.Kind()); got != 1 {
		t.Fatalf("expected one placer, got %d", got)
	}
	if got := ecs.Count(w, component.DisplayModelComponent.Kind()); got != 1 {
		t.Fatalf("expected a display model for the hovered entry, got %d", got)
	}
	if !resource.MouseOver(w) || resource.Mode(w) != resource.PlacerMode {
		t.Fatalf("expected pointer over UI in PlacerMode, got over=%v mode=%v", resource.MouseOver(w), resource.Mode(w))
	}
	if len(frame.Intents.Clicked) != 0 || frame.Intents.Hovered != "parts/wheel.glb" {
		t.Fatalf("clicks are one-shot but hover persists, got %+v", frame.Intents)
	}

	sched.Update(w)
	u.Sync(w, testScreenW)
	if got := ecs.Count(w, component.PlacerComponent.Kind()); got != 1 {
		t.Fatalf("a click must spawn once, got %d placers", got)
	}
	if !u.ui.IsWindowOpen(u.features.Window) {
		t.Fatalf("features window should open once a placer exists")
	}
}
