package main

import (
	"image"

	"github.com/CindyYangCS/CircuitCider/ecs/resource"
	"github.com/CindyYangCS/CircuitCider/ecs/system"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	modeWindowTitle = "BuildToolMode debug"
	modeWindowX     = paletteWidth + 20
	modeWindowY     = 16
)

// modeWindow lets the user pick the global build tool mode.
type modeWindow struct {
	Window  *widget.Window
	current *widget.Label
	buttons map[resource.BuildToolMode]*widget.Button
}

func buildModeWindow(theme *widget.Theme, fontFace, headingFace *text.Face, frame *system.Frame) *modeWindow {
	contents := newPanel(theme)
	contents.AddChild(newLabel("select mode", headingFace, headingColor))

	m := &modeWindow{
		current: newLabel(currentModeText(resource.GizmoMode), fontFace, labelColor),
		buttons: make(map[resource.BuildToolMode]*widget.Button),
	}
	contents.AddChild(m.current)
	for _, mode := range resource.AllBuildToolModes() {
		btn := newButton(theme, mode.String(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				frame.Intents.Mode, frame.Intents.ModePicked = mode, true
			}),
		)
		m.buttons[mode] = btn
		contents.AddChild(btn)
	}

	m.Window = newWindow(modeWindowTitle, fontFace, contents, true)
	return m
}

func (m *modeWindow) open(ui *ebitenui.UI) {
	if ui.IsWindowOpen(m.Window) {
		return
	}
	ui.AddWindow(m.Window)
	w, h := m.Window.Contents.PreferredSize()
	m.Window.SetLocation(image.Rect(0, 0, w, h+titleBarHeight).Add(image.Pt(modeWindowX, modeWindowY)))
}

func (m *modeWindow) sync(mode resource.BuildToolMode) {
	m.current.Label = currentModeText(mode)
}

func currentModeText(mode resource.BuildToolMode) string {
	return "Current mode: " + mode.String()
}
