package main

import (
	"image"

	"github.com/CindyYangCS/CircuitCider/ecs/system"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const saveLoadWindowTitle = "Save Load Model"

// saveLoadWindow sits in the top right corner and raises the save and load
// intents. It also shows the outcome of the last attempt.
type saveLoadWindow struct {
	Window *widget.Window
	Save   *widget.Button
	Load   *widget.Button
	status *widget.Label
}

func buildSaveLoadWindow(theme *widget.Theme, fontFace *text.Face, frame *system.Frame) *saveLoadWindow {
	contents := newPanel(theme)
	contents.AddChild(newLabel("save conditions", fontFace, labelColor))

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	s := &saveLoadWindow{
		Save: newButton(theme, "save", widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			frame.Intents.Save = true
		})),
		Load: newButton(theme, "load", widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			frame.Intents.Load = true
		})),
		status: newLabel("", fontFace, labelColor),
	}
	row.AddChild(s.Save, s.Load)
	contents.AddChild(row, s.status)

	s.Window = newWindow(saveLoadWindowTitle, fontFace, contents, false)
	return s
}

// sync shows status and keeps the window anchored to the right edge as the
// screen or the status text changes size.
func (s *saveLoadWindow) sync(ui *ebitenui.UI, status string, screenW int) {
	if !ui.IsWindowOpen(s.Window) {
		ui.AddWindow(s.Window)
	}
	s.status.Label = status
	w, h := s.Window.Contents.PreferredSize()
	w = max(w, windowMinWidth)
	s.Window.SetLocation(image.Rect(screenW-w, 0, screenW, h+titleBarHeight))
}
