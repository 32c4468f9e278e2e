package main

import (
	"image"
	"slices"

	"github.com/CindyYangCS/CircuitCider/ecs/system"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const featureWindowTitle = "Model features"

// featuresWindow lists the name and type of every placer next to the
// cursor. It is open only while the frame asks for it.
type featuresWindow struct {
	Window   *widget.Window
	contents *widget.Container
	fontFace *text.Face
	lines    []string
}

func buildFeaturesWindow(theme *widget.Theme, fontFace *text.Face) *featuresWindow {
	contents := newPanel(theme)
	return &featuresWindow{
		Window:   newWindow(featureWindowTitle, fontFace, contents, false),
		contents: contents,
		fontFace: fontFace,
	}
}

func (f *featuresWindow) sync(ui *ebitenui.UI, feat system.Features) {
	if !feat.Visible {
		if ui.IsWindowOpen(f.Window) {
			f.Window.Close()
		}
		return
	}

	if !slices.Equal(f.lines, feat.Lines) {
		f.lines = append(f.lines[:0], feat.Lines...)
		f.contents.RemoveChildren()
		for _, line := range f.lines {
			f.contents.AddChild(newLabel(line, f.fontFace, labelColor))
		}
	}
	if !ui.IsWindowOpen(f.Window) {
		ui.AddWindow(f.Window)
	}

	w, h := f.contents.PreferredSize()
	w = max(w, windowMinWidth)
	at := image.Pt(int(feat.X), int(feat.Y))
	f.Window.SetLocation(image.Rect(0, 0, w, h+titleBarHeight).Add(at))
}
