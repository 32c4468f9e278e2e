package main

import (
	"bytes"
	"fmt"

	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
	"github.com/CindyYangCS/CircuitCider/ecs/system"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// EditorUI owns the ebitenui tree. Widget handlers write intents into the
// shared frame; sync pushes world state back into the widgets.
type EditorUI struct {
	ui    *ebitenui.UI
	frame *system.Frame

	palette  *paletteSection
	modes    *modeWindow
	saveLoad *saveLoadWindow
	features *featuresWindow
}

func BuildEditorUI(frame *system.Frame) (*EditorUI, error) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	var headingFace text.Face = &text.GoTextFace{Source: s, Size: 16}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	palette := buildPaletteSection(ui.PrimaryTheme, &fontFace, &headingFace, frame)
	palette.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchVertical:    true,
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(palette.Container)
	ui.Container = root

	return &EditorUI{
		ui:       ui,
		frame:    frame,
		palette:  palette,
		modes:    buildModeWindow(ui.PrimaryTheme, &fontFace, &headingFace, frame),
		saveLoad: buildSaveLoadWindow(ui.PrimaryTheme, &fontFace, frame),
		features: buildFeaturesWindow(ui.PrimaryTheme, &fontFace),
	}, nil
}

// Update runs widget input. Handlers fire here and record their intents.
func (u *EditorUI) Update() {
	u.ui.Update()
}

// Sync reflects the world after the systems ran: the palette follows the
// loaded registry, labels follow mode and status, and the features window
// follows the frame.
func (u *EditorUI) Sync(w *ecs.World, screenW int) {
	u.palette.SetRegistry(u.frame.Parts)
	u.modes.open(u.ui)
	u.modes.sync(resource.Mode(w))
	u.saveLoad.sync(u.ui, u.frame.Status, screenW)
	u.features.sync(u.ui, u.frame.Features)
}

func (u *EditorUI) Draw(screen *ebiten.Image) {
	u.ui.Draw(screen)
}
