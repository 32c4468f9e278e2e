package main

import (
	"github.com/CindyYangCS/CircuitCider/ecs/system"
	"github.com/CindyYangCS/CircuitCider/parts"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	paletteTitle     = "prefab meshes"
	paletteNotLoaded = "could not load folder..."
	paletteWidth     = 200
)

// paletteSection is the left side panel listing every mesh of the loaded
// part folder. Its buttons record hover and click intents into the frame.
type paletteSection struct {
	Container *widget.Container

	theme       *widget.Theme
	fontFace    *text.Face
	headingFace *text.Face
	frame       *system.Frame

	reg     *parts.Registry
	built   bool
	buttons map[string]*widget.Button
	order   []string
}

func buildPaletteSection(theme *widget.Theme, fontFace, headingFace *text.Face, frame *system.Frame) *paletteSection {
	p := &paletteSection{
		Container: newPanel(theme,
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(paletteWidth, 0)),
		),
		theme:       theme,
		fontFace:    fontFace,
		headingFace: headingFace,
		frame:       frame,
	}
	p.SetRegistry(frame.Parts)
	return p
}

// SetRegistry rebuilds the entries when the part folder was (re)loaded.
func (p *paletteSection) SetRegistry(reg *parts.Registry) {
	if p.built && reg == p.reg {
		return
	}
	p.reg, p.built = reg, true
	p.buttons = make(map[string]*widget.Button)
	p.order = p.order[:0]
	p.frame.Intents.Hovered = ""

	p.Container.RemoveChildren()
	p.Container.AddChild(newLabel(paletteTitle, p.headingFace, headingColor))
	if !reg.Loaded() {
		p.Container.AddChild(newLabel(paletteNotLoaded, p.fontFace, labelColor))
		return
	}
	for _, asset := range reg.Meshes() {
		meshPath := asset.Path
		btn := newButton(p.theme, asset.DisplayName(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				p.frame.Intents.Clicked = append(p.frame.Intents.Clicked, meshPath)
			}),
			widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
				p.frame.Intents.Hovered = meshPath
			}),
			widget.ButtonOpts.CursorExitedHandler(func(args *widget.ButtonHoverEventArgs) {
				if p.frame.Intents.Hovered == meshPath {
					p.frame.Intents.Hovered = ""
				}
			}),
		)
		p.buttons[meshPath] = btn
		p.order = append(p.order, meshPath)
		p.Container.AddChild(btn)
	}
}
