package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	titleBarHeight  = 22
	windowMinWidth  = 160
	windowMinHeight = 60
)

var (
	panelColor   = color.RGBA{40, 40, 40, 230}
	titleColor   = color.RGBA{60, 60, 70, 255}
	labelColor   = &widget.LabelColor{Idle: color.RGBA{230, 230, 230, 255}, Disabled: color.Gray{Y: 140}}
	headingColor = &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		DefaultFace: fontFace,
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:   solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed: solidNineSlice(color.RGBA{160, 160, 160, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     color.Black,
				Hover:    color.Black,
				Pressed:  color.RGBA{0, 0, 200, 255},
				Disabled: color.Gray{Y: 128},
			},
			TextPadding: &widget.Insets{Left: 8, Right: 8, Top: 2, Bottom: 2},
		},
	}
}

// newButton builds a theme-styled button with an explicit image and face so
// it validates outside a themed container too.
func newButton(theme *widget.Theme, label string, opts ...widget.ButtonOpt) *widget.Button {
	params := theme.ButtonTheme
	return widget.NewButton(append([]widget.ButtonOpt{
		widget.ButtonOpts.Image(params.Image),
		widget.ButtonOpts.Text(label, params.TextFace, params.TextColor),
		widget.ButtonOpts.TextPadding(params.TextPadding),
	}, opts...)...)
}

func newLabel(label string, face *text.Face, c *widget.LabelColor) *widget.Label {
	return widget.NewLabel(widget.LabelOpts.Text(label, face, c))
}

// newPanel is a padded vertical stack on the panel background.
func newPanel(theme *widget.Theme, opts ...widget.ContainerOpt) *widget.Container {
	return widget.NewContainer(append([]widget.ContainerOpt{
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Left: 8, Right: 8, Top: 8, Bottom: 8}),
		)),
	}, opts...)...)
}

// newWindow wraps contents in a window with a title bar.
func newWindow(title string, face *text.Face, contents *widget.Container, draggable bool) *widget.Window {
	titleBar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(titleColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: 6, Right: 6}))),
	)
	titleBar.AddChild(widget.NewText(
		widget.TextOpts.Text(title, face, color.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	))
	opts := []widget.WindowOpt{
		widget.WindowOpts.Contents(contents),
		widget.WindowOpts.TitleBar(titleBar, titleBarHeight),
		widget.WindowOpts.MinSize(windowMinWidth, windowMinHeight),
	}
	if draggable {
		opts = append(opts, widget.WindowOpts.Draggable())
	}
	return widget.NewWindow(opts...)
}
