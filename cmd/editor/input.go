package main

import (
	"github.com/CindyYangCS/CircuitCider/ecs/system"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// capturePointer reads the mouse and keyboard for this frame. OverUI comes
// from the UI's hover tracking, which is refreshed when the UI draws.
func capturePointer(screenW, screenH int) system.Pointer {
	x, y := ebiten.CursorPosition()
	return system.Pointer{
		X:           float64(x),
		Y:           float64(y),
		Known:       ebiten.IsFocused() && x >= 0 && y >= 0 && x < screenW && y < screenH,
		LeftPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		CtrlLeft:    ebiten.IsKeyPressed(ebiten.KeyControlLeft),
		OverUI:      ebuiinput.UIHovered,
	}
}
