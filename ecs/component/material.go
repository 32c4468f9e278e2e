package component

import "image/color"

type MaterialKind uint8

const (
	MaterialNeonGlow MaterialKind = iota
)

// Material is a placeholder surface description; placers glow until they are
// given a real material.
type Material struct {
	Kind  MaterialKind
	Color color.RGBA
}

func NeonGlow(c color.Color) Material {
	r, g, b, a := c.RGBA()
	return Material{
		Kind:  MaterialNeonGlow,
		Color: color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)},
	}
}

var MaterialComponent = NewComponent[Material]()
