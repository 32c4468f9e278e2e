package resource

import "github.com/go-gl/mathgl/mgl64"

const DefaultViewScale = 48.0

// View is a top-down orthographic camera over the XZ ground plane. The
// screen centre shows Center; Scale is pixels per world unit.
type View struct {
	Scale   float64
	Center  mgl64.Vec2
	ScreenW int
	ScreenH int
}

func (v View) scale() float64 {
	if v.Scale <= 0 {
		return DefaultViewScale
	}
	return v.Scale
}

// ScreenToGround projects a screen pixel onto the ground plane (y = 0).
func (v View) ScreenToGround(x, y float64) mgl64.Vec3 {
	s := v.scale()
	wx := (x-float64(v.ScreenW)/2)/s + v.Center.X()
	wz := (y-float64(v.ScreenH)/2)/s + v.Center.Y()
	return mgl64.Vec3{wx, 0, wz}
}

// GroundToScreen is the inverse of ScreenToGround; the height is ignored.
func (v View) GroundToScreen(p mgl64.Vec3) (float64, float64) {
	s := v.scale()
	x := (p.X()-v.Center.X())*s + float64(v.ScreenW)/2
	y := (p.Z()-v.Center.Y())*s + float64(v.ScreenH)/2
	return x, y
}

// PixelsPerUnit reports the effective scale.
func (v View) PixelsPerUnit() float64 {
	return v.scale()
}
