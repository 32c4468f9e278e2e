package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places an entity in the 3D scene. Y is up; the editor views the
// XZ ground plane from above.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
	Scale    mgl64.Vec3
}

func NewTransform(position mgl64.Vec3, yaw float64) Transform {
	return Transform{Position: position, Yaw: yaw, Scale: mgl64.Vec3{1, 1, 1}}
}

var TransformComponent = NewComponent[Transform]()
