package component

import "github.com/go-gl/mathgl/mgl64"

// Mesh references a loaded mesh asset. Footprint is the outline of the mesh
// bounds projected onto the ground (XZ) plane, in model units.
type Mesh struct {
	Path      string
	Footprint []mgl64.Vec2
}

var MeshComponent = NewComponent[Mesh]()
