package component

type ColliderShape uint8

const (
	// ColliderConvex wraps the mesh footprint in its convex hull.
	ColliderConvex ColliderShape = iota
)

type Collider struct {
	Shape ColliderShape
}

var ColliderComponent = NewComponent[Collider]()

// Sensor makes a collider report overlaps without pushing anything.
type Sensor struct{}

var SensorComponent = NewComponent[Sensor]()
