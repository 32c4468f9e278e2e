// Package entity assembles the component bundles the editor spawns.
package entity

import (
	"image/color"

	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
	"github.com/CindyYangCS/CircuitCider/parts"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"golang.org/x/image/colornames"
)

// PlacerColor is the glow of a placer whose part has no colour of its own.
var PlacerColor color.Color = colornames.Red

// PlacerSpec describes one placer before it is spawned.
type PlacerSpec struct {
	MeshPath  string
	Footprint []mgl64.Vec2
	Name      string
	Placer    component.Placer
	Color     color.Color
	Transform component.Transform
	ID        uuid.UUID
	Edited    bool
}

// PlacerSpecFromAsset builds the spec for a palette click: the category is
// classified from the asset path and the new placer sticks to the cursor.
func PlacerSpecFromAsset(a parts.Asset) PlacerSpec {
	spec := PlacerSpec{
		MeshPath:  a.Path,
		Footprint: a.Footprint,
		Name:      a.DisplayName(),
		Placer:    component.PlacerFromPath(a.Path),
		Transform: component.NewTransform(mgl64.Vec3{}, 0),
		Edited:    true,
	}
	if a.Label != "" {
		spec.Name = a.Label
	}
	if a.HasColor {
		spec.Color = a.Color
	}
	return spec
}

// PlacerBundle returns the components of a placer: mesh, glow material,
// category, convex sensor collider, name, transform and a part id.
func PlacerBundle(spec PlacerSpec) []ecs.Inserter {
	c := spec.Color
	if c == nil {
		c = PlacerColor
	}
	footprint := spec.Footprint
	if len(footprint) == 0 {
		footprint = parts.UnitFootprint()
	}
	id := spec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	transform := spec.Transform
	if transform.Scale == (mgl64.Vec3{}) {
		transform.Scale = mgl64.Vec3{1, 1, 1}
	}

	bundle := []ecs.Inserter{
		ecs.With(component.MeshComponent.Kind(), component.Mesh{Path: spec.MeshPath, Footprint: footprint}),
		ecs.With(component.MaterialComponent.Kind(), component.NeonGlow(c)),
		ecs.With(component.PlacerComponent.Kind(), spec.Placer),
		ecs.With(component.ColliderComponent.Kind(), component.Collider{Shape: component.ColliderConvex}),
		ecs.With(component.SensorComponent.Kind(), component.Sensor{}),
		ecs.With(component.NameComponent.Kind(), component.Name{Value: spec.Name}),
		ecs.With(component.TransformComponent.Kind(), transform),
		ecs.With(component.PartIDComponent.Kind(), component.PartID{ID: id}),
	}
	if spec.Edited {
		bundle = append(bundle, ecs.With(component.EditedComponent.Kind(), component.Edited{}))
	}
	return bundle
}

// DisplayModelBundle returns the components of the hover preview for a.
func DisplayModelBundle(a parts.Asset) []ecs.Inserter {
	var c color.Color = PlacerColor
	if a.HasColor {
		c = a.Color
	}
	footprint := a.Footprint
	if len(footprint) == 0 {
		footprint = parts.UnitFootprint()
	}
	return []ecs.Inserter{
		ecs.With(component.DisplayModelComponent.Kind(), component.NewDisplayModel(a.Path)),
		ecs.With(component.MeshComponent.Kind(), component.Mesh{Path: a.Path, Footprint: footprint}),
		ecs.With(component.MaterialComponent.Kind(), component.NeonGlow(c)),
		ecs.With(component.TransformComponent.Kind(), component.NewTransform(mgl64.Vec3{}, 0)),
	}
}
