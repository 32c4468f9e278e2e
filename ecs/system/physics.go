package system

import (
	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

const physicsStep = 1.0 / 60

// PhysicsSystem mirrors colliders into a Chipmunk space on the ground plane
// and flags placers that overlap another part. Bodies are kinematic; nothing
// is pushed around.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body      *cp.Body
	shape     *cp.Shape
	footprint []mgl64.Vec2
	scale     mgl64.Vec3
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    cp.NewSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Bodies reports how many entities are mirrored in the space.
func (ps *PhysicsSystem) Bodies() int {
	return len(ps.entities)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.syncEntities(w)
	ps.space.Step(physicsStep)
	ps.flagOverlaps(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	seen := make(map[ecs.Entity]struct{}, len(ps.entities))
	ecs.ForEach3(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), component.MeshComponent.Kind(), func(e ecs.Entity, _ *component.Collider, t *component.Transform, mesh *component.Mesh) {
		seen[e] = struct{}{}

		info := ps.entities[e]
		if info != nil && (!sameFootprint(info.footprint, mesh.Footprint) || info.scale != t.Scale) {
			ps.removeBody(e)
			info = nil
		}
		if info == nil {
			info = ps.createBodyInfo(mesh.Footprint, t.Scale)
			if info == nil {
				return
			}
			info.shape.UserData = e
			ps.entities[e] = info
		}

		info.body.SetPosition(cp.Vector{X: t.Position.X(), Y: t.Position.Z()})
		info.body.SetAngle(t.Yaw)
		info.shape.SetSensor(ecs.Has(w, e, component.SensorComponent.Kind()))
	})

	for e := range ps.entities {
		if _, ok := seen[e]; !ok {
			ps.removeBody(e)
		}
	}
}

func (ps *PhysicsSystem) createBodyInfo(footprint []mgl64.Vec2, scale mgl64.Vec3) *bodyInfo {
	if len(footprint) < 3 {
		return nil
	}
	sx, sz := scale.X(), scale.Z()
	if sx == 0 {
		sx = 1
	}
	if sz == 0 {
		sz = 1
	}
	verts := make([]cp.Vector, 0, len(footprint))
	for _, v := range footprint {
		verts = append(verts, cp.Vector{X: v.X() * sx, Y: v.Y() * sz})
	}

	body := ps.space.AddBody(cp.NewKinematicBody())
	shape := ps.space.AddShape(cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0))
	return &bodyInfo{
		body:      body,
		shape:     shape,
		footprint: append([]mgl64.Vec2(nil), footprint...),
		scale:     scale,
	}
}

func (ps *PhysicsSystem) removeBody(e ecs.Entity) {
	info := ps.entities[e]
	if info == nil {
		return
	}
	if ps.space.ContainsShape(info.shape) {
		ps.space.RemoveShape(info.shape)
	}
	if ps.space.ContainsBody(info.body) {
		ps.space.RemoveBody(info.body)
	}
	delete(ps.entities, e)
}

func (ps *PhysicsSystem) flagOverlaps(w *ecs.World) {
	cmds := w.Commands()
	ecs.ForEach(w, component.PlacerComponent.Kind(), func(e ecs.Entity, _ *component.Placer) {
		info := ps.entities[e]
		overlapping := false
		if info != nil {
			ps.space.ShapeQuery(info.shape, func(other *cp.Shape, _ *cp.ContactPointSet) {
				if other != info.shape {
					overlapping = true
				}
			})
		}

		marked := ecs.Has(w, e, component.AttachCandidateComponent.Kind())
		switch {
		case overlapping && !marked:
			cmds.Insert(e, ecs.With(component.AttachCandidateComponent.Kind(), component.AttachCandidate{}))
		case !overlapping && marked:
			cmds.Remove(e, ecs.Without(component.AttachCandidateComponent.Kind()))
		}
	})
}

func sameFootprint(a, b []mgl64.Vec2) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
