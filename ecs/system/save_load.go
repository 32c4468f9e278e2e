package system

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
	"github.com/CindyYangCS/CircuitCider/ecs/entity"
	"github.com/CindyYangCS/CircuitCider/parts"
	"github.com/CindyYangCS/CircuitCider/robots"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// SaveLoadSystem moves placers between the world and the robot file when
// the save or load button was pressed.
type SaveLoadSystem struct {
	frame *Frame
}

func NewSaveLoadSystem(frame *Frame) *SaveLoadSystem {
	return &SaveLoadSystem{frame: frame}
}

// Status is the outcome of the last save or load.
func (s *SaveLoadSystem) Status() string {
	if s.frame == nil {
		return ""
	}
	return s.frame.Status
}

func (s *SaveLoadSystem) Update(w *ecs.World) {
	if w == nil || !s.frame.ready() {
		return
	}
	switch {
	case s.frame.Intents.Save:
		s.save(w)
	case s.frame.Intents.Load:
		s.load(w)
	}
}

func (s *SaveLoadSystem) save(w *ecs.World) {
	path := s.frame.RobotPath
	robot := SnapshotRobot(w, robotName(path))
	if err := robots.Save(path, robot); err != nil {
		log.Printf("saveload: %v", err)
		s.frame.Status = "save failed: " + err.Error()
		return
	}
	s.frame.Status = fmt.Sprintf("saved %d parts to %s", len(robot.Parts), path)
}

func (s *SaveLoadSystem) load(w *ecs.World) {
	path := s.frame.RobotPath
	robot, err := robots.Load(path)
	if err != nil {
		log.Printf("saveload: %v", err)
		s.frame.Status = "load failed: " + err.Error()
		return
	}
	RestoreRobot(w, robot, s.frame.Parts)
	s.frame.Status = fmt.Sprintf("loaded %d parts from %s", len(robot.Parts), path)
}

func robotName(path string) string {
	base := filepath.Base(path)
	for ext := filepath.Ext(base); ext != ""; ext = filepath.Ext(base) {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// SnapshotRobot collects every placer in the world, ordered by part id.
func SnapshotRobot(w *ecs.World, name string) robots.Robot {
	robot := robots.Robot{Version: robots.Version, Name: name}
	ecs.ForEach2(w, component.PlacerComponent.Kind(), component.MeshComponent.Kind(), func(e ecs.Entity, placer *component.Placer, mesh *component.Mesh) {
		part := robots.Part{
			Mesh:     mesh.Path,
			Category: placer.String(),
		}
		if id, ok := ecs.Get(w, e, component.PartIDComponent.Kind()); ok {
			part.ID = id.ID.String()
		} else {
			part.ID = uuid.NewString()
		}
		if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
			part.Name = n.Value
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			part.Position = [3]float64{t.Position.X(), t.Position.Y(), t.Position.Z()}
			part.Yaw = t.Yaw
		}
		robot.Parts = append(robot.Parts, part)
	})
	sort.Slice(robot.Parts, func(i, j int) bool { return robot.Parts[i].ID < robot.Parts[j].ID })
	return robot
}

// RestoreRobot queues the despawn of every current placer and the spawn of
// one placer per saved part. Footprints and colours come from the registry
// when the mesh is still known.
func RestoreRobot(w *ecs.World, robot robots.Robot, reg *parts.Registry) {
	cmds := w.Commands()
	ecs.ForEach(w, component.PlacerComponent.Kind(), func(e ecs.Entity, _ *component.Placer) {
		cmds.Despawn(e)
	})

	for _, part := range robot.Parts {
		placer, ok := component.ParsePlacer(part.Category)
		if !ok {
			placer = component.PlacerFromPath(part.Mesh)
		}
		id, err := uuid.Parse(part.ID)
		if err != nil {
			id = uuid.New()
		}
		spec := entity.PlacerSpec{
			MeshPath:  part.Mesh,
			Name:      part.Name,
			Placer:    placer,
			Transform: component.NewTransform(mgl64.Vec3{part.Position[0], part.Position[1], part.Position[2]}, part.Yaw),
			ID:        id,
		}
		if asset, ok := reg.Lookup(part.Mesh); ok {
			spec.Footprint = asset.Footprint
			if asset.HasColor {
				spec.Color = asset.Color
			}
		}
		if spec.Name == "" {
			spec.Name = parts.DisplayName(part.Mesh)
		}
		cmds.Spawn(entity.PlacerBundle(spec)...)
	}
}
