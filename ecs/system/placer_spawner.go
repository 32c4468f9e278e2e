package system

import (
	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
	"github.com/CindyYangCS/CircuitCider/ecs/entity"
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
	"github.com/CindyYangCS/CircuitCider/parts"
)

// PlacerSpawnerSystem turns palette intents into entities. Clicking an
// entry spawns a placer for it; hovering one keeps a single display model
// of it alive.
type PlacerSpawnerSystem struct {
	frame *Frame
}

func NewPlacerSpawnerSystem(frame *Frame) *PlacerSpawnerSystem {
	return &PlacerSpawnerSystem{frame: frame}
}

func (s *PlacerSpawnerSystem) Update(w *ecs.World) {
	if w == nil || !s.frame.ready() {
		return
	}
	reg := s.frame.Parts
	if !reg.Loaded() {
		return
	}

	var clicked []parts.Asset
	for _, p := range s.frame.Intents.Clicked {
		if asset, ok := reg.Lookup(p); ok {
			clicked = append(clicked, asset)
		}
	}
	var hovered *parts.Asset
	if asset, ok := reg.Lookup(s.frame.Intents.Hovered); ok {
		hovered = &asset
	}

	s.spawnPlacers(w, clicked)
	s.syncDisplayModel(w, hovered)
}

func (s *PlacerSpawnerSystem) spawnPlacers(w *ecs.World, clicked []parts.Asset) {
	if len(clicked) == 0 {
		return
	}
	cmds := w.Commands()

	// Only the newest placer follows the cursor.
	ecs.ForEach(w, component.EditedComponent.Kind(), func(e ecs.Entity, _ *component.Edited) {
		cmds.Remove(e, ecs.Without(component.EditedComponent.Kind()))
	})

	for _, asset := range clicked {
		cmds.Spawn(entity.PlacerBundle(entity.PlacerSpecFromAsset(asset))...)
	}
	resource.SetMode(w, resource.PlacerMode)
}

// syncDisplayModel keeps at most one display model, and only for the hovered
// entry.
func (s *PlacerSpawnerSystem) syncDisplayModel(w *ecs.World, hovered *parts.Asset) {
	cmds := w.Commands()
	kept := false
	ecs.ForEach(w, component.DisplayModelComponent.Kind(), func(e ecs.Entity, dm *component.DisplayModel) {
		if hovered != nil && !kept && dm.MeshPath == hovered.Path {
			kept = true
			return
		}
		cmds.Despawn(e)
	})
	if hovered != nil && !kept {
		cmds.Spawn(entity.DisplayModelBundle(*hovered)...)
	}
}
