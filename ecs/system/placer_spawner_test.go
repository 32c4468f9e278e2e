package system

import (
	"testing"

	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
	"github.com/CindyYangCS/CircuitCider/ecs/entity"
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
	"github.com/CindyYangCS/CircuitCider/parts"
)

func spawnerOnly(f *Frame) []ecs.System {
	return []ecs.System{NewPlacerSpawnerSystem(f)}
}

func displayModels(w *ecs.World) []string {
	var out []string
	ecs.ForEach(w, component.DisplayModelComponent.Kind(), func(_ ecs.Entity, dm *component.DisplayModel) {
		out = append(out, dm.MeshPath)
	})
	return out
}

func TestPlacerSpawnerIgnoresUnknownMeshes(t *testing.T) {
	h := newHarness(t, testRegistry(t), spawnerOnly)
	h.hover("parts/gone.glb")
	h.click("parts/gone.glb")
	h.step(idle())

	if len(ecs.Entities(h.w)) != 1 {
		t.Fatalf("unknown mesh paths must not spawn anything besides resources")
	}
}

func TestPlacerSpawnerFolderNotLoaded(t *testing.T) {
	for _, reg := range []*parts.Registry{nil, {}} {
		h := newHarness(t, reg, spawnerOnly)
		h.hover("parts/wheel.glb")
		h.click("parts/wheel.glb")
		h.step(at(20, 20))
		if len(ecs.Entities(h.w)) != 1 {
			t.Fatalf("unloaded folder must not spawn entities")
		}
	}
}

func TestPlacerSpawnerHoverKeepsOneDisplayModel(t *testing.T) {
	h := newHarness(t, testRegistry(t), spawnerOnly)
	h.step(idle())

	steps := []struct {
		name    string
		hovered string
		want    []string
	}{
		{"hover_a", "parts/wheel.glb", []string{"parts/wheel.glb"}},
		{"stay_on_a", "parts/wheel.glb", []string{"parts/wheel.glb"}},
		{"hover_b", "parts/misc_bracket.glb", []string{"parts/misc_bracket.glb"}},
		{"hover_ends", "", nil},
		{"hover_again", "parts/hull_section.glb", []string{"parts/hull_section.glb"}},
	}
	for _, s := range steps {
		h.hover(s.hovered)
		h.step(idle())
		got := displayModels(h.w)
		if len(got) != len(s.want) {
			t.Fatalf("%s: expected %d display models, got %v", s.name, len(s.want), got)
		}
		for i := range got {
			if got[i] != s.want[i] {
				t.Fatalf("%s: expected %v, got %v", s.name, s.want, got)
			}
		}
	}
}

func TestPlacerSpawnerPrunesDuplicates(t *testing.T) {
	h := newHarness(t, testRegistry(t), spawnerOnly)
	h.step(idle())

	wheel, _ := h.frame.Parts.Lookup("parts/wheel.glb")
	bracket, _ := h.frame.Parts.Lookup("parts/misc_bracket.glb")
	cmds := h.w.Commands()
	cmds.Spawn(entity.DisplayModelBundle(wheel)...)
	cmds.Spawn(entity.DisplayModelBundle(wheel)...)
	cmds.Spawn(entity.DisplayModelBundle(bracket)...)
	ecs.ApplyCommands(h.w)

	h.hover("parts/wheel.glb")
	h.step(idle())
	got := displayModels(h.w)
	if len(got) != 1 || got[0] != "parts/wheel.glb" {
		t.Fatalf("expected a single wheel display model, got %v", got)
	}
}

func TestPlacerSpawnerClicksSpawnPlacers(t *testing.T) {
	h := newHarness(t, testRegistry(t), spawnerOnly)
	h.step(idle())

	clicks := []struct {
		mesh string
		want component.Placer
	}{
		{"parts/wheel.glb", component.PlacerWheel},
		{"parts/wheel.glb", component.PlacerWheel},
		{"parts/hull_section.glb", component.PlacerHull},
		{"parts/misc_bracket.glb", component.PlacerHull},
	}
	var spawnedPlacers []ecs.Entity
	for _, c := range clicks {
		h.hover(c.mesh)
		h.click(c.mesh)
		for _, e := range h.step(idle()) {
			if ecs.Has(h.w, e, component.PlacerComponent.Kind()) {
				spawnedPlacers = append(spawnedPlacers, e)
			}
		}
	}

	if len(spawnedPlacers) != len(clicks) {
		t.Fatalf("expected %d placers, got %d", len(clicks), len(spawnedPlacers))
	}
	if got := ecs.Count(h.w, component.PlacerComponent.Kind()); got != len(clicks) {
		t.Fatalf("repeated clicks should accumulate placers, got %d", got)
	}
	for i, e := range spawnedPlacers {
		placer, _ := ecs.Get(h.w, e, component.PlacerComponent.Kind())
		if *placer != clicks[i].want {
			t.Fatalf("placer %d: expected %v, got %v", i, clicks[i].want, *placer)
		}
		if !ecs.Has(h.w, e, component.SensorComponent.Kind()) || !ecs.Has(h.w, e, component.ColliderComponent.Kind()) {
			t.Fatalf("placer %d lacks a sensor collider", i)
		}
	}
	if resource.Mode(h.w) != resource.PlacerMode {
		t.Fatalf("spawning should switch to PlacerMode, got %v", resource.Mode(h.w))
	}

	edited := 0
	ecs.ForEach(h.w, component.EditedComponent.Kind(), func(e ecs.Entity, _ *component.Edited) {
		edited++
		if e != spawnedPlacers[len(spawnedPlacers)-1] {
			t.Fatalf("only the newest placer should be edited")
		}
	})
	if edited != 1 {
		t.Fatalf("expected exactly one edited placer, got %d", edited)
	}

	if got := displayModels(h.w); len(got) != 1 {
		t.Fatalf("hovering while clicking keeps one display model, got %v", got)
	}
}
