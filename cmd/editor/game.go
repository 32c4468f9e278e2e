package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
	"github.com/CindyYangCS/CircuitCider/ecs/system"
	"github.com/CindyYangCS/CircuitCider/parts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	cfg Config

	world     *ecs.World
	scheduler *ecs.Scheduler
	frame     *system.Frame
	ui        *EditorUI
	render    *system.RenderSystem
	physics   *system.PhysicsSystem
	watcher   *parts.Watcher

	screenW, screenH int
	debug            bool
}

func NewGame(cfg Config) (*Game, error) {
	world := ecs.NewWorld()
	view := resource.View{Scale: cfg.ViewScale, ScreenW: cfg.Width, ScreenH: cfg.Height}
	if _, err := resource.Install(world, view); err != nil {
		return nil, fmt.Errorf("install resources: %w", err)
	}

	reg, err := loadParts(cfg.Parts)
	if err != nil {
		log.Printf("failed to load parts: %v", err)
	}
	frame := &system.Frame{Parts: reg, RobotPath: cfg.Robot}
	ui, err := BuildEditorUI(frame)
	if err != nil {
		return nil, err
	}

	physics := system.NewPhysicsSystem()
	scheduler := ecs.NewScheduler(
		system.NewMouseOverUISystem(frame),
		system.NewBuildToolSystem(frame),
		system.NewPlacerSpawnerSystem(frame),
		system.NewPlacerEditorSystem(frame),
		system.NewSaveLoadSystem(frame),
		system.NewPlacerCursorSystem(frame),
		physics,
		system.NewDisplayModelSystem(frame),
	)

	watcher, err := parts.NewWatcher(cfg.Parts)
	if err != nil {
		log.Printf("not watching %s: %v", cfg.Parts, err)
		watcher = nil
	}

	return &Game{
		cfg:       cfg,
		world:     world,
		scheduler: scheduler,
		frame:     frame,
		ui:        ui,
		render:    system.NewRenderSystem(),
		physics:   physics,
		watcher:   watcher,
		screenW:   cfg.Width,
		screenH:   cfg.Height,
	}, nil
}

// loadParts loads dir so asset paths keep the folder name, e.g.
// "parts/wheel.glb".
func loadParts(dir string) (*parts.Registry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return parts.LoadFolder(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("failed to close part watcher: %v", err)
		}
	}
}

func (g *Game) reloadParts() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		log.Printf("part watcher: %v", err)
	}
	if !changed {
		return
	}
	reg, err := loadParts(g.cfg.Parts)
	if err != nil {
		log.Printf("failed to reload parts, keeping previous set: %v", err)
		return
	}
	g.frame.Parts = reg
	log.Printf("reloaded %d parts from %s", reg.Len(), g.cfg.Parts)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	g.reloadParts()

	if view := resource.ViewOf(g.world); view != nil {
		view.ScreenW, view.ScreenH = g.screenW, g.screenH
	}
	g.frame.Dt = 1 / float64(ebiten.TPS())

	g.ui.Update()
	g.frame.Pointer = capturePointer(g.screenW, g.screenH)
	g.scheduler.Update(g.world)
	g.ui.Sync(g.world, g.screenW)
	g.frame.ResetIntents()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.debug {
		if view := resource.ViewOf(g.world); view != nil {
			system.DrawPhysicsDebug(g.physics.Space(), *view, screen)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  mode: %s  bodies: %d", ebiten.ActualFPS(), resource.Mode(g.world), g.physics.Bodies()), 0, g.screenH-16)
	}
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
