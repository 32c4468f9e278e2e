package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "editor.yaml", "optional YAML config")
	partsDir := flag.String("parts", "", "folder of part meshes (overrides config)")
	robotPath := flag.String("robot", "", "robot file to save and load, .zst for compressed (overrides config)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Printf("failed to load config: %v", err)
	}
	if *partsDir != "" {
		cfg.Parts = *partsDir
	}
	if *robotPath != "" {
		cfg.Robot = *robotPath
	}

	log.Println("Editor starting...")
	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("CircuitCider robot editor")

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
