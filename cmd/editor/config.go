package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/CindyYangCS/CircuitCider/ecs/resource"
	"gopkg.in/yaml.v3"
)

// Config is the optional editor.yaml. Zero fields keep their defaults;
// command-line flags override the file.
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Parts     string  `yaml:"parts"`
	Robot     string  `yaml:"robot"`
	ViewScale float64 `yaml:"view_scale"`
}

func DefaultConfig() Config {
	return Config{
		Width:     baseWidth,
		Height:    baseHeight,
		Parts:     "parts",
		Robot:     "robot.json",
		ViewScale: resource.DefaultViewScale,
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseConfig(data, cfg)
}

// ParseConfig decodes YAML data over base.
func ParseConfig(data []byte, base Config) (Config, error) {
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("config: parse: %w", err)
	}
	cfg := base
	if file.Width > 0 {
		cfg.Width = file.Width
	}
	if file.Height > 0 {
		cfg.Height = file.Height
	}
	if file.Parts != "" {
		cfg.Parts = file.Parts
	}
	if file.Robot != "" {
		cfg.Robot = file.Robot
	}
	if file.ViewScale > 0 {
		cfg.ViewScale = file.ViewScale
	}
	return cfg, nil
}
