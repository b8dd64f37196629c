// Package config loads the view settings from an optional YAML file.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "spincube.yml"

// Rotation modes.
const (
	RotationFrame   = "frame"   // fixed step per frame
	RotationElapsed = "elapsed" // radians per second of frame time
)

type Rotation struct {
	Mode string  `yaml:"mode"`
	Step float64 `yaml:"step"` // radians per frame, frame mode
	Rate float64 `yaml:"rate"` // radians per second, elapsed mode
}

type Shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// Config holds everything the view reads at startup.
type Config struct {
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Title       string   `yaml:"title"`
	TargetFPS   int      `yaml:"target_fps"`
	VSync       bool     `yaml:"vsync"`
	TrackResize bool     `yaml:"track_resize"`
	ClearColor  [4]uint8 `yaml:"clear_color"`
	LogLevel    string   `yaml:"log_level"`
	Rotation    Rotation `yaml:"rotation"`
	Shaders     Shaders  `yaml:"shaders"`
}

// Default returns the stock 400x400 view spinning 0.01 rad per frame.
func Default() Config {
	return Config{
		Width:      400,
		Height:     400,
		Title:      "Spinning Cube",
		TargetFPS:  60,
		VSync:      true,
		ClearColor: [4]uint8{0, 0, 0, 255},
		LogLevel:   "info",
		Rotation: Rotation{
			Mode: RotationFrame,
			Step: 0.01,
			Rate: 0.6,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	log.Printf("Config: loaded %s", path)
	return cfg, nil
}

// Validate rejects settings the view cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.TargetFPS < 0 {
		return fmt.Errorf("target_fps %d must not be negative", c.TargetFPS)
	}
	switch c.Rotation.Mode {
	case RotationFrame:
		if c.Rotation.Step < 0 {
			return fmt.Errorf("rotation.step %g must not be negative", c.Rotation.Step)
		}
	case RotationElapsed:
		if c.Rotation.Rate < 0 {
			return fmt.Errorf("rotation.rate %g must not be negative", c.Rotation.Rate)
		}
	default:
		return fmt.Errorf("unknown rotation.mode %q", c.Rotation.Mode)
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
