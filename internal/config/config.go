// Package config loads the simulation and render settings from yaml
// and ships the built-in system presets.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitview/internal/body"
	"github.com/san-kum/orbitview/internal/frame"
	"github.com/san-kum/orbitview/internal/physics"
	"github.com/san-kum/orbitview/internal/render"
	"github.com/san-kum/orbitview/internal/vec"
)

const (
	DefaultScale     = 1.0
	DefaultSpeed     = 0.02
	DefaultSamples   = 4
	DefaultTrail     = 120
	DefaultG         = 1.0
	DefaultSoftening = 0.01
)

type Config struct {
	Name       string       `yaml:"name"`
	Integrator string       `yaml:"integrator"`
	Scale      float64      `yaml:"scale"`
	Speed      float64      `yaml:"speed"`
	Samples    int          `yaml:"samples"`
	Trail      int          `yaml:"trail"`
	Frame      string       `yaml:"frame"`
	G          float64      `yaml:"g"`
	Softening  float64      `yaml:"softening"`
	Bodies     []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	ID       string     `yaml:"id"`
	Mass     float64    `yaml:"mass"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
}

// DefaultConfig returns the figure-eight three-body preset.
func DefaultConfig() *Config {
	return GetPreset("figure8")
}

// Load reads a yaml config, filling unset fields from defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Integrator: "leapfrog",
		Scale:      DefaultScale,
		Speed:      DefaultSpeed,
		Samples:    DefaultSamples,
		Trail:      DefaultTrail,
		Frame:      "fixed",
		G:          DefaultG,
		Softening:  DefaultSoftening,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the render engine requires to be positive.
func (c *Config) Validate() error {
	if c.Scale <= 0 || c.Speed <= 0 || c.Samples <= 0 {
		return fmt.Errorf("config: scale, speed, and samples must be positive")
	}
	if c.Trail <= 0 {
		return fmt.Errorf("config: trail capacity must be positive")
	}
	if len(c.Bodies) == 0 {
		return fmt.Errorf("config: at least one body required")
	}
	return nil
}

// FrameSelector parses the frame field: "fixed", "barycenter", a body
// id, or a numeric body index.
func (c *Config) FrameSelector() (frame.Selector, error) {
	switch c.Frame {
	case "", "fixed":
		return frame.FixedFrame(), nil
	case "barycenter":
		return frame.BarycentricFrame(), nil
	}
	for i, b := range c.Bodies {
		if strings.EqualFold(b.ID, c.Frame) {
			return frame.BodyFrame(i), nil
		}
	}
	if idx, err := strconv.Atoi(c.Frame); err == nil && idx >= 0 && idx < len(c.Bodies) {
		return frame.BodyFrame(idx), nil
	}
	return frame.Selector{}, fmt.Errorf("config: unknown frame %q", c.Frame)
}

// BuildSystem constructs the physical system from the configured
// initial conditions.
func (c *Config) BuildSystem() (*physics.System, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	bodies := make([]*body.Body, len(c.Bodies))
	for i, bc := range c.Bodies {
		bodies[i] = body.New(bc.ID, bc.Mass,
			vec.Vec3{X: bc.Position[0], Y: bc.Position[1], Z: bc.Position[2]},
			vec.Vec3{X: bc.Velocity[0], Y: bc.Velocity[1], Z: bc.Velocity[2]},
			c.Trail)
	}
	return physics.NewSystem(bodies, c.G, c.Softening, c.Trail), nil
}

// Settings converts the config into the engine's mutable settings.
func (c *Config) Settings() (*render.Settings, error) {
	sel, err := c.FrameSelector()
	if err != nil {
		return nil, err
	}
	return &render.Settings{
		Scale:   c.Scale,
		Speed:   c.Speed,
		Samples: c.Samples,
		Frame:   sel,
	}, nil
}
