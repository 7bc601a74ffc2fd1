// Package config loads viewer settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Delta is a per-tick rotation about the three world axes, in radians.
type Delta struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Config holds every tunable of the viewer.
type Config struct {
	Width         int     `yaml:"width"`  // canvas pixels
	Height        int     `yaml:"height"` // canvas pixels
	FPS           int     `yaml:"fps"`
	CubeLength    float32 `yaml:"cube_length"`
	FocalDistance float32 `yaml:"focal_distance"`
	DragScale     float32 `yaml:"drag_scale"`
	NetSquare     float32 `yaml:"net_square"`
	Stroke        float32 `yaml:"stroke"`

	Mode            string `yaml:"mode"` // "net" | "solid"
	Edges           bool   `yaml:"edges"`
	AutoRotate      bool   `yaml:"auto_rotate"`
	AutoRotateDelta Delta  `yaml:"auto_rotate_delta"`

	Journal bool   `yaml:"journal"`
	DBPath  string `yaml:"db_path,omitempty"`
	LogFile string `yaml:"log_file,omitempty"`
}

// Default returns the settings used when no file is present: the full
// 1920x1080 scene with a 200 px cube.
func Default() *Config {
	return &Config{
		Width:           1920,
		Height:          1080,
		FPS:             60,
		CubeLength:      200,
		FocalDistance:   1000,
		DragScale:       100,
		NetSquare:       50,
		Stroke:          4,
		Mode:            "net",
		Edges:           true,
		AutoRotate:      false,
		AutoRotateDelta: Delta{X: -0.01, Y: -0.02, Z: 0},
		Journal:         true,
	}
}

// Dir returns ~/.cubeview, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".cubeview")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error when
// optional is set.
func Load(path string, optional bool) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes c to path as YAML.
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate rejects settings that would make a frame undefined.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: size %dx%d must be positive", c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("config: fps %d must be positive", c.FPS)
	case c.CubeLength <= 0:
		return fmt.Errorf("config: cube_length %g must be positive", c.CubeLength)
	case c.FocalDistance <= 0:
		return fmt.Errorf("config: focal_distance %g must be positive", c.FocalDistance)
	case c.DragScale == 0:
		return fmt.Errorf("config: drag_scale must be non-zero")
	// Half the cube's space diagonal must stay in front of the eye plane.
	case c.CubeLength*0.8661 >= c.FocalDistance:
		return fmt.Errorf("config: cube_length %g too large for focal_distance %g", c.CubeLength, c.FocalDistance)
	}
	return nil
}
