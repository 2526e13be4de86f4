package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the overridable subset of the global configuration.
// Scene paths and layer names cannot be overridden.
type fileConfig struct {
	Window *Config       `yaml:"window"`
	Player *PlayerConfig `yaml:"player"`
	Debug  *DebugConfig  `yaml:"debug"`
}

// LoadFile overlays a YAML file onto the defaults set in init.
// A missing file leaves the defaults untouched.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply decodes YAML bytes into the global configuration. Fields absent from
// data keep their current values.
func Apply(data []byte) error {
	window := *C
	player := Player
	debug := Debug

	fc := fileConfig{Window: &window, Player: &player, Debug: &debug}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if window.Width <= 0 || window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", window.Width, window.Height)
	}

	*C = window
	Player = player
	Debug = debug
	return nil
}
