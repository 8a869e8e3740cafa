// Package game provides the player session and its transition entry point.
package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds session configuration options.
type Config struct {
	// Seed drives reproducible zone generation. Zero means derive one from
	// the clock at startup.
	Seed int64 `yaml:"seed"`

	// PitfallSurvivalTurns is how many turns a player must survive after a
	// pitfall before the emergence port works.
	PitfallSurvivalTurns int `yaml:"pitfall_survival_turns"`

	// StoragePath locates the SQLite session database.
	StoragePath string `yaml:"storage_path"`

	// StartX, StartY are the zone coordinates of the first surface zone.
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Seed:                 0,
		PitfallSurvivalTurns: 3,
		StoragePath:          "wayfarer.db",
		StartX:               0,
		StartY:               0,
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error; the defaults stand.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
