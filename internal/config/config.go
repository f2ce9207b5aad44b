// Package config provides environment lookup and the optional YAML tuning
// file that adjusts the game parameters.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samaamohammed255-droid/leaf-grace/internal/game"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// EnvTuningFile names the environment variable that points at the YAML
// tuning file. An unset or empty variable means the canonical defaults.
const EnvTuningFile = "LEAF_CONFIG"

// Preset is a named difficulty level. A preset adjusts the ramp before any
// explicit overrides from the file are applied on top.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Tuning is the YAML tuning file shape. Every field is optional; zero
// values keep the preset's value, so a file can override a single number.
type Tuning struct {
	Preset     Preset           `yaml:"preset"`
	Geometry   GeometryTuning   `yaml:"geometry"`
	Difficulty DifficultyTuning `yaml:"difficulty"`
	Motion     MotionTuning     `yaml:"motion"`

	RippleLifetimeMs int `yaml:"ripple_lifetime_ms"`
}

// GeometryTuning adjusts the sprite geometry, in surface pixels.
type GeometryTuning struct {
	LeafDiameter     float64 `yaml:"leaf_diameter"`
	DropDiameter     float64 `yaml:"drop_diameter"`
	LeafBottomOffset float64 `yaml:"leaf_bottom_offset"`
}

// DifficultyTuning adjusts the difficulty ramp.
type DifficultyTuning struct {
	BaseSpawnIntervalMs int     `yaml:"base_spawn_interval_ms"`
	MinSpawnIntervalMs  int     `yaml:"min_spawn_interval_ms"`
	RampSeconds         float64 `yaml:"ramp_seconds"`
	MaxMultiplier       float64 `yaml:"max_multiplier"`
}

// MotionTuning adjusts drop motion.
type MotionTuning struct {
	FallRate    float64 `yaml:"fall_rate"`
	SpeedJitter float64 `yaml:"speed_jitter"`
}

// presetParams returns the base parameters for a preset. Normal (and the
// empty preset) is the canonical game.
func presetParams(p Preset) (game.Params, error) {
	params := game.DefaultParams()
	switch p {
	case "", PresetNormal:
	case PresetEasy:
		params.RampSeconds = 15
		params.MaxMultiplier = 2
	case PresetHard:
		params.RampSeconds = 6
		params.MaxMultiplier = 4
		params.MinSpawnInterval = 300 * time.Millisecond
	default:
		return params, fmt.Errorf("unknown preset %q", p)
	}
	return params, nil
}

// Params resolves the tuning into game parameters: preset first, explicit
// overrides second.
func (t Tuning) Params() (game.Params, error) {
	params, err := presetParams(t.Preset)
	if err != nil {
		return params, err
	}

	overrideFloat(&params.LeafDiameter, t.Geometry.LeafDiameter)
	overrideFloat(&params.DropDiameter, t.Geometry.DropDiameter)
	overrideFloat(&params.LeafBottomOffset, t.Geometry.LeafBottomOffset)

	overrideMs(&params.BaseSpawnInterval, t.Difficulty.BaseSpawnIntervalMs)
	overrideMs(&params.MinSpawnInterval, t.Difficulty.MinSpawnIntervalMs)
	overrideFloat(&params.RampSeconds, t.Difficulty.RampSeconds)
	overrideFloat(&params.MaxMultiplier, t.Difficulty.MaxMultiplier)

	overrideFloat(&params.FallRate, t.Motion.FallRate)
	overrideFloat(&params.SpeedJitter, t.Motion.SpeedJitter)

	overrideMs(&params.RippleLifetime, t.RippleLifetimeMs)

	return params, nil
}

func overrideFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func overrideMs(dst *time.Duration, ms int) {
	if ms != 0 {
		*dst = time.Duration(ms) * time.Millisecond
	}
}

// LoadParams returns the game parameters for the tuning file named by
// LEAF_CONFIG, or the defaults when the variable is unset.
func LoadParams() (game.Params, error) {
	path := GetEnv(EnvTuningFile, "")
	if path == "" {
		return game.DefaultParams(), nil
	}
	return LoadParamsFile(path)
}

// LoadParamsFile reads and resolves one YAML tuning file.
func LoadParamsFile(path string) (game.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.DefaultParams(), fmt.Errorf("read tuning file: %w", err)
	}
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return game.DefaultParams(), fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	params, err := t.Params()
	if err != nil {
		return params, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return params, nil
}
