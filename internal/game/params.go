package game

import "time"

// Canonical tuning values. DefaultParams bundles them; the config package
// may override individual fields from a tuning file.

// Geometry (surface pixels)
const (
	DefaultLeafDiameter     = 48.0
	DefaultDropDiameter     = 20.0
	DefaultLeafBottomOffset = 80.0 // Leaf center sits this far above the bottom edge
)

// Horizontal range (percent of surface width)
const (
	MinLeafX   = 5.0
	MaxLeafX   = 95.0
	StartLeafX = 50.0
)

// Difficulty ramp
const (
	DefaultBaseSpawnInterval = 1500 * time.Millisecond
	DefaultMinSpawnInterval  = 400 * time.Millisecond
	DefaultRampSeconds       = 10.0
	DefaultMaxMultiplier     = 3.0
)

// Motion
const (
	DefaultFallRate    = 120.0 // Surface pixels per second per speed unit
	DefaultSpeedJitter = 0.5   // Random extra speed units per drop
)

// Ripples
const DefaultRippleLifetime = 600 * time.Millisecond

// Params holds every tunable constant of the simulation. The zero value is
// not playable; start from DefaultParams and override fields as needed.
type Params struct {
	LeafDiameter     float64
	DropDiameter     float64
	LeafBottomOffset float64

	BaseSpawnInterval time.Duration
	MinSpawnInterval  time.Duration
	RampSeconds       float64
	MaxMultiplier     float64

	FallRate    float64
	SpeedJitter float64

	RippleLifetime time.Duration
}

// DefaultParams returns the canonical game tuning.
func DefaultParams() Params {
	return Params{
		LeafDiameter:      DefaultLeafDiameter,
		DropDiameter:      DefaultDropDiameter,
		LeafBottomOffset:  DefaultLeafBottomOffset,
		BaseSpawnInterval: DefaultBaseSpawnInterval,
		MinSpawnInterval:  DefaultMinSpawnInterval,
		RampSeconds:       DefaultRampSeconds,
		MaxMultiplier:     DefaultMaxMultiplier,
		FallRate:          DefaultFallRate,
		SpeedJitter:       DefaultSpeedJitter,
		RippleLifetime:    DefaultRippleLifetime,
	}
}
