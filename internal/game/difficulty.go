package game

import (
	"math"
	"time"
)

// The difficulty curve is a pure function of whole seconds survived: the
// multiplier ramps linearly until it caps, the spawn interval shrinks with
// it down to a floor, and drop speed grows with it.

// Multiplier returns the difficulty multiplier after t whole seconds.
func (p Params) Multiplier(t int) float64 {
	return math.Min(1+float64(t)/p.RampSeconds, p.MaxMultiplier)
}

// SpawnInterval returns the minimum time between drop spawns after t whole
// seconds, never below MinSpawnInterval.
func (p Params) SpawnInterval(t int) time.Duration {
	interval := time.Duration(float64(p.BaseSpawnInterval) / p.Multiplier(t))
	if interval < p.MinSpawnInterval {
		return p.MinSpawnInterval
	}
	return interval
}

// FallSpeedUnit returns the base speed units of a drop spawned after t
// whole seconds.
func (p Params) FallSpeedUnit(t int) float64 {
	return p.Multiplier(t)
}
