package game

import "time"

// Ripple marks where a drop hit the leaf. X and Y are surface pixels.
// Ripples expire at their deadline regardless of game state, so they keep
// fading on the game-over screen.
type Ripple struct {
	ID       int
	X        float64
	Y        float64
	Deadline time.Time
}
