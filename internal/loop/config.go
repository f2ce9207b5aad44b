package loop

import "time"

// Frame loop tunables.

// Timing
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)

// Surface resolution - the simulation runs in this fixed logical pixel
// space (portrait); rendering scales it to the terminal.
const (
	surfaceWidth  = 360.0
	surfaceHeight = 640.0
)

// Max render resolution. Larger terminals get a centered play area with a
// border. Terminal cells are roughly twice as tall as wide, so 72x56
// reads as portrait on screen.
const (
	maxTermWidth  = 72
	maxTermHeight = 56
)

// Keyboard steering speed, in percent of surface width per second.
const keySteerSpeed = 70.0
