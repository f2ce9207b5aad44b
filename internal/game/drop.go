package game

// Drop is one falling raindrop. X is a percent of surface width so drops
// keep their lane when the surface resizes; Y is surface pixels from the
// top edge. Speed is in speed units (FallRate pixels per second each).
type Drop struct {
	ID    int
	X     float64
	Y     float64
	Speed float64
}
