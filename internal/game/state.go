package game

// State represents the current game phase.
type State int

const (
	StateStart    State = iota // Title screen
	StatePlaying               // Active round
	StateGameOver              // Leaf was hit, show final score
)

// String returns the wire/display name of the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Surface describes the play area geometry as reported by the renderer.
// Left is the area's offset within the pointer coordinate space; Width and
// Height are in the same pixel units. A surface with unpositive width or
// height means the geometry is not available yet.
type Surface struct {
	Left   float64
	Width  float64
	Height float64
}

func (s Surface) valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Snapshot is the full renderable state of one frame. Renderers receive a
// copy and may keep it across ticks.
type Snapshot struct {
	State   State
	Elapsed int // Whole seconds survived this round
	LeafX   float64
	Drops   []Drop
	Ripples []Ripple
}
