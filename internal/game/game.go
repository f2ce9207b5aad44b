// Package game implements the leaf-grace simulation: a leaf steered along
// the bottom of the play area dodges raindrops that fall faster and more
// often the longer the round lasts. Survived seconds are the score.
//
// The package is headless and single-goroutine: the owning front end calls
// Tick and the input methods sequentially with explicit timestamps, and
// randomness comes from an injected source, so every behavior is
// reproducible in tests.
package game

import (
	"math/rand"
	"time"

	"github.com/samaamohammed255-droid/leaf-grace/internal/physics"
)

// Game owns the full mutable state of one play session: the phase machine,
// the round clock, the spawner bookkeeping, the drop and ripple sets, and
// the leaf position. It is not safe for concurrent use.
type Game struct {
	params Params
	rng    *rand.Rand

	state   State
	surface Surface

	startedAt time.Time
	lastTick  time.Time
	lastSpawn time.Time
	elapsed   int

	leafX    float64
	dragging bool

	drops   []Drop
	ripples []Ripple

	nextDropID   int
	nextRippleID int
}

// New creates a game sitting on the title screen. A nil rng falls back to
// a time-seeded source; tests pass a fixed seed instead.
func New(params Params, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		params: params,
		rng:    rng,
		state:  StateStart,
		leafX:  StartLeafX,
	}
}

// Params returns the tuning the game was created with.
func (g *Game) Params() Params {
	return g.params
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// LeafX returns the leaf position as a percent of surface width.
func (g *Game) LeafX() float64 {
	return g.leafX
}

// Elapsed returns the whole seconds survived this round. After a hit it
// stays frozen at the final score until the next start.
func (g *Game) Elapsed() int {
	return g.elapsed
}

// SetSurface records the play area geometry reported by the renderer. It
// may be called at any time, including mid-round on resize.
func (g *Game) SetSurface(s Surface) {
	g.surface = s
}

// Surface returns the current play area geometry.
func (g *Game) Surface() Surface {
	return g.surface
}

// Start begins a new round from any phase. Starting and restarting are the
// same operation: drops and ripples are cleared, the clock and spawner are
// re-anchored to now, and the leaf returns to the center.
func (g *Game) Start(now time.Time) {
	g.drops = g.drops[:0]
	g.ripples = g.ripples[:0]
	g.elapsed = 0
	g.leafX = StartLeafX
	g.startedAt = now
	g.lastTick = now
	g.lastSpawn = now
	g.state = StatePlaying
}

// Tick advances the session to now. Ripples fade in every phase; the
// simulation itself moves only while playing, and skips spawning, motion
// and collision while the surface geometry is unavailable.
//
// Motion runs before spawning: a drop spawned this tick sits at its spawn
// height until the next tick, so a long gap between ticks can never
// teleport a fresh drop into the visible area.
func (g *Game) Tick(now time.Time) {
	g.expireRipples(now)
	if g.state != StatePlaying {
		return
	}

	dt := now.Sub(g.lastTick)
	g.lastTick = now
	g.elapsed = int(now.Sub(g.startedAt).Seconds())

	if !g.surface.valid() {
		return
	}
	g.advance(now, dt)
	if g.state == StatePlaying {
		g.spawn(now)
	}
}

// DragStart begins a steering gesture. The leaf does not move until a
// DragMove arrives.
func (g *Game) DragStart() {
	g.dragging = true
}

// DragMove steers the leaf while a gesture is active and the round is
// playing. clientX is in the renderer's pointer coordinate space; the
// surface maps it to a percent, clamped to the playable range. Outside a
// gesture, outside playing, or without surface geometry the position is
// left untouched.
func (g *Game) DragMove(clientX float64) {
	if !g.dragging || g.state != StatePlaying || !g.surface.valid() {
		return
	}
	x := (clientX - g.surface.Left) / g.surface.Width * 100
	g.leafX = clamp(x, MinLeafX, MaxLeafX)
}

// DragEnd finishes the gesture. The leaf keeps its position.
func (g *Game) DragEnd() {
	g.dragging = false
}

// Snapshot returns a copy of everything a renderer needs for one frame.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:   g.state,
		Elapsed: g.elapsed,
		LeafX:   g.leafX,
	}
	if len(g.drops) > 0 {
		snap.Drops = append([]Drop(nil), g.drops...)
	}
	if len(g.ripples) > 0 {
		snap.Ripples = append([]Ripple(nil), g.ripples...)
	}
	return snap
}

// spawn emits at most one drop per tick, once the spawn interval for the
// current difficulty has strictly elapsed since the last spawn.
func (g *Game) spawn(now time.Time) {
	if now.Sub(g.lastSpawn) <= g.params.SpawnInterval(g.elapsed) {
		return
	}
	g.nextDropID++
	g.drops = append(g.drops, Drop{
		ID:    g.nextDropID,
		X:     MinLeafX + g.rng.Float64()*(MaxLeafX-MinLeafX),
		Y:     -g.params.DropDiameter,
		Speed: g.params.FallSpeedUnit(g.elapsed) + g.rng.Float64()*g.params.SpeedJitter,
	})
	g.lastSpawn = now
}

// advance moves every drop, removes the ones that fell past the bottom
// edge, and tests the rest against the leaf. The first hit ends the round:
// the colliding drop turns into a single ripple and later drops are no
// longer tested, so one tick produces at most one game-over event.
func (g *Game) advance(now time.Time, dt time.Duration) {
	leafX := g.leafX / 100 * g.surface.Width
	leafY := g.surface.Height - g.params.LeafBottomOffset
	leafR := g.params.LeafDiameter / 2
	dropR := g.params.DropDiameter / 2
	fall := g.params.FallRate * dt.Seconds()

	hit := false
	kept := g.drops[:0]
	for _, d := range g.drops {
		d.Y += d.Speed * fall
		if d.Y > g.surface.Height {
			continue // Escaped off the bottom: no event, no score change
		}
		if !hit && physics.CirclesOverlap(d.X/100*g.surface.Width, d.Y, dropR, leafX, leafY, leafR) {
			hit = true
			g.nextRippleID++
			g.ripples = append(g.ripples, Ripple{
				ID:       g.nextRippleID,
				X:        d.X / 100 * g.surface.Width,
				Y:        d.Y,
				Deadline: now.Add(g.params.RippleLifetime),
			})
			continue // The drop that hit is consumed by the ripple
		}
		kept = append(kept, d)
	}
	g.drops = kept

	if hit {
		g.state = StateGameOver
	}
}

// expireRipples drops every ripple whose deadline has passed.
func (g *Game) expireRipples(now time.Time) {
	kept := g.ripples[:0]
	for _, r := range g.ripples {
		if now.Before(r.Deadline) {
			kept = append(kept, r)
		}
	}
	g.ripples = kept
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
