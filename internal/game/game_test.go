package game

import (
	"math/rand"
	"testing"
	"time"
)

var testSurface = Surface{Left: 0, Width: 360, Height: 640}

func newTestGame() (*Game, time.Time) {
	g := New(DefaultParams(), rand.New(rand.NewSource(1)))
	g.SetSurface(testSurface)
	return g, time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
}

func TestImmediateTickSpawnsNothing(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)
	if len(g.drops) != 0 {
		t.Fatalf("drops after 0ms = %d, want 0", len(g.drops))
	}
}

func TestFirstSpawnAfterBaseInterval(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)
	g.Tick(t0.Add(1500 * time.Millisecond))

	if len(g.drops) != 1 {
		t.Fatalf("drops after 1500ms = %d, want 1", len(g.drops))
	}
	d := g.drops[0]
	if d.X < MinLeafX || d.X > MaxLeafX {
		t.Fatalf("spawned drop x = %v, want within [%v,%v]", d.X, MinLeafX, MaxLeafX)
	}
	// The spawn tick must not displace the fresh drop, no matter how long
	// the gap since the previous tick was
	if d.Y != -g.params.DropDiameter {
		t.Fatalf("spawned drop y = %v, want spawn height %v", d.Y, -g.params.DropDiameter)
	}
	// One second elapsed at spawn time: multiplier 1.1, jitter < 0.5
	if d.Speed < 1.1 || d.Speed >= 1.6 {
		t.Fatalf("spawned drop speed = %v, want in [1.1,1.6)", d.Speed)
	}
}

func TestFreshDropMovesOnNextTick(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)
	g.Tick(t0.Add(1500 * time.Millisecond))
	if len(g.drops) != 1 {
		t.Fatalf("setup failed: drops = %d, want 1", len(g.drops))
	}

	g.Tick(t0.Add(1516 * time.Millisecond))
	if len(g.drops) != 1 {
		t.Fatalf("drops after one frame = %d, want 1", len(g.drops))
	}
	if g.drops[0].Y <= -g.params.DropDiameter {
		t.Fatalf("drop y = %v after one frame, want below spawn height", g.drops[0].Y)
	}
}

func TestNoSpawnOnGameOverTick(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)
	g.drops = append(g.drops, Drop{ID: 1, X: StartLeafX, Y: testSurface.Height - g.params.LeafBottomOffset, Speed: 0})

	// 2s since the last spawn: the interval has elapsed, but the hit in
	// this tick ends the round before the spawner runs
	g.Tick(t0.Add(2 * time.Second))
	if g.state != StateGameOver {
		t.Fatalf("state = %v, want %v", g.state, StateGameOver)
	}
	if len(g.drops) != 0 {
		t.Fatalf("drops after game-over tick = %d, want 0", len(g.drops))
	}
}

func TestCollisionEndsRoundWithOneRipple(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)

	// Park a stationary drop exactly on the leaf center
	g.drops = append(g.drops, Drop{ID: 99, X: StartLeafX, Y: testSurface.Height - g.params.LeafBottomOffset, Speed: 0})
	g.Tick(t0.Add(16 * time.Millisecond))

	if g.state != StateGameOver {
		t.Fatalf("state after collision = %v, want %v", g.state, StateGameOver)
	}
	if len(g.ripples) != 1 {
		t.Fatalf("ripples after collision = %d, want 1", len(g.ripples))
	}
	if len(g.drops) != 0 {
		t.Fatalf("colliding drop kept, drops = %d, want 0", len(g.drops))
	}
	r := g.ripples[0]
	if r.X != StartLeafX/100*testSurface.Width {
		t.Fatalf("ripple x = %v, want leaf center %v", r.X, StartLeafX/100*testSurface.Width)
	}
}

func TestSimultaneousHitsProduceOneGameOver(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)

	leafY := testSurface.Height - g.params.LeafBottomOffset
	g.drops = append(g.drops,
		Drop{ID: 1, X: StartLeafX, Y: leafY, Speed: 0},
		Drop{ID: 2, X: StartLeafX, Y: leafY, Speed: 0},
	)
	g.Tick(t0.Add(16 * time.Millisecond))

	if g.state != StateGameOver {
		t.Fatalf("state = %v, want %v", g.state, StateGameOver)
	}
	if len(g.ripples) != 1 {
		t.Fatalf("ripples = %d, want exactly 1 for a multi-hit frame", len(g.ripples))
	}
}

func TestEscapedDropRemovedSilently(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)

	// Far from the leaf laterally, one pixel above the bottom edge
	g.drops = append(g.drops, Drop{ID: 7, X: MinLeafX, Y: testSurface.Height - 1, Speed: 10})
	g.Tick(t0.Add(time.Second))

	if len(g.drops) != 0 {
		t.Fatalf("escaped drop kept, drops = %d, want 0", len(g.drops))
	}
	if g.state != StatePlaying {
		t.Fatalf("state after escape = %v, want %v", g.state, StatePlaying)
	}
	if len(g.ripples) != 0 {
		t.Fatalf("ripples after escape = %d, want 0", len(g.ripples))
	}
}

func TestRestartFullyResets(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)
	g.DragStart()
	g.DragMove(0) // Leaf to the left edge
	g.drops = append(g.drops, Drop{ID: 1, X: MinLeafX, Y: testSurface.Height - g.params.LeafBottomOffset, Speed: 0})
	g.Tick(t0.Add(3 * time.Second))
	if g.state != StateGameOver {
		t.Fatalf("setup failed: state = %v, want %v", g.state, StateGameOver)
	}

	t1 := t0.Add(5 * time.Second)
	g.Start(t1)

	if g.state != StatePlaying {
		t.Fatalf("state after restart = %v, want %v", g.state, StatePlaying)
	}
	if len(g.drops) != 0 || len(g.ripples) != 0 {
		t.Fatalf("restart kept %d drops, %d ripples, want 0, 0", len(g.drops), len(g.ripples))
	}
	if g.elapsed != 0 {
		t.Fatalf("elapsed after restart = %d, want 0", g.elapsed)
	}
	if g.leafX != StartLeafX {
		t.Fatalf("leaf after restart = %v, want %v", g.leafX, StartLeafX)
	}
	// Spawner re-anchored: no immediate spawn from the stale anchor
	g.Tick(t1)
	if len(g.drops) != 0 {
		t.Fatalf("drops right after restart = %d, want 0", len(g.drops))
	}
}

func TestElapsedFrozenAfterGameOver(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)
	g.drops = append(g.drops, Drop{ID: 1, X: StartLeafX, Y: testSurface.Height - g.params.LeafBottomOffset, Speed: 0})
	g.Tick(t0.Add(3 * time.Second))

	final := g.Elapsed()
	g.Tick(t0.Add(30 * time.Second))
	if g.Elapsed() != final {
		t.Fatalf("elapsed advanced after game over: %d -> %d", final, g.Elapsed())
	}
}

func TestRipplesExpireInEveryState(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)
	g.drops = append(g.drops, Drop{ID: 1, X: StartLeafX, Y: testSurface.Height - g.params.LeafBottomOffset, Speed: 0})

	hitAt := t0.Add(16 * time.Millisecond)
	g.Tick(hitAt)
	if len(g.ripples) != 1 {
		t.Fatalf("setup failed: ripples = %d, want 1", len(g.ripples))
	}

	// Still alive shortly before the deadline, gone after, on the
	// game-over screen
	g.Tick(hitAt.Add(500 * time.Millisecond))
	if len(g.ripples) != 1 {
		t.Fatalf("ripple expired early at 500ms")
	}
	g.Tick(hitAt.Add(700 * time.Millisecond))
	if len(g.ripples) != 0 {
		t.Fatalf("ripple survived past its 600ms lifetime")
	}
}

func TestDragClampsIntoRange(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.DragStart()

	cases := []struct {
		clientX float64
		want    float64
	}{
		{-1000, MinLeafX},
		{0, MinLeafX},
		{180, 50},
		{360, MaxLeafX},
		{1e6, MaxLeafX},
	}
	for _, tc := range cases {
		g.DragMove(tc.clientX)
		if g.leafX != tc.want {
			t.Fatalf("DragMove(%v): leaf = %v, want %v", tc.clientX, g.leafX, tc.want)
		}
	}
}

func TestDragInertOutsideGestureAndPlaying(t *testing.T) {
	g, t0 := newTestGame()

	// Not playing yet
	g.DragStart()
	g.DragMove(0)
	if g.leafX != StartLeafX {
		t.Fatalf("leaf moved on the start screen: %v", g.leafX)
	}
	g.DragEnd()

	// Playing, but no gesture active
	g.Start(t0)
	g.DragMove(0)
	if g.leafX != StartLeafX {
		t.Fatalf("leaf moved without a drag gesture: %v", g.leafX)
	}
}

func TestMissingSurfaceSkipsSimulation(t *testing.T) {
	g := New(DefaultParams(), rand.New(rand.NewSource(1)))
	t0 := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	g.Start(t0)
	g.Tick(t0.Add(5 * time.Second))

	if len(g.drops) != 0 {
		t.Fatalf("spawned %d drops without surface geometry, want 0", len(g.drops))
	}
	if g.state != StatePlaying {
		t.Fatalf("state = %v, want %v", g.state, StatePlaying)
	}

	// Pointer math is skipped too
	g.DragStart()
	g.DragMove(100)
	if g.leafX != StartLeafX {
		t.Fatalf("leaf moved without surface geometry: %v", g.leafX)
	}
}

func TestDropIDsMonotonicAcrossRestart(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)
	g.Tick(t0.Add(1500 * time.Millisecond))
	if len(g.drops) != 1 {
		t.Fatalf("setup failed: drops = %d, want 1", len(g.drops))
	}
	firstID := g.drops[0].ID

	t1 := t0.Add(10 * time.Second)
	g.Start(t1)
	g.Tick(t1)
	g.Tick(t1.Add(1500 * time.Millisecond))
	if len(g.drops) != 1 {
		t.Fatalf("drops after restart interval = %d, want 1", len(g.drops))
	}
	if g.drops[0].ID <= firstID {
		t.Fatalf("drop id reused across restart: %d then %d", firstID, g.drops[0].ID)
	}
}

func TestSnapshotCopiesState(t *testing.T) {
	g, t0 := newTestGame()
	g.Start(t0)
	g.Tick(t0)
	g.Tick(t0.Add(1500 * time.Millisecond))

	snap := g.Snapshot()
	if snap.State != StatePlaying || len(snap.Drops) != 1 {
		t.Fatalf("snapshot = %+v, want playing with 1 drop", snap)
	}

	// Mutating the snapshot must not touch the game
	snap.Drops[0].Y = -9999
	if g.drops[0].Y == -9999 {
		t.Fatalf("snapshot shares drop storage with the game")
	}
}
