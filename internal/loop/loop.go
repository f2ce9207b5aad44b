// Package loop runs the terminal frame loop: it reads input, advances the
// simulation, and renders it with the half-block canvas at 60 FPS.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/samaamohammed255-droid/leaf-grace/internal/draw"
	"github.com/samaamohammed255-droid/leaf-grace/internal/game"
	"github.com/samaamohammed255-droid/leaf-grace/internal/input"
)

// Options configures a terminal session.
type Options struct {
	// TermSizeFunc reports the terminal dimensions; nil means the local
	// stdout terminal. SSH sessions pass their window tracker instead.
	TermSizeFunc draw.TermSizeFunc

	// Params is the game tuning; the zero value means DefaultParams.
	Params game.Params

	// Rand seeds drop spawning; nil means a time-seeded source.
	Rand *rand.Rand
}

// runner holds the per-session loop state around one Game.
type runner struct {
	game         *game.Game
	canvas       *draw.Canvas
	cw           *draw.ChunkWriter
	stream       *input.Stream
	termSizeFunc draw.TermSizeFunc

	running     bool
	pointerDown bool // A real mouse drag is active; keyboard steering yields
	lastTime    time.Time
}

// Run drives one game session over the given reader and writer until the
// player quits or the reader closes. It assumes the terminal is already in
// raw mode and restores cursor and mouse reporting on exit.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	params := opts.Params
	if params == (game.Params{}) {
		params = game.DefaultParams()
	}

	g := game.New(params, opts.Rand)
	g.SetSurface(game.Surface{Width: surfaceWidth, Height: surfaceHeight})

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return err
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, surfaceWidth, surfaceHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	rn := &runner{
		game:         g,
		canvas:       canvas,
		cw:           draw.NewChunkWriter(w, offsetCol, offsetRow),
		stream:       input.StartStream(r),
		termSizeFunc: termSizeFunc,
		running:      true,
		lastTime:     time.Now(),
	}

	draw.HideCursor(w)
	draw.EnableMouse(w)
	defer func() {
		draw.DisableMouse(w)
		draw.ShowCursor(w)
		draw.ClearScreen(w)
	}()
	draw.ClearScreen(w)

	for rn.running {
		frameStart := time.Now()
		delta := frameStart.Sub(rn.lastTime)
		rn.lastTime = frameStart

		// ===== INPUT PHASE =====
		inp := input.ReadInput(rn.stream)
		if inp.Quit {
			rn.running = false
			break
		}
		rn.updateScreen()
		rn.applyInput(inp, delta, frameStart)

		// ===== UPDATE PHASE =====
		g.Tick(frameStart)

		// ===== DRAW PHASE =====
		if err := rn.drawFrame(frameStart); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	return nil
}

// applyInput translates terminal input into the core's input contract:
// pointer events become drag gestures, held arrow keys synthesize a
// one-frame drag, and space or enter starts or restarts the round.
func (rn *runner) applyInput(inp input.Input, delta time.Duration, now time.Time) {
	g := rn.game

	for _, ev := range inp.Pointer {
		x, _ := rn.canvas.TerminalToLogical(ev.Col, ev.Row)
		switch ev.Action {
		case input.PointerPress:
			rn.pointerDown = true
			g.DragStart()
			g.DragMove(x)
		case input.PointerDrag:
			g.DragMove(x)
		case input.PointerRelease:
			rn.pointerDown = false
			g.DragEnd()
		}
	}

	// Keyboard steering, unless a mouse drag owns the gesture
	if !rn.pointerDown && (inp.Left || inp.Right) && g.State() == game.StatePlaying {
		step := keySteerSpeed * delta.Seconds()
		target := g.LeafX()
		if inp.Left {
			target -= step
		}
		if inp.Right {
			target += step
		}
		g.DragStart()
		g.DragMove(target / 100 * surfaceWidth)
		g.DragEnd()
	}

	if (inp.Space || inp.Enter) && g.State() != game.StatePlaying {
		g.Start(now)
	}
}

// updateScreen handles terminal resize, clamping to the max render
// resolution and recentering the play area.
func (rn *runner) updateScreen() {
	termWidth, termHeight, err := rn.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	rn.canvas.Resize(renderWidth, renderHeight)
	rn.canvas.SetOffset(offsetCol, offsetRow)
	rn.cw.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution
// and computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > maxTermWidth {
		renderWidth = maxTermWidth
	}
	if renderHeight > maxTermHeight {
		renderHeight = maxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame renders the snapshot: canvas sprites first, then the border
// and the text overlay for the current state, in one flushed batch.
func (rn *runner) drawFrame(now time.Time) error {
	snap := rn.game.Snapshot()
	params := rn.game.Params()

	rn.cw.WriteString("\033[H\033[2J")
	rn.canvas.Clear()

	for _, d := range snap.Drops {
		rn.canvas.FillCircle(d.X/100*surfaceWidth, d.Y, params.DropDiameter/2)
	}
	for _, r := range snap.Ripples {
		rn.canvas.DrawCircle(r.X, r.Y, rippleRadius(r, params, now))
	}
	if snap.State != game.StateStart {
		drawLeaf(rn.canvas, snap.LeafX/100*surfaceWidth, surfaceHeight-params.LeafBottomOffset, params.LeafDiameter/2)
	}

	rn.canvas.Render(rn.cw)
	rn.canvas.RenderBorder(rn.cw)
	rn.drawOverlay(snap)

	return rn.cw.Flush()
}

// rippleRadius grows a ripple outward over its lifetime, from the drop
// size to roughly the leaf size.
func rippleRadius(r game.Ripple, params game.Params, now time.Time) float64 {
	remaining := r.Deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	age := 1 - remaining.Seconds()/params.RippleLifetime.Seconds()
	return params.DropDiameter/2 + age*params.LeafDiameter/2
}

// leafOutline is the leaf silhouette in unit coordinates: a tip at each
// end, widest across the middle.
var leafOutline = []draw.Point{
	{X: 0, Y: -1},
	{X: 0.5, Y: -0.6},
	{X: 0.75, Y: 0},
	{X: 0.5, Y: 0.6},
	{X: 0, Y: 1},
	{X: -0.5, Y: 0.6},
	{X: -0.75, Y: 0},
	{X: -0.5, Y: -0.6},
}

// drawLeaf draws the leaf sprite: the filled leaf polygon plus a short
// stem off the top tip.
func drawLeaf(c *draw.Canvas, x, y, r float64) {
	points := c.BorrowPoints(len(leafOutline))
	for i, p := range leafOutline {
		points[i] = draw.Point{X: x + p.X*r, Y: y + p.Y*r}
	}
	c.DrawPolygon(points, true)
	c.DrawLine(draw.Point{X: x, Y: y - r}, draw.Point{X: x + r*0.6, Y: y - r*1.6})
}
