package loop

import (
	"fmt"
	"time"

	"github.com/samaamohammed255-droid/leaf-grace/internal/draw"
	"github.com/samaamohammed255-droid/leaf-grace/internal/game"
)

// drawOverlay draws the text overlay for the current state on top of the
// rendered canvas.
func (rn *runner) drawOverlay(snap game.Snapshot) {
	termWidth := rn.canvas.TerminalWidth()
	termHeight := rn.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch snap.State {
	case game.StateStart:
		rn.drawStartScreen(centerX, centerY)
	case game.StatePlaying:
		rn.drawPlayingHUD(snap)
	case game.StateGameOver:
		rn.drawGameOverScreen(snap, centerX, centerY)
	}
}

// drawStartScreen draws the title screen.
func (rn *runner) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  _    ___   _   ___   ___ ___    _   ___ ___ `,
		` | |  | __| /_\ | __| / __| _ \  /_\ / __| __|`,
		` | |__| _| / _ \| _| | (_ |   / / _ \ (__| _| `,
		` |____|___/_/ \_\_|   \___|_|_\/_/ \_\___|___|`,
	}

	// Find max width for centering
	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	cw := rn.cw
	titleStartY := centerY - 9
	cw.WriteString(draw.ColorBrightCyan)
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}
	cw.WriteString(draw.ColorReset)

	subtitle := "~ Dodge the rain, ride the wind ~"
	cw.WriteAt(centerX-len(subtitle)/2, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	controlHeader := "Controls"
	cw.WriteAt(centerX-len(controlHeader)/2, controlsY, controlHeader)

	controlLines := []string{
		"Mouse drag . . . . Steer",
		"A D / < >  . . . . Steer",
		"SPACE  . . . . . . Start",
		"Q  . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+1+i, line)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Start  <<"
		cw.WriteAt(centerX-len(prompt)/2, controlsY+len(controlLines)+2, prompt)
	}
}

// drawPlayingHUD draws the in-game HUD. The survived seconds are padded so
// a shrinking value can't leave residual characters.
func (rn *runner) drawPlayingHUD(snap game.Snapshot) {
	timeText := fmt.Sprintf("Time: %-6ds", snap.Elapsed)
	rn.cw.WriteAt(2, 1, timeText)
}

// drawGameOverScreen draws the game-over screen with the final score.
func (rn *runner) drawGameOverScreen(snap game.Snapshot, centerX, centerY int) {
	cw := rn.cw

	title := "S P L A S H !"
	cw.WriteString(draw.ColorBrightRed)
	cw.WriteAt(centerX-len(title)/2, centerY-3, title)
	cw.WriteString(draw.ColorReset)

	scoreText := fmt.Sprintf("You survived %d seconds", snap.Elapsed)
	cw.WriteAt(centerX-len(scoreText)/2, centerY-1, scoreText)

	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Restart  <<"
		cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
	}
}
