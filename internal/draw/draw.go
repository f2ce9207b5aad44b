// Package draw renders the game to a terminal using half-block characters
// for doubled vertical resolution.
package draw

// Point is a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters used by the renderer.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ANSI color sequences for text overlays.
const (
	ColorReset      = "\033[0m"
	ColorCyan       = "\033[36m"
	ColorBrightCyan = "\033[96m"
	ColorBrightRed  = "\033[91m"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
