package core

// Color is a cell's foreground colour. The shell maps each value to a
// terminal style; ColorDefault leaves the terminal's own colour.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorGreen              // Obstacle body
	ColorBrightGreen        // Obstacle caps
	ColorYellow             // Flyer body
	ColorBrightYellow       // Flyer beak
	ColorWhite              // Overlay frame
	ColorBrightWhite        // HUD and overlay text
	ColorBrightRed          // Game over title

	numColors
)

var colorNames = [numColors]string{
	"default", "green", "bright-green", "yellow", "bright-yellow",
	"white", "bright-white", "bright-red",
}

// String returns the colour's name.
func (c Color) String() string {
	if c < numColors {
		return colorNames[c]
	}
	return "unknown"
}
