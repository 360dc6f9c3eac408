package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style; the game only picks
// semantic colors.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Colors of game elements.
const (
	ColorPlatform  = ColorOrange
	ColorBall      = ColorBrightWhite
	ColorBlockSoft = ColorBrightCyan // 1 hit point
	ColorBlockHard = ColorYellow     // 2 hit points
	ColorBlockMax  = ColorRed        // 3 or more
	ColorHint      = ColorGray
)

// BlockColor returns the color of a block with the given health.
func BlockColor(health int) Color {
	switch {
	case health >= 3:
		return ColorBlockMax
	case health == 2:
		return ColorBlockHard
	default:
		return ColorBlockSoft
	}
}
