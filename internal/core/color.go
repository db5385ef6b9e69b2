package core

// Color is the foreground color of a screen cell.
// Hosts map it to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota

	// Basic ANSI colors.
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange

	// Greys, used for fading beds and overlays.
	ColorGray
	ColorDarkGray
	ColorBlack

	// Sprite and furniture tones.
	ColorSkin
	ColorCream
	ColorBrown
	ColorDarkBrown
	ColorWood
)
