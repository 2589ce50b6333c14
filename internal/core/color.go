package core

// Color is a foreground color for a screen cell, mapped to ANSI colors by
// the terminal renderer.
type Color uint8

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
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Cell is one position in the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}
