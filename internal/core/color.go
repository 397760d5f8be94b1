package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a lipgloss style.
type Color uint8

// Palette used by the board renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
)

// Semantic aliases so renderers name what they draw, not how it looks.
const (
	ColorWall = ColorGray
	ColorFood = ColorBrightRed
	ColorHead = ColorBrightGreen
	ColorBody = ColorGreen
	ColorDead = ColorRed
	ColorInfo = ColorCyan
	ColorWarn = ColorYellow
)
