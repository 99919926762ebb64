package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Palette.
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
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Roles shared by every puzzle board.
const (
	ColorCursor = ColorOrange // cursor brackets and selection markers
	ColorSolved = ColorGreen  // solved banner, blocks resting on their goal
	ColorDim    = ColorGray   // empty cells, blanks, hints
	ColorPipe   = ColorYellow // drawn pipes and lit lights
	ColorDevice = ColorMagenta
)
