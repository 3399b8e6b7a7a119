package core

// Color is a foreground color for a screen cell. The platform maps each
// value to an ANSI 256-color code.
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
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorDim
)

// Cell is one character of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is an empty default-colored cell.
var blank = Cell{Rune: ' ', Color: ColorDefault}
