package maze

import (
	"fmt"
	"strings"
)

// Openings is a tile's 4-bit doorway mask.
type Openings uint8

const (
	OpenUp Openings = 1 << iota
	OpenDown
	OpenLeft
	OpenRight

	OpenNone Openings = 0
	OpenAll           = OpenUp | OpenDown | OpenLeft | OpenRight
)

// Opening returns the mask bit for a direction.
func (d Dir) Opening() Openings {
	switch d {
	case DirUp:
		return OpenUp
	case DirDown:
		return OpenDown
	case DirLeft:
		return OpenLeft
	case DirRight:
		return OpenRight
	default:
		return OpenNone
	}
}

// Has reports whether the doorway in direction d is open.
func (o Openings) Has(d Dir) bool {
	bit := d.Opening()
	return bit != OpenNone && o&bit == bit
}

// With returns the mask with direction d opened.
func (o Openings) With(d Dir) Openings {
	return o | d.Opening()
}

// Without returns the mask with direction d closed.
func (o Openings) Without(d Dir) Openings {
	return o &^ d.Opening()
}

// String renders the mask as a subset of "UDLR", or "-" when closed.
func (o Openings) String() string {
	if o&OpenAll == OpenNone {
		return "-"
	}
	var sb strings.Builder
	for _, d := range Dirs {
		if o.Has(d) {
			sb.WriteByte(d.String()[0])
		}
	}
	return sb.String()
}

// ParseOpenings parses the String form back into a mask.
// Letters are case-insensitive; "-" and "" mean no openings.
func ParseOpenings(s string) (Openings, error) {
	var o Openings
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'U':
			o |= OpenUp
		case 'D':
			o |= OpenDown
		case 'L':
			o |= OpenLeft
		case 'R':
			o |= OpenRight
		case '-':
		default:
			return OpenNone, fmt.Errorf("maze: invalid opening %q in %q", r, s)
		}
	}
	return o, nil
}

// Connected reports whether a player may step between two tiles.
// The tiles must be 4-neighbours and both doorways facing each other must
// be open; a one-sided opening is not traversable.
func Connected(a, b *Tile) bool {
	if a == nil || b == nil {
		return false
	}
	d, ok := DirBetween(a.Cell, b.Cell)
	if !ok {
		return false
	}
	return a.Openings.Has(d) && b.Openings.Has(d.Opposite())
}
