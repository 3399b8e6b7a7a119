package maze

import (
	"fmt"
	"strings"
)

// ParseLayout builds a maze from authored rows, top row first.
//
// Each row is a whitespace-separated list of tokens, one per column:
//
//	UDLR  opening letters (any subset, "-" for a closed tile)
//	LR#   trailing '#' marks the tile immovable
//	.     a hole with no tile
//
// All rows must have the same number of tokens.
func ParseLayout(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidSize)
	}

	h := len(rows)
	w := -1
	var tiles []*Tile

	for r, row := range rows {
		tokens := strings.Fields(row)
		if w < 0 {
			w = len(tokens)
		}
		if len(tokens) != w {
			return nil, fmt.Errorf("maze: layout row %d has %d columns, want %d", r, len(tokens), w)
		}

		y := h - 1 - r
		for x, tok := range tokens {
			if tok == "." {
				continue
			}
			immovable := strings.HasSuffix(tok, "#")
			openings, err := ParseOpenings(strings.TrimSuffix(tok, "#"))
			if err != nil {
				return nil, fmt.Errorf("maze: layout row %d col %d: %w", r, x, err)
			}
			tiles = append(tiles, NewTile(C(x, y), openings, immovable))
		}
	}

	return New(w, h, tiles)
}

// Layout renders the maze's committed state in ParseLayout form.
func (m *Maze) Layout() []string {
	rows := make([]string, 0, m.h)
	for y := m.h - 1; y >= 0; y-- {
		tokens := make([]string, 0, m.w)
		for x := 0; x < m.w; x++ {
			t, ok := m.Tile(C(x, y))
			if !ok {
				tokens = append(tokens, ".")
				continue
			}
			tok := t.Openings.String()
			if t.Immovable {
				tok += "#"
			}
			tokens = append(tokens, tok)
		}
		rows = append(rows, strings.Join(tokens, " "))
	}
	return rows
}
