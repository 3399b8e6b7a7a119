// Package maze implements the sliding-tile maze engine: the grid index,
// the doorway connectivity rule, shortest-path search, drag/push
// resolution, commit of dragged tiles and the player's traced movement.
//
// The package is UI-agnostic and deterministic. All mutation happens on the
// caller's goroutine, one World.Tick per frame.
package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned for non-positive board dimensions.
	ErrInvalidSize = errors.New("maze: size must be positive")
	// ErrOutOfBounds is returned when a tile is placed outside the board.
	ErrOutOfBounds = errors.New("maze: cell out of bounds")
	// ErrCellOccupied is returned when two tiles share a cell at construction.
	ErrCellOccupied = errors.New("maze: cell already occupied")
)

// Maze owns every tile of a board and indexes them by logical cell.
// Cells are addressed in row-major order: index = y*W + x.
type Maze struct {
	w, h  int
	tiles []*Tile // Owned tiles, ID order
	index []*Tile // Cell -> tile, nil for holes
}

// New creates a maze of w x h cells holding the given tiles.
// Tile IDs are reassigned in slice order.
func New(w, h int, tiles []*Tile) (*Maze, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}

	m := &Maze{
		w:     w,
		h:     h,
		tiles: make([]*Tile, 0, len(tiles)),
		index: make([]*Tile, w*h),
	}

	for _, t := range tiles {
		if !m.InBounds(t.Cell) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, t.Cell)
		}
		if m.index[m.offset(t.Cell)] != nil {
			return nil, fmt.Errorf("%w: %v", ErrCellOccupied, t.Cell)
		}
		t.ID = TileID(len(m.tiles))
		t.Pos = t.Rest()
		m.tiles = append(m.tiles, t)
		m.index[m.offset(t.Cell)] = t
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.w
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.h
}

// Tiles returns the tiles in ID order. Iteration order of commit and
// carrier detection follows this slice.
func (m *Maze) Tiles() []*Tile {
	return m.tiles
}

// Len returns the number of tiles.
func (m *Maze) Len() int {
	return len(m.tiles)
}

// InBounds reports whether the cell lies on the board.
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.w && c.Y >= 0 && c.Y < m.h
}

// offset converts a cell to a flat index.
func (m *Maze) offset(c Cell) int {
	return c.Y*m.w + c.X
}

// Tile returns the tile whose logical cell is c.
func (m *Maze) Tile(c Cell) (*Tile, bool) {
	if !m.InBounds(c) {
		return nil, false
	}
	t := m.index[m.offset(c)]
	return t, t != nil
}

// ByID returns the tile with the given ID.
func (m *Maze) ByID(id TileID) (*Tile, bool) {
	if id < 0 || int(id) >= len(m.tiles) {
		return nil, false
	}
	return m.tiles[id], true
}

// reindex rebuilds the cell index from logical cells.
// When two tiles claim a cell the first in ID order keeps it.
func (m *Maze) reindex() {
	clear(m.index)
	for _, t := range m.tiles {
		if !m.InBounds(t.Cell) {
			continue
		}
		i := m.offset(t.Cell)
		if m.index[i] == nil {
			m.index[i] = t
		}
	}
}

// Remove deletes the tile at c, leaving a hole. Remaining tiles keep their
// relative order and are renumbered.
func (m *Maze) Remove(c Cell) bool {
	t, ok := m.Tile(c)
	if !ok {
		return false
	}

	kept := m.tiles[:0]
	for _, other := range m.tiles {
		if other != t {
			other.ID = TileID(len(kept))
			kept = append(kept, other)
		}
	}
	m.tiles = kept
	m.index[m.offset(c)] = nil
	return true
}

// Anchors returns the cells of all immovable tiles in ID order.
func (m *Maze) Anchors() []Cell {
	var cells []Cell
	for _, t := range m.tiles {
		if t.Immovable {
			cells = append(cells, t.Cell)
		}
	}
	return cells
}

// Holes returns the in-bounds cells that hold no tile, row by row.
func (m *Maze) Holes() []Cell {
	var cells []Cell
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.index[m.offset(C(x, y))] == nil {
				cells = append(cells, C(x, y))
			}
		}
	}
	return cells
}
