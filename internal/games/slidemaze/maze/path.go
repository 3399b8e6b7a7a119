package maze

import (
	"github.com/zyedidia/generic/mapset"
)

// Path is an ordered sequence of tiles from source to destination,
// both inclusive.
type Path []*Tile

// Cells returns the logical cells along the path.
func (p Path) Cells() []Cell {
	cells := make([]Cell, len(p))
	for i, t := range p {
		cells[i] = t.Cell
	}
	return cells
}

// Steps returns the number of moves needed to walk the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Neighbors returns the tiles connected to t, in Dirs order.
func (m *Maze) Neighbors(t *Tile) []*Tile {
	if t == nil {
		return nil
	}
	var out []*Tile
	for _, d := range Dirs {
		n, ok := m.Tile(t.Cell.Step(d))
		if ok && Connected(t, n) {
			out = append(out, n)
		}
	}
	return out
}

// FindPath returns the shortest connected path from one tile to another.
// The frontier holds whole paths so the result needs no back-pointers.
// Among equal-length paths the one found first in Dirs order wins.
// The second result is false when no route exists; that is not an error.
func (m *Maze) FindPath(from, to *Tile) (Path, bool) {
	if from == nil || to == nil {
		return nil, false
	}

	visited := mapset.New[TileID]()
	visited.Put(from.ID)

	queue := []Path{{from}}
	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		last := path[len(path)-1]
		if last == to {
			return path, true
		}

		for _, n := range m.Neighbors(last) {
			if visited.Has(n.ID) {
				continue
			}
			visited.Put(n.ID)

			next := make(Path, len(path)+1)
			copy(next, path)
			next[len(path)] = n
			queue = append(queue, next)
		}
	}

	return nil, false
}

// Reachable returns every cell the player could walk to from the tile,
// including its own cell.
func (m *Maze) Reachable(from *Tile) mapset.Set[Cell] {
	seen := mapset.New[Cell]()
	if from == nil {
		return seen
	}

	seen.Put(from.Cell)
	stack := []*Tile{from}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range m.Neighbors(t) {
			if !seen.Has(n.Cell) {
				seen.Put(n.Cell)
				stack = append(stack, n)
			}
		}
	}
	return seen
}
