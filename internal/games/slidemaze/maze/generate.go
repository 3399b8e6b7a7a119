package maze

import (
	"math/rand"
)

// Generate builds a size x size maze where every tile gets a uniformly
// random opening mask. The result depends only on size and seed.
//
// Every cell holds a tile, and the board edge stops a push like an
// anchor, so a generated board cannot slide until CarveHoles opens gaps.
func Generate(size int, seed int64) (*Maze, error) {
	return GenerateWith(size, rand.New(rand.NewSource(seed)))
}

// GenerateWith is Generate driven by a caller-owned random source, so one
// seeded source can also feed PlaceAnchors and CarveHoles.
func GenerateWith(size int, rng *rand.Rand) (*Maze, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	tiles := make([]*Tile, 0, size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			var o Openings
			for _, d := range Dirs {
				if rng.Intn(2) == 1 {
					o = o.With(d)
				}
			}
			tiles = append(tiles, NewTile(C(x, y), o, false))
		}
	}

	return New(size, size, tiles)
}

// PlaceAnchors marks up to n random movable tiles immovable, never the
// tile at avoid. Returns the anchored cells in the order chosen.
func PlaceAnchors(m *Maze, rng *rand.Rand, n int, avoid Cell) []Cell {
	candidates := make([]*Tile, 0, m.Len())
	for _, t := range m.tiles {
		if !t.Immovable && t.Cell != avoid {
			candidates = append(candidates, t)
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var placed []Cell
	for i := 0; i < n && i < len(candidates); i++ {
		candidates[i].Immovable = true
		placed = append(placed, candidates[i].Cell)
	}
	return placed
}

// CarveHoles removes up to n random tiles, never the tile at avoid, and
// always leaves at least one other tile on the board.
// Holes are what lets a line of tiles slide on a full board.
func CarveHoles(m *Maze, rng *rand.Rand, n int, avoid Cell) []Cell {
	candidates := make([]Cell, 0, m.Len())
	for _, t := range m.tiles {
		if t.Cell != avoid {
			candidates = append(candidates, t.Cell)
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var carved []Cell
	for i := 0; i < n && i < len(candidates)-1; i++ {
		if m.Remove(candidates[i]) {
			carved = append(carved, candidates[i])
		}
	}
	return carved
}
