package slidemaze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/slide-maze/internal/config"
	"github.com/vovakirdan/slide-maze/internal/games/slidemaze/maze"
)

// ErrNoGoal is returned when the start tile is the only tile on the board.
var ErrNoGoal = errors.New("slidemaze: no tile left for the goal")

// Board is a freshly built maze together with where the player starts and
// where the goal tile sits.
type Board struct {
	Maze  *maze.Maze
	Start maze.Cell
	Goal  maze.Cell
	Seed  int64
}

// BuildBoard builds the board a config describes. Generated boards and the
// random holes and anchors all draw from one source seeded with seed, so
// the same config and seed always give the same board.
func BuildBoard(cfg config.MazeConfig, seed int64, holes, anchors int) (Board, error) {
	rng := rand.New(rand.NewSource(seed))

	var (
		m   *maze.Maze
		err error
	)
	if len(cfg.Grid.Layout) > 0 {
		m, err = maze.ParseLayout(cfg.Grid.Layout)
	} else {
		m, err = maze.GenerateWith(cfg.Grid.Size, rng)
	}
	if err != nil {
		return Board{}, fmt.Errorf("slidemaze: build board: %w", err)
	}

	start := maze.C(0, 0)
	if !cfg.Grid.Start.Unset() {
		start = maze.C(cfg.Grid.Start.X, cfg.Grid.Start.Y)
	}
	if _, ok := m.Tile(start); !ok {
		return Board{}, fmt.Errorf("slidemaze: build board: %w: %v", maze.ErrNoTileAtStart, start)
	}

	maze.CarveHoles(m, rng, holes, start)
	maze.PlaceAnchors(m, rng, anchors, start)

	goal, ok := pickGoal(m, start, cfg.Grid.Goal)
	if !ok {
		return Board{}, fmt.Errorf("slidemaze: build board: %w", ErrNoGoal)
	}

	return Board{
		Maze:  m,
		Start: start,
		Goal:  goal,
		Seed:  seed,
	}, nil
}

// pickGoal returns the configured goal when a tile is there. Otherwise it
// falls back to the tile farthest from start, preferring the opposite
// corner and then the lowest tile ID. The goal is never the start cell;
// ok is false when start holds the only tile.
func pickGoal(m *maze.Maze, start maze.Cell, ref config.CellRef) (maze.Cell, bool) {
	if !ref.Unset() {
		c := maze.C(ref.X, ref.Y)
		if _, ok := m.Tile(c); ok && c != start {
			return c, true
		}
	}

	corner := maze.C(m.Width()-1-start.X, m.Height()-1-start.Y)
	if _, ok := m.Tile(corner); ok && corner != start {
		return corner, true
	}

	best, bestDist := start, 0
	for _, t := range m.Tiles() {
		if d := manhattan(start, t.Cell); d > bestDist {
			best, bestDist = t.Cell, d
		}
	}
	return best, bestDist > 0
}

func manhattan(a, b maze.Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
