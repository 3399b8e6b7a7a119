package maze

import (
	"errors"
	"fmt"
)

// ErrNoTileAtStart is returned when the player would start on a hole or
// outside the board.
var ErrNoTileAtStart = errors.New("maze: no tile at player start")

// DefaultDragThreshold is the cursor distance, in cells, a drag must cover
// before it locks onto an axis.
const DefaultDragThreshold = 0.1

// Options tunes a World.
type Options struct {
	DragThreshold float64 // Axis lock threshold in cells
	PlayerSpeed   float64 // Player speed in cells per second
}

// Stats counts what happened in a world since it was created.
type Stats struct {
	Moves   int // Accepted move requests
	Steps   int // Cells walked by the player
	Drags   int // Gestures released while locked to an axis
	Commits int
}

// World ties a maze to its player and drives both from input and ticks.
// It is not safe for concurrent use; the caller ticks it from one goroutine.
type World struct {
	maze      *Maze
	player    *Player
	drag      *DragSession
	threshold float64
	stats     Stats
}

// NewWorld places a player on the tile at start.
func NewWorld(m *Maze, start Cell, opts Options) (*World, error) {
	if _, ok := m.Tile(start); !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoTileAtStart, start)
	}
	if opts.DragThreshold <= 0 {
		opts.DragThreshold = DefaultDragThreshold
	}

	return &World{
		maze:      m,
		player:    NewPlayer(start, opts.PlayerSpeed),
		threshold: opts.DragThreshold,
	}, nil
}

// Maze returns the world's maze.
func (w *World) Maze() *Maze {
	return w.maze
}

// Player returns the world's player.
func (w *World) Player() *Player {
	return w.player
}

// Drag returns the active drag session, or nil.
func (w *World) Drag() *DragSession {
	return w.drag
}

// Stats returns the world's counters.
func (w *World) Stats() Stats {
	st := w.stats
	st.Steps = w.player.walked
	return st
}

// PlayerTile returns the tile the player currently rides.
func (w *World) PlayerTile() (*Tile, bool) {
	return w.maze.Tile(w.player.Cell)
}

// RequestMove sends the player along the shortest path to target.
// A request made mid-trace restarts from the player's current cell.
// It is a no-op while dragging, for missing tiles, or when no route exists.
func (w *World) RequestMove(target Cell) bool {
	if w.player.dragging {
		return false
	}
	from, ok := w.PlayerTile()
	if !ok {
		return false
	}
	to, ok := w.maze.Tile(target)
	if !ok {
		return false
	}
	path, ok := w.maze.FindPath(from, to)
	if !ok {
		return false
	}

	w.player.StartTrace(path.Cells())
	w.stats.Moves++
	return true
}

// BeginDrag starts a gesture on the tile at cell with the cursor at pos,
// both in maze units. It returns false when there is no tile there.
func (w *World) BeginDrag(cell Cell, cursor Vec2) bool {
	t, ok := w.maze.Tile(cell)
	if !ok {
		return false
	}
	w.drag = newDragSession(w.maze, t, cursor)
	return true
}

// UpdateDrag moves the cursor of the active gesture. It is ignored while the
// player is tracing a path.
func (w *World) UpdateDrag(cursor Vec2) {
	s := w.drag
	if s == nil || w.player.IsMoving() {
		return
	}

	w.player.dragging = true
	s.Delta = cursor.Sub(s.Start)
	s.lock(s.Delta, w.threshold)
	w.resolveDrag(s)
}

// EndDrag finishes the active gesture. A gesture that never locked an axis
// is a tap and moves the player to the tapped tile; otherwise the dragged
// positions are committed.
func (w *World) EndDrag() {
	s := w.drag
	if s == nil {
		return
	}
	w.drag = nil
	w.player.dragging = false

	if s.State == NotDragging {
		w.RequestMove(s.Origin.Cell)
		return
	}
	w.stats.Drags++
	w.Commit()
}

// Tick is the single per-frame step: the player converges and the active
// trace advances.
func (w *World) Tick(dt float64) {
	w.player.Tick(dt)
}
