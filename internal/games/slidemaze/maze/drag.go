package maze

import (
	"math"
)

// DragState is the axis lock of a drag gesture.
type DragState uint8

const (
	NotDragging DragState = iota
	DraggingHorizontally
	DraggingVertically
)

// String returns the drag state name.
func (s DragState) String() string {
	switch s {
	case NotDragging:
		return "NotDragging"
	case DraggingHorizontally:
		return "Horizontal"
	case DraggingVertically:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Axis returns the axis a locked state slides along.
func (s DragState) Axis() (Axis, bool) {
	switch s {
	case DraggingHorizontally:
		return AxisX, true
	case DraggingVertically:
		return AxisY, true
	default:
		return AxisX, false
	}
}

// DragSession is the transient state of one drag gesture.
type DragSession struct {
	Origin   *Tile
	Start    Vec2      // Cursor position at BeginDrag
	State    DragState // Current axis lock
	Delta    Vec2      // Last cursor offset from Start
	baseline []Vec2    // Committed position per TileID
}

func newDragSession(m *Maze, origin *Tile, cursor Vec2) *DragSession {
	s := &DragSession{
		Origin:   origin,
		Start:    cursor,
		baseline: make([]Vec2, m.Len()),
	}
	for _, t := range m.tiles {
		s.baseline[t.ID] = t.Rest()
	}
	return s
}

// lock updates the axis lock for a cursor offset. The lock is reconfirmable:
// dropping under the threshold on both axes returns to NotDragging and the
// axis is decided again the next time the threshold is crossed.
func (s *DragSession) lock(delta Vec2, threshold float64) {
	ax, ay := math.Abs(delta.X), math.Abs(delta.Y)
	if ax < threshold && ay < threshold {
		s.State = NotDragging
		return
	}
	if s.State != NotDragging {
		return
	}
	if ax > ay {
		s.State = DraggingHorizontally
	} else {
		s.State = DraggingVertically
	}
}

// resolveDrag recomputes every tile's visual position for the session's
// current delta. Logical cells are untouched.
func (w *World) resolveDrag(s *DragSession) {
	for _, t := range w.maze.tiles {
		w.placeTile(t, s.baseline[t.ID])
	}

	axis, ok := s.State.Axis()
	if !ok {
		return
	}
	w.push(s.Origin, axis, s.Delta.Component(axis))
}

// push slides the line of tiles starting at origin by d units along axis.
// Each pushed tile adds one unit of base displacement for the tiles behind
// it, so the line compresses instead of overlapping. The line is clamped
// against the nearest immovable tile, or the board edge when there is none.
func (w *World) push(origin *Tile, axis Axis, d float64) {
	if d == 0 {
		return
	}
	sign := 1
	if d < 0 {
		sign = -1
	}

	m := w.maze
	start := origin.Cell
	base := start.Coord(axis)
	obstacle, between := m.obstacle(start, axis, sign)
	span := float64(obstacle - base)

	pushed := 0
	for i := 0; ; i++ {
		cell := start.Along(axis, i*sign)
		if !m.InBounds(cell) {
			break
		}
		t, ok := m.Tile(cell)
		if !ok {
			continue
		}
		if t.Immovable {
			break
		}

		total := d + float64(pushed*sign)
		limit := span - float64((1+between-pushed)*sign)
		if sign > 0 {
			total = math.Min(total, limit)
		} else {
			total = math.Max(total, limit)
		}

		if float64(i) < math.Abs(total) {
			pos := start.Vec().WithComponent(axis, float64(base)+total)
			w.placeTile(t, pos)
			pushed++
		}
	}
}

// obstacle scans from start in the sign direction for the nearest immovable
// tile. The board edge counts as one sitting just outside the board. It also
// returns how many movable tiles lie strictly between start and the obstacle.
func (m *Maze) obstacle(start Cell, axis Axis, sign int) (coord, between int) {
	for i := 1; ; i++ {
		cell := start.Along(axis, i*sign)
		if !m.InBounds(cell) {
			return cell.Coord(axis), between
		}
		t, ok := m.Tile(cell)
		if !ok {
			continue
		}
		if t.Immovable {
			return cell.Coord(axis), between
		}
		between++
	}
}

// placeTile moves a tile's visual position and carries the player's visual
// along when the player rides that tile.
func (w *World) placeTile(t *Tile, pos Vec2) {
	t.Pos = pos
	if w.player.Cell == t.Cell {
		w.player.Pos = pos
	}
}
