package maze

import (
	"fmt"
	"math"
)

// Cell is an integer grid coordinate.
// X increases to the right, Y increases upward (Up is +Y).
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring cell in the given direction.
func (c Cell) Step(d Dir) Cell {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Along returns the cell offset by n units along the axis.
func (c Cell) Along(a Axis, n int) Cell {
	if a == AxisX {
		return c.Add(n, 0)
	}
	return c.Add(0, n)
}

// Coord returns the cell's coordinate on the given axis.
func (c Cell) Coord(a Axis) int {
	if a == AxisX {
		return c.X
	}
	return c.Y
}

// Vec returns the continuous position of the cell's resting point.
func (c Cell) Vec() Vec2 {
	return Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// Vec2 is a continuous position in maze units. One unit is one cell.
type Vec2 struct {
	X float64
	Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dist returns the euclidean distance between two positions.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Lerp interpolates from v to o by t in [0, 1].
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Component returns the position's value on the given axis.
func (v Vec2) Component(a Axis) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// WithComponent returns a copy of v with the axis value replaced.
func (v Vec2) WithComponent(a Axis, val float64) Vec2 {
	if a == AxisX {
		v.X = val
	} else {
		v.Y = val
	}
	return v
}

// Round snaps a continuous position onto the grid.
// Halves round away from zero on each axis.
func Round(v Vec2) Cell {
	return Cell{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Axis is one of the two grid axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisX {
		return "X"
	}
	return "Y"
}

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Dirs is the neighbour enumeration order. Path ties are broken by it.
var Dirs = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// DirBetween returns the direction leading from one cell to an adjacent one.
// The second result is false when the cells are not 4-neighbours.
func DirBetween(from, to Cell) (Dir, bool) {
	for _, d := range Dirs {
		if from.Step(d) == to {
			return d, true
		}
	}
	return 0, false
}
