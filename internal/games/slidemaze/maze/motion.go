package maze

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultPlayerSpeed is the player's visual speed in cells per second.
const DefaultPlayerSpeed = 6.0

// Player is the token walking the maze. Cell is where the player logically
// is; Pos converges toward it every tick.
type Player struct {
	Cell  Cell
	Pos   Vec2
	Speed float64

	dragging bool
	trace    []Cell // Active trace, nil when idle
	step     int    // Index in trace of the cell being approached
	walked   int    // Trace steps taken so far

	tween *gween.Tween
	from  Vec2 // Tween start
	to    Vec2 // Tween target
	last  Vec2 // Pos written by the tween, to notice external moves
}

// NewPlayer places a player at rest on a cell.
func NewPlayer(cell Cell, speed float64) *Player {
	if speed <= 0 {
		speed = DefaultPlayerSpeed
	}
	return &Player{
		Cell:  cell,
		Pos:   cell.Vec(),
		Speed: speed,
	}
}

// IsMoving reports whether a trace is in progress.
func (p *Player) IsMoving() bool {
	return p.trace != nil
}

// Dragging reports whether a drag gesture is holding the player.
func (p *Player) Dragging() bool {
	return p.dragging
}

// Target returns the visual position the player is converging to.
func (p *Player) Target() Vec2 {
	return p.Cell.Vec()
}

// Trace returns the remaining cells of the active trace, starting with the
// cell currently being approached.
func (p *Player) Trace() []Cell {
	if p.trace == nil {
		return nil
	}
	return p.trace[p.step:]
}

// StartTrace walks the player along cells. An active trace is dropped
// immediately; the player's current cell is the first step of the new one.
func (p *Player) StartTrace(cells []Cell) {
	p.trace = nil
	p.step = 0
	if len(cells) == 0 {
		return
	}
	p.trace = append([]Cell(nil), cells...)
	p.Cell = p.trace[0]
}

// Cancel drops the active trace, leaving the player on its current cell.
func (p *Player) Cancel() {
	p.trace = nil
	p.step = 0
}

// Tick advances the player by dt seconds: the visual position moves toward
// the logical cell, then the trace advances once the cell is reached.
func (p *Player) Tick(dt float64) {
	if !p.dragging {
		p.moveTowards(dt)
	}
	p.advance()
}

// advance resumes the trace when the current step has been reached.
// Reaching the last cell ends the trace.
func (p *Player) advance() {
	for p.trace != nil && p.Pos == p.Target() {
		p.step++
		if p.step >= len(p.trace) {
			p.trace = nil
			p.step = 0
			return
		}
		p.Cell = p.trace[p.step]
		p.walked++
	}
}

// moveTowards moves Pos toward the target at Speed cells per second, using a
// linear tween so the final frame lands on the target exactly.
func (p *Player) moveTowards(dt float64) {
	target := p.Target()
	if p.Pos == target {
		p.tween = nil
		return
	}

	if p.tween == nil || p.to != target || p.last != p.Pos {
		dist := p.Pos.Dist(target)
		p.from = p.Pos
		p.to = target
		p.tween = gween.New(0, 1, float32(dist/p.Speed), ease.Linear)
	}

	t, done := p.tween.Update(float32(dt))
	if done {
		p.Pos = target
		p.tween = nil
	} else {
		p.Pos = p.from.Lerp(p.to, float64(t))
	}
	p.last = p.Pos
}
