package slidemaze

import (
	"math"

	"github.com/vovakirdan/slide-maze/internal/core"
	"github.com/vovakirdan/slide-maze/internal/games/slidemaze/maze"
)

const (
	tileW     = 5 // Screen columns per tile
	tileH     = 3 // Screen rows per tile
	hudHeight = 2
)

// boardLayout maps between screen characters and maze units. Maze rows
// grow upward, screen rows grow downward.
type boardLayout struct {
	x, y int // Screen position of the top-left tile character
	w, h int // Board size in cells
}

func newBoardLayout(screenW, screenH, w, h int) boardLayout {
	bw, bh := w*tileW, h*tileH
	free := screenH - hudHeight - bh - 3 // frame and controls line
	return boardLayout{
		x: (screenW - bw) / 2,
		y: hudHeight + 1 + core.Max(free/2, 0),
		w: w,
		h: h,
	}
}

// minScreen returns the smallest screen a w x h board fits on.
func minScreen(w, h int) (int, int) {
	return core.Max(w*tileW+2, 40), hudHeight + h*tileH + 3
}

// frame is the outline drawn around the board.
func (l boardLayout) frame() core.Rect {
	return core.NewRect(l.x-1, l.y-1, l.w*tileW+2, l.h*tileH+2)
}

func (l boardLayout) interior() core.Rect {
	return l.frame().Inset(1)
}

// cellAt returns the board cell under a screen character.
func (l boardLayout) cellAt(sx, sy int) (maze.Cell, bool) {
	if !l.interior().Contains(sx, sy) {
		return maze.Cell{}, false
	}
	col := (sx - l.x) / tileW
	row := (sy - l.y) / tileH
	return maze.C(col, l.h-1-row), true
}

// toMaze converts a screen character to a continuous maze position, with
// the center character of a tile landing exactly on its cell.
func (l boardLayout) toMaze(sx, sy int) maze.Vec2 {
	mx := float64(sx-l.x-tileW/2) / tileW
	my := float64(l.h-1) - float64(sy-l.y-tileH/2)/tileH
	return maze.V(mx, my)
}

// toScreen returns the top-left screen character of a tile drawn at the
// visual position p.
func (l boardLayout) toScreen(p maze.Vec2) (int, int) {
	sx := l.x + int(math.Round(p.X*tileW))
	sy := l.y + int(math.Round((float64(l.h-1)-p.Y)*tileH))
	return sx, sy
}

// center returns the middle screen character of a tile drawn at p.
func (l boardLayout) center(p maze.Vec2) (int, int) {
	sx, sy := l.toScreen(p)
	return sx + tileW/2, sy + tileH/2
}
