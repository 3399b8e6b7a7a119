package slidemaze

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/slide-maze/internal/core"
	"github.com/vovakirdan/slide-maze/internal/games/slidemaze/maze"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		g.renderMessage(dst, "No board to play", "Check the maze config")
		return
	}
	if g.tooSmall {
		minW, minH := minScreen(g.board.Maze.Width(), g.board.Maze.Height())
		g.renderMessage(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.lay.frame(), core.ColorGray)
	g.renderBoard(dst)
	g.renderPlayer(dst)
	g.renderOverlays(dst)
	dst.DrawTextCentered(g.screenH-1, g.Controls(), core.ColorDim)
}

func (g *Game) renderMessage(dst *core.Screen, lines ...string) {
	y := g.screenH/2 - len(lines)/2
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line, core.ColorDefault)
	}
}

// renderHUD draws the title, counters and drag state.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightCyan)

	stats := g.world.Stats()
	left := fmt.Sprintf("Board %d  Steps %d  Drags %d", g.solved+1, stats.Steps, stats.Drags)
	frame := g.lay.frame()
	dst.DrawText(frame.X, 1, left)

	right := fmt.Sprintf("Seed %d", g.board.Seed)
	if s := g.world.Drag(); s != nil && s.State != maze.NotDragging {
		right = s.State.String()
	}
	dst.DrawTextColored(frame.Right()-utf8.RuneCountInString(right), 1, right, core.ColorGray)
}

// renderBoard draws holes, then resting tiles, then tiles displaced by a
// drag so they slide over their neighbours.
func (g *Game) renderBoard(dst *core.Screen) {
	m := g.world.Maze()
	for _, c := range m.Holes() {
		x, y := g.lay.center(c.Vec())
		dst.SetColored(x, y, '·', core.ColorDim)
	}

	reach := m.Reachable(g.playerTile())
	var moving []*maze.Tile
	for _, t := range m.Tiles() {
		if t.Offset() != (maze.Vec2{}) {
			moving = append(moving, t)
			continue
		}
		g.drawTile(dst, t, reach.Has(t.Cell))
	}
	for _, t := range moving {
		g.drawTile(dst, t, false)
	}

	for _, c := range g.world.Player().Trace() {
		x, y := g.lay.center(c.Vec())
		if dst.Get(x, y) == ' ' {
			dst.SetColored(x, y, '∙', core.ColorYellow)
		}
	}
}

func (g *Game) playerTile() *maze.Tile {
	t, ok := g.world.PlayerTile()
	if !ok {
		return nil
	}
	return t
}

// drawTile draws a tile at its visual position. Openings are gaps in the
// tile's border.
func (g *Game) drawTile(dst *core.Screen, t *maze.Tile, reachable bool) {
	color := core.ColorCyan
	switch {
	case t.Immovable:
		color = core.ColorOrange
	case reachable:
		color = core.ColorGreen
	}

	x, y := g.lay.toScreen(t.Pos)
	for i, row := range tileArt(t.Openings) {
		dst.DrawTextColored(x, y+i, row, color)
	}
	if t.Immovable {
		dst.SetColored(x+1, y+1, '#', color)
	}
	if t.ID == g.goal {
		dst.SetColored(x+tileW/2, y+tileH/2, '◎', core.ColorYellow)
	}
}

// tileArt returns the rows of a tile with the given openings.
func tileArt(o maze.Openings) [tileH]string {
	top, bottom := "┌───┐", "└───┘"
	if o.Has(maze.DirUp) {
		top = "┌─ ─┐"
	}
	if o.Has(maze.DirDown) {
		bottom = "└─ ─┘"
	}

	left, right := "│", "│"
	if o.Has(maze.DirLeft) {
		left = " "
	}
	if o.Has(maze.DirRight) {
		right = " "
	}
	return [tileH]string{top, left + "   " + right, bottom}
}

// renderPlayer draws the player token at its visual position.
func (g *Game) renderPlayer(dst *core.Screen) {
	x, y := g.lay.center(g.world.Player().Pos)
	dst.SetColored(x, y, '@', core.ColorBrightYellow)
}

// renderOverlays draws pause and solved overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	cx, cy := g.lay.frame().Center()

	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
		return
	}
	if g.won {
		stats := g.world.Stats()
		g.drawOverlay(dst, cx, cy,
			"SOLVED!",
			fmt.Sprintf("%d steps, %d drags", stats.Steps, stats.Drags),
			"Next board...",
		)
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, cx, cy int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(cx-(maxLen+4)/2, cy-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		x := cx - utf8.RuneCountInString(line)/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorBrightYellow)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Drag: Slide | Click/Arrows: Walk | R: Restart | N: New | P: Pause | Q: Quit"
}
