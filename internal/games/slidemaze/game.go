// Package slidemaze adapts the sliding-tile maze engine to the platform's
// Game interface: it turns pointer and key input into drags and moves, and
// moves on to a new board when the player reaches the goal.
package slidemaze

import (
	"math/rand"

	"github.com/vovakirdan/slide-maze/internal/config"
	"github.com/vovakirdan/slide-maze/internal/core"
	"github.com/vovakirdan/slide-maze/internal/games/slidemaze/maze"
	"github.com/vovakirdan/slide-maze/internal/registry"
)

// Variant selects how boards are dressed.
type Variant string

const (
	VariantClassic  Variant = "slidemaze"
	VariantAnchored Variant = "slidemaze_anchored"
)

// solvedTicks is how long the solved overlay stays before the next board.
const solvedTicks = 90

// Game is one play session: a sequence of boards, each played until the
// player reaches its goal tile.
type Game struct {
	variant Variant
	rng     *rand.Rand
	tick    uint64

	cfg        config.MazeConfig
	difficulty *config.DifficultyManager
	tickRate   int

	board  Board
	world  *maze.World
	goal   maze.TileID
	lay    boardLayout
	solved int // Boards solved this session

	screenW int
	screenH int

	won         bool // Current board solved
	wonTicks    int
	paused      bool
	tooSmall    bool
	buildFailed bool
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a classic sliding maze game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewAnchored creates a game whose boards carry extra anchors.
func NewAnchored() *Game {
	return &Game{variant: VariantAnchored}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantAnchored), func() registry.Game {
		return NewAnchored()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantAnchored {
		return "Slide Maze (Anchored)"
	}
	return "Slide Maze"
}

// Reset starts a new session. The first board is built from cfg.Seed;
// later boards draw their seeds from the session source.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.solved = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	mc, err := config.LoadMaze(configPath)
	if err != nil {
		mc = config.DefaultMazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMazePreset(&mc, difficultyPreset)
	}
	g.cfg = mc
	g.difficulty = config.NewDifficultyManager(mc.Difficulty)

	g.newBoard(cfg.Seed)
}

// anchorCount returns the anchors for the next board.
func (g *Game) anchorCount() int {
	n := g.difficulty.Anchors(g.cfg.Grid.Anchors, g.solved)
	if g.variant == VariantAnchored {
		w, _ := g.cfg.Dimensions()
		n += core.Max(1, w/2)
	}
	return n
}

// newBoard builds and enters the board for seed. A config the board cannot
// be built from falls back to the defaults.
func (g *Game) newBoard(seed int64) {
	holes := g.difficulty.Holes(g.cfg.Grid.Holes, g.solved)
	b, err := BuildBoard(g.cfg, seed, holes, g.anchorCount())
	if err != nil {
		g.cfg = config.DefaultMazeConfig()
		g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
		b, err = BuildBoard(g.cfg, seed, g.cfg.Grid.Holes, g.anchorCount())
	}
	g.buildFailed = err != nil
	if g.buildFailed {
		g.world = nil
		return
	}
	g.enter(b)
}

// enter places the player on a built board.
func (g *Game) enter(b Board) {
	w, err := maze.NewWorld(b.Maze, b.Start, maze.Options{
		DragThreshold: g.cfg.Drag.Threshold,
		PlayerSpeed:   g.cfg.Player.Speed,
	})
	if err != nil {
		g.buildFailed = true
		g.world = nil
		return
	}

	g.board = b
	g.world = w
	goal, _ := b.Maze.Tile(b.Goal)
	g.goal = goal.ID
	g.won = false
	g.wonTicks = 0
	g.lay = newBoardLayout(g.screenW, g.screenH, b.Maze.Width(), b.Maze.Height())
	g.checkScreenSize()
	g.checkSolved()
}

// Resize follows a terminal resize, keeping the board and the player.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.world == nil {
		return
	}
	g.lay = newBoardLayout(w, h, g.board.Maze.Width(), g.board.Maze.Height())
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW, minH := minScreen(g.board.Maze.Width(), g.board.Maze.Height())
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.world == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.newBoard(g.board.Seed)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionRegenerate):
		g.newBoard(g.rng.Int63())
		return core.StepResult{State: g.State()}
	}

	if g.won {
		g.wonTicks++
		if g.wonTicks >= solvedTicks {
			g.solved++
			g.newBoard(g.rng.Int63())
		}
		return core.StepResult{State: g.State()}
	}

	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}
	g.handleKeys(in)

	g.world.Tick(1.0 / float64(g.tickRate))
	g.checkSolved()

	return core.StepResult{State: g.State()}
}

// handlePointer feeds one mouse event to the drag gesture.
func (g *Game) handlePointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerPress:
		if cell, ok := g.lay.cellAt(ev.X, ev.Y); ok {
			g.world.BeginDrag(cell, g.lay.toMaze(ev.X, ev.Y))
		}
	case core.PointerDrag:
		if g.world.Drag() != nil {
			g.world.UpdateDrag(g.lay.toMaze(ev.X, ev.Y))
		}
	case core.PointerRelease:
		g.world.EndDrag()
	}
}

// handleKeys walks one cell per key press when the player is idle.
func (g *Game) handleKeys(in core.InputFrame) {
	p := g.world.Player()
	if p.IsMoving() || g.world.Drag() != nil {
		return
	}

	var (
		dir maze.Dir
		ok  bool
	)
	switch {
	case in.Has(core.ActionUp):
		dir, ok = maze.DirUp, true
	case in.Has(core.ActionDown):
		dir, ok = maze.DirDown, true
	case in.Has(core.ActionLeft):
		dir, ok = maze.DirLeft, true
	case in.Has(core.ActionRight):
		dir, ok = maze.DirRight, true
	}
	if !ok {
		return
	}

	g.world.RequestMove(p.Cell.Step(dir))
}

// checkSolved marks the board solved once the player rests on the goal
// tile. The goal is tracked by tile, so it moves with drags.
func (g *Game) checkSolved() {
	if g.won {
		return
	}
	p := g.world.Player()
	if p.IsMoving() || p.Dragging() || p.Pos != p.Target() {
		return
	}
	if t, ok := g.world.PlayerTile(); ok && t.ID == g.goal {
		g.won = true
		g.wonTicks = 0
	}
}

// World exposes the current board's world, or nil when no board could be
// built.
func (g *Game) World() *maze.World {
	return g.world
}

// Board returns the board being played.
func (g *Game) Board() Board {
	return g.board
}

// Solved returns how many boards were solved this session.
func (g *Game) Solved() int {
	return g.solved
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Seed:   g.board.Seed,
		Solved: g.won,
		Paused: g.paused || g.tooSmall || g.buildFailed,
	}
	if g.world != nil {
		stats := g.world.Stats()
		st.Size = g.board.Maze.Width()
		st.Steps = stats.Steps
		st.Drags = stats.Drags
	}
	return st
}
