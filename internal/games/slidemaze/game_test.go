package slidemaze

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/slide-maze/internal/config"
	"github.com/vovakirdan/slide-maze/internal/core"
	"github.com/vovakirdan/slide-maze/internal/games/slidemaze/maze"
	"github.com/vovakirdan/slide-maze/internal/registry"
)

// useConfig points the game at a temporary maze config for one test.
func useConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

const corridorConfig = `
grid:
  layout:
    - "R LR L"
  holes: 0
  anchors: 0
  start: {x: 0, y: 0}
  goal: {x: -1, y: -1}
difficulty:
  enabled: false
`

func newGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	if g.World() == nil {
		t.Fatal("Reset built no board")
	}
	return g
}

func pointerFrame(kind core.PointerKind, x, y int) core.InputFrame {
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: kind, X: x, Y: y})
	return in
}

func actionFrame(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// runUntil steps with empty input until done reports true.
func runUntil(t *testing.T, g *Game, done func() bool) {
	t.Helper()
	for n := 0; !done(); n++ {
		if n > 1000 {
			t.Fatal("condition never reached")
		}
		g.Step(core.NewInputFrame())
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"slidemaze", "slidemaze_anchored"} {
		if !registry.Exists(id) {
			t.Errorf("registry.Exists(%q) = false, expected true", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestDeterministicReset(t *testing.T) {
	a := newGame(t, New(), 42).Snapshot()
	b := newGame(t, New(), 42).Snapshot()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave different snapshots:\n%v\n%v", a, b)
	}

	c := newGame(t, New(), 43).Snapshot()
	if reflect.DeepEqual(a.Layout, c.Layout) {
		t.Errorf("seeds 42 and 43 gave the same layout %v", a.Layout)
	}
}

func TestBuildBoardFromLayout(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Grid.Layout = []string{"DR DL", "UR UL"}

	b, err := BuildBoard(cfg, 1, 0, 0)
	if err != nil {
		t.Fatalf("BuildBoard: %v", err)
	}
	if b.Start != maze.C(0, 0) {
		t.Errorf("Start = %v, expected (0,0)", b.Start)
	}
	if b.Goal != maze.C(1, 1) {
		t.Errorf("Goal = %v, expected the opposite corner (1,1)", b.Goal)
	}
	if got := b.Maze.Layout(); !reflect.DeepEqual(got, cfg.Grid.Layout) {
		t.Errorf("Layout() = %v, expected %v", got, cfg.Grid.Layout)
	}
}

func TestBuildBoardStartOnHole(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Grid.Layout = []string{". -"}

	if _, err := BuildBoard(cfg, 1, 0, 0); err == nil {
		t.Error("expected error for a start cell without a tile")
	}
}

func TestPickGoalFallsBackToFarthestTile(t *testing.T) {
	m, err := maze.ParseLayout([]string{
		"- - .",
		"- - -",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}

	tests := []struct {
		name     string
		ref      config.CellRef
		expected maze.Cell
	}{
		{"configured goal", config.CellRef{X: 1, Y: 0}, maze.C(1, 0)},
		{"configured hole falls back", config.CellRef{X: 2, Y: 1}, maze.C(1, 1)},
		{"unset uses farthest tile", config.CellRef{X: -1, Y: -1}, maze.C(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickGoal(m, maze.C(0, 0), tt.ref)
			if !ok || got != tt.expected {
				t.Errorf("pickGoal() = %v, %v, expected %v, true", got, ok, tt.expected)
			}
		})
	}
}

func TestGoalNeverOnCentredStart(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Grid.Size = 3
	cfg.Grid.Holes, cfg.Grid.Anchors = 0, 0
	cfg.Grid.Start = config.CellRef{X: 1, Y: 1}

	for seed := int64(1); seed <= 20; seed++ {
		b, err := BuildBoard(cfg, seed, 0, 0)
		if err != nil {
			t.Fatalf("BuildBoard(seed %d): %v", seed, err)
		}
		if b.Goal == b.Start {
			t.Fatalf("seed %d: goal %v is the start cell", seed, b.Goal)
		}
		if _, ok := b.Maze.Tile(b.Goal); !ok {
			t.Errorf("seed %d: no tile at goal %v", seed, b.Goal)
		}
	}
}

func TestCentredStartIsNotSolvedOnEntry(t *testing.T) {
	useConfig(t, `
grid:
  size: 3
  holes: 0
  anchors: 0
  start: {x: 1, y: 1}
  goal: {x: -1, y: -1}
difficulty:
  enabled: false
`)
	g := newGame(t, New(), 7)
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Solved {
		t.Error("a fresh board should not be solved")
	}
}

func TestPickGoalSkipsStart(t *testing.T) {
	m, err := maze.ParseLayout([]string{
		". . .",
		". - -",
		". . .",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}

	got, ok := pickGoal(m, maze.C(1, 1), config.CellRef{X: 1, Y: 1})
	if !ok || got != maze.C(2, 1) {
		t.Errorf("pickGoal() = %v, %v, expected (2,1), true", got, ok)
	}

	m.Remove(maze.C(2, 1))
	if got, ok := pickGoal(m, maze.C(1, 1), config.CellRef{X: -1, Y: -1}); ok {
		t.Errorf("pickGoal() = %v on a one-tile board, expected no goal", got)
	}
}

func TestBuildBoardWithOnlyStartTile(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Grid.Layout = []string{"- ."}

	if _, err := BuildBoard(cfg, 1, 0, 0); !errors.Is(err, ErrNoGoal) {
		t.Errorf("BuildBoard() = %v, expected ErrNoGoal", err)
	}
}

func TestTapWalksToGoalAndSolves(t *testing.T) {
	useConfig(t, corridorConfig)
	g := newGame(t, New(), 1)

	if goal := g.Snapshot().Goal; goal != maze.C(2, 0) {
		t.Fatalf("Goal = %v, expected (2,0)", goal)
	}

	x, y := g.lay.center(maze.C(2, 0).Vec())
	g.Step(pointerFrame(core.PointerPress, x, y))
	g.Step(pointerFrame(core.PointerRelease, x, y))

	runUntil(t, g, func() bool { return g.State().Solved })

	st := g.State()
	if st.Steps != 2 {
		t.Errorf("Steps = %d, expected 2", st.Steps)
	}
	if st.Drags != 0 {
		t.Errorf("Drags = %d, expected 0", st.Drags)
	}
	if g.Snapshot().State != StateSolved {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StateSolved)
	}

	// The solved overlay hands over to the next board.
	runUntil(t, g, func() bool { return !g.State().Solved })
	if g.Solved() != 1 {
		t.Errorf("Solved() = %d, expected 1", g.Solved())
	}
	if g.World().Player().Cell != maze.C(0, 0) {
		t.Errorf("player on next board at %v, expected start (0,0)", g.World().Player().Cell)
	}
}

func TestArrowKeysStepOneCell(t *testing.T) {
	useConfig(t, corridorConfig)
	g := newGame(t, New(), 1)

	g.Step(actionFrame(core.ActionRight))
	runUntil(t, g, func() bool { return !g.World().Player().IsMoving() })
	if got := g.World().Player().Cell; got != maze.C(1, 0) {
		t.Errorf("player at %v, expected (1,0)", got)
	}

	// Off the board: no move.
	g.Step(actionFrame(core.ActionUp))
	if g.World().Player().IsMoving() {
		t.Error("moved through a wall")
	}
}

func TestPointerDragSlidesRow(t *testing.T) {
	useConfig(t, `
grid:
  layout:
    - "- - ."
  holes: 0
  anchors: 0
difficulty:
  enabled: false
`)
	g := newGame(t, New(), 1)

	fromX, fromY := g.lay.center(maze.C(0, 0).Vec())
	toX, toY := g.lay.center(maze.C(2, 0).Vec())

	g.Step(pointerFrame(core.PointerPress, fromX, fromY))
	g.Step(pointerFrame(core.PointerDrag, toX, toY))
	if g.Snapshot().State != StateDragging {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StateDragging)
	}
	g.Step(pointerFrame(core.PointerRelease, toX, toY))

	snap := g.Snapshot()
	if !reflect.DeepEqual(snap.Layout, []string{". - -"}) {
		t.Errorf("Layout = %v, expected [. - -]", snap.Layout)
	}
	if snap.Player != maze.C(1, 0) {
		t.Errorf("Player = %v, expected (1,0)", snap.Player)
	}
	if snap.Goal != maze.C(2, 0) {
		t.Errorf("Goal = %v, expected the goal tile to ride to (2,0)", snap.Goal)
	}
	if snap.Drags != 1 {
		t.Errorf("Drags = %d, expected 1", snap.Drags)
	}
}

func TestPauseFreezesInput(t *testing.T) {
	useConfig(t, corridorConfig)
	g := newGame(t, New(), 1)

	g.Step(actionFrame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	g.Step(actionFrame(core.ActionRight))
	if g.World().Player().IsMoving() {
		t.Error("input handled while paused")
	}

	g.Step(actionFrame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestRestartAndRegenerate(t *testing.T) {
	g := newGame(t, New(), 7)
	first := g.Snapshot()

	g.Step(actionFrame(core.ActionRestart))
	if got := g.Snapshot(); got.Seed != first.Seed || !reflect.DeepEqual(got.Layout, first.Layout) {
		t.Errorf("restart changed the board: seed %d -> %d", first.Seed, got.Seed)
	}

	g.Step(actionFrame(core.ActionRegenerate))
	if got := g.Snapshot(); got.Seed == first.Seed {
		t.Errorf("regenerate kept seed %d", got.Seed)
	}
}

func TestAnchoredVariantAddsAnchors(t *testing.T) {
	useConfig(t, `
grid:
  size: 5
  holes: 2
  anchors: 0
difficulty:
  enabled: false
`)
	classic := newGame(t, New(), 3)
	anchored := newGame(t, NewAnchored(), 3)

	if n := len(classic.World().Maze().Anchors()); n != 0 {
		t.Errorf("classic anchors = %d, expected 0", n)
	}
	if n := len(anchored.World().Maze().Anchors()); n != 2 {
		t.Errorf("anchored anchors = %d, expected 2", n)
	}
}

func TestDifficultyPresetApplied(t *testing.T) {
	SetDifficultyPreset(config.DifficultyHard)
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newGame(t, New(), 5)
	if w := g.World().Maze().Width(); w != 6 {
		t.Errorf("Width() = %d, expected 6 for the hard preset", w)
	}
}

func TestTooSmallScreenPauses(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Error("expected paused on a small screen")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too-small message")
	}
}

func TestRenderDrawsPlayerAndGoal(t *testing.T) {
	useConfig(t, corridorConfig)
	g := newGame(t, New(), 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	px, py := g.lay.center(maze.C(0, 0).Vec())
	if r := screen.Get(px, py); r != '@' {
		t.Errorf("player cell = %q, expected '@'", r)
	}
	gx, gy := g.lay.center(maze.C(2, 0).Vec())
	if r := screen.Get(gx, gy); r != '◎' {
		t.Errorf("goal cell = %q, expected '◎'", r)
	}
	if !strings.Contains(screen.String(), "Slide Maze") {
		t.Error("expected title in HUD")
	}
}

func TestTileArtOpenings(t *testing.T) {
	tests := []struct {
		openings maze.Openings
		expected [tileH]string
	}{
		{maze.OpenNone, [tileH]string{"┌───┐", "│   │", "└───┘"}},
		{maze.OpenAll, [tileH]string{"┌─ ─┐", "     ", "└─ ─┘"}},
		{maze.OpenLeft | maze.OpenDown, [tileH]string{"┌───┐", "    │", "└─ ─┘"}},
	}
	for _, tt := range tests {
		if got := tileArt(tt.openings); got != tt.expected {
			t.Errorf("tileArt(%v) = %q, expected %q", tt.openings, got, tt.expected)
		}
	}
}

func TestLayoutMapping(t *testing.T) {
	lay := newBoardLayout(80, 24, 4, 3)

	for _, c := range []maze.Cell{maze.C(0, 0), maze.C(3, 0), maze.C(1, 2), maze.C(3, 2)} {
		x, y := lay.center(c.Vec())
		got, ok := lay.cellAt(x, y)
		if !ok || got != c {
			t.Errorf("cellAt(center(%v)) = %v, %v, expected %v", c, got, ok, c)
		}
		if v := lay.toMaze(x, y); v != c.Vec() {
			t.Errorf("toMaze(center(%v)) = %v, expected %v", c, v, c.Vec())
		}
	}

	frame := lay.frame()
	if _, ok := lay.cellAt(frame.X, frame.Y); ok {
		t.Error("frame corner mapped to a cell")
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newGame(t, New(), 9)
	before := g.Snapshot()

	g.Resize(20, 10)
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}

	g.Resize(100, 40)
	after := g.Snapshot()
	if after.State != StatePlaying {
		t.Errorf("State = %s, expected %s", after.State, StatePlaying)
	}
	if !reflect.DeepEqual(before.Layout, after.Layout) || before.Seed != after.Seed {
		t.Error("resize rebuilt the board")
	}
}

func TestArrowKeyWalksAroundWall(t *testing.T) {
	// (0,0) and (1,0) share no opening but are linked over the top row.
	useConfig(t, `
grid:
  layout:
    - "DR DL"
    - "U  U"
  holes: 0
  anchors: 0
difficulty:
  enabled: false
`)
	g := newGame(t, New(), 1)

	g.Step(actionFrame(core.ActionRight))
	if !g.World().Player().IsMoving() {
		t.Fatal("right arrow should start a walk")
	}

	visitedTop := false
	runUntil(t, g, func() bool {
		if g.World().Player().Cell == maze.C(0, 1) {
			visitedTop = true
		}
		return !g.World().Player().IsMoving()
	})
	if got := g.World().Player().Cell; got != maze.C(1, 0) {
		t.Errorf("player at %v, expected (1,0)", got)
	}
	if !visitedTop {
		t.Error("walk should pass over the top row")
	}
	if st := g.State(); st.Steps != 3 {
		t.Errorf("Steps = %d, expected 3", st.Steps)
	}
}
