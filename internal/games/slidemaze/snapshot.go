package slidemaze

import "github.com/vovakirdan/slide-maze/internal/games/slidemaze/maze"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateDragging    GameStateType = "dragging"
	StateMoving      GameStateType = "moving"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateNoBoard     GameStateType = "no_board"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Seed    int64
	Solved  int      // Boards solved before this one
	Layout  []string // Committed board, top row first
	Player  maze.Cell
	Goal    maze.Cell
	Steps   int
	Drags   int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Variant: string(g.variant),
		Seed:    g.board.Seed,
		Solved:  g.solved,
		State:   StatePlaying,
	}
	if g.world == nil {
		snap.State = StateNoBoard
		return snap
	}

	stats := g.world.Stats()
	snap.Layout = g.world.Maze().Layout()
	snap.Player = g.world.Player().Cell
	if goal, ok := g.world.Maze().ByID(g.goal); ok {
		snap.Goal = goal.Cell
	}
	snap.Steps = stats.Steps
	snap.Drags = stats.Drags

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	case g.won:
		snap.State = StateSolved
	case g.world.Drag() != nil && g.world.Drag().State != maze.NotDragging:
		snap.State = StateDragging
	case g.world.Player().IsMoving():
		snap.State = StateMoving
	}
	return snap
}
