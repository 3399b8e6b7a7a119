package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks
// per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what a game reports to the platform after each step.
type GameState struct {
	Seed   int64 // Seed the current board was built from
	Size   int   // Board side length
	Steps  int   // Cells walked on the current board
	Drags  int   // Drags committed on the current board
	Solved bool  // Player reached the goal tile
	Paused bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
