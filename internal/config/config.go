// Package config loads the maze configuration from YAML and manages
// difficulty presets and progression.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid maze config")

// MazeConfig contains all configuration for the sliding maze.
type MazeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Drag       DragConfig       `yaml:"drag"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig describes the board.
type GridConfig struct {
	Size    int      `yaml:"size"`    // Side length of a generated board
	Holes   int      `yaml:"holes"`   // Random empty cells
	Anchors int      `yaml:"anchors"` // Random immovable tiles
	Start   CellRef  `yaml:"start"`   // Player start cell
	Goal    CellRef  `yaml:"goal"`    // Goal cell; negative means the far corner
	Layout  []string `yaml:"layout"`  // Authored board, top row first; overrides Size
}

// CellRef is a grid cell in config form.
type CellRef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Unset reports whether the reference asks for the default cell.
func (c CellRef) Unset() bool {
	return c.X < 0 || c.Y < 0
}

// DragConfig tunes drag gestures.
type DragConfig struct {
	Threshold float64 `yaml:"threshold"` // Axis lock distance in cells
}

// PlayerConfig tunes the player token.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Cells per second
}

// DifficultyConfig defines how boards grow harder as the player solves them.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the difficulty level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "solved" or "none"
	MaxAt int    `yaml:"max_at"` // Boards solved at which max difficulty is reached
}

// ScalingConfig defines what is added at max difficulty.
type ScalingConfig struct {
	ExtraHoles   int `yaml:"extra_holes"`
	ExtraAnchors int `yaml:"extra_anchors"`
}

// Dimensions returns the board width and height the config describes.
func (c MazeConfig) Dimensions() (w, h int) {
	if len(c.Grid.Layout) > 0 {
		return len(fieldsOf(c.Grid.Layout[0])), len(c.Grid.Layout)
	}
	return c.Grid.Size, c.Grid.Size
}

// Validate checks the config for values the maze cannot be built from.
func (c MazeConfig) Validate() error {
	if len(c.Grid.Layout) == 0 && c.Grid.Size <= 0 {
		return fmt.Errorf("%w: grid.size must be positive, got %d", ErrInvalid, c.Grid.Size)
	}
	if c.Grid.Holes < 0 || c.Grid.Anchors < 0 {
		return fmt.Errorf("%w: grid.holes and grid.anchors must not be negative", ErrInvalid)
	}
	if c.Drag.Threshold <= 0 {
		return fmt.Errorf("%w: drag.threshold must be positive, got %g", ErrInvalid, c.Drag.Threshold)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("%w: player.speed must be positive, got %g", ErrInvalid, c.Player.Speed)
	}

	if len(c.Grid.Layout) > 0 {
		want := len(fieldsOf(c.Grid.Layout[0]))
		for i, row := range c.Grid.Layout {
			if got := len(fieldsOf(row)); got != want || got == 0 {
				return fmt.Errorf("%w: grid.layout row %d has %d columns, want %d", ErrInvalid, i, got, want)
			}
		}
	}

	w, h := c.Dimensions()
	if !c.Grid.Start.Unset() && (c.Grid.Start.X >= w || c.Grid.Start.Y >= h) {
		return fmt.Errorf("%w: grid.start (%d,%d) outside %dx%d board", ErrInvalid, c.Grid.Start.X, c.Grid.Start.Y, w, h)
	}
	if c.Grid.Holes+c.Grid.Anchors >= w*h {
		return fmt.Errorf("%w: %d holes and %d anchors leave no room on a %dx%d board", ErrInvalid, c.Grid.Holes, c.Grid.Anchors, w, h)
	}
	if n := c.tileCount() - c.Grid.Holes; n < 2 {
		return fmt.Errorf("%w: board needs at least two tiles, got %d", ErrInvalid, n)
	}
	if !c.Grid.Start.Unset() && c.Grid.Goal == c.Grid.Start {
		return fmt.Errorf("%w: grid.goal (%d,%d) is the start cell", ErrInvalid, c.Grid.Goal.X, c.Grid.Goal.Y)
	}
	return nil
}

// tileCount is the number of tiles before random holes are carved.
func (c MazeConfig) tileCount() int {
	if len(c.Grid.Layout) == 0 {
		return c.Grid.Size * c.Grid.Size
	}
	n := 0
	for _, row := range c.Grid.Layout {
		for _, tok := range fieldsOf(row) {
			if tok != "." {
				n++
			}
		}
	}
	return n
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset maps a preset name to a preset. Unknown names return "".
func ParsePreset(name string) DifficultyPreset {
	for _, p := range Presets {
		if string(p) == name {
			return p
		}
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
