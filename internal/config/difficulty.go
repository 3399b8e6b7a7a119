package config

import (
	"math"
	"strings"
)

// DifficultyManager scales board parameters with the number of solved boards.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level in [0, 1] after solved boards.
func (d *DifficultyManager) Level(solved int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "solved" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(solved)/maxAt, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Holes returns the hole count for the next board.
func (d *DifficultyManager) Holes(base, solved int) int {
	return base + int(d.Level(solved)*float64(d.cfg.Scaling.ExtraHoles))
}

// Anchors returns the anchor count for the next board.
func (d *DifficultyManager) Anchors(base, solved int) int {
	return base + int(d.Level(solved)*float64(d.cfg.Scaling.ExtraAnchors))
}

// ApplyMazePreset modifies the config for a difficulty preset.
// Authored layouts keep their own size.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Grid.Size, cfg.Grid.Holes, cfg.Grid.Anchors = 4, 3, 0
		cfg.Player.Speed = 8
	case DifficultyNormal:
		cfg.Grid.Size, cfg.Grid.Holes, cfg.Grid.Anchors = 5, 4, 1
	case DifficultyHard:
		cfg.Grid.Size, cfg.Grid.Holes, cfg.Grid.Anchors = 6, 5, 3
		cfg.Player.Speed = 5
	}
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

func fieldsOf(row string) []string {
	return strings.Fields(row)
}
