package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			Size:    5,
			Holes:   4,
			Anchors: 1,
			Start:   CellRef{X: 0, Y: 0},
			Goal:    CellRef{X: -1, Y: -1},
		},
		Drag: DragConfig{
			Threshold: 0.1,
		},
		Player: PlayerConfig{
			Speed: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "solved",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				ExtraHoles:   3,
				ExtraAnchors: 3,
			},
		},
	}
}
