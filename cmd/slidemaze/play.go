package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide-maze/internal/config"
	"github.com/vovakirdan/slide-maze/internal/games/slidemaze"
	"github.com/vovakirdan/slide-maze/internal/platform/tui"
	"github.com/vovakirdan/slide-maze/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: slidemaze).

Controls:
  Mouse drag      - Slide a row or column
  Click           - Walk to a reachable tile
  Arrows/WASD     - Step to a connected neighbour
  R               - Restart the board
  N               - New board
  P               - Pause (Esc while paused: back)
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Small boards, no anchors
  normal - Holes and anchors grow as you solve boards
  hard   - Large boards, many anchors
  fixed  - No progression, config as written

Without --difficulty a picker is shown.

Examples:
  slidemaze play
  slidemaze play slidemaze_anchored
  slidemaze play --difficulty hard --seed 42
  slidemaze play --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags validates --config and the difficulty name and hands them
// to the game package. A nil preset means the picker should decide.
func applyGameFlags(difficulty string) (*config.DifficultyPreset, error) {
	if flagConfig != "" {
		if _, err := config.LoadMaze(flagConfig); err != nil {
			return nil, err
		}
	}
	slidemaze.SetConfigPath(flagConfig)

	if difficulty == "" {
		return nil, nil
	}
	preset := config.ParsePreset(difficulty)
	if preset == "" {
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}
	slidemaze.SetDifficultyPreset(preset)
	return &preset, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(slidemaze.VariantClassic)
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'slidemaze list' to see them", gameID)
	}

	preset, err := applyGameFlags(flagDifficulty)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	if preset == nil {
		preset, err = tui.RunDifficultySelector(registry.Title(gameID), cfg)
		if err != nil {
			return err
		}
		if preset == nil {
			return nil
		}
		slidemaze.SetDifficultyPreset(*preset)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog := tuiLogger()
	defer closeLog()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("playing", "game", gameID, "difficulty", *preset, "seed", cfg.Seed)
	if _, err := tui.Run(game, store, logger, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return err
	}
	return nil
}
