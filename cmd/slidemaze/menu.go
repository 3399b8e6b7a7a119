package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide-maze/internal/games/slidemaze"
	"github.com/vovakirdan/slide-maze/internal/platform/tui"
	"github.com/vovakirdan/slide-maze/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the run
history. Pause a board and press Esc to come back to the menu.

Examples:
  slidemaze menu
  slidemaze menu --difficulty easy
  slidemaze menu --db ./history.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := applyGameFlags(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog := tuiLogger()
	defer closeLog()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsHistory {
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		// The picker runs for every game unless --difficulty was given.
		if preset == nil {
			picked, err := tui.RunDifficultySelector(registry.Title(result.GameID), cfg)
			if err != nil {
				return err
			}
			if picked == nil {
				continue
			}
			slidemaze.SetDifficultyPreset(*picked)
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("could not create game", "game", result.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		backToMenu, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !backToMenu {
			return nil
		}
	}
}
