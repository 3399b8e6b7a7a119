package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide-maze/internal/games/slidemaze"
	"github.com/vovakirdan/slide-maze/internal/registry"
	"github.com/vovakirdan/slide-maze/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show recorded runs for a variant",
	Long: `Display the most recent runs and totals for a variant
(default: slidemaze).

Examples:
  slidemaze history
  slidemaze history slidemaze_anchored --limit 20
  slidemaze history --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete every recorded run of the variant")
}

func runHistory(_ *cobra.Command, args []string) error {
	gameID := string(slidemaze.VariantClassic)
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'slidemaze list' to see them", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared run history for %s.\n", registry.Title(gameID))
		return nil
	}

	runs, err := store.RecentRuns(gameID, flagHistoryLimit)
	if err != nil {
		return err
	}
	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Run History - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'slidemaze play %s' to record the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-16s  %-20s  %4s  %5s  %5s  %-6s  %s\n", "Date", "Seed", "Size", "Steps", "Drags", "Solved", "Time")
	fmt.Printf("  %-16s  %-20s  %4s  %5s  %5s  %-6s  %s\n", "----", "----", "----", "-----", "-----", "------", "----")
	for _, r := range runs {
		solved := "-"
		if r.Solved {
			solved = "yes"
		}
		fmt.Printf("  %-16s  %-20d  %4d  %5d  %5d  %-6s  %d:%02d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Seed, r.Size, r.Steps, r.Drags, solved,
			r.Duration/60, r.Duration%60)
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Solved: %d  Steps: %d  Drags: %d\n", stats.Runs, stats.Solved, stats.TotalSteps, stats.TotalDrags)
	if stats.BestSteps > 0 {
		fmt.Printf("Best: %d steps\n", stats.BestSteps)
	}
	return nil
}
