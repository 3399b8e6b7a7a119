// slidemaze is a sliding-tile maze played in the terminal: drag rows and
// columns of tiles to connect paths, then walk to the goal.
//
// Usage:
//
//	slidemaze list              - List available variants
//	slidemaze play [variant]    - Play a variant (default: slidemaze)
//	slidemaze menu              - Pick variants interactively
//	slidemaze gen               - Print a generated board
//	slidemaze history [variant] - Show recorded runs
//	slidemaze serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.slidemaze/history.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
//	--log-file <path>    - Write logs to a file while a board is on screen
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide-maze/internal/core"
	"github.com/vovakirdan/slide-maze/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/slide-maze/internal/games/slidemaze"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slidemaze",
	Short: "Slide Maze - drag tiles, connect paths, reach the goal",
	Long: `Slide Maze is a sliding-tile puzzle for the terminal.

Drag a tile to slide its whole row or column; anchored tiles and the
board edge stop the slide. Click a reachable tile or use the arrow keys
to walk. Reach the goal tile to move on to the next board.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  gen      - Print a generated board
  history  - View recorded runs
  serve    - Start SSH server for remote play

Examples:
  slidemaze play
  slidemaze play slidemaze_anchored --difficulty hard
  slidemaze gen --size 6 --seed 42
  slidemaze serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slidemaze/history.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the TUI is running")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// tuiLogger returns a logger for commands that own the terminal. Without
// --log-file the output is discarded. The returned func closes the file.
func tuiLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	return newLogger(f, "slidemaze"), func() { f.Close() }
}

// runtimeConfig returns the global flags sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the run history. A failure is logged and play goes on
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		return nil
	}
	return store
}
