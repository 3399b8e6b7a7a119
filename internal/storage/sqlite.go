// Package storage keeps the run history in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("storage: run not found")

const timeLayout = "2006-01-02 15:04:05.000000"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished play session. It records statistics only; the maze
// itself is never stored.
type Run struct {
	ID        string // UUID, assigned by SaveRun when empty
	GameID    string
	Seed      int64
	Size      int // Board side length
	Steps     int
	Drags     int
	Solved    bool
	Duration  int // Seconds
	CreatedAt time.Time
}

// GameStats aggregates the runs of one game.
type GameStats struct {
	GameID     string
	Runs       int
	Solved     int
	BestSteps  int // Fewest steps among solved runs, 0 if none
	TotalSteps int
	TotalDrags int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It expands a leading ~, creates parent directories and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			size INTEGER NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			drags INTEGER NOT NULL DEFAULT 0,
			solved INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, seed, size, steps, drags, solved, duration_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Seed, r.Size, r.Steps, r.Drags, r.Solved, r.Duration,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, game_id, seed, size, steps, drags, solved, duration_secs, created_at`

// RecentRuns returns the newest runs of a game, newest first.
// An empty gameID returns runs of every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunByID returns one run, or ErrNotFound.
func (s *Store) RunByID(id string) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, err
}

// GameStats aggregates every run of a game.
func (s *Store) GameStats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}
	var best sql.NullInt64
	var last any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(solved), 0),
		        MIN(CASE WHEN solved THEN steps END),
		        COALESCE(SUM(steps), 0),
		        COALESCE(SUM(drags), 0),
		        MAX(created_at)
		 FROM runs
		 WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.Solved, &best, &stats.TotalSteps, &stats.TotalDrags, &last)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		stats.BestSteps = int(best.Int64)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}

// ClearRuns deletes every run of a game.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	err := sc.Scan(&r.ID, &r.GameID, &r.Seed, &r.Size, &r.Steps, &r.Drags, &r.Solved, &r.Duration, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
