// Package storage provides SQLite-based persistence for the minigame run
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gros-nounours/internal/session"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry is one stored minigame run.
type RunEntry struct {
	ID        int64
	RunID     string
	SessionID string
	Zone      string
	Minigame  string
	Outcome   session.Outcome
	Coins     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			session_id TEXT NOT NULL,
			zone TEXT NOT NULL,
			minigame TEXT NOT NULL,
			outcome TEXT NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_minigame ON runs(minigame);
		CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(minigame, outcome, coins DESC);
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

// SaveRun records a finished run. It implements session.RunRecorder.
func (s *Store) SaveRun(run session.Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, session_id, zone, minigame, outcome, coins, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SessionID, run.Zone, run.Minigame, string(run.Outcome),
		run.Coins, run.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// Ensure Store implements RunRecorder
var _ session.RunRecorder = (*Store)(nil)

const runColumns = `id, run_id, session_id, zone, minigame, outcome, coins, duration_ms, created_at`

// TopRuns retrieves the best completed runs for a minigame: most coins
// first, then fastest.
func (s *Store) TopRuns(minigame string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE minigame = ? AND outcome = ?
		 ORDER BY coins DESC, duration_ms ASC, id ASC
		 LIMIT ?`,
		minigame, string(session.OutcomeCompleted), limit,
	)
}

// RecentRuns retrieves the most recent runs across all minigames.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// SessionRuns retrieves every run of one session in play order.
func (s *Store) SessionRuns(sessionID string) ([]RunEntry, error) {
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var outcome string
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.SessionID, &e.Zone, &e.Minigame,
			&outcome, &e.Coins, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Outcome = session.Outcome(outcome)
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearRuns deletes all runs for the given minigame.
func (s *Store) ClearRuns(minigame string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE minigame = ?", minigame)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// MinigameStats contains aggregated statistics for a minigame.
type MinigameStats struct {
	Minigame     string
	Plays        int
	Completions  int
	BestCoins    int
	TotalCoins   int64
	BestDuration time.Duration // Fastest completion, 0 if never completed
	LastPlayed   time.Time
}

const statsQuery = `
	SELECT minigame,
	       COUNT(*),
	       COALESCE(SUM(CASE WHEN outcome = 'completed' THEN 1 ELSE 0 END), 0),
	       COALESCE(MAX(coins), 0),
	       COALESCE(SUM(coins), 0),
	       COALESCE(MIN(CASE WHEN outcome = 'completed' THEN duration_ms END), 0),
	       MAX(created_at)
	FROM runs`

func scanStats(sc interface{ Scan(...any) error }) (*MinigameStats, error) {
	var st MinigameStats
	var bestMs int64
	var lastPlayed any
	if err := sc.Scan(&st.Minigame, &st.Plays, &st.Completions, &st.BestCoins,
		&st.TotalCoins, &bestMs, &lastPlayed); err != nil {
		return nil, err
	}
	st.BestDuration = time.Duration(bestMs) * time.Millisecond
	st.LastPlayed = parseTime(lastPlayed)
	return &st, nil
}

// GetMinigameStats retrieves aggregated statistics for one minigame.
// A minigame with no runs yields zero stats.
func (s *Store) GetMinigameStats(minigame string) (*MinigameStats, error) {
	row := s.db.QueryRow(statsQuery+` WHERE minigame = ? GROUP BY minigame`, minigame)
	stats, err := scanStats(row)
	if err == sql.ErrNoRows {
		return &MinigameStats{Minigame: minigame}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get minigame stats: %w", err)
	}
	return stats, nil
}

// GetAllMinigameStats retrieves statistics for every minigame that has
// been played.
func (s *Store) GetAllMinigameStats() (map[string]*MinigameStats, error) {
	rows, err := s.db.Query(statsQuery + ` GROUP BY minigame`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all minigame stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*MinigameStats)
	for rows.Next() {
		st, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[st.Minigame] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
