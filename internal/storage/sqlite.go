// Package storage provides SQLite-based persistence for episode results
// and a Parquet export for offline analysis.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Episode outcomes.
const (
	OutcomeFull      = "full"
	OutcomeDead      = "dead"
	OutcomeStepLimit = "step_limit"
)

// Store manages the SQLite database connection for episode persistence.
type Store struct {
	db *sql.DB
}

// Episode is the record of one finished game.
type Episode struct {
	ID        int64
	Solver    string
	Rows      int // interior rows
	Cols      int // interior cols
	Seed      int64
	Outcome   string
	Length    int
	Steps     int
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

	// Create parent directories
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

	// The benchmark saves from many goroutines; one connection keeps
	// SQLite from reporting "database is locked".
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			solver TEXT NOT NULL,
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			length INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_solver ON episodes(solver);
		CREATE INDEX IF NOT EXISTS idx_episodes_top ON episodes(solver, length DESC, steps ASC);
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

// timeLayout matches SQLite's CURRENT_TIMESTAMP.
const timeLayout = "2006-01-02 15:04:05"

// SaveEpisode records a finished episode. A zero CreatedAt is stamped
// with the current time.
// Returns the ID of the inserted record.
func (s *Store) SaveEpisode(e Episode) (int64, error) {
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	result, err := s.db.Exec(
		`INSERT INTO episodes (solver, grid_rows, grid_cols, seed, outcome, length, steps, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Solver, e.Rows, e.Cols, e.Seed, e.Outcome, e.Length, e.Steps,
		created.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopEpisodes retrieves the best N episodes for the given solver.
// Longer snakes rank first; ties go to the episode with fewer steps.
func (s *Store) TopEpisodes(solver string, limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, solver, grid_rows, grid_cols, seed, outcome, length, steps, created_at
		 FROM episodes
		 WHERE solver = ?
		 ORDER BY length DESC, steps ASC, id ASC
		 LIMIT ?`,
		solver, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	return scanEpisodes(rows)
}

// AllEpisodes retrieves every episode, oldest first. An empty solver
// selects all solvers.
func (s *Store) AllEpisodes(solver string) ([]Episode, error) {
	query := `SELECT id, solver, grid_rows, grid_cols, seed, outcome, length, steps, created_at
		 FROM episodes`
	var args []any
	if solver != "" {
		query += ` WHERE solver = ?`
		args = append(args, solver)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	return scanEpisodes(rows)
}

func scanEpisodes(rows *sql.Rows) ([]Episode, error) {
	defer rows.Close()

	var entries []Episode
	for rows.Next() {
		var e Episode
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Solver, &e.Rows, &e.Cols, &e.Seed, &e.Outcome,
			&e.Length, &e.Steps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ClearEpisodes deletes all episodes for the given solver.
func (s *Store) ClearEpisodes(solver string) error {
	_, err := s.db.Exec("DELETE FROM episodes WHERE solver = ?", solver)
	if err != nil {
		return fmt.Errorf("storage: cannot clear episodes: %w", err)
	}
	return nil
}

// SolverStats contains aggregated statistics for a solver.
type SolverStats struct {
	Solver         string
	Episodes       int
	FullCount      int
	DeadCount      int
	StepLimitCount int
	MaxLength      int
	AvgLength      float64
	AvgSteps       float64
	LastPlayed     time.Time
}

// WinRate returns the fraction of episodes that filled the board.
func (st *SolverStats) WinRate() float64 {
	if st.Episodes == 0 {
		return 0
	}
	return float64(st.FullCount) / float64(st.Episodes)
}

const statsColumns = `COUNT(*),
	COALESCE(SUM(outcome = 'full'), 0),
	COALESCE(SUM(outcome = 'dead'), 0),
	COALESCE(SUM(outcome = 'step_limit'), 0),
	COALESCE(MAX(length), 0),
	COALESCE(AVG(length), 0),
	COALESCE(AVG(steps), 0),
	MAX(created_at)`

// GetSolverStats retrieves aggregated statistics for a specific solver.
func (s *Store) GetSolverStats(solver string) (*SolverStats, error) {
	stats := &SolverStats{Solver: solver}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM episodes WHERE solver = ?`,
		solver,
	).Scan(&stats.Episodes, &stats.FullCount, &stats.DeadCount, &stats.StepLimitCount,
		&stats.MaxLength, &stats.AvgLength, &stats.AvgSteps, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get solver stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllSolverStats retrieves statistics for every solver that has episodes.
func (s *Store) GetAllSolverStats() (map[string]*SolverStats, error) {
	rows, err := s.db.Query(
		`SELECT solver, ` + statsColumns + `
		 FROM episodes
		 GROUP BY solver`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all solver stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SolverStats)
	for rows.Next() {
		var st SolverStats
		var lastPlayed any
		if err := rows.Scan(&st.Solver, &st.Episodes, &st.FullCount, &st.DeadCount, &st.StepLimitCount,
			&st.MaxLength, &st.AvgLength, &st.AvgSteps, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Solver] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
