// Package storage provides SQLite-based persistence for finished games.
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

// Outcomes recorded for a finished game.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned"
)

// Modes a game can be played in.
const (
	ModePlay  = "play"
	ModeAuto  = "auto"
	ModeBench = "bench"
)

// Store manages the SQLite database connection for the results log.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID        int64
	Seed      int64
	Width     int
	Height    int
	Mines     int
	Solver    string // empty for human play
	Mode      string
	Outcome   string
	Moves     int
	Revealed  int
	Duration  time.Duration
	CreatedAt time.Time
}

// Summary aggregates results for one solver, or for all games.
type Summary struct {
	Solver      string
	Games       int
	Wins        int
	Losses      int
	AvgRevealed float64
	LastPlayed  time.Time
}

// WinRate returns wins over games, or 0 for no games.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			solver TEXT NOT NULL DEFAULT '',
			mode TEXT NOT NULL,
			outcome TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			revealed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_solver ON results(solver);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results
		 (seed, width, height, mines, solver, mode, outcome, moves, revealed, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Width, r.Height, r.Mines, r.Solver, r.Mode, r.Outcome,
		r.Moves, r.Revealed, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
// An empty solver matches every game.
func (s *Store) RecentResults(solver string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, width, height, mines, solver, mode, outcome,
		        moves, revealed, duration_ms, created_at
		 FROM results
		 WHERE ? = '' OR solver = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		solver, solver, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Seed, &r.Width, &r.Height, &r.Mines, &r.Solver, &r.Mode, &r.Outcome,
			&r.Moves, &r.Revealed, &durationMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Summary aggregates every result for the given solver.
// An empty solver aggregates every game.
func (s *Store) Summary(solver string) (Summary, error) {
	sum := Summary{Solver: solver}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(revealed), 0),
		        MAX(created_at)
		 FROM results
		 WHERE ? = '' OR solver = ?`,
		OutcomeWon, OutcomeLost, solver, solver,
	).Scan(&sum.Games, &sum.Wins, &sum.Losses, &sum.AvgRevealed, &lastPlayed)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot get summary: %w", err)
	}
	sum.LastPlayed = parseTime(lastPlayed)
	return sum, nil
}

// SolverSummaries aggregates results per solver, ordered by solver name.
// Human games are grouped under the empty name.
func (s *Store) SolverSummaries() ([]Summary, error) {
	rows, err := s.db.Query(
		`SELECT solver, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        AVG(revealed), MAX(created_at)
		 FROM results
		 GROUP BY solver
		 ORDER BY solver`,
		OutcomeWon, OutcomeLost,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get solver summaries: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var lastPlayed any
		if err := rows.Scan(&sum.Solver, &sum.Games, &sum.Wins, &sum.Losses, &sum.AvgRevealed, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		sum.LastPlayed = parseTime(lastPlayed)
		out = append(out, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// ClearResults deletes all results for the given solver.
// An empty solver deletes everything.
func (s *Store) ClearResults(solver string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE ? = '' OR solver = ?", solver, solver)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles the datetime column as either time.Time or string.
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
