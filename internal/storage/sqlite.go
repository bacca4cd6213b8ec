// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/session"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents one finished (or abandoned) search run.
type RunEntry struct {
	ID             int64
	ProblemID      string
	AlgorithmID    string
	Status         string
	Steps          int
	NodesExpanded  int
	MaxDepth       int
	SolutionCost   sql.NullFloat64
	SolutionLength int
	DurationMS     int64
	Session        string
	CreatedAt      time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			problem_id TEXT NOT NULL,
			algorithm_id TEXT NOT NULL,
			status TEXT NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			nodes_expanded INTEGER NOT NULL DEFAULT 0,
			max_depth INTEGER NOT NULL DEFAULT 0,
			solution_cost REAL,
			solution_length INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			session TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_problem ON runs(problem_id);
		CREATE INDEX IF NOT EXISTS idx_runs_pair ON runs(problem_id, algorithm_id);
		CREATE INDEX IF NOT EXISTS idx_runs_least ON runs(problem_id, algorithm_id, nodes_expanded ASC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (problem_id, algorithm_id, status, steps, nodes_expanded, max_depth, solution_cost, solution_length, duration_ms, session)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ProblemID,
		e.AlgorithmID,
		e.Status,
		e.Steps,
		e.NodesExpanded,
		e.MaxDepth,
		e.SolutionCost,
		e.SolutionLength,
		e.DurationMS,
		e.Session,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs for a problem. An empty problem
// id returns runs across all problems.
func (s *Store) RecentRuns(problemID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, problem_id, algorithm_id, status, steps, nodes_expanded, max_depth,
	                 solution_cost, solution_length, duration_ms, session, created_at
	          FROM runs`
	args := []any{}
	if problemID != "" {
		query += ` WHERE problem_id = ?`
		args = append(args, problemID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// LeastExpanded retrieves the completed runs that expanded the fewest nodes
// for a problem/algorithm pair. This is the efficiency leaderboard.
func (s *Store) LeastExpanded(problemID, algorithmID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, problem_id, algorithm_id, status, steps, nodes_expanded, max_depth,
		        solution_cost, solution_length, duration_ms, session, created_at
		 FROM runs
		 WHERE problem_id = ? AND algorithm_id = ? AND status = 'COMPLETED'
		 ORDER BY nodes_expanded ASC, duration_ms ASC
		 LIMIT ?`,
		problemID, algorithmID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// scanRuns reads run rows, tolerating both time.Time and string datetimes.
func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.ProblemID,
			&e.AlgorithmID,
			&e.Status,
			&e.Steps,
			&e.NodesExpanded,
			&e.MaxDepth,
			&e.SolutionCost,
			&e.SolutionLength,
			&e.DurationMS,
			&e.Session,
			&createdAt,
		); err != nil {
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

// parseTime handles both time.Time and string datetime representations.
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

// ClearRuns deletes all runs for the given problem.
func (s *Store) ClearRuns(problemID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE problem_id = ?", problemID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveSessionRun implements session.RunSaver.
// This adapter lets the serve layer save runs without a direct storage dependency.
func (s *Store) SaveSessionRun(data session.RunData) error {
	e := RunEntry{
		ProblemID:      data.Problem,
		AlgorithmID:    data.Algorithm,
		Status:         data.Status,
		Steps:          data.Steps,
		NodesExpanded:  data.NodesExpanded,
		MaxDepth:       data.MaxDepth,
		SolutionLength: data.SolutionLength,
		DurationMS:     data.DurationMS,
		Session:        data.Session,
	}
	if data.HasCost {
		e.SolutionCost = sql.NullFloat64{Float64: data.SolutionCost, Valid: true}
	}
	_, err := s.SaveRun(e)
	return err
}

// Ensure Store implements RunSaver
var _ session.RunSaver = (*Store)(nil)

// RunStats contains aggregated statistics for a problem/algorithm pair.
type RunStats struct {
	ProblemID     string
	AlgorithmID   string
	RunsCount     int
	Completed     int
	BestExpanded  int
	AvgExpanded   float64
	LastRun       time.Time
}

// GetRunStats retrieves aggregated statistics for a problem/algorithm pair.
func (s *Store) GetRunStats(problemID, algorithmID string) (*RunStats, error) {
	stats := &RunStats{ProblemID: problemID, AlgorithmID: algorithmID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = 'COMPLETED' THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN status = 'COMPLETED' THEN nodes_expanded END), 0),
		        COALESCE(AVG(nodes_expanded), 0)
		 FROM runs WHERE problem_id = ? AND algorithm_id = ?`,
		problemID, algorithmID,
	).Scan(&stats.RunsCount, &stats.Completed, &stats.BestExpanded, &stats.AvgExpanded)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	// Get last run time
	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE problem_id = ? AND algorithm_id = ? ORDER BY created_at DESC LIMIT 1`,
		problemID, algorithmID,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTime(lastRun)
	}

	return stats, nil
}

// GetAllRunStats retrieves statistics for every problem/algorithm pair with
// at least one run.
func (s *Store) GetAllRunStats() ([]*RunStats, error) {
	rows, err := s.db.Query(
		`SELECT problem_id, algorithm_id, COUNT(*),
		        COALESCE(SUM(CASE WHEN status = 'COMPLETED' THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN status = 'COMPLETED' THEN nodes_expanded END), 0),
		        COALESCE(AVG(nodes_expanded), 0),
		        MAX(created_at)
		 FROM runs
		 GROUP BY problem_id, algorithm_id
		 ORDER BY problem_id, algorithm_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all run stats: %w", err)
	}
	defer rows.Close()

	var stats []*RunStats
	for rows.Next() {
		var st RunStats
		var lastRun any
		if err := rows.Scan(&st.ProblemID, &st.AlgorithmID, &st.RunsCount, &st.Completed, &st.BestExpanded, &st.AvgExpanded, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats = append(stats, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
