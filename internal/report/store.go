package report

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// storeSchema is the full results schema, applied on every Open. Both tables
// are additive-only, so IF NOT EXISTS is the whole migration story.
const storeSchema = `
CREATE TABLE IF NOT EXISTS sweep_runs (
	run_id         TEXT PRIMARY KEY,
	label          TEXT NOT NULL,
	scenario_count INTEGER NOT NULL,
	profile_count  INTEGER NOT NULL,
	created_at     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sweep_results (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL REFERENCES sweep_runs(run_id),
	scenario   TEXT NOT NULL,
	profile    TEXT NOT NULL,
	reachable  INTEGER NOT NULL,
	length     INTEGER NOT NULL,
	cost       REAL NOT NULL,
	danger_sum REAL NOT NULL,
	expanded   INTEGER NOT NULL,
	grade      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sweep_results_run ON sweep_results(run_id);
`

// Run is one persisted sweep invocation.
type Run struct {
	RunID         string
	Label         string
	ScenarioCount int
	ProfileCount  int
	CreatedAt     int64 // unix nanoseconds
}

// Store persists sweep runs and their per-pair results in a SQLite file.
// A single *sql.DB serialises writers, so one Store may be shared.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the results database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply results schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists a sweep's results under a fresh run id and returns it.
// The run and its results commit atomically.
func (s *Store) SaveRun(label string, scenarioCount, profileCount int, results []SweepResult) (string, error) {
	runID := uuid.New().String()
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin save run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO sweep_runs (run_id, label, scenario_count, profile_count, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		runID, label, scenarioCount, profileCount, time.Now().UnixNano())
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, r := range results {
		_, err = tx.Exec(`
			INSERT INTO sweep_results (run_id, scenario, profile, reachable, length, cost, danger_sum, expanded, grade)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, r.Scenario, r.Profile, r.Reachable, r.Length, r.Cost, r.DangerSum, r.Expanded, r.Grade)
		if err != nil {
			return "", fmt.Errorf("insert result %s/%s: %w", r.Scenario, r.Profile, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit save run: %w", err)
	}
	return runID, nil
}

// Runs returns the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT run_id, label, scenario_count, profile_count, created_at
		FROM sweep_runs
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.Label, &r.ScenarioCount, &r.ProfileCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ResultsForRun returns a run's results in insertion order.
func (s *Store) ResultsForRun(runID string) ([]SweepResult, error) {
	rows, err := s.db.Query(`
		SELECT scenario, profile, reachable, length, cost, danger_sum, expanded, grade
		FROM sweep_results
		WHERE run_id = ?
		ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []SweepResult
	for rows.Next() {
		var r SweepResult
		if err := rows.Scan(&r.Scenario, &r.Profile, &r.Reachable, &r.Length, &r.Cost, &r.DangerSum, &r.Expanded, &r.Grade); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
