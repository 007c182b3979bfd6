package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seamusw/cubesolver/internal/bench"
)

// Run represents a benchmark run in the database.
type Run struct {
	RunID     string
	CreatedAt time.Time
	Notes     *string
	MaxDepth  int
	Trials    int
	Workers   int
}

// RunRepository provides CRUD operations for benchmark runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create records a new benchmark run and returns its ID.
func (r *RunRepository) Create(notes string, maxDepth, trials, workers int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO bench_runs (run_id, created_at, notes, max_depth, trials, workers)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), notesPtr, maxDepth, trials, workers)

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// SaveTrials stores the trial results of a run in one transaction.
func (r *RunRepository) SaveTrials(runID string, results []bench.TrialResult) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bench_trials (run_id, case_name, scramble, solver, trial,
			found, solution_len, solution, nodes_explored, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare trial insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range results {
		var lenPtr *int
		var solPtr *string
		if t.Found {
			l := t.SolutionLen
			lenPtr = &l
			s := t.Solution
			solPtr = &s
		}

		if _, err := stmt.Exec(
			runID, t.CaseName, t.Scramble, t.Solver, t.Trial,
			t.Found, lenPtr, solPtr, t.Nodes,
			float64(t.Elapsed)/float64(time.Millisecond),
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert trial: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trials: %w", err)
	}

	return nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, created_at, notes, max_depth, trials, workers
		FROM bench_runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.RunID, &createdAt, &run.Notes, &run.MaxDepth, &run.Trials, &run.Workers); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Trials returns the stored trial results of a run in insertion order.
func (r *RunRepository) Trials(runID string) ([]bench.TrialResult, error) {
	rows, err := r.db.Query(`
		SELECT case_name, scramble, solver, trial, found,
			solution_len, solution, nodes_explored, duration_ms
		FROM bench_trials
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trials: %w", err)
	}
	defer rows.Close()

	var results []bench.TrialResult
	for rows.Next() {
		var t bench.TrialResult
		var lenPtr sql.NullInt64
		var solPtr sql.NullString
		var durationMs float64
		if err := rows.Scan(&t.CaseName, &t.Scramble, &t.Solver, &t.Trial,
			&t.Found, &lenPtr, &solPtr, &t.Nodes, &durationMs); err != nil {
			return nil, fmt.Errorf("failed to scan trial: %w", err)
		}
		if lenPtr.Valid {
			t.SolutionLen = int(lenPtr.Int64)
		}
		if solPtr.Valid {
			t.Solution = solPtr.String
		}
		t.Elapsed = time.Duration(durationMs * float64(time.Millisecond))
		results = append(results, t)
	}

	return results, rows.Err()
}
