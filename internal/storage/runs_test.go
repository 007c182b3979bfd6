package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/seamusw/cubesolver/internal/bench"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRunRepository_RoundTrip(t *testing.T) {
	repo := NewRunRepository(openTestDB(t))

	runID, err := repo.Create("smoke test", 6, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if runID == "" {
		t.Fatal("Create should return a run ID")
	}

	trials := []bench.TrialResult{
		{
			CaseName: "two_moves", Scramble: "F U", Solver: "bfs", Trial: 1,
			Found: true, SolutionLen: 2, Solution: "U' F'",
			Nodes: 25, Elapsed: 1500 * time.Microsecond,
		},
		{
			CaseName: "oll_case", Scramble: "R U R' U' R' F R F'", Solver: "bfs", Trial: 1,
			Found: false, Nodes: 99999, Elapsed: 2 * time.Second,
		},
	}
	if err := repo.SaveTrials(runID, trials); err != nil {
		t.Fatal(err)
	}

	runs, err := repo.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("want 1 run, got %d", len(runs))
	}
	run := runs[0]
	if run.RunID != runID || run.MaxDepth != 6 || run.Trials != 3 || run.Workers != 4 {
		t.Errorf("unexpected run: %+v", run)
	}
	if run.Notes == nil || *run.Notes != "smoke test" {
		t.Errorf("notes not preserved: %v", run.Notes)
	}

	stored, err := repo.Trials(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 {
		t.Fatalf("want 2 trials, got %d", len(stored))
	}

	got := stored[0]
	if got.CaseName != "two_moves" || got.Solver != "bfs" || !got.Found {
		t.Errorf("unexpected trial: %+v", got)
	}
	if got.SolutionLen != 2 || got.Solution != "U' F'" {
		t.Errorf("solution not preserved: %+v", got)
	}
	if got.Elapsed != 1500*time.Microsecond {
		t.Errorf("Elapsed = %v, want 1.5ms", got.Elapsed)
	}

	missed := stored[1]
	if missed.Found || missed.SolutionLen != 0 || missed.Solution != "" {
		t.Errorf("failed trial should round-trip empty solution: %+v", missed)
	}
}

func TestRunRepository_EmptyList(t *testing.T) {
	repo := NewRunRepository(openTestDB(t))
	runs, err := repo.List(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("want no runs, got %d", len(runs))
	}
}
