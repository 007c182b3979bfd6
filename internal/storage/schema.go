package storage

import (
	"database/sql"
	"fmt"
)

const migration001 = `
CREATE TABLE IF NOT EXISTS bench_runs (
	run_id     TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	notes      TEXT,
	max_depth  INTEGER NOT NULL,
	trials     INTEGER NOT NULL,
	workers    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bench_trials (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id         TEXT NOT NULL REFERENCES bench_runs(run_id) ON DELETE CASCADE,
	case_name      TEXT NOT NULL,
	scramble       TEXT NOT NULL,
	solver         TEXT NOT NULL,
	trial          INTEGER NOT NULL,
	found          INTEGER NOT NULL,
	solution_len   INTEGER,
	solution       TEXT,
	nodes_explored INTEGER NOT NULL,
	duration_ms    REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bench_trials_run ON bench_trials(run_id);
`

// migrations is an ordered list of migration SQL statements.
var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001},
}

// applyMigrations applies all pending migrations.
func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version    INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema version table: %w", err)
	}

	var currentVersion int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		if _, err := db.Exec(m.sql); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.version, err)
		}
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
	}

	return nil
}
