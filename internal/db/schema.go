package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh installs. It reflects the state
// after all migrations; keep it in sync with migrations.go.
//
// Tests load it through GetSchemaSQL() instead of declaring their own tables,
// so a repository referencing a missing column fails immediately.
const SchemaSQL = `
-- Runs (one create or feature invocation)
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	command TEXT NOT NULL CHECK(command IN ('create', 'feature')),
	project_name TEXT NOT NULL,
	root_path TEXT NOT NULL,
	features TEXT,
	status TEXT NOT NULL CHECK(status IN ('running', 'succeeded', 'failed')) DEFAULT 'running',
	error TEXT,
	started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	finished_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);

-- Paths written by a run, in the order they landed on disk
CREATE TABLE IF NOT EXISTS run_files (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL,
	path TEXT NOT NULL,
	kind TEXT NOT NULL CHECK(kind IN ('dir', 'file')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_files_run ON run_files(run_id);
`

// InitSchema creates the schema on a fresh database, or runs pending
// migrations on an existing one.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}
	if tableCount > 0 {
		return RunMigrations(database)
	}

	var runsCount int
	err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='runs'").Scan(&runsCount)
	if err != nil {
		return err
	}
	if runsCount > 0 {
		// Journal predating schema_version: migrate from scratch.
		return RunMigrations(database)
	}

	// Fresh install: create the modern schema and mark every migration applied.
	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(database); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
