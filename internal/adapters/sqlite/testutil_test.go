// Package sqlite_test contains integration tests for SQLite repositories.
//
// Every test database is built from db.GetSchemaSQL(). Do not declare tables
// in test files; use setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/tsclean/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedRun inserts a finished run and returns its ID.
func seedRun(t *testing.T, db *sql.DB, command, project, status string) int64 {
	t.Helper()
	if command == "" {
		command = "create"
	}
	if project == "" {
		project = "shop"
	}
	if status == "" {
		status = "succeeded"
	}
	result, err := db.Exec("INSERT INTO runs (command, project_name, root_path, status) VALUES (?, ?, ?, ?)", command, project, "/tmp/"+project, status)
	if err != nil {
		t.Fatalf("failed to seed run: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get seeded run id: %v", err)
	}
	return id
}
