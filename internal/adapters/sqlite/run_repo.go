// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tsclean/internal/ports/secondary"
)

// RunRepository implements secondary.RunJournal with SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

const runColumns = `r.id, r.command, r.project_name, r.root_path, r.features, r.status, r.error, r.started_at, r.finished_at,
	(SELECT COUNT(*) FROM run_files f WHERE f.run_id = r.id AND f.kind = 'file')`

// Start persists a new run in the running state.
func (r *RunRepository) Start(ctx context.Context, run *secondary.RunRecord) (int64, error) {
	var features sql.NullString
	if run.Features != "" {
		features = sql.NullString{String: run.Features, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO runs (command, project_name, root_path, features, status) VALUES (?, ?, ?, ?, ?)",
		run.Command, run.ProjectName, run.RootPath, features, secondary.RunStatusRunning,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to start run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	run.ID = id
	run.Status = secondary.RunStatusRunning

	return id, nil
}

// AddFiles records written paths in a single transaction.
func (r *RunRepository) AddFiles(ctx context.Context, runID int64, files []*secondary.RunFileRecord) error {
	if len(files) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO run_files (run_id, path, kind) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range files {
		if _, err := stmt.ExecContext(ctx, runID, f.Path, f.Kind); err != nil {
			return fmt.Errorf("failed to record %s: %w", f.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run files: %w", err)
	}
	return nil
}

// Finish sets the final status of a run.
func (r *RunRepository) Finish(ctx context.Context, runID int64, status, errMsg string) error {
	var errText sql.NullString
	if errMsg != "" {
		errText = sql.NullString{String: errMsg, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE runs SET status = ?, error = ?, finished_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, errText, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("run %d not found", runID)
	}

	return nil
}

// GetByID retrieves a run by its ID.
func (r *RunRepository) GetByID(ctx context.Context, id int64) (*secondary.RunRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs r WHERE r.id = ?", id)

	record, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return record, nil
}

// List retrieves runs matching the given filters, newest first.
func (r *RunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	query := "SELECT " + runColumns + " FROM runs r WHERE 1=1"
	args := []any{}

	if filters.Command != "" {
		query += " AND r.command = ?"
		args = append(args, filters.Command)
	}

	if filters.Status != "" {
		query += " AND r.status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY r.id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*secondary.RunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, record)
	}

	return runs, rows.Err()
}

// Files retrieves the paths written by a run.
func (r *RunRepository) Files(ctx context.Context, runID int64) ([]*secondary.RunFileRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT path, kind FROM run_files WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list run files: %w", err)
	}
	defer rows.Close()

	var files []*secondary.RunFileRecord
	for rows.Next() {
		f := &secondary.RunFileRecord{}
		if err := rows.Scan(&f.Path, &f.Kind); err != nil {
			return nil, fmt.Errorf("failed to scan run file: %w", err)
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*secondary.RunRecord, error) {
	var (
		features   sql.NullString
		errText    sql.NullString
		startedAt  time.Time
		finishedAt sql.NullTime
	)

	record := &secondary.RunRecord{}
	err := row.Scan(&record.ID, &record.Command, &record.ProjectName, &record.RootPath, &features, &record.Status, &errText, &startedAt, &finishedAt, &record.FileCount)
	if err != nil {
		return nil, err
	}

	record.Features = features.String
	record.Error = errText.String
	record.StartedAt = startedAt.Format(time.RFC3339)
	if finishedAt.Valid {
		record.FinishedAt = finishedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

var _ secondary.RunJournal = (*RunRepository)(nil)
