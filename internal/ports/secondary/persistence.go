// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// Run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// RunJournal defines the secondary port for the generation history.
type RunJournal interface {
	// Start records a new run and returns its ID.
	Start(ctx context.Context, run *RunRecord) (int64, error)

	// AddFiles records paths written by a run.
	AddFiles(ctx context.Context, runID int64, files []*RunFileRecord) error

	// Finish sets the final status of a run. errMsg is empty on success.
	Finish(ctx context.Context, runID int64, status, errMsg string) error

	// GetByID retrieves a run by its ID.
	GetByID(ctx context.Context, id int64) (*RunRecord, error)

	// List retrieves runs, newest first.
	List(ctx context.Context, filters RunFilters) ([]*RunRecord, error)

	// Files retrieves the paths written by a run, in write order.
	Files(ctx context.Context, runID int64) ([]*RunFileRecord, error)
}

// RunRecord represents one create or feature run as stored in persistence.
type RunRecord struct {
	ID          int64
	Command     string // "create" or "feature"
	ProjectName string
	RootPath    string
	Features    string // comma-separated roster after the run
	Status      string
	Error       string
	StartedAt   string
	FinishedAt  string
	FileCount   int
}

// RunFileRecord is one path written by a run.
type RunFileRecord struct {
	Path string // relative to the run's root
	Kind string // "dir" or "file"
}

// RunFilters contains filter options for querying runs.
type RunFilters struct {
	Command string
	Status  string
	Limit   int
}
