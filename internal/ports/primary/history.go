package primary

import "context"

// HistoryService defines the primary port for the generation history.
type HistoryService interface {
	// ListRuns lists the most recent runs, newest first. limit <= 0 means all.
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	// GetRun retrieves a run and the paths it wrote.
	GetRun(ctx context.Context, id int64) (*RunDetail, error)
}

// Run is one recorded create or feature invocation.
type Run struct {
	ID          int64
	Command     string
	ProjectName string
	RootPath    string
	Features    []string
	Status      string
	Error       string
	StartedAt   string
	FinishedAt  string
	FileCount   int
}

// RunDetail is a run plus everything it wrote.
type RunDetail struct {
	Run
	Directories []string
	Files       []string
}
