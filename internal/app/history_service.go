package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/tsclean/internal/ports/primary"
	"github.com/example/tsclean/internal/ports/secondary"
)

// ErrHistoryDisabled is returned by history queries when no journal is configured.
var ErrHistoryDisabled = errors.New("history is disabled")

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	journal secondary.RunJournal
}

// NewHistoryService creates a new HistoryService. A nil journal disables history.
func NewHistoryService(journal secondary.RunJournal) *HistoryServiceImpl {
	return &HistoryServiceImpl{journal: journal}
}

// ListRuns lists the most recent runs.
func (s *HistoryServiceImpl) ListRuns(ctx context.Context, limit int) ([]*primary.Run, error) {
	if s.journal == nil {
		return nil, ErrHistoryDisabled
	}

	records, err := s.journal.List(ctx, secondary.RunFilters{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]*primary.Run, len(records))
	for i, r := range records {
		runs[i] = recordToRun(r)
	}
	return runs, nil
}

// GetRun retrieves a run and its written paths.
func (s *HistoryServiceImpl) GetRun(ctx context.Context, id int64) (*primary.RunDetail, error) {
	if s.journal == nil {
		return nil, ErrHistoryDisabled
	}

	record, err := s.journal.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	files, err := s.journal.Files(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list files for run %d: %w", id, err)
	}

	detail := &primary.RunDetail{Run: *recordToRun(record)}
	for _, f := range files {
		if f.Kind == "dir" {
			detail.Directories = append(detail.Directories, f.Path)
		} else {
			detail.Files = append(detail.Files, f.Path)
		}
	}
	return detail, nil
}

func recordToRun(r *secondary.RunRecord) *primary.Run {
	run := &primary.Run{
		ID:          r.ID,
		Command:     r.Command,
		ProjectName: r.ProjectName,
		RootPath:    r.RootPath,
		Status:      r.Status,
		Error:       r.Error,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
		FileCount:   r.FileCount,
	}
	if r.Features != "" {
		run.Features = strings.Split(r.Features, ",")
	}
	return run
}
