package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/tsclean/internal/ports/secondary"
)

func TestHistoryService_Disabled(t *testing.T) {
	service := NewHistoryService(nil)

	if _, err := service.ListRuns(context.Background(), 10); !errors.Is(err, ErrHistoryDisabled) {
		t.Errorf("ListRuns error = %v, want ErrHistoryDisabled", err)
	}
	if _, err := service.GetRun(context.Background(), 1); !errors.Is(err, ErrHistoryDisabled) {
		t.Errorf("GetRun error = %v, want ErrHistoryDisabled", err)
	}
}

func TestHistoryService_ListAndGet(t *testing.T) {
	journal := newMockRunJournal()
	service := NewHistoryService(journal)
	ctx := context.Background()

	first, _ := journal.Start(ctx, &secondary.RunRecord{Command: "create", ProjectName: "shop", Features: "a,b"})
	second, _ := journal.Start(ctx, &secondary.RunRecord{Command: "feature", ProjectName: "shop", Features: "a,b,c"})
	_ = journal.AddFiles(ctx, second, []*secondary.RunFileRecord{
		{Path: "Features/c/domain/entity", Kind: "dir"},
		{Path: "Server/index.ts", Kind: "file"},
	})
	_ = journal.Finish(ctx, second, secondary.RunStatusSucceeded, "")

	runs, err := service.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != second || runs[1].ID != first {
		t.Fatalf("ListRuns order = %+v", runs)
	}
	if len(runs[0].Features) != 3 {
		t.Errorf("Features = %v, want 3 entries", runs[0].Features)
	}

	limited, err := service.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited runs = %d, want 1", len(limited))
	}

	detail, err := service.GetRun(ctx, second)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if detail.Status != secondary.RunStatusSucceeded {
		t.Errorf("Status = %q", detail.Status)
	}
	if len(detail.Directories) != 1 || len(detail.Files) != 1 || detail.Files[0] != "Server/index.ts" {
		t.Errorf("detail = %+v", detail)
	}

	if _, err := service.GetRun(ctx, 99); err == nil {
		t.Error("expected error for unknown run")
	}
}
