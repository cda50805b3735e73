package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/tsclean/internal/adapters/sqlite"
	"github.com/example/tsclean/internal/ports/secondary"
)

func TestRunRepository_StartAndFinish(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRunRepository(db)
	ctx := context.Background()

	run := &secondary.RunRecord{
		Command:     "create",
		ProjectName: "FoodStore",
		RootPath:    "/tmp/FoodStore",
		Features:    "products,users",
	}
	id, err := repo.Start(ctx, run)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if id == 0 || run.ID != id {
		t.Errorf("Start id = %d, run.ID = %d", id, run.ID)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != secondary.RunStatusRunning {
		t.Errorf("Status = %q, want %q", got.Status, secondary.RunStatusRunning)
	}
	if got.FinishedAt != "" {
		t.Errorf("FinishedAt = %q, want empty", got.FinishedAt)
	}
	if got.Features != "products,users" {
		t.Errorf("Features = %q", got.Features)
	}

	if err := repo.Finish(ctx, id, secondary.RunStatusFailed, "disk full"); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	got, err = repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != secondary.RunStatusFailed {
		t.Errorf("Status = %q, want failed", got.Status)
	}
	if got.Error != "disk full" {
		t.Errorf("Error = %q, want %q", got.Error, "disk full")
	}
	if got.FinishedAt == "" {
		t.Error("FinishedAt should be set")
	}
}

func TestRunRepository_FinishNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRunRepository(db)

	if err := repo.Finish(context.Background(), 999, secondary.RunStatusSucceeded, ""); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestRunRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRunRepository(db)

	if _, err := repo.GetByID(context.Background(), 42); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestRunRepository_Files(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRunRepository(db)
	ctx := context.Background()

	id := seedRun(t, db, "create", "shop", "")
	files := []*secondary.RunFileRecord{
		{Path: "Features/a", Kind: "dir"},
		{Path: "README.md", Kind: "file"},
		{Path: "Server/index.ts", Kind: "file"},
	}
	if err := repo.AddFiles(ctx, id, files); err != nil {
		t.Fatalf("AddFiles failed: %v", err)
	}
	if err := repo.AddFiles(ctx, id, nil); err != nil {
		t.Fatalf("AddFiles(nil) failed: %v", err)
	}

	got, err := repo.Files(ctx, id)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d files, want 3", len(got))
	}
	for i := range files {
		if *got[i] != *files[i] {
			t.Errorf("files[%d] = %+v, want %+v", i, got[i], files[i])
		}
	}

	run, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if run.FileCount != 2 {
		t.Errorf("FileCount = %d, want 2", run.FileCount)
	}
}

func TestRunRepository_AddFilesRejectsBadKind(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRunRepository(db)
	ctx := context.Background()

	id := seedRun(t, db, "", "", "")
	err := repo.AddFiles(ctx, id, []*secondary.RunFileRecord{
		{Path: "ok.ts", Kind: "file"},
		{Path: "bad", Kind: "symlink"},
	})
	if err == nil {
		t.Fatal("expected error for invalid kind")
	}

	got, err := repo.Files(ctx, id)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d files after rollback, want 0", len(got))
	}
}

func TestRunRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRunRepository(db)
	ctx := context.Background()

	seedRun(t, db, "create", "shop", "succeeded")
	seedRun(t, db, "feature", "shop", "failed")
	newest := seedRun(t, db, "feature", "shop", "succeeded")

	all, err := repo.List(ctx, secondary.RunFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d runs, want 3", len(all))
	}
	if all[0].ID != newest {
		t.Errorf("first run = %d, want newest %d", all[0].ID, newest)
	}

	features, err := repo.List(ctx, secondary.RunFilters{Command: "feature"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(features) != 2 {
		t.Errorf("got %d feature runs, want 2", len(features))
	}

	failed, err := repo.List(ctx, secondary.RunFilters{Status: secondary.RunStatusFailed})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(failed) != 1 {
		t.Errorf("got %d failed runs, want 1", len(failed))
	}

	limited, err := repo.List(ctx, secondary.RunFilters{Limit: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d runs with limit 1, want 1", len(limited))
	}
}
