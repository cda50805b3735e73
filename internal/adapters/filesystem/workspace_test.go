package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/example/tsclean/internal/adapters/filesystem"
	"github.com/example/tsclean/internal/scaffold"
)

func TestWorkspaceAdapter_Apply(t *testing.T) {
	root := filepath.Join(t.TempDir(), "shop")
	adapter := filesystem.NewWorkspaceAdapter(2)

	plan := &scaffold.Plan{
		Directories: []string{"Core/config", "Features/a/delivery/routes"},
		Files: []scaffold.GeneratedFile{
			{Path: "Core/config/database.ts", Content: "db"},
			{Path: "README.md", Content: "# shop\n"},
			{Path: "Server/index.ts", Content: "index"},
		},
	}

	var mu sync.Mutex
	var written []string
	err := adapter.Apply(context.Background(), root, plan, func(kind, path string) {
		mu.Lock()
		defer mu.Unlock()
		written = append(written, kind+":"+path)
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Empty planned directories still exist.
	info, err := os.Stat(filepath.Join(root, "Features", "a", "delivery", "routes"))
	if err != nil || !info.IsDir() {
		t.Errorf("expected empty routes directory, err = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(root, "README.md"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "# shop\n" {
		t.Errorf("README.md = %q", content)
	}

	sort.Strings(written)
	want := []string{
		"dir:Core/config",
		"dir:Features/a/delivery/routes",
		"file:Core/config/database.ts",
		"file:README.md",
		"file:Server/index.ts",
	}
	if len(written) != len(want) {
		t.Fatalf("written = %v, want %v", written, want)
	}
	for i := range want {
		if written[i] != want[i] {
			t.Errorf("written[%d] = %q, want %q", i, written[i], want[i])
		}
	}
}

func TestWorkspaceAdapter_ApplyOverwrites(t *testing.T) {
	root := t.TempDir()
	adapter := filesystem.NewWorkspaceAdapter(0)
	ctx := context.Background()

	first := &scaffold.Plan{Files: []scaffold.GeneratedFile{{Path: "README.md", Content: "a much longer first version"}}}
	second := &scaffold.Plan{Files: []scaffold.GeneratedFile{{Path: "README.md", Content: "short"}}}

	if err := adapter.Apply(ctx, root, first, nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := adapter.Apply(ctx, root, second, nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	content, _ := os.ReadFile(filepath.Join(root, "README.md"))
	if string(content) != "short" {
		t.Errorf("README.md = %q, want %q", content, "short")
	}
}

func TestWorkspaceAdapter_ApplyWriteError(t *testing.T) {
	root := t.TempDir()
	// A regular file where a directory is needed makes the write fail.
	if err := os.WriteFile(filepath.Join(root, "Server"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	plan := &scaffold.Plan{Files: []scaffold.GeneratedFile{{Path: "Server/index.ts", Content: "index"}}}
	err := filesystem.NewWorkspaceAdapter(1).Apply(context.Background(), root, plan, nil)
	if err == nil {
		t.Fatal("expected write error")
	}
}

func TestWorkspaceAdapter_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	adapter := filesystem.NewWorkspaceAdapter(1)
	ctx := context.Background()

	exists, err := adapter.Exists(ctx, filepath.Join(tmpDir, "missing"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected path to not exist")
	}

	exists, err = adapter.Exists(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected path to exist")
	}
}
