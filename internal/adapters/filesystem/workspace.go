// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/example/tsclean/internal/ports/secondary"
	"github.com/example/tsclean/internal/scaffold"
)

// WorkspaceAdapter implements secondary.WorkspaceWriter on the local filesystem.
type WorkspaceAdapter struct {
	workers int
}

// NewWorkspaceAdapter creates a new filesystem workspace adapter.
// workers bounds concurrent file writes; zero means GOMAXPROCS.
func NewWorkspaceAdapter(workers int) *WorkspaceAdapter {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &WorkspaceAdapter{workers: workers}
}

// Apply creates every directory in plan order, then writes all files concurrently.
// The first write error cancels pending writes and is returned. Nothing is rolled back.
func (a *WorkspaceAdapter) Apply(ctx context.Context, root string, plan *scaffold.Plan, onWrite secondary.WriteFunc) error {
	if onWrite == nil {
		onWrite = func(string, string) {}
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create project root: %w", err)
	}
	for _, dir := range plan.Directories {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		onWrite("dir", dir)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.workers)

	for _, f := range plan.Files {
		f := f
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := writeFile(root, f); err != nil {
				return err
			}
			onWrite("file", f.Path)
			return nil
		})
	}

	return eg.Wait()
}

// writeFile writes one file, truncating any existing content.
func writeFile(root string, f scaffold.GeneratedFile) error {
	path := filepath.Join(root, filepath.FromSlash(f.Path))
	// Roster files live in directories the plan may not list on add-feature.
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
	}
	if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return nil
}

// Exists checks if anything exists at the given path.
func (a *WorkspaceAdapter) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return true, nil
}
