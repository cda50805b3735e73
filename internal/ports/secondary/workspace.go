// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"

	"github.com/example/tsclean/internal/scaffold"
)

// WriteFunc is called once per directory or file successfully written.
// kind is "dir" or "file"; path is relative to the project root.
type WriteFunc func(kind, path string)

// WorkspaceWriter defines the secondary port for materializing a plan on disk.
type WorkspaceWriter interface {
	// Apply creates every planned directory, then writes every planned file under root.
	// Files written before a failure are left in place.
	Apply(ctx context.Context, root string, plan *scaffold.Plan, onWrite WriteFunc) error

	// Exists reports whether anything exists at path.
	Exists(ctx context.Context, path string) (bool, error)
}
