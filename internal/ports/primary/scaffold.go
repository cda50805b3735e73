// Package primary defines the primary ports (driving adapters) for the application.
package primary

import (
	"context"

	"github.com/example/tsclean/internal/scaffold"
)

// ScaffoldService defines the primary port for project generation.
type ScaffoldService interface {
	// CreateProject generates a new project directory.
	CreateProject(ctx context.Context, req CreateProjectRequest) (*GenerateResponse, error)

	// AddFeature adds one feature to an existing generated project.
	AddFeature(ctx context.Context, req AddFeatureRequest) (*GenerateResponse, error)
}

// CreateProjectRequest contains parameters for creating a project.
type CreateProjectRequest struct {
	ProjectName string
	ParentDir   string // project is created at ParentDir/ProjectName; "" means "."
	Features    []scaffold.FeatureSpec
	Strict      bool
	DryRun      bool
	SkipChecks  bool // skip the node/npm preflight
	Install     bool // run npm install afterwards
}

// AddFeatureRequest contains parameters for adding a feature.
type AddFeatureRequest struct {
	Root    string // project root; "" means "."
	Feature scaffold.FeatureSpec
	Strict  bool
	DryRun  bool
}

// GenerateResponse describes a completed (or dry-run) generation.
type GenerateResponse struct {
	RunID        int64 // zero when history is off or on dry runs
	Root         string
	ProjectName  string
	Features     []string // roster after the run
	RosterSource string   // "manifest" or "readme" on add-feature
	Plan         *scaffold.Plan
	DryRun       bool
	Installed    bool
}
