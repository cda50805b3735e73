package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/example/tsclean/internal/introspect"
	"github.com/example/tsclean/internal/logger"
	"github.com/example/tsclean/internal/ports/primary"
	"github.com/example/tsclean/internal/ports/secondary"
	"github.com/example/tsclean/internal/scaffold"
)

var (
	ErrTargetExists  = errors.New("target directory already exists")
	ErrFeatureExists = errors.New("feature already exists")
	ErrPreflight     = errors.New("environment check failed")
)

// ScaffoldServiceImpl implements the ScaffoldService interface.
type ScaffoldServiceImpl struct {
	writer    secondary.WorkspaceWriter
	journal   secondary.RunJournal // nil disables history
	toolchain secondary.Toolchain
	doctor    primary.DoctorService
}

// NewScaffoldService creates a new ScaffoldService with injected dependencies.
func NewScaffoldService(
	writer secondary.WorkspaceWriter,
	journal secondary.RunJournal,
	toolchain secondary.Toolchain,
	doctor primary.DoctorService,
) *ScaffoldServiceImpl {
	return &ScaffoldServiceImpl{
		writer:    writer,
		journal:   journal,
		toolchain: toolchain,
		doctor:    doctor,
	}
}

// CreateProject plans the whole project, checks every precondition, then
// writes. Nothing touches the filesystem until all checks pass.
func (s *ScaffoldServiceImpl) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (*primary.GenerateResponse, error) {
	parent := req.ParentDir
	if parent == "" {
		parent = "."
	}
	spec := scaffold.ProjectSpec{
		Name:     req.ProjectName,
		RootPath: filepath.Join(parent, req.ProjectName),
		Features: req.Features,
	}

	plan, err := scaffold.NewPlanner(scaffold.Options{Strict: req.Strict}).PlanCreate(spec)
	if err != nil {
		return nil, err
	}

	exists, err := s.writer.Exists(ctx, spec.RootPath)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s. Please remove it or choose a different name", ErrTargetExists, spec.RootPath)
	}

	resp := &primary.GenerateResponse{
		Root:        spec.RootPath,
		ProjectName: spec.Name,
		Features:    spec.FeatureNames(),
		Plan:        plan,
		DryRun:      req.DryRun,
	}
	if req.DryRun {
		return resp, nil
	}

	if !req.SkipChecks {
		if failed := failedChecks(s.doctor.Check(ctx)); len(failed) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrPreflight, strings.Join(failed, "; "))
		}
	}

	runID, err := s.apply(ctx, "create", spec, plan)
	resp.RunID = runID
	if err != nil {
		return nil, err
	}

	if req.Install {
		if err := s.toolchain.Install(ctx, spec.RootPath); err != nil {
			return resp, fmt.Errorf("project created at %s but dependencies were not installed: %w", spec.RootPath, err)
		}
		resp.Installed = true
	}

	return resp, nil
}

// AddFeature recovers the roster of the project at req.Root and adds one feature.
func (s *ScaffoldServiceImpl) AddFeature(ctx context.Context, req primary.AddFeatureRequest) (*primary.GenerateResponse, error) {
	root := req.Root
	if root == "" {
		root = "."
	}

	if err := scaffold.ValidateFeatureName(req.Feature.Name); err != nil {
		return nil, err
	}

	roster, err := introspect.RecoverRoster(root)
	if err != nil {
		return nil, err
	}
	for _, f := range roster.Features {
		if f.Name == req.Feature.Name {
			return nil, fmt.Errorf("%w: %s already exists in %s", ErrFeatureExists, f.Name, roster.ProjectName)
		}
	}
	// The roster may be incomplete (README fallback), so the directory itself counts too.
	exists, err := s.writer.Exists(ctx, filepath.Join(root, filepath.FromSlash(scaffold.FeatureDir(req.Feature.Name))))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s already exists in %s", ErrFeatureExists, scaffold.FeatureDir(req.Feature.Name), roster.ProjectName)
	}
	logger.WithCtx(ctx).Debug("recovered roster", "project", roster.ProjectName, "source", roster.Source, "features", len(roster.Features))

	spec := roster.Project(root)
	plan, err := scaffold.NewPlanner(scaffold.Options{Strict: req.Strict}).PlanAddFeature(spec, req.Feature)
	if err != nil {
		return nil, err
	}

	resp := &primary.GenerateResponse{
		Root:         root,
		ProjectName:  spec.Name,
		Features:     append(spec.FeatureNames(), req.Feature.Name),
		RosterSource: string(roster.Source),
		Plan:         plan,
		DryRun:       req.DryRun,
	}
	if req.DryRun {
		return resp, nil
	}

	spec.Features = append(append([]scaffold.FeatureSpec(nil), spec.Features...), req.Feature)
	runID, err := s.apply(ctx, "feature", spec, plan)
	resp.RunID = runID
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// apply writes plan under spec.RootPath and journals the run. Journal
// failures are logged and never fail the run.
func (s *ScaffoldServiceImpl) apply(ctx context.Context, command string, spec scaffold.ProjectSpec, plan *scaffold.Plan) (int64, error) {
	log := logger.WithCtx(ctx)

	var runID int64
	if s.journal != nil {
		id, err := s.journal.Start(ctx, &secondary.RunRecord{
			Command:     command,
			ProjectName: spec.Name,
			RootPath:    absPath(spec.RootPath),
			Features:    strings.Join(spec.FeatureNames(), ","),
		})
		if err != nil {
			log.Warn("history unavailable", "error", err)
		} else {
			runID = id
			log = log.With("run_id", runID)
			ctx = logger.InjectLogger(ctx, log)
		}
	}

	var (
		mu      sync.Mutex
		written []*secondary.RunFileRecord
	)
	applyErr := s.writer.Apply(ctx, spec.RootPath, plan, func(kind, path string) {
		mu.Lock()
		defer mu.Unlock()
		written = append(written, &secondary.RunFileRecord{Path: path, Kind: kind})
	})
	log.Debug("plan applied", "root", spec.RootPath, "written", len(written), "planned", len(plan.Directories)+len(plan.Files))

	if runID != 0 {
		// The run context may already be cancelled; the outcome must still be recorded.
		recordCtx := context.WithoutCancel(ctx)
		if err := s.journal.AddFiles(recordCtx, runID, written); err != nil {
			log.Warn("failed to record written files", "error", err)
		}
		status, errMsg := secondary.RunStatusSucceeded, ""
		if applyErr != nil {
			status, errMsg = secondary.RunStatusFailed, applyErr.Error()
		}
		if err := s.journal.Finish(recordCtx, runID, status, errMsg); err != nil {
			log.Warn("failed to finish run", "error", err)
		}
	}

	if applyErr != nil {
		if runID != 0 {
			return runID, fmt.Errorf("generation failed after writing %d paths (see 'tsclean history show %d'): %w", len(written), runID, applyErr)
		}
		return 0, fmt.Errorf("generation failed after writing %d paths: %w", len(written), applyErr)
	}
	return runID, nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
