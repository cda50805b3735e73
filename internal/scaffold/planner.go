package scaffold

import (
	"fmt"
	"strings"

	"github.com/example/tsclean/internal/config"
)

// projectDirectories are created once per project.
var projectDirectories = []string{
	"Core/config",
	"Core/error",
	"Core/result",
	"Server",
	"__tests__",
}

// featureSubdirs are the nine layer directories under Features/<name>.
var featureSubdirs = []string{
	"domain/entity",
	"domain/usecases",
	"domain/repositories",
	"data/repositories",
	"data/datasources",
	"data/models",
	"delivery/routes",
	"delivery/controllers",
	"delivery/middlewares",
}

// FeatureDir returns the source root of a feature.
func FeatureDir(feature string) string {
	return "Features/" + feature
}

// FeatureTestDir returns the mirrored test directory of a feature.
func FeatureTestDir(feature string) string {
	return "__tests__/Features/" + feature
}

// ProjectDirectories returns the fixed project-wide directory layout.
func ProjectDirectories() []string {
	return append([]string(nil), projectDirectories...)
}

// FeatureDirectories returns every directory a feature owns.
func FeatureDirectories(feature string) []string {
	dirs := make([]string, 0, len(featureSubdirs)+1)
	for _, sub := range featureSubdirs {
		dirs = append(dirs, FeatureDir(feature)+"/"+sub)
	}
	return append(dirs, FeatureTestDir(feature))
}

// Options tunes planning.
type Options struct {
	Strict bool // turn lenient fallbacks into errors
}

// Planner computes the files and directories of a generation run.
type Planner struct {
	gen  *Generator
	opts Options
}

// NewPlanner creates a Planner.
func NewPlanner(opts Options) *Planner {
	return &Planner{gen: NewGenerator(), opts: opts}
}

// PlanCreate plans a brand new project containing every feature in p.
func (pl *Planner) PlanCreate(p ProjectSpec) (*Plan, error) {
	if err := ValidateProjectName(p.Name); err != nil {
		return nil, err
	}
	if err := validateRoster(p.Features); err != nil {
		return nil, err
	}

	plan := &Plan{Directories: ProjectDirectories()}

	static, err := pl.gen.GenerateStatic(p)
	if err != nil {
		return nil, err
	}
	plan.Files = append(plan.Files, static...)

	for _, f := range p.Features {
		if err := pl.addFeature(plan, f); err != nil {
			return nil, err
		}
	}

	if err := pl.addRosterFiles(plan, p); err != nil {
		return nil, err
	}
	return plan, pl.checkStrict(plan)
}

// PlanAddFeature plans adding newFeature to an existing project whose current
// roster is p.Features. Only the new feature's subtree is emitted, plus whole
// rewrites of the bootstrap, README and manifest for the grown roster.
func (pl *Planner) PlanAddFeature(p ProjectSpec, newFeature FeatureSpec) (*Plan, error) {
	for _, f := range p.Features {
		if f.Name == newFeature.Name {
			return nil, fmt.Errorf("%w: %s already exists in %s", ErrDuplicateFeature, newFeature.Name, p.Name)
		}
	}

	grown := p
	grown.Features = append(append([]FeatureSpec(nil), p.Features...), newFeature)
	if err := validateRoster(grown.Features); err != nil {
		return nil, err
	}

	plan := &Plan{}
	if err := pl.addFeature(plan, newFeature); err != nil {
		return nil, err
	}
	if err := pl.addRosterFiles(plan, grown); err != nil {
		return nil, err
	}
	return plan, pl.checkStrict(plan)
}

func (pl *Planner) addFeature(plan *Plan, f FeatureSpec) error {
	plan.Directories = append(plan.Directories, FeatureDirectories(f.Name)...)

	files, err := pl.gen.GenerateFeature(f)
	if err != nil {
		return err
	}
	plan.Files = append(plan.Files, files...)
	plan.Warnings = append(plan.Warnings, FieldWarnings(f.Name, f.EffectiveFields())...)
	return nil
}

// addRosterFiles renders the files that enumerate the whole roster.
func (pl *Planner) addRosterFiles(plan *Plan, p ProjectSpec) error {
	bootstrap, err := pl.gen.GenerateBootstrap(p)
	if err != nil {
		return err
	}
	readme, err := pl.gen.GenerateReadme(p)
	if err != nil {
		return err
	}
	manifest, err := RenderManifest(p)
	if err != nil {
		return err
	}
	plan.Files = append(plan.Files, bootstrap, readme, manifest)
	return nil
}

func (pl *Planner) checkStrict(plan *Plan) error {
	if pl.opts.Strict && len(plan.Warnings) > 0 {
		return fmt.Errorf("%w: %s", ErrStrict, strings.Join(plan.Warnings, "; "))
	}
	return nil
}

// RenderManifest renders the .tsclean.yaml sidecar for p.
func RenderManifest(p ProjectSpec) (GeneratedFile, error) {
	m := &config.Manifest{
		Version:  config.ManifestVersion,
		Project:  p.Name,
		Features: make([]config.ManifestFeature, len(p.Features)),
	}
	for i, f := range p.Features {
		m.Features[i] = config.ManifestFeature{Name: f.Name, Fields: FormatFields(f.Fields)}
	}

	content, err := config.MarshalManifest(m)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: config.ManifestFile, Content: content}, nil
}

// validateRoster checks feature names and their uniqueness.
func validateRoster(features []FeatureSpec) error {
	seen := make(map[string]bool, len(features))
	for _, f := range features {
		if err := ValidateFeatureName(f.Name); err != nil {
			return err
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateFeature, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}
