// Package introspect recovers the feature roster of a previously generated project.
package introspect

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/example/tsclean/internal/config"
	"github.com/example/tsclean/internal/scaffold"
)

// ErrNotAProject is returned when the root has no generated bootstrap file.
var ErrNotAProject = errors.New("not a recognized tsclean project")

// Source records where a roster was recovered from.
type Source string

const (
	SourceManifest Source = "manifest"
	SourceReadme   Source = "readme"
)

var (
	headingRe = regexp.MustCompile(`^# (.+)$`)
	featureRe = regexp.MustCompile(`^- Create a ([A-Za-z0-9_-]+):`)
)

// Roster is the project name and ordered feature list of an existing project.
type Roster struct {
	ProjectName string
	Features    []scaffold.FeatureSpec
	Source      Source
}

// Project returns the roster as a ProjectSpec rooted at root.
func (r *Roster) Project(root string) scaffold.ProjectSpec {
	return scaffold.ProjectSpec{
		Name:     r.ProjectName,
		RootPath: root,
		Features: r.Features,
	}
}

// RecoverRoster reads the roster of the project at root. The manifest is used
// when present; otherwise names are recovered from the README and carry no
// field specs.
func RecoverRoster(root string) (*Roster, error) {
	marker := filepath.Join(root, filepath.FromSlash(scaffold.BootstrapPath))
	if _, err := os.Stat(marker); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found in %s", ErrNotAProject, scaffold.BootstrapPath, root)
		}
		return nil, fmt.Errorf("failed to check %s: %w", scaffold.BootstrapPath, err)
	}

	m, err := config.LoadManifest(root)
	switch {
	case err == nil:
		return fromManifest(m)
	case errors.Is(err, fs.ErrNotExist):
		return fromReadme(root)
	default:
		return nil, err
	}
}

func fromManifest(m *config.Manifest) (*Roster, error) {
	r := &Roster{ProjectName: m.Project, Source: SourceManifest}
	for _, mf := range m.Features {
		f, err := scaffold.BuildFeatureSpec(mf.Name, mf.Fields)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ManifestFile, err)
		}
		r.Features = append(r.Features, f)
	}
	return r, nil
}

func fromReadme(root string) (*Roster, error) {
	data, err := os.ReadFile(filepath.Join(root, scaffold.ReadmePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", scaffold.ReadmePath, err)
	}
	r := ParseReadme(data)
	if r.ProjectName == "" {
		return nil, fmt.Errorf("%w: %s has no top-level heading", ErrNotAProject, scaffold.ReadmePath)
	}
	return r, nil
}

// ParseReadme recovers the project name from the first top-level heading and
// one feature per "- Create a <feature>:" line. Repeated names are kept once.
func ParseReadme(data []byte) *Roster {
	r := &Roster{Source: SourceReadme}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if r.ProjectName == "" {
			if m := headingRe.FindStringSubmatch(line); m != nil {
				r.ProjectName = strings.TrimSpace(m[1])
				continue
			}
		}
		if m := featureRe.FindStringSubmatch(line); m != nil && !seen[m[1]] {
			seen[m[1]] = true
			r.Features = append(r.Features, scaffold.FeatureSpec{Name: m[1]})
		}
	}
	return r
}
