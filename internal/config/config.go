package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the sidecar written at the root of every generated project.
const ManifestFile = ".tsclean.yaml"

// ManifestVersion is bumped when the manifest layout changes.
const ManifestVersion = 1

// Manifest records the project name and feature roster of a generated project
type Manifest struct {
	Version  int               `yaml:"version"`
	Project  string            `yaml:"project"`
	Features []ManifestFeature `yaml:"features"`
}

// ManifestFeature is one roster entry. Fields uses the --fields DSL.
type ManifestFeature struct {
	Name   string `yaml:"name"`
	Fields string `yaml:"fields,omitempty"`
}

// LoadManifest reads .tsclean.yaml from the specified project root.
// Returns an error wrapping fs.ErrNotExist if the project has no manifest -
// caller should fall back accordingly.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if m.Project == "" {
		return nil, fmt.Errorf("failed to parse manifest: %s has no project name", path)
	}

	return &m, nil
}

// MarshalManifest renders the manifest file body.
func MarshalManifest(m *Manifest) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return string(data), nil
}
