// Package scaffold provides templates for code generation.
package scaffold

import (
	"embed"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed project/*.tmpl feature/*.tmpl
var scaffoldTemplates embed.FS

// GetProjectTemplate returns the content of a project-wide template.
func GetProjectTemplate(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile("project/" + name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// GetFeatureTemplate returns the content of a per-feature template.
func GetFeatureTemplate(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile("feature/" + name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// List returns the template names under group ("project" or "feature"), without extension.
func List(group string) ([]string, error) {
	entries, err := fs.ReadDir(scaffoldTemplates, group)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	return names, nil
}

// TemplateFuncs returns the template function map for scaffold templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
	}
}
