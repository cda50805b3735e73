// Package scaffold provides code generation for tsclean projects.
package scaffold

import "errors"

var (
	ErrInvalidFieldSpec = errors.New("invalid field spec")
	ErrDuplicateField   = errors.New("duplicate field")
	ErrInvalidName      = errors.New("invalid name")
	ErrDuplicateFeature = errors.New("duplicate feature")
	ErrStrict           = errors.New("strict mode")
)

// DefaultFieldSpec is substituted when a feature is given no fields.
const DefaultFieldSpec = "name:string:minlength=3,email:string:email"

// FieldDescriptor is one parsed `name:type[:rule]` entry.
type FieldDescriptor struct {
	Name string // field identifier, order significant
	Type string // string, number, boolean; anything else falls back to "any"
	Rule string // optional validation rule, e.g. "min=0" or "enum=a|b"
}

// String re-serializes the descriptor to its `name:type[:rule]` form.
func (f FieldDescriptor) String() string {
	if f.Rule == "" {
		return f.Name + ":" + f.Type
	}
	return f.Name + ":" + f.Type + ":" + f.Rule
}

// FeatureSpec is one CRUD vertical slice to scaffold.
type FeatureSpec struct {
	Name   string            // lower-case stem: "product"
	Fields []FieldDescriptor // empty means "use the default field set"
}

// EffectiveFields returns the feature's fields, or the default pair when none were given.
func (f FeatureSpec) EffectiveFields() []FieldDescriptor {
	if len(f.Fields) > 0 {
		return f.Fields
	}
	return DefaultFields()
}

// DefaultFields returns the field set used when a feature is declared without --fields.
func DefaultFields() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "name", Type: "string", Rule: "minlength=3"},
		{Name: "email", Type: "string", Rule: "email"},
	}
}

// ProjectSpec is the full roster of one generation run.
type ProjectSpec struct {
	Name     string
	RootPath string
	Features []FeatureSpec
}

// FeatureNames returns the roster's feature names in order.
func (p ProjectSpec) FeatureNames() []string {
	names := make([]string, len(p.Features))
	for i, f := range p.Features {
		names[i] = f.Name
	}
	return names
}

// GeneratedFile is a single output file. Writing it always overwrites.
type GeneratedFile struct {
	Path    string // slash-separated, relative to project root
	Content string
}

// Plan is the complete set of directories and files one run writes.
type Plan struct {
	Directories []string // created, in order, before any file is written
	Files       []GeneratedFile
	Warnings    []string // lenient fallbacks taken while rendering
}

// File returns the planned file at path, if any.
func (p *Plan) File(path string) (GeneratedFile, bool) {
	for _, f := range p.Files {
		if f.Path == path {
			return f, true
		}
	}
	return GeneratedFile{}, false
}
