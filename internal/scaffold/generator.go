package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	scaffoldtmpl "github.com/example/tsclean/internal/templates/scaffold"
)

// DefaultPort is the HTTP port written to .env and the bootstrap fallback.
const DefaultPort = 3000

// Dependency is one package.json entry.
type Dependency struct {
	Name    string
	Version string
}

// Dependencies every generated source file relies on.
var Dependencies = []Dependency{
	{"dotenv", "^16.4.5"},
	{"express", "^4.21.1"},
	{"mongoose", "^8.7.2"},
	{"reflect-metadata", "^0.2.2"},
	{"tsyringe", "^4.8.0"},
	{"zod", "^3.23.8"},
}

// DevDependencies for build and test tooling.
var DevDependencies = []Dependency{
	{"@types/express", "^5.0.0"},
	{"@types/jest", "^29.5.13"},
	{"@types/node", "^22.7.5"},
	{"@types/supertest", "^6.0.2"},
	{"jest", "^29.7.0"},
	{"nodemon", "^3.1.7"},
	{"supertest", "^7.0.0"},
	{"ts-jest", "^29.2.5"},
	{"ts-node", "^10.9.2"},
	{"typescript", "^5.6.3"},
}

// emitter binds a template to the path it renders to.
type emitter struct {
	template string
	path     func(feature string) string
}

// featureEmitters is the per-feature file catalog.
var featureEmitters = []emitter{
	{"container.ts", func(f string) string { return FeatureDir(f) + "/container.ts" }},
	{"entity.ts", func(f string) string { return FeatureDir(f) + "/domain/entity/" + f + ".entity.ts" }},
	{"repository_interface.ts", func(f string) string {
		return FeatureDir(f) + "/domain/repositories/" + f + ".repository.interface.ts"
	}},
	{"usecase.ts", func(f string) string { return FeatureDir(f) + "/domain/usecases/create-" + f + ".usecase.ts" }},
	{"model.ts", func(f string) string { return FeatureDir(f) + "/data/models/" + f + ".model.ts" }},
	{"datasource.ts", func(f string) string { return FeatureDir(f) + "/data/datasources/" + f + ".datasource.ts" }},
	{"repository.ts", func(f string) string { return FeatureDir(f) + "/data/repositories/" + f + ".repository.ts" }},
	{"middleware.ts", func(f string) string {
		return FeatureDir(f) + "/delivery/middlewares/validate-" + f + ".middleware.ts"
	}},
	{"controller.ts", func(f string) string { return FeatureDir(f) + "/delivery/controllers/" + f + ".controller.ts" }},
	{"usecase_test.ts", func(f string) string { return FeatureTestDir(f) + "/" + f + ".usecase.test.ts" }},
	{"controller_test.ts", func(f string) string { return FeatureTestDir(f) + "/" + f + ".controller.test.ts" }},
}

// staticProjectFiles are written once on create and never regenerated.
var staticProjectFiles = []struct {
	template string
	path     string
}{
	{"package.json", "package.json"},
	{"tsconfig.json", "tsconfig.json"},
	{"jest.config.ts", "jest.config.ts"},
	{"env", ".env"},
	{"gitignore", ".gitignore"},
	{"result.ts", "Core/result/result.ts"},
	{"custom-error.ts", "Core/error/custom-error.ts"},
	{"database.ts", "Core/config/database.ts"},
}

// Roster-dependent project files, rewritten whole on every run.
const (
	BootstrapPath = "Server/index.ts"
	ReadmePath    = "README.md"
)

// Generator renders the template catalog.
type Generator struct {
	funcs template.FuncMap
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{
		funcs: scaffoldtmpl.TemplateFuncs(),
	}
}

// fieldView is the template data for one field.
type fieldView struct {
	Name         string
	TSType       string
	MongooseType string
}

// featureView is the template data for one feature.
type featureView struct {
	Name       string // "product"
	Stem       string // "Product"
	Fields     []fieldView
	Schema     string // zod object expression
	SampleJSON string
}

// projectView is the template data for project-wide files.
type projectView struct {
	Name            string
	Port            int
	Features        []featureView
	FeatureNames    []string
	Dependencies    []Dependency
	DevDependencies []Dependency
}

func newFeatureView(f FeatureSpec) featureView {
	fields := f.EffectiveFields()
	views := make([]fieldView, len(fields))
	for i, fd := range fields {
		m := MapType(fd.Type)
		views[i] = fieldView{Name: fd.Name, TSType: m.TSType, MongooseType: m.MongooseType}
	}
	return featureView{
		Name:       f.Name,
		Stem:       Capitalize(f.Name),
		Fields:     views,
		Schema:     SchemaFor(fields),
		SampleJSON: SampleJSON(fields),
	}
}

func newProjectView(p ProjectSpec) projectView {
	features := make([]featureView, len(p.Features))
	for i, f := range p.Features {
		features[i] = newFeatureView(f)
	}
	return projectView{
		Name:            p.Name,
		Port:            DefaultPort,
		Features:        features,
		FeatureNames:    p.FeatureNames(),
		Dependencies:    Dependencies,
		DevDependencies: DevDependencies,
	}
}

// GenerateFeature renders every per-feature file for f.
func (g *Generator) GenerateFeature(f FeatureSpec) ([]GeneratedFile, error) {
	view := newFeatureView(f)
	files := make([]GeneratedFile, 0, len(featureEmitters))

	for _, e := range featureEmitters {
		tmplContent, err := scaffoldtmpl.GetFeatureTemplate(e.template)
		if err != nil {
			return nil, err
		}
		content, err := g.render(e.template, tmplContent, view)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s for %s: %w", e.template, f.Name, err)
		}
		files = append(files, GeneratedFile{Path: e.path(f.Name), Content: content})
	}

	return files, nil
}

// GenerateStatic renders the project files that do not depend on the roster.
func (g *Generator) GenerateStatic(p ProjectSpec) ([]GeneratedFile, error) {
	view := newProjectView(p)
	files := make([]GeneratedFile, 0, len(staticProjectFiles))

	for _, s := range staticProjectFiles {
		content, err := g.renderProject(s.template, view)
		if err != nil {
			return nil, err
		}
		files = append(files, GeneratedFile{Path: s.path, Content: content})
	}

	return files, nil
}

// GenerateBootstrap renders Server/index.ts for the full roster.
func (g *Generator) GenerateBootstrap(p ProjectSpec) (GeneratedFile, error) {
	content, err := g.renderProject("index.ts", newProjectView(p))
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: BootstrapPath, Content: content}, nil
}

// GenerateReadme renders README.md for the full roster.
func (g *Generator) GenerateReadme(p ProjectSpec) (GeneratedFile, error) {
	content, err := g.renderProject("README.md", newProjectView(p))
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: ReadmePath, Content: content}, nil
}

func (g *Generator) renderProject(name string, view projectView) (string, error) {
	tmplContent, err := scaffoldtmpl.GetProjectTemplate(name)
	if err != nil {
		return "", err
	}
	content, err := g.render(name, tmplContent, view)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return content, nil
}

// render executes one template.
func (g *Generator) render(name, tmplContent string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(g.funcs).Option("missingkey=error").Parse(tmplContent)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
