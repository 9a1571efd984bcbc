// Package generator orchestrates project generation and feature addition:
// derive identifiers, render templates, materialize files, and (for widgets)
// patch the layout file anchors.
package generator

import (
	"path/filepath"
	"strconv"

	"github.com/forgekit/cli/internal/identifier"
	"github.com/forgekit/cli/internal/output"
	"github.com/forgekit/cli/internal/project"
	"github.com/forgekit/cli/internal/scaffold"
	"github.com/forgekit/cli/internal/templates"
)

// FeatureRequest asks for one feature to be added to an existing project.
// It is transient: it exists only for the duration of one operation.
type FeatureRequest struct {
	// Kind is the feature kind.
	Kind Kind

	// Name is the raw display name supplied by the user.
	Name string
}

// Report collects the outcome of one generation operation. Per-file and
// per-anchor failures are recorded here rather than aborting the operation;
// only identifier validation and a missing descriptor abort up front.
type Report struct {
	// Title names the project or feature the operation targeted.
	Title string

	// Files holds one result per materialized file, in generation order.
	Files []scaffold.FileResult

	// Patches holds one result per anchor, in patch order (widgets only).
	Patches []scaffold.PatchResult
}

// FirstError returns the first per-file or per-patch error, or nil.
func (r *Report) FirstError() error {
	for _, f := range r.Files {
		if f.Err != nil {
			return f.Err
		}
	}
	for _, p := range r.Patches {
		if p.Err != nil {
			return p.Err
		}
	}
	return nil
}

// Generator sequences the scaffolding components for one project root.
type Generator struct {
	root  string
	paths project.Paths
	files *scaffold.Materializer
	patch *scaffold.Patcher
}

// New creates a generator rooted at dir with the given fixed paths.
func New(dir string, paths project.Paths) *Generator {
	return &Generator{
		root:  dir,
		paths: paths,
		files: scaffold.NewMaterializer(dir),
		patch: scaffold.NewPatcher(dir),
	}
}

// NewProject materializes the whole-project scaffold described by desc into
// the generator's root. Existing files are skipped, never overwritten, so a
// re-run over a partially generated tree fills in only what is missing.
func (g *Generator) NewProject(desc project.Descriptor) (*Report, error) {
	ids, err := identifier.Derive(desc.Name, "App")
	if err != nil {
		return nil, err
	}

	desc = desc.WithDefaults()
	if desc.Module == "" {
		desc.Module = "example.com/" + ids.Package
	}

	data := templates.Data{
		"project": desc.Name,
		"module":  desc.Module,
		"package": ids.Package,
		"width":   strconv.Itoa(desc.Width),
		"height":  strconv.Itoa(desc.Height),
		"theme":   desc.Theme,
		"layout":  desc.Arrangement,
	}

	output.Debug("generating project",
		"name", desc.Name,
		"module", desc.Module,
		"target", g.root)

	report := &Report{Title: desc.Name}
	for _, f := range templates.Project() {
		report.Files = append(report.Files, g.materialize(f, f.Name, data))
	}

	return report, nil
}

// AddFeature adds one feature to the generated project at the generator's
// root. The module path is re-derived from the descriptor file on every
// invocation; the widget kind additionally patches the layout file anchors.
func (g *Generator) AddFeature(req FeatureRequest) (*Report, error) {
	module, err := project.ReadModule(g.root, g.paths)
	if err != nil {
		return nil, err
	}

	ids, err := identifier.Derive(req.Name, req.Kind.Suffix())
	if err != nil {
		return nil, err
	}

	data := templates.Data{
		"display":   req.Name,
		"module":    module,
		"package":   ids.Package,
		"file_stem": ids.FileStem,
		"exported":  ids.Exported,
		"variable":  ids.Variable,
	}

	files, err := templates.Feature(string(req.Kind))
	if err != nil {
		return nil, err
	}

	output.Debug("adding feature",
		"kind", req.Kind,
		"name", req.Name,
		"file_stem", ids.FileStem)

	report := &Report{Title: req.Name}
	dir := g.featureDir(req.Kind)
	for _, f := range files {
		rel := filepath.Join(dir, templates.Render(f.Name, data))
		report.Files = append(report.Files, g.materialize(f, rel, data))
	}

	// The widget's own file and the shared layout file are independent
	// targets; a materialize failure above does not prevent patching.
	if req.Kind == KindWidget {
		report.Patches = g.patchLayout(module, ids)
	}

	return report, nil
}

// materialize renders one template file and writes it at relPath.
func (g *Generator) materialize(f templates.File, relPath string, data templates.Data) scaffold.FileResult {
	content, err := templates.RenderFile(f.Source, data)
	if err != nil {
		return scaffold.FileResult{Path: relPath, Desc: f.Desc, Outcome: scaffold.OutcomeFailed, Err: err}
	}

	res := g.files.Write(relPath, content)
	res.Desc = f.Desc
	output.Debug("materialized file", "path", res.Path, "outcome", res.Outcome)
	return res
}

// patchLayout splices the widget's import, construction and list entry into
// the layout file, in that order. Each anchor is scanned against the file
// state the previous patch left behind. Only the import line is de-duplicated;
// the instance and list anchors append on every invocation.
func (g *Generator) patchLayout(module string, ids identifier.Set) []scaffold.PatchResult {
	importLine := "\t\"" + module + "/" + filepath.ToSlash(g.paths.WidgetsDir) + "\""
	instanceLine := "\t" + ids.Variable + " := widgets.New" + ids.Exported + "(win)"
	listLine := "\t\t" + ids.Variable + ","

	patches := []scaffold.Patch{
		{Anchor: project.AnchorWidgetImports, Lines: []string{importLine}, DedupLine: importLine},
		{Anchor: project.AnchorWidgetInstances, Lines: []string{instanceLine}},
		{Anchor: project.AnchorWidgetList, Lines: []string{listLine}},
	}

	results := make([]scaffold.PatchResult, 0, len(patches))
	for _, p := range patches {
		res := g.patch.Apply(g.paths.LayoutFile, p)
		output.Debug("patched anchor", "anchor", res.Anchor, "outcome", res.Outcome)
		results = append(results, res)
	}
	return results
}

// featureDir returns the fixed directory for a feature kind.
func (g *Generator) featureDir(kind Kind) string {
	switch kind {
	case KindWidget:
		return g.paths.WidgetsDir
	case KindService:
		return g.paths.ServicesDir
	case KindModel:
		return g.paths.ModelsDir
	case KindPage:
		return g.paths.PagesDir
	default:
		return "."
	}
}
