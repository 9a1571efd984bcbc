// Package templates provides the embedded file templates for project
// scaffolding and feature addition, plus the literal ${name} renderer.
package templates

import (
	"embed"
	"fmt"
)

//go:embed project feature
var templateFS embed.FS

// File pairs an embedded template source with the relative path its rendering
// lands at. Name may itself carry placeholders (${package}, ${file_stem});
// it is rendered with the same data as the content.
type File struct {
	// Source is the path within the embedded filesystem.
	Source string

	// Name is the target file name pattern, relative to the feature directory
	// (feature templates) or the project root (project templates).
	Name string

	// Desc is a one-line description shown in generation reports.
	Desc string
}

// Placeholder names understood by the shipped templates.
//
//	project    raw project name
//	display    raw feature display name
//	module     module path of the generated project
//	package    package identifier
//	file_stem  snake_case file name stem
//	exported   PascalCase exported identifier
//	variable   camelCase variable identifier with kind suffix
//	width      window width in pixels
//	height     window height in pixels
//	theme      theme selection
//	layout     widget arrangement selection

// projectFiles is the whole-project scaffold, in generation order.
var projectFiles = []File{
	{Source: "project/go.mod.tmpl", Name: "go.mod", Desc: "Project descriptor"},
	{Source: "project/main.go.tmpl", Name: "main.go", Desc: "Application entry point"},
	{Source: "project/layout.go.tmpl", Name: "internal/ui/layout.go", Desc: "Widget layout (patch target)"},
	{Source: "project/arrange.go.tmpl", Name: "internal/ui/arrange.go", Desc: "Widget arrangement helper"},
	{Source: "project/theme.go.tmpl", Name: "internal/ui/theme.go", Desc: "Theme resolver"},
	{Source: "project/README.md.tmpl", Name: "README.md", Desc: "Project readme"},
}

// featureFiles maps a feature kind to the files it produces.
var featureFiles = map[string][]File{
	"widget": {
		{Source: "feature/widget.go.tmpl", Name: "${file_stem}.go", Desc: "Widget constructor"},
	},
	"service": {
		{Source: "feature/service.go.tmpl", Name: "${file_stem}.go", Desc: "Service skeleton"},
	},
	"model": {
		{Source: "feature/model.go.tmpl", Name: "${file_stem}.go", Desc: "Data model"},
	},
	"page": {
		{Source: "feature/page_view.go.tmpl", Name: "${package}/view.go", Desc: "Page view"},
		{Source: "feature/page_logic.go.tmpl", Name: "${package}/logic.go", Desc: "Page state"},
	},
}

// Project returns the whole-project scaffold files in generation order.
func Project() []File {
	out := make([]File, len(projectFiles))
	copy(out, projectFiles)
	return out
}

// Feature returns the template files for a feature kind.
func Feature(kind string) ([]File, error) {
	files, ok := featureFiles[kind]
	if !ok {
		return nil, fmt.Errorf("unknown feature kind %q", kind)
	}
	out := make([]File, len(files))
	copy(out, files)
	return out, nil
}

// RenderFile reads an embedded template and renders it with data.
func RenderFile(source string, data Data) (string, error) {
	content, err := templateFS.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", source, err)
	}
	return Render(string(content), data), nil
}
