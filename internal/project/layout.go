// Package project defines the generated project's on-disk contract: the
// descriptor file, the fixed sub-paths per feature kind, and the anchor
// marker literals inside the layout file.
package project

// Anchor marker lines inside the generated layout file. Their literal text is
// a versioned contract with every previously generated project: changing any
// of them breaks patch discovery for existing projects.
const (
	// AnchorWidgetImports precedes widget import declarations.
	AnchorWidgetImports = "// forge:widget-imports"

	// AnchorWidgetInstances precedes per-widget construction statements.
	AnchorWidgetInstances = "// forge:widget-instances"

	// AnchorWidgetList precedes the widget collection literal.
	AnchorWidgetList = "// forge:widget-list"
)

// Paths holds the fixed relative paths of a generated project. It is loaded
// once and passed read-only into the materializer, patcher and generator
// constructors rather than kept as ambient global state.
type Paths struct {
	// DescriptorFile is the file whose first line encodes the module path.
	DescriptorFile string

	// LayoutFile is the sole patch target carrying the three widget anchors.
	LayoutFile string

	// WidgetsDir receives widget feature files.
	WidgetsDir string

	// ServicesDir receives service feature files.
	ServicesDir string

	// ModelsDir receives model feature files.
	ModelsDir string

	// PagesDir receives page feature sub-directories, one per page.
	PagesDir string
}

// DefaultPaths returns the standard generated-project layout.
func DefaultPaths() Paths {
	return Paths{
		DescriptorFile: "go.mod",
		LayoutFile:     "internal/ui/layout.go",
		WidgetsDir:     "internal/widgets",
		ServicesDir:    "internal/services",
		ModelsDir:      "internal/models",
		PagesDir:       "internal/pages",
	}
}
