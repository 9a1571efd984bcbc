package cmd

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/forgekit/cli/internal/errors"
	"github.com/forgekit/cli/internal/generator"
	"github.com/forgekit/cli/internal/identifier"
	"github.com/forgekit/cli/internal/output"
	"github.com/forgekit/cli/internal/project"
)

var (
	newDir    string
	newModule string
	newWidth  string
	newHeight string
	newTheme  string
	newLayout string
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Generate a new project scaffold",
		Long: `Generate a new Fyne desktop application scaffold.

Examples:
  # Create a project in ./my_clock
  forge new "My Clock"

  # Pick window size and theme
  forge new "My Clock" --width 1024 --height 768 --theme light

  # Choose the target directory and module path
  forge new "My Clock" --dir ./apps/clock --module example.com/clock`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}

	cmd.Flags().StringVarP(&newDir, "dir", "d", "", "Directory to create the project in (defaults to the project name)")
	cmd.Flags().StringVarP(&newModule, "module", "m", "", "Module path for the generated project (defaults to example.com/<name>)")
	cmd.Flags().StringVar(&newWidth, "width", "", fmt.Sprintf("Window width in pixels (default %d)", project.DefaultWidth))
	cmd.Flags().StringVar(&newHeight, "height", "", fmt.Sprintf("Window height in pixels (default %d)", project.DefaultHeight))
	cmd.Flags().StringVar(&newTheme, "theme", "", fmt.Sprintf("Theme (%s)", strings.Join(project.Themes(), ", ")))
	cmd.Flags().StringVar(&newLayout, "layout", "", fmt.Sprintf("Widget arrangement (%s)", strings.Join(project.Arrangements(), ", ")))

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	desc, err := descriptorFromInput(args[0], newWidth, newHeight, newTheme, newLayout)
	if err != nil {
		return abortExit(err)
	}
	desc.Module = newModule

	// Validate the name before touching the file system; the file-stem also
	// names the default target directory.
	ids, err := identifier.Derive(desc.Name, "App")
	if err != nil {
		return abortExit(err)
	}

	targetDir := newDir
	if targetDir == "" {
		targetDir = ids.FileStem
	}

	gen := generator.New(targetDir, project.DefaultPaths())

	var report *generator.Report
	err = output.RunWithSpinner(cmd.Context(), func() error {
		r, err := gen.NewProject(desc)
		report = r
		return err
	}, output.WithTitle("Generating "+desc.Name+"..."))
	if err != nil {
		return abortExit(err)
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		absDir = targetDir
	}

	output.Println(output.StyleSummary.Render(fmt.Sprintf("Created project '%s' in %s", desc.Name, absDir)))
	printReport(report)

	return reportExit(report)
}

// descriptorFromInput assembles a project descriptor from free-form input.
// Non-numeric or non-positive dimensions fall back to the configured default
// with a warning; theme and layout must name a known selection.
func descriptorFromInput(name, width, height, theme, layout string) (project.Descriptor, error) {
	cfg := GetConfig()

	desc := project.Descriptor{
		Name:        name,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Theme:       cfg.Theme,
		Arrangement: cfg.Layout,
	}

	if width != "" {
		w, ok := project.ParseDimension(width, cfg.Window.Width)
		if !ok {
			output.Warn("invalid width, using default", "input", width, "default", w)
		}
		desc.Width = w
	}
	if height != "" {
		h, ok := project.ParseDimension(height, cfg.Window.Height)
		if !ok {
			output.Warn("invalid height, using default", "input", height, "default", h)
		}
		desc.Height = h
	}

	if theme != "" {
		if !slices.Contains(project.Themes(), theme) {
			return project.Descriptor{}, ferrors.NewValidationError(
				fmt.Sprintf("unknown theme %q", theme),
				fmt.Sprintf("Valid themes: %s", strings.Join(project.Themes(), ", ")),
			)
		}
		desc.Theme = theme
	}
	if layout != "" {
		if !slices.Contains(project.Arrangements(), layout) {
			return project.Descriptor{}, ferrors.NewValidationError(
				fmt.Sprintf("unknown layout %q", layout),
				fmt.Sprintf("Valid layouts: %s", strings.Join(project.Arrangements(), ", ")),
			)
		}
		desc.Arrangement = layout
	}

	return desc.WithDefaults(), nil
}
