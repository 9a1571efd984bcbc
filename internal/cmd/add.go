package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/forgekit/cli/internal/errors"
	"github.com/forgekit/cli/internal/generator"
	"github.com/forgekit/cli/internal/output"
	"github.com/forgekit/cli/internal/project"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <kind> <display-name>",
		Short: "Add a feature to an existing project",
		Long: `Add a feature to the generated project in the current directory.

Kinds:
  page      a page package with a view and a state file
  widget    a widget wired into the main layout
  service   a service skeleton
  model     a data model

Examples:
  forge add widget "My Clock"
  forge add page Settings
  forge add service "Sync Engine"`,
		Args: cobra.ExactArgs(2),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	kind := generator.Kind(args[0])
	if !kind.Valid() {
		return abortExit(ferrors.NewValidationError(
			fmt.Sprintf("unknown feature kind %q", args[0]),
			fmt.Sprintf("Valid kinds: %s", strings.Join(generator.KindNames(), ", ")),
		))
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	gen := generator.New(wd, project.DefaultPaths())
	report, err := gen.AddFeature(generator.FeatureRequest{Kind: kind, Name: args[1]})
	if err != nil {
		return abortExit(err)
	}

	output.Println(output.StyleSummary.Render(fmt.Sprintf("Added %s '%s'", kind, report.Title)))
	printReport(report)

	return reportExit(report)
}
