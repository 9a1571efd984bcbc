package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgekit/cli/internal/generator"
	"github.com/forgekit/cli/internal/output"
	"github.com/forgekit/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List feature templates and the files each produces",
		RunE:  runTemplates,
	}
}

func runTemplates(cmd *cobra.Command, args []string) error {
	t := output.NewTable("KIND", "FILES", "DESCRIPTION")

	for _, kind := range generator.Kinds() {
		files, err := templates.Feature(string(kind))
		if err != nil {
			return err
		}

		names := make([]string, 0, len(files))
		descs := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.Name)
			descs = append(descs, f.Desc)
		}

		t.Row(string(kind), strings.Join(names, ", "), strings.Join(descs, ", "))
	}

	output.Println(t.String())
	return nil
}
