package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/forgekit/cli/internal/generator"
	"github.com/forgekit/cli/internal/identifier"
	"github.com/forgekit/cli/internal/output"
	"github.com/forgekit/cli/internal/project"
)

// NewMenuCmd creates the interactive menu command.
func NewMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive project and feature menu",
		Long: `Run forge as an interactive menu.

Each selection maps onto one generation operation; errors are reported and
the menu resumes. Choose Exit (or press Esc) to quit.`,
		RunE: runMenu,
	}
}

func runMenu(cmd *cobra.Command, args []string) error {
	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("forge").
				Options(
					huh.NewOption("Generate new project", "new"),
					huh.NewOption("Add feature to existing project", "add"),
					huh.NewOption("Exit", "exit"),
				).
				Value(&choice),
		))

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var err error
		switch choice {
		case "new":
			err = menuNewProject()
		case "add":
			err = menuAddFeature()
		case "exit":
			return nil
		}

		// Every failure is recoverable: report it and resume the menu.
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			output.Error("operation failed", "error", err)
		}
	}
}

// menuNewProject collects project choices and runs one generation operation.
func menuNewProject() error {
	var name, width, height string
	theme := project.DefaultTheme
	layout := project.DefaultArrangement

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Value(&name),
		huh.NewInput().
			Title(fmt.Sprintf("Window width (default %d)", GetConfig().Window.Width)).
			Value(&width),
		huh.NewInput().
			Title(fmt.Sprintf("Window height (default %d)", GetConfig().Window.Height)).
			Value(&height),
		huh.NewSelect[string]().
			Title("Theme").
			Options(
				huh.NewOption("Dark", "dark"),
				huh.NewOption("Light", "light"),
			).
			Value(&theme),
		huh.NewSelect[string]().
			Title("Layout").
			Options(
				huh.NewOption("Grid", "grid"),
				huh.NewOption("Tabs", "tabs"),
			).
			Value(&layout),
	))
	if err := form.Run(); err != nil {
		return err
	}

	desc, err := descriptorFromInput(name, width, height, theme, layout)
	if err != nil {
		return err
	}

	ids, err := identifier.Derive(desc.Name, "App")
	if err != nil {
		return err
	}

	gen := generator.New(ids.FileStem, project.DefaultPaths())
	report, err := gen.NewProject(desc)
	if err != nil {
		return err
	}

	output.Println(output.StyleSummary.Render(fmt.Sprintf("Created project '%s'", desc.Name)))
	printReport(report)
	return nil
}

// menuAddFeature collects a feature choice and runs one addition operation.
func menuAddFeature() error {
	var kind string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Feature kind").
			Options(
				huh.NewOption("Page", "page"),
				huh.NewOption("Widget", "widget"),
				huh.NewOption("Service", "service"),
				huh.NewOption("Model", "model"),
				huh.NewOption("Back", "back"),
			).
			Value(&kind),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if kind == "back" {
		return nil
	}

	var name string
	nameForm := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("%s name", kind)).
			Value(&name),
	))
	if err := nameForm.Run(); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	gen := generator.New(wd, project.DefaultPaths())
	report, err := gen.AddFeature(generator.FeatureRequest{Kind: generator.Kind(kind), Name: name})
	if err != nil {
		return err
	}

	output.Println(output.StyleSummary.Render(fmt.Sprintf("Added %s '%s'", kind, report.Title)))
	printReport(report)
	return nil
}
