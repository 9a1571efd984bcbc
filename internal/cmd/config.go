package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/forgekit/cli/internal/config"
	ferrors "github.com/forgekit/cli/internal/errors"
	"github.com/forgekit/cli/internal/output"
	"github.com/forgekit/cli/internal/project"
)

var configInitForce bool

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage forge configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigVetCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long:  `Write the default configuration to ~/.forge/config.yaml (or --config).`,
		RunE:  runConfigInit,
	}

	cmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFlag
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return err
		}
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(expanded); err == nil && !configInitForce {
		return abortExit(&ferrors.DetailError{
			Type:     "validation failed",
			Message:  "config file already exists",
			Location: expanded,
			Hint:     "Use --force to overwrite it.",
			Cause:    ferrors.ErrValidation,
		})
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return abortExit(ferrors.NewFileSystemError("creating config directory", expanded, err))
	}
	if err := os.WriteFile(expanded, data, 0o644); err != nil {
		return abortExit(ferrors.NewFileSystemError("writing config file", expanded, err))
	}

	output.Println(output.FormatCheckmark("Wrote " + expanded))
	return nil
}

func newConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the config file",
		RunE:  runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		return abortExit(err)
	}

	if cfg.Theme != "" && !slices.Contains(project.Themes(), cfg.Theme) {
		return abortExit(ferrors.NewValidationError(
			fmt.Sprintf("unknown theme %q in config", cfg.Theme),
			"Valid themes: dark, light.",
		))
	}
	if cfg.Layout != "" && !slices.Contains(project.Arrangements(), cfg.Layout) {
		return abortExit(ferrors.NewValidationError(
			fmt.Sprintf("unknown layout %q in config", cfg.Layout),
			"Valid layouts: grid, tabs.",
		))
	}
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return abortExit(ferrors.NewValidationError(
			"window dimensions must be positive",
			"Remove the value to fall back to the built-in default.",
		))
	}

	output.Println(output.FormatCheckmark("Config is valid"))
	return nil
}
