// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/forgekit/cli/internal/config"
	"github.com/forgekit/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Loaded configuration (populated during PersistentPreRunE)
	forgeConfig *config.Config
)

// NewRootCmd creates the root command for the forge CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "forge",
		Short:         "Desktop application scaffolder",
		Long:          `forge scaffolds Fyne desktop applications and extends them feature by feature without disturbing your edits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default ~/.forge/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewAddCmd())
	rootCmd.AddCommand(NewMenuCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// Commands still work with built-in defaults.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}
	forgeConfig = cfg

	return nil
}

// GetConfig returns the loaded forge configuration.
func GetConfig() *config.Config {
	if forgeConfig == nil {
		return config.DefaultConfig()
	}
	return forgeConfig
}
