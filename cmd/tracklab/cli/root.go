// Package cli implements the tracklab command-line interface using
// Cobra. It wires the login flow: settings, credential store, remote
// service client, and the interactive prompts.
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tracklab/tracklab/internal/log"
	"github.com/tracklab/tracklab/internal/settings"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "tracklab",
	Short: "tracklab - track and visualize your experiments",
	Long: `tracklab is the command-line client for the tracklab experiment
tracking service. Authenticate with 'tracklab login' before streaming
any run data.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := settings.Load()
		debugDir := filepath.Join(settings.GlobalConfigDir(), "debug")

		// Login prompts own the terminal; keep debug output off it.
		interactive := cmd.Name() == "login"

		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			Interactive:   interactive,
			DebugDir:      debugDir,
			RetentionDays: cfg.DebugRetentionDays,
		}); err != nil {
			// Log init failure is non-fatal - fall back to the default logger
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	defer log.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output logs in JSON format")
}
