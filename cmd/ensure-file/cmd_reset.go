package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the configuration file",
	Long: `Delete the configuration file so every setting returns to its default.

Files previously written by apply or run are not touched.`,
	Args: cobra.NoArgs,
	RunE: resetConfig,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
	configCmd.AddCommand(resetCmd)
}

func resetConfig(cmd *cobra.Command, args []string) error {
	app, err := newConfigContext(false)
	if err != nil {
		return err
	}

	// Confirmation prompt
	if !resetForce {
		app.UI.Header("Reset Configuration")
		app.UI.Warning("The configuration file will be DELETED")
		app.UI.Warningf("  %s", app.Config.FilePath())
		app.UI.Print("")

		confirm, err := app.UI.PromptYesNo("Are you sure you want to reset?", false)
		if err != nil {
			return err
		}

		if !confirm {
			app.UI.Info("Reset cancelled")
			return nil
		}
	}

	if err := app.Config.Remove(); err != nil {
		return fmt.Errorf("failed to reset configuration: %w", err)
	}

	app.UI.Successf("Configuration reset: %s", app.Config.FilePath())
	return nil
}
