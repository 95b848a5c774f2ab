package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show effective settings",
	Long: `Display the settings apply and run will use, and where they come from.
Invalid values are reported instead of failing, so they can be fixed with
'config set' or 'config unset'.`,
	Args: cobra.NoArgs,
	RunE: showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	app, err := newConfigContext(true)
	if err != nil {
		return err
	}

	app.UI.Header("Effective Settings")

	present, err := app.FS.FileExists(app.Config.FilePath())
	if err != nil {
		return err
	}
	if present {
		app.UI.Infof("Configuration file: %s", app.Config.FilePath())
	} else {
		app.UI.Infof("Configuration file: %s (not present, defaults apply)", app.Config.FilePath())
	}
	app.UI.Print("")

	app.UI.Bold("Settings")
	for _, key := range config.KnownKeys() {
		source := "default"
		if app.Config.Exists(key) {
			source = "config"
		}
		value := app.Config.GetOrDefault(key, "")
		if err := config.ValidateEntry(key, value); err != nil {
			app.UI.Errorf("  %-14s %-6s (%s): %v", key, value, source, err)
			continue
		}
		app.UI.Printf("  %-14s %-6s (%s)", key, value, source)
	}

	app.UI.Print("")
	app.UI.Separator()

	effective, err := newAppContext(true)
	if err != nil {
		app.UI.Warningf("apply and run will fail with these settings: %v", err)
		return nil
	}
	app.UI.Infof("Output format: %s", effective.Output)
	app.UI.Infof("Atomic writes: %t", effective.FS.AtomicWrites())
	return nil
}
