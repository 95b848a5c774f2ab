package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ensure-file configuration",
	Long: `Read and change persistent settings.

Keys:
  ATOMIC_WRITE   - Replace files via temp file + rename (true/false)
  DIR_MODE       - Mode for created parent directories (octal)
  FILE_MODE      - Mode for newly created files (octal)
  FORKS          - Default number of parallel tasks for 'run'
  OUTPUT_FORMAT  - Default result format (text/json)`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured values",
	Args:  cobra.NoArgs,
	RunE:  listConfig,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the effective value of a key",
	Args:  cobra.ExactArgs(1),
	RunE:  getConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  setConfig,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a key so its default applies again",
	Args:  cobra.ExactArgs(1),
	RunE:  unsetConfig,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func listConfig(cmd *cobra.Command, args []string) error {
	app, err := newConfigContext(true)
	if err != nil {
		return err
	}

	all := app.Config.GetAll()
	keys := make([]string, 0, len(all))
	for key := range all {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		app.UI.Infof("No settings in %s (defaults apply)", app.Config.FilePath())
		return nil
	}

	for _, key := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, all[key])
	}
	return nil
}

func getConfig(cmd *cobra.Command, args []string) error {
	app, err := newConfigContext(true)
	if err != nil {
		return err
	}

	key := args[0]
	if value, err := app.Config.Get(key); err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}
	if value, ok := config.Defaults[key]; ok {
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}
	return fmt.Errorf("config key not found: %s", key)
}

func setConfig(cmd *cobra.Command, args []string) error {
	app, err := newConfigContext(true)
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := config.ValidateEntry(key, value); err != nil {
		return err
	}

	if err := app.Config.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	app.UI.Successf("%s=%s saved to %s", key, value, app.Config.FilePath())
	return nil
}

func unsetConfig(cmd *cobra.Command, args []string) error {
	app, err := newConfigContext(true)
	if err != nil {
		return err
	}

	key := args[0]
	if !app.Config.Exists(key) {
		app.UI.Infof("%s is not set in %s", key, app.Config.FilePath())
		return nil
	}

	if err := app.Config.Delete(key); err != nil {
		return fmt.Errorf("failed to unset %s: %w", key, err)
	}

	if value, ok := config.Defaults[key]; ok {
		app.UI.Successf("%s removed, default %s applies", key, value)
	} else {
		app.UI.Successf("%s removed", key)
	}
	return nil
}
