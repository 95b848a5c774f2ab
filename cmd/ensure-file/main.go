package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/cli"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/pkg/version"
)

var (
	// Global flags
	configPath   string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "ensure-file",
	Short: "Idempotently ensure files hold exact content",
	Long: `Ensure that a file contains exactly the given text, creating parent
directories as needed, and report whether anything changed.

Run a single file with 'apply', or a YAML list of files with 'run'.
Both support --check to report what would change without writing.`,
	Version:       version.Short(),
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default ~/.ensure-file.conf)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Result format: text or json (default from config)")

	rootCmd.AddCommand(versionCmd)
}

// newAppContext builds the command context from global flags
func newAppContext(nonInteractive bool) (*cli.AppContext, error) {
	app, err := cli.NewAppContextWithOptions(cli.Options{
		ConfigPath:     configPath,
		NonInteractive: nonInteractive,
		Output:         outputFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context: %w", err)
	}
	return app, nil
}

// newConfigContext builds a context for commands that only read or change the
// configuration file; settings are not interpreted, so invalid values can be fixed
func newConfigContext(nonInteractive bool) (*cli.AppContext, error) {
	app, err := cli.NewConfigContext(cli.Options{
		ConfigPath:     configPath,
		NonInteractive: nonInteractive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context: %w", err)
	}
	return app, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
