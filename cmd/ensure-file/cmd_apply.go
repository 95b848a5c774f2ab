package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/cli"
)

var (
	applyPath        string
	applyContent     string
	applyContentFile string
	applyCheck       bool
	applyDiff        bool
)

var applyCmd = &cobra.Command{
	Use:   "apply --path PATH (--content TEXT | --content-file FILE)",
	Short: "Ensure a single file has the given content",
	Long: `Ensure the file at --path contains exactly the given content.

Missing parent directories are created. An unchanged file is left alone.
With --check nothing is written and the result says what would happen.

Content comes from --content, or from --content-file (use - for stdin).`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyPath, "path", "", "Target file path")
	applyCmd.Flags().StringVar(&applyContent, "content", "", "Desired file content")
	applyCmd.Flags().StringVar(&applyContentFile, "content-file", "", "Read desired content from a file (- for stdin)")
	applyCmd.Flags().BoolVarP(&applyCheck, "check", "C", false, "Report changes without writing")
	applyCmd.Flags().BoolVarP(&applyDiff, "diff", "D", false, "Show a diff of the change")
	applyCmd.MarkFlagsMutuallyExclusive("content", "content-file")

	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(true)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("path") {
		return fmt.Errorf("missing required argument: path")
	}

	opts := cli.ApplyOptions{
		Path:  applyPath,
		Check: applyCheck,
		Diff:  applyDiff,
	}

	switch {
	case cmd.Flags().Changed("content"):
		opts.Content = &applyContent
	case applyContentFile != "":
		text, err := readContentFile(cmd, applyContentFile)
		if err != nil {
			return err
		}
		opts.Content = &text
	}

	return cli.Apply(app, opts)
}

func readContentFile(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read content from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read content file: %w", err)
	}
	return string(data), nil
}
