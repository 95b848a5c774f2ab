package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/cli"
)

var (
	// Flags for task file runs
	runCheck          bool
	runDiff           bool
	runForks          int
	runStep           bool
	runNonInteractive bool
)

var runCmd = &cobra.Command{
	Use:   "run TASKFILE",
	Short: "Run every task in a YAML task file",
	Long: `Run the tasks listed in a YAML task file:

  tasks:
    - name: Message of the day
      path: /etc/motd
      content: |
        Welcome

Each task needs a path and a content key (content: "" for an empty file).
Tasks run in parallel up to --forks; the first failure stops the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskFile,
}

func init() {
	runCmd.Flags().BoolVarP(&runCheck, "check", "C", false, "Report changes without writing")
	runCmd.Flags().BoolVarP(&runDiff, "diff", "D", false, "Show a diff for each change")
	runCmd.Flags().IntVarP(&runForks, "forks", "f", 0, "Tasks to run in parallel (default from config)")
	runCmd.Flags().BoolVar(&runStep, "step", false, "Confirm each task before running it")
	runCmd.Flags().BoolVar(&runNonInteractive, "non-interactive", false, "Never prompt; --step accepts every task")

	rootCmd.AddCommand(runCmd)
}

func runTaskFile(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(runNonInteractive)
	if err != nil {
		return err
	}

	return cli.RunTasks(cmd.Context(), app, cli.RunOptions{
		TaskFile: args[0],
		Check:    runCheck,
		Diff:     runDiff,
		Forks:    runForks,
		Step:     runStep,
	})
}
