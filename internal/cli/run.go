package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/common"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/tasks"
)

// RunOptions describes a task file run
type RunOptions struct {
	TaskFile string
	Check    bool
	Diff     bool
	// Forks overrides the configured parallelism when above zero
	Forks int
	// Step asks for confirmation before every task
	Step bool
}

// RunTasks loads a task file, runs every task and prints results and a recap
func RunTasks(ctx context.Context, app *AppContext, opts RunOptions) error {
	list, err := tasks.Load(opts.TaskFile)
	if err != nil {
		return err
	}

	forks := opts.Forks
	if forks <= 0 {
		forks, err = app.Config.GetInt(config.KeyForks)
		if err != nil {
			return err
		}
	}
	if err := common.ValidateForks(strconv.Itoa(forks)); err != nil {
		return err
	}

	runnerOpts := tasks.Options{
		Forks:     forks,
		CheckMode: opts.Check,
		DiffMode:  opts.Diff,
	}
	if opts.Step {
		runnerOpts.Confirm = func(t tasks.Task) (bool, error) {
			return app.UI.PromptYesNo(fmt.Sprintf("Run task %q (%s)?", t.Name, t.Path), true)
		}
	}
	if !app.JSON() {
		runnerOpts.Report = app.printTaskResult
	}

	runner := tasks.NewRunner(app.Ensurer, runnerOpts)

	if !app.JSON() {
		app.UI.Header(fmt.Sprintf("Tasks: %s", opts.TaskFile))
		if opts.Check {
			app.UI.Info("Check mode: no files will be modified")
		}
		app.UI.Infof("Running %d task(s) with %d fork(s)", len(list), runner.Forks())
		app.UI.Print("")
	}

	results, runErr := runner.Run(ctx, list)
	recap := tasks.Summarize(results)

	if app.JSON() {
		if err := app.printRunReport(results, recap); err != nil {
			return err
		}
	} else {
		app.printRecap(recap, len(list)-len(results))
	}

	return runErr
}
