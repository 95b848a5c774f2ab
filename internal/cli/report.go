package cli

import (
	"encoding/json"
	"fmt"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/content"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/tasks"
)

// taskReport is the JSON rendering of one task outcome
type taskReport struct {
	Task    string          `json:"task"`
	Status  tasks.Status    `json:"status"`
	Result  *content.Result `json:"result,omitempty"`
	Diff    string          `json:"diff,omitempty"`
	Error   string          `json:"error,omitempty"`
	Skipped bool            `json:"skipped,omitempty"`
}

// runReport is the JSON document printed by a task file run
type runReport struct {
	Tasks []taskReport `json:"tasks"`
	Recap tasks.Recap  `json:"recap"`
}

func (a *AppContext) writeJSON(v any) error {
	enc := json.NewEncoder(a.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func (a *AppContext) printResult(result *content.Result) error {
	if a.JSON() {
		return a.writeJSON(result)
	}

	if result.Changed {
		a.Results.TaskChanged(result.Path, result.Message)
	} else {
		a.Results.TaskOK(result.Path, result.Message)
	}
	return nil
}

// printDiff keeps stdout valid JSON by sending diffs to stderr in JSON mode
func (a *AppContext) printDiff(text string) {
	if a.JSON() {
		a.UI.Diff(text)
		return
	}
	a.Results.Diff(text)
}

func (a *AppContext) printTaskResult(res tasks.TaskResult) {
	a.UI.Step(res.Task.Name)

	switch res.Status() {
	case tasks.StatusFailed:
		a.Results.TaskFailed(res.Task.Path, res.Err)
	case tasks.StatusSkipped:
		a.Results.TaskSkipped(res.Task.Path)
	default:
		if res.Diff != "" {
			a.Results.Diff(res.Diff)
		}
		if err := a.printResult(res.Result); err != nil {
			a.UI.Errorf("failed to print result for %s: %v", res.Task.Path, err)
		}
	}
}

func (a *AppContext) printRecap(recap tasks.Recap, notRun int) {
	a.UI.Print("")
	a.UI.Separator()
	a.UI.Infof("Recap: ok=%d changed=%d failed=%d skipped=%d", recap.OK, recap.Changed, recap.Failed, recap.Skipped)
	if notRun > 0 {
		a.UI.Warningf("%d task(s) not run after failure", notRun)
	}
	a.UI.Separator()
}

func (a *AppContext) printRunReport(results []tasks.TaskResult, recap tasks.Recap) error {
	report := runReport{
		Tasks: make([]taskReport, 0, len(results)),
		Recap: recap,
	}

	for _, res := range results {
		tr := taskReport{
			Task:    res.Task.Name,
			Status:  res.Status(),
			Result:  res.Result,
			Diff:    res.Diff,
			Skipped: res.Skipped,
		}
		if res.Err != nil {
			tr.Error = res.Err.Error()
		}
		report.Tasks = append(report.Tasks, tr)
	}

	return a.writeJSON(report)
}
