package tasks

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/content"
)

// Status summarizes how a task finished
type Status string

const (
	StatusOK      Status = "ok"
	StatusChanged Status = "changed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// TaskResult is the outcome of one task
type TaskResult struct {
	Task    Task
	Result  *content.Result
	Diff    string
	Err     error
	Skipped bool
}

// Status classifies the result
func (r TaskResult) Status() Status {
	switch {
	case r.Err != nil:
		return StatusFailed
	case r.Skipped:
		return StatusSkipped
	case r.Result != nil && r.Result.Changed:
		return StatusChanged
	default:
		return StatusOK
	}
}

// Options configures a Runner
type Options struct {
	// Forks bounds how many tasks run at once; values below 1 mean 1
	Forks int
	// CheckMode reports changes without writing anything
	CheckMode bool
	// DiffMode captures a unified diff for each task that would change
	DiffMode bool
	// Confirm, when set, is asked before each task; declining skips it.
	// Setting it forces tasks to run one at a time.
	Confirm func(Task) (bool, error)
	// Report, when set, receives each result as soon as its task finishes
	Report func(TaskResult)
}

// Runner executes tasks through a content.Ensurer
type Runner struct {
	ensurer *content.Ensurer
	opts    Options
	mu      sync.Mutex // serializes Report calls
}

// NewRunner creates a new Runner
func NewRunner(e *content.Ensurer, opts Options) *Runner {
	if opts.Forks < 1 || opts.Confirm != nil {
		opts.Forks = 1
	}
	return &Runner{ensurer: e, opts: opts}
}

// Forks returns the effective parallelism
func (r *Runner) Forks() int {
	return r.opts.Forks
}

// Run executes tasks and returns the results of every task that was started,
// in task order. The first failure stops further tasks from being scheduled;
// tasks already running finish. Tasks that share a path race, last writer wins.
func (r *Runner) Run(ctx context.Context, tasks []Task) ([]TaskResult, error) {
	results := make([]TaskResult, len(tasks))
	started := make([]bool, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Forks)

	for i, task := range tasks {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			started[i] = true

			res := r.runTask(task)
			results[i] = res
			r.report(res)

			if res.Err != nil {
				return fmt.Errorf("task %q failed: %w", task.Name, res.Err)
			}
			return nil
		})
	}

	err := g.Wait()

	finished := make([]TaskResult, 0, len(tasks))
	for i := range tasks {
		if started[i] {
			finished = append(finished, results[i])
		}
	}

	if err != nil {
		return finished, err
	}
	if err := ctx.Err(); err != nil {
		return finished, err
	}
	return finished, nil
}

func (r *Runner) runTask(task Task) TaskResult {
	res := TaskResult{Task: task}

	if r.opts.Confirm != nil {
		ok, err := r.opts.Confirm(task)
		if err != nil {
			res.Err = fmt.Errorf("confirmation failed: %w", err)
			return res
		}
		if !ok {
			res.Skipped = true
			return res
		}
	}

	h := &taskHost{task: task, check: r.opts.CheckMode, diff: r.opts.DiffMode}
	if err := r.ensurer.Run(h); err != nil {
		res.Err = err
		return res
	}

	res.Result = h.result
	res.Diff = h.diffText
	return res
}

func (r *Runner) report(res TaskResult) {
	if r.opts.Report == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts.Report(res)
}

// taskHost adapts a Task to the content.Host boundary
type taskHost struct {
	task  Task
	check bool
	diff  bool

	result   *content.Result
	diffText string
}

func (h *taskHost) Param(name string) (string, bool) {
	switch name {
	case content.ParamPath:
		return h.task.Path, true
	case content.ParamContent:
		if h.task.Content == nil {
			return "", false
		}
		return *h.task.Content, true
	default:
		return "", false
	}
}

func (h *taskHost) CheckMode() bool { return h.check }

func (h *taskHost) DiffMode() bool { return h.diff }

func (h *taskHost) Diff(text string) { h.diffText = text }

func (h *taskHost) Exit(result *content.Result) error {
	h.result = result
	return nil
}

// Recap counts results by status
type Recap struct {
	OK      int `json:"ok"`
	Changed int `json:"changed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Summarize builds a Recap from results
func Summarize(results []TaskResult) Recap {
	var recap Recap
	for _, res := range results {
		switch res.Status() {
		case StatusOK:
			recap.OK++
		case StatusChanged:
			recap.Changed++
		case StatusFailed:
			recap.Failed++
		case StatusSkipped:
			recap.Skipped++
		}
	}
	return recap
}
