package cli

import (
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/content"
)

// ApplyOptions describes a single ensure requested on the command line
type ApplyOptions struct {
	Path string
	// Content is nil when no content was supplied
	Content *string
	Check   bool
	Diff    bool
}

// cliHost feeds command-line parameters to the ensurer and prints its result
type cliHost struct {
	app    *AppContext
	params map[string]string
	check  bool
	diff   bool
}

func (h *cliHost) Param(name string) (string, bool) {
	v, ok := h.params[name]
	return v, ok
}

func (h *cliHost) CheckMode() bool { return h.check }

func (h *cliHost) DiffMode() bool { return h.diff }

func (h *cliHost) Diff(text string) { h.app.printDiff(text) }

func (h *cliHost) Exit(result *content.Result) error {
	return h.app.printResult(result)
}

// Apply ensures a single file and prints the result
func Apply(app *AppContext, opts ApplyOptions) error {
	params := map[string]string{content.ParamPath: opts.Path}
	if opts.Content != nil {
		params[content.ParamContent] = *opts.Content
	}

	return app.Ensurer.Run(&cliHost{
		app:    app,
		params: params,
		check:  opts.Check,
		diff:   opts.Diff,
	})
}
