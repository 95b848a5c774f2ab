package content

import (
	"fmt"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/common"
)

// Parameter names a host must supply
const (
	ParamPath    = "path"
	ParamContent = "content"
)

// Host is the invoking framework as seen from a single task. It supplies the
// parameters and the execution mode, and receives the result.
type Host interface {
	// Param returns a parameter value and whether it was supplied at all
	Param(name string) (string, bool)
	// CheckMode reports whether the task must not mutate anything
	CheckMode() bool
	// Exit hands the finished result back to the framework
	Exit(result *Result) error
}

// DiffHost is a Host that also wants a rendering of the change
type DiffHost interface {
	Host
	DiffMode() bool
	Diff(text string)
}

// RequestFromHost builds a Request from the host's parameters.
// Both path and content are required; content may be empty but must be present.
func RequestFromHost(h Host) (Request, error) {
	path, ok := h.Param(ParamPath)
	if !ok {
		return Request{}, fmt.Errorf("missing required argument: %s", ParamPath)
	}
	if err := common.ValidateFilePath(path); err != nil {
		return Request{}, fmt.Errorf("invalid argument %s: %w", ParamPath, err)
	}

	text, ok := h.Param(ParamContent)
	if !ok {
		return Request{}, fmt.Errorf("missing required argument: %s", ParamContent)
	}
	if err := common.ValidateText(text); err != nil {
		return Request{}, fmt.Errorf("invalid argument %s: %w", ParamContent, err)
	}

	return Request{
		Path:    path,
		Content: text,
		DryRun:  h.CheckMode(),
	}, nil
}

// Run executes one task on behalf of h. Fatal errors are returned, never
// encoded in the result; on success the result goes to h.Exit.
func (e *Ensurer) Run(h Host) error {
	req, err := RequestFromHost(h)
	if err != nil {
		return err
	}

	eval, err := e.Evaluate(req)
	if err != nil {
		return err
	}

	if dh, ok := h.(DiffHost); ok && dh.DiffMode() {
		text, err := eval.Diff(req)
		if err != nil {
			return fmt.Errorf("failed to render diff for %s: %w", req.Path, err)
		}
		if text != "" {
			dh.Diff(text)
		}
	}

	result, err := e.Converge(req, eval)
	if err != nil {
		return err
	}

	return h.Exit(result)
}
