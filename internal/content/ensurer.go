package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/system"
)

// Default modes for things the ensurer creates. Existing files and
// directories are never re-moded.
const (
	DefaultDirMode  os.FileMode = 0755
	DefaultFileMode os.FileMode = 0644
)

// Options configures an Ensurer
type Options struct {
	// DirMode is applied to parent directories created for an absent file
	DirMode os.FileMode
	// FileMode is applied to files created from scratch
	FileMode os.FileMode
}

// Ensurer converges files to a desired content
type Ensurer struct {
	fs       system.FileSystemManager
	dirMode  os.FileMode
	fileMode os.FileMode
}

// NewEnsurer creates an Ensurer with default modes
func NewEnsurer(fsm system.FileSystemManager) *Ensurer {
	return NewEnsurerWithOptions(fsm, Options{})
}

// NewEnsurerWithOptions creates an Ensurer with custom options.
// Zero modes fall back to the defaults.
func NewEnsurerWithOptions(fsm system.FileSystemManager, opts Options) *Ensurer {
	if opts.DirMode == 0 {
		opts.DirMode = DefaultDirMode
	}
	if opts.FileMode == 0 {
		opts.FileMode = DefaultFileMode
	}

	return &Ensurer{
		fs:       fsm,
		dirMode:  opts.DirMode,
		fileMode: opts.FileMode,
	}
}

// Evaluation is what a single read of the target observed
type Evaluation struct {
	State State
	// Current holds the existing content when State is StateDivergent
	Current []byte
}

// Evaluate reads the target once and classifies it against the desired content.
// Only a missing file is treated as a normal outcome; every other read error
// is returned to the caller.
func (e *Ensurer) Evaluate(req Request) (*Evaluation, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	current, err := e.fs.ReadFile(req.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Evaluation{State: StateAbsent}, nil
		}
		return nil, err
	}

	if bytes.Equal(current, []byte(req.Content)) {
		return &Evaluation{State: StateConverged}, nil
	}

	return &Evaluation{State: StateDivergent, Current: current}, nil
}

// Converge performs the minimal action for an evaluated request.
// In dry-run mode nothing is written and the message describes what would happen.
func (e *Ensurer) Converge(req Request, eval *Evaluation) (*Result, error) {
	if eval == nil {
		return nil, fmt.Errorf("no evaluation for %s", req.Path)
	}

	result := &Result{Path: req.Path}

	switch eval.State {
	case StateConverged:
		result.Message = MsgSameContent
		return result, nil

	case StateDivergent:
		result.Changed = true
		if req.DryRun {
			result.Message = MsgWouldChange
			return result, nil
		}
		if err := e.fs.WriteFile(req.Path, []byte(req.Content), e.fileMode); err != nil {
			return nil, err
		}
		result.Message = MsgChanged
		return result, nil

	case StateAbsent:
		result.Changed = true
		if req.DryRun {
			result.Message = MsgWouldCreate
			return result, nil
		}
		if err := e.fs.EnsureDirectory(filepath.Dir(req.Path), e.dirMode); err != nil {
			return nil, err
		}
		if err := e.fs.WriteFile(req.Path, []byte(req.Content), e.fileMode); err != nil {
			return nil, err
		}
		result.Message = MsgCreated
		return result, nil

	default:
		return nil, fmt.Errorf("unknown state %d for %s", eval.State, req.Path)
	}
}

// Ensure makes the file at req.Path hold exactly req.Content and reports
// whether anything changed (or would change, in dry-run mode).
func (e *Ensurer) Ensure(req Request) (*Result, error) {
	eval, err := e.Evaluate(req)
	if err != nil {
		return nil, err
	}
	return e.Converge(req, eval)
}
