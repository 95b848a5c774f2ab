// Package cli is the host side of ensure-file: it wires configuration, the
// file system and the content ensurer together, feeds parameters from flags
// or task files into the ensurer, and renders results.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/common"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/content"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/system"
	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/ui"
)

// AppContext holds all dependencies needed by the commands
type AppContext struct {
	Config  *config.Config
	UI      *ui.UI // progress and diagnostics (stderr)
	Results *ui.UI // text results (stdout)
	FS      *system.FileSystem
	Ensurer *content.Ensurer
	// Output is the result format, common.OutputText or common.OutputJSON
	Output string
	Stdout io.Writer
}

// Options customizes NewAppContextWithOptions
type Options struct {
	ConfigPath     string
	NonInteractive bool
	// Output overrides the configured output format when non-empty
	Output string
	// Stdout and Stderr default to the process streams
	Stdout io.Writer
	Stderr io.Writer
}

// NewConfigContext creates an AppContext that has loaded the configuration
// file but not interpreted any settings. Commands that inspect or repair the
// configuration use it so a bad value never locks them out.
func NewConfigContext(opts Options) (*AppContext, error) {
	cfg := config.New(opts.ConfigPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	uiInstance := ui.NewWithWriter(stderr)
	uiInstance.SetNonInteractive(opts.NonInteractive)

	return &AppContext{
		Config:  cfg,
		UI:      uiInstance,
		Results: ui.NewWithWriter(stdout),
		FS:      system.NewFileSystem(),
		Output:  common.OutputText,
		Stdout:  stdout,
	}, nil
}

// NewAppContextWithOptions creates an AppContext ready to ensure files:
// file modes, atomic writes and the output format are parsed and validated.
func NewAppContextWithOptions(opts Options) (*AppContext, error) {
	app, err := NewConfigContext(opts)
	if err != nil {
		return nil, err
	}
	if err := app.applySettings(opts.Output); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *AppContext) applySettings(output string) error {
	atomic, err := a.Config.GetBool(config.KeyAtomicWrite)
	if err != nil {
		return err
	}
	dirMode, err := a.Config.GetFileMode(config.KeyDirMode)
	if err != nil {
		return err
	}
	fileMode, err := a.Config.GetFileMode(config.KeyFileMode)
	if err != nil {
		return err
	}

	if output == "" {
		output = a.Config.GetOrDefault(config.KeyOutputFormat, common.OutputText)
	}
	if err := common.ValidateOutputFormat(output); err != nil {
		return err
	}

	a.FS.SetAtomicWrites(atomic)
	a.Ensurer = content.NewEnsurerWithOptions(a.FS, content.Options{
		DirMode:  dirMode,
		FileMode: fileMode,
	})
	a.Output = output
	return nil
}

// JSON reports whether results are rendered as JSON
func (a *AppContext) JSON() bool {
	return a.Output == common.OutputJSON
}
