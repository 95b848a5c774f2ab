package content

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/system"
)

// fakeHost stands in for the orchestration framework
type fakeHost struct {
	params   map[string]string
	check    bool
	diffMode bool

	result *Result
	diffs  []string
}

func (h *fakeHost) Param(name string) (string, bool) {
	v, ok := h.params[name]
	return v, ok
}

func (h *fakeHost) CheckMode() bool { return h.check }

func (h *fakeHost) Exit(result *Result) error {
	h.result = result
	return nil
}

func (h *fakeHost) DiffMode() bool { return h.diffMode }

func (h *fakeHost) Diff(text string) { h.diffs = append(h.diffs, text) }

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]string
		wantErr string
	}{
		{
			name:    "missing path",
			params:  map[string]string{ParamContent: "x"},
			wantErr: "missing required argument: path",
		},
		{
			name:    "empty path",
			params:  map[string]string{ParamPath: "", ParamContent: "x"},
			wantErr: "invalid argument path",
		},
		{
			name:    "missing content",
			params:  map[string]string{ParamPath: "/tmp/x"},
			wantErr: "missing required argument: content",
		},
		{
			name:    "binary content",
			params:  map[string]string{ParamPath: "/tmp/x", ParamContent: "\xff\xfe\x00"},
			wantErr: "invalid argument content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := system.NewMockFileSystem()
			h := &fakeHost{params: tt.params}

			err := NewEnsurer(m).Run(h)
			if err == nil {
				t.Fatal("Run() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Run() error = %v, want it to contain %q", err, tt.wantErr)
			}
			if h.result != nil {
				t.Errorf("Exit() called with %+v, want no result", h.result)
			}
			if m.Reads != 0 {
				t.Errorf("reads = %d, want 0", m.Reads)
			}
		})
	}
}

func TestRunModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motd")

	tests := []struct {
		name  string
		check bool
		want  Result
	}{
		{"check mode", true, Result{Changed: true, Message: MsgWouldCreate, Path: path}},
		{"normal mode", false, Result{Changed: true, Message: MsgCreated, Path: path}},
		{"rerun", false, Result{Changed: false, Message: MsgSameContent, Path: path}},
	}

	e := NewEnsurer(system.NewFileSystem())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &fakeHost{
				params: map[string]string{ParamPath: path, ParamContent: "welcome\n"},
				check:  tt.check,
			}
			if err := e.Run(h); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if h.result == nil || *h.result != tt.want {
				t.Errorf("Run() result = %+v, want %+v", h.result, tt.want)
			}
		})
	}
}

func TestRunEmptyContentIsAllowed(t *testing.T) {
	m := system.NewMockFileSystem()
	h := &fakeHost{params: map[string]string{ParamPath: "/var/lib/app/.keep", ParamContent: ""}}

	if err := NewEnsurer(m).Run(h); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if h.result == nil || h.result.Message != MsgCreated {
		t.Errorf("Run() result = %+v, want %q", h.result, MsgCreated)
	}
	if got, ok := m.File("/var/lib/app/.keep"); !ok || len(got) != 0 {
		t.Errorf("File() = %q, %v, want empty file", got, ok)
	}
}

func TestRunDiff(t *testing.T) {
	m := system.NewMockFileSystem()
	m.AddFile("/etc/motd", []byte("old\n"))

	h := &fakeHost{
		params:   map[string]string{ParamPath: "/etc/motd", ParamContent: "new\n"},
		check:    true,
		diffMode: true,
	}
	if err := NewEnsurer(m).Run(h); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(h.diffs) != 1 {
		t.Fatalf("Diff() called %d times, want 1", len(h.diffs))
	}
	if !strings.Contains(h.diffs[0], "-old\n") || !strings.Contains(h.diffs[0], "+new\n") {
		t.Errorf("diff = %q, want -old/+new lines", h.diffs[0])
	}

	// converged files produce no diff
	h = &fakeHost{
		params:   map[string]string{ParamPath: "/etc/motd", ParamContent: "old\n"},
		diffMode: true,
	}
	if err := NewEnsurer(m).Run(h); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(h.diffs) != 0 {
		t.Errorf("Diff() called with %q, want no diff", h.diffs)
	}
}
