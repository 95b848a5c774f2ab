package tasks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantTasks int
		wantErr   string
	}{
		{
			name: "single task",
			data: `
tasks:
  - name: Write motd
    path: /etc/motd
    content: "hello"
`,
			wantTasks: 1,
		},
		{
			name: "block scalar and empty content",
			data: `
tasks:
  - path: /etc/app/app.conf
    content: |
      key=value
      other=1
  - path: /var/lib/app/.keep
    content: ""
`,
			wantTasks: 2,
		},
		{
			name:    "empty document",
			data:    "",
			wantErr: "empty",
		},
		{
			name:    "no tasks",
			data:    "tasks: []\n",
			wantErr: "no tasks",
		},
		{
			name: "missing path",
			data: `
tasks:
  - content: x
`,
			wantErr: "task 1: missing required key: path",
		},
		{
			name: "missing content",
			data: `
tasks:
  - path: /etc/motd
  - path: /etc/issue
`,
			wantErr: "task 1: missing required key: content",
		},
		{
			name: "unknown key",
			data: `
tasks:
  - path: /etc/motd
    content: x
    mode: "0644"
`,
			wantErr: "field mode not found",
		},
		{
			name:    "not yaml",
			data:    "tasks: [",
			wantErr: "failed to parse tasks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse() = %+v, want error containing %q", got, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Parse() error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(got) != tt.wantTasks {
				t.Errorf("Parse() returned %d tasks, want %d", len(got), tt.wantTasks)
			}
		})
	}
}

func TestParseDefaults(t *testing.T) {
	got, err := Parse([]byte(`
tasks:
  - path: /etc/app/app.conf
    content: |
      key=value
  - path: /var/lib/app/.keep
    content: ""
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got[0].Name != "ensure /etc/app/app.conf" {
		t.Errorf("default name = %q, want %q", got[0].Name, "ensure /etc/app/app.conf")
	}
	if *got[0].Content != "key=value\n" {
		t.Errorf("block scalar content = %q, want %q", *got[0].Content, "key=value\n")
	}
	if got[1].Content == nil || *got[1].Content != "" {
		t.Errorf("empty content = %v, want pointer to empty string", got[1].Content)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tasks.yaml")
	if err := os.WriteFile(path, []byte("tasks:\n  - path: /etc/motd\n    content: hi\n"), 0644); err != nil {
		t.Fatalf("Failed to create task file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got[0].Path != "/etc/motd" {
		t.Errorf("Load() = %+v, want one task for /etc/motd", got)
	}

	if _, err := Load(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}
