// Package tasks loads declarative task files and runs each task through the
// content ensurer, the way an orchestration framework would drive a module.
package tasks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/common"
)

// Task is one desired file
type Task struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	// Content is a pointer so that an omitted key can be told apart from ""
	Content *string `yaml:"content"`
}

// File is the top-level layout of a task file
type File struct {
	Tasks []Task `yaml:"tasks"`
}

// Load reads and parses a task file
func Load(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file %s: %w", path, err)
	}

	tasks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid task file %s: %w", path, err)
	}
	return tasks, nil
}

// Parse decodes task file data and validates every task.
// Unknown keys are rejected so that typos do not silently drop settings.
func Parse(data []byte) ([]Task, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("task file is empty")
		}
		return nil, fmt.Errorf("failed to parse tasks: %w", err)
	}

	if len(f.Tasks) == 0 {
		return nil, fmt.Errorf("no tasks defined")
	}

	for i := range f.Tasks {
		if err := f.Tasks[i].validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		if f.Tasks[i].Name == "" {
			f.Tasks[i].Name = "ensure " + f.Tasks[i].Path
		}
	}

	return f.Tasks, nil
}

func (t Task) validate() error {
	if t.Path == "" {
		return fmt.Errorf("missing required key: path")
	}
	if err := common.ValidateFilePath(t.Path); err != nil {
		return err
	}
	if t.Content == nil {
		return fmt.Errorf("missing required key: content (use content: \"\" for an empty file)")
	}
	return common.ValidateText(*t.Content)
}
