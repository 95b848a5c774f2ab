package config

import (
	"fmt"
	"sort"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/common"
)

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Write behavior
	KeyAtomicWrite = "ATOMIC_WRITE" // Replace files via temp file + rename
	KeyDirMode     = "DIR_MODE"     // Mode for created parent directories
	KeyFileMode    = "FILE_MODE"    // Mode for newly created files

	// Task execution
	KeyForks = "FORKS"

	// Output
	KeyOutputFormat = "OUTPUT_FORMAT"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyAtomicWrite:  "false",
	KeyDirMode:      "0755",
	KeyFileMode:     "0644",
	KeyForks:        "5",
	KeyOutputFormat: common.OutputText,
}

// validators checks values before they are persisted by the CLI
var validators = map[string]func(string) error{
	KeyAtomicWrite:  common.ValidateBool,
	KeyDirMode:      common.ValidateFileMode,
	KeyFileMode:     common.ValidateFileMode,
	KeyForks:        common.ValidateForks,
	KeyOutputFormat: common.ValidateOutputFormat,
}

// KnownKeys returns all recognized configuration keys in sorted order
func KnownKeys() []string {
	keys := make([]string, 0, len(Defaults))
	for key := range Defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ValidateEntry checks that key is recognized and value is acceptable for it
func ValidateEntry(key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s (known keys: %v)", key, KnownKeys())
	}
	if err := validate(value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}
