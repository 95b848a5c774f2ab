package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxForks caps how many tasks may run in parallel
const MaxForks = 64

// Output formats understood by the CLI
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ValidateFilePath validates a target file path
func ValidateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains a NUL byte: %q", path)
	}
	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("path must name a file, not a directory: %s", path)
	}
	return nil
}

// ValidateText validates that content is text rather than binary data
func ValidateText(content string) error {
	if !utf8.ValidString(content) {
		return fmt.Errorf("content is not valid UTF-8 text")
	}
	if strings.ContainsRune(content, 0) {
		return fmt.Errorf("content contains NUL bytes (binary content is not supported)")
	}
	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ParseFileMode parses an octal permission string such as "0644" or "755"
func ParseFileMode(value string) (os.FileMode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("file mode cannot be empty")
	}

	m, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal file mode: %s", value)
	}
	if m == 0 || m > 0o777 {
		return 0, fmt.Errorf("file mode must be between 0001 and 0777, got: %s", value)
	}

	return os.FileMode(m), nil
}

// ValidateFileMode validates an octal permission string
func ValidateFileMode(value string) error {
	_, err := ParseFileMode(value)
	return err
}

// ValidateForks validates a parallelism setting (1-MaxForks)
func ValidateForks(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid forks value: %s", value)
	}

	if n < 1 || n > MaxForks {
		return fmt.Errorf("forks must be between 1 and %d, got: %d", MaxForks, n)
	}

	return nil
}

// ValidateOutputFormat validates an output format name
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, OutputText, OutputJSON)
	}
}

// ValidateBool validates a boolean string as accepted by strconv.ParseBool
func ValidateBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("invalid boolean: %s", value)
	}
	return nil
}
