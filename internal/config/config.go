// Package config provides thread-safe configuration management for the
// ensure-file tool. Settings are stored as key=value pairs in a small text
// file; writes are atomic and serialized across processes with a file lock.
package config

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/common"
)

// DefaultFileName is the configuration file name used under the home directory
const DefaultFileName = ".ensure-file.conf"

// Config manages ensure-file configuration with thread-safe operations
type Config struct {
	filePath string
	data     map[string]string
	loaded   bool // Track if configuration has been loaded from disk
	mu       sync.Mutex
}

// ensureLoaded loads configuration data from disk once before read operations.
// This method must only be called while holding c.mu.
func (c *Config) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	return c.Load()
}

// DefaultPath returns the configuration path used when none is given
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, DefaultFileName)
}

// New creates a new Config instance
func New(filePath string) *Config {
	if filePath == "" {
		filePath = DefaultPath()
	}

	return &Config{
		filePath: filePath,
		data:     make(map[string]string),
	}
}

// Load reads configuration from file
func (c *Config) Load() error {
	// If file doesn't exist, that's okay - we'll create it on Save
	if _, err := os.Stat(c.filePath); os.IsNotExist(err) {
		c.data = make(map[string]string)
		c.loaded = true
		return nil
	}

	file, err := os.Open(c.filePath)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse key=value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			data[key] = value
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	c.data = data
	c.loaded = true
	return nil
}

// Save writes configuration to file using atomic write pattern
// This prevents data loss if the write operation fails midway
func (c *Config) Save() error {
	// Ensure directory exists
	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create temporary file in the same directory for atomic rename
	tmpFile, err := os.CreateTemp(dir, ".ensure-file.conf.tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Cleanup on error

	if err := tmpFile.Chmod(0600); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	// Write header
	fmt.Fprintln(tmpFile, "# ensure-file configuration")
	fmt.Fprintf(tmpFile, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintln(tmpFile, "")

	keys := make([]string, 0, len(c.data))
	for key := range c.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(tmpFile, "%s=%s\n", key, c.data[key])
	}

	// Sync to ensure data is written to disk
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, c.filePath); err != nil {
		return fmt.Errorf("failed to rename temp file to config: %w", err)
	}

	return nil
}

// update applies mutate to the on-disk state while holding the cross-process
// lock. The file is re-read under the lock so that concurrent writers in other
// processes do not lose each other's keys. Caller must hold c.mu.Lock.
func (c *Config) update(mutate func(data map[string]string)) error {
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	fl, err := acquireFileLock(ctx, c.lockPath())
	if err != nil {
		return err
	}
	defer releaseFileLock(fl)

	if err := c.Load(); err != nil {
		return fmt.Errorf("failed to load existing config: %w", err)
	}

	mutate(c.data)
	return c.Save()
}

func (c *Config) lockPath() string {
	return c.filePath + ".lock"
}

// Get retrieves a configuration value (thread-safe)
func (c *Config) Get(key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	value, exists := c.data[key]
	if !exists {
		return "", fmt.Errorf("config key not found: %s", key)
	}
	return value, nil
}

// GetOrDefault retrieves a value or returns default if not found (thread-safe)
// First checks the config, then the Defaults table, then the provided fallback
func (c *Config) GetOrDefault(key, defaultValue string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return defaultValue
	}
	if value, exists := c.data[key]; exists {
		return value
	}
	if tableDefault, exists := Defaults[key]; exists {
		return tableDefault
	}
	return defaultValue
}

// GetBool returns a boolean setting, falling back to the Defaults table
func (c *Config) GetBool(key string) (bool, error) {
	value := c.GetOrDefault(key, "false")
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config key %s: invalid boolean %q", key, value)
	}
	return b, nil
}

// GetInt returns an integer setting, falling back to the Defaults table
func (c *Config) GetInt(key string) (int, error) {
	value := c.GetOrDefault(key, "0")
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config key %s: invalid integer %q", key, value)
	}
	return n, nil
}

// GetFileMode returns an octal permission setting, falling back to the Defaults table
func (c *Config) GetFileMode(key string) (os.FileMode, error) {
	value := c.GetOrDefault(key, "")
	mode, err := common.ParseFileMode(value)
	if err != nil {
		return 0, fmt.Errorf("config key %s: %w", key, err)
	}
	return mode, nil
}

// Set sets a configuration value and persists it (thread-safe)
func (c *Config) Set(key, value string) error {
	if err := common.ValidateNotEmpty(key); err != nil {
		return fmt.Errorf("invalid config key: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.update(func(data map[string]string) {
		data[key] = value
	})
}

// Exists checks if a key exists (thread-safe)
func (c *Config) Exists(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return false
	}
	_, exists := c.data[key]
	return exists
}

// GetAll returns all configuration data (thread-safe)
func (c *Config) GetAll() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return map[string]string{}
	}
	// Return a copy to prevent external modification
	result := make(map[string]string, len(c.data))
	for k, v := range c.data {
		result[k] = v
	}
	return result
}

// Delete removes a configuration key (thread-safe)
func (c *Config) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.update(func(data map[string]string) {
		delete(data, key)
	})
}

// Remove deletes the configuration file. A missing file is not an error.
func (c *Config) Remove() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.Remove(c.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	c.data = make(map[string]string)
	c.loaded = true
	return nil
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	return c.filePath
}
