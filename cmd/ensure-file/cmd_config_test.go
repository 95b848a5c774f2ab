package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zoro11031/homelab-coreos-minipc/ensure-file/internal/config"
)

// useConfig points the global --config flag at a fresh file holding body
func useConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ensure-file.conf")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	prev := configPath
	configPath = path
	t.Cleanup(func() { configPath = prev })
	return path
}

func TestConfigCommandsRepairInvalidConfig(t *testing.T) {
	path := useConfig(t, "ATOMIC_WRITE=yes\nOUTPUT_FORMAT=xml\n")

	if _, err := newAppContext(true); err == nil {
		t.Fatal("newAppContext() error = nil, want invalid setting error")
	}

	if err := setConfig(configSetCmd, []string{config.KeyAtomicWrite, "true"}); err != nil {
		t.Fatalf("config set error = %v", err)
	}
	if err := unsetConfig(configUnsetCmd, []string{config.KeyOutputFormat}); err != nil {
		t.Fatalf("config unset error = %v", err)
	}

	app, err := newAppContext(true)
	if err != nil {
		t.Fatalf("newAppContext() after repair error = %v", err)
	}
	if !app.FS.AtomicWrites() {
		t.Error("AtomicWrites() = false, want true")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	if strings.Contains(string(data), config.KeyOutputFormat) {
		t.Errorf("config file still has %s after unset:\n%s", config.KeyOutputFormat, data)
	}
}

func TestConfigResetOverInvalidConfig(t *testing.T) {
	path := useConfig(t, "DIR_MODE=not-octal\n")

	prev := resetForce
	resetForce = true
	t.Cleanup(func() { resetForce = prev })

	if err := resetConfig(resetCmd, nil); err != nil {
		t.Fatalf("config reset error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("config file still present after reset: %v", err)
	}
	if _, err := newAppContext(true); err != nil {
		t.Errorf("newAppContext() after reset error = %v", err)
	}
}

func TestConfigListAndGetOverInvalidConfig(t *testing.T) {
	useConfig(t, "FILE_MODE=rwx\n")

	var out bytes.Buffer
	configListCmd.SetOut(&out)
	configGetCmd.SetOut(&out)
	t.Cleanup(func() {
		configListCmd.SetOut(nil)
		configGetCmd.SetOut(nil)
	})

	if err := listConfig(configListCmd, nil); err != nil {
		t.Fatalf("config list error = %v", err)
	}
	if err := getConfig(configGetCmd, []string{config.KeyFileMode}); err != nil {
		t.Fatalf("config get error = %v", err)
	}
	if got := out.String(); !strings.Contains(got, "FILE_MODE=rwx") || !strings.Contains(got, "rwx\n") {
		t.Errorf("output = %q, want the stored invalid value shown", got)
	}

	if err := showStatus(statusCmd, nil); err != nil {
		t.Errorf("status error = %v, want invalid values reported, not returned", err)
	}
}
