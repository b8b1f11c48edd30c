package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/types"
)

func TestNewConfigManager(t *testing.T) {
	t.Run("with custom path", func(t *testing.T) {
		customPath := filepath.Join(t.TempDir(), "config.json")
		cm, err := NewConfigManager(customPath)
		if err != nil {
			t.Fatalf("NewConfigManager failed: %v", err)
		}
		if cm.GetConfigPath() != customPath {
			t.Errorf("expected config path %s, got %s", customPath, cm.GetConfigPath())
		}
	})

	t.Run("with empty path uses default", func(t *testing.T) {
		cm, err := NewConfigManager("")
		if err != nil {
			t.Fatalf("NewConfigManager failed: %v", err)
		}
		if cm.GetConfigPath() == "" {
			t.Error("expected non-empty config path")
		}
	})
}

func TestConfigManager_Defaults(t *testing.T) {
	cm, err := NewConfigManager(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("NewConfigManager failed: %v", err)
	}

	// Missing file is not an error.
	if err := cm.Load(); err != nil {
		t.Fatalf("Load with missing file failed: %v", err)
	}

	if cm.GetDarkMode() {
		t.Error("dark mode should default to false")
	}
	if got := cm.GetHistorySize(); got != DefaultHistorySize {
		t.Errorf("history size = %d, want %d", got, DefaultHistorySize)
	}
	if cm.GetExportDirectory() == "" {
		t.Error("export directory should fall back to a non-empty path")
	}
}

func TestConfigManager_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cm, err := NewConfigManager(path)
	if err != nil {
		t.Fatalf("NewConfigManager failed: %v", err)
	}
	cm.SetDarkMode(true)
	cm.SetLastInput("x_1 + alpha")
	cm.SetExportDirectory("/tmp/exports")
	if err := cm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Verify the file is valid JSON with the expected shape.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	var onDisk types.Config
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("config file is not valid JSON: %v", err)
	}
	if !onDisk.DarkMode || onDisk.LastInput != "x_1 + alpha" {
		t.Errorf("unexpected persisted config: %+v", onDisk)
	}

	// A fresh manager picks the values up.
	cm2, err := NewConfigManager(path)
	if err != nil {
		t.Fatalf("NewConfigManager failed: %v", err)
	}
	if err := cm2.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cm2.GetDarkMode() {
		t.Error("dark mode not restored")
	}
	if cm2.GetLastInput() != "x_1 + alpha" {
		t.Errorf("last input not restored: %q", cm2.GetLastInput())
	}
	if cm2.GetExportDirectory() != "/tmp/exports" {
		t.Errorf("export directory not restored: %q", cm2.GetExportDirectory())
	}
}

func TestConfigManager_LoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cm, err := NewConfigManager(path)
	if err != nil {
		t.Fatalf("NewConfigManager failed: %v", err)
	}
	if err := cm.Load(); err == nil {
		t.Error("Load should fail on corrupt config")
	}
}
