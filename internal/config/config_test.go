// ABOUTME: Tests for borrador configuration loading and path expansion.
// ABOUTME: Covers YAML parsing, defaults, path expansion, and activities detection.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde slash", "~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"absolute", "/tmp/foo", "/tmp/foo"},
		{"relative", "foo/bar", "foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	// Set config path to a non-existent location
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Store.BaseDir != "" {
		t.Error("expected empty base_dir in default config")
	}
	if cfg.HasActivities() {
		t.Error("expected HasActivities() to be false for default config")
	}
	if cfg.SheetName() != "actividades" {
		t.Errorf("expected default sheet name 'actividades', got %q", cfg.SheetName())
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "borrador")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configData := `store:
  base_dir: "~/publicaciones"
activities:
  sheet_id: "sheet-123"
  sheet_name: "eventos"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configData), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Activities.SheetID != "sheet-123" {
		t.Errorf("expected sheet_id 'sheet-123', got %q", cfg.Activities.SheetID)
	}
	if cfg.SheetName() != "eventos" {
		t.Errorf("expected sheet name 'eventos', got %q", cfg.SheetName())
	}
	if !cfg.HasActivities() {
		t.Error("expected HasActivities() to be true")
	}

	home, _ := os.UserHomeDir()
	expectedBase := filepath.Join(home, "publicaciones")
	if got, err := cfg.GetBaseDir(); err != nil {
		t.Fatalf("GetBaseDir() error: %v", err)
	} else if got != expectedBase {
		t.Errorf("GetBaseDir() = %q, want %q", got, expectedBase)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		Store: StoreConfig{
			BaseDir: "~/mis-publicaciones",
		},
		Activities: ActivitiesConfig{
			SheetID: "saved-sheet",
		},
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.Store.BaseDir != "~/mis-publicaciones" {
		t.Errorf("expected base_dir '~/mis-publicaciones', got %q", loaded.Store.BaseDir)
	}
	if loaded.Activities.SheetID != "saved-sheet" {
		t.Errorf("expected sheet_id 'saved-sheet', got %q", loaded.Activities.SheetID)
	}
}

func TestDefaultBaseDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := &Config{}
	got, err := cfg.GetBaseDir()
	if err != nil {
		t.Fatalf("GetBaseDir() error: %v", err)
	}
	expected := filepath.Join("/tmp/xdg-data", "borrador", "publicaciones")
	if got != expected {
		t.Errorf("GetBaseDir() = %q, want %q", got, expected)
	}
}
