// ABOUTME: Configuration management for borrador with YAML config loading.
// ABOUTME: Handles the publications base directory, activities calendar settings, and ~ expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config stores borrador configuration loaded from ~/.config/borrador/config.yaml.
type Config struct {
	Store      StoreConfig      `yaml:"store"`
	Activities ActivitiesConfig `yaml:"activities"`
}

// StoreConfig holds optional path overrides for the draft store.
type StoreConfig struct {
	BaseDir string `yaml:"base_dir"`
}

// ActivitiesConfig holds the collective's shared activities calendar settings.
type ActivitiesConfig struct {
	SheetID   string `yaml:"sheet_id"`
	SheetName string `yaml:"sheet_name"`
}

// HasActivities returns true if the activities calendar is configured.
func (c *Config) HasActivities() bool {
	return c.Activities.SheetID != ""
}

// GetBaseDir returns the publications base directory, defaulting to
// $XDG_DATA_HOME/borrador/publicaciones.
func (c *Config) GetBaseDir() (string, error) {
	if c.Store.BaseDir != "" {
		return ExpandPath(c.Store.BaseDir)
	}
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "borrador", "publicaciones"), nil
}

// SheetName returns the configured activities sheet name, defaulting to "actividades".
func (c *Config) SheetName() string {
	if c.Activities.SheetName != "" {
		return c.Activities.SheetName
	}
	return "actividades"
}

// GetConfigPath returns the config file path.
func GetConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "borrador", "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Load reads config from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
