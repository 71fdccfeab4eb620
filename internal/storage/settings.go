// ABOUTME: Flat key-value settings persisted as JSON next to the draft containers.
// ABOUTME: Loads defaults when the backing file is absent; every save validates and persists immediately.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/causa-colectivo/borrador/internal/models"
)

// Valid range for the posts_per_day setting.
const (
	MinPostsPerDay = 1
	MaxPostsPerDay = 6
)

// SettingsStore persists process-wide settings to a single JSON file.
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a settings store backed by the given file path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load returns the persisted settings, or defaults when the backing file is
// absent or unreadable. Load never fails.
func (s *SettingsStore) Load() models.Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.DefaultSettings()
	}

	settings := models.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.DefaultSettings()
	}
	return settings
}

// Save validates and persists settings immediately, no batching.
func (s *SettingsStore) Save(settings models.Settings) error {
	if settings.PostsPerDay < MinPostsPerDay || settings.PostsPerDay > MaxPostsPerDay {
		return fmt.Errorf("%w: posts_per_day must be between %d and %d, got %d",
			ErrInvalidSetting, MinPostsPerDay, MaxPostsPerDay, settings.PostsPerDay)
	}
	if settings.CleanupMonths < 1 {
		return fmt.Errorf("%w: cleanup_months must be at least 1, got %d",
			ErrInvalidSetting, settings.CleanupMonths)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return atomicWrite(s.path, data)
}
