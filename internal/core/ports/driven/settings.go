package driven

import "github.com/custodia-labs/tenure-cli/internal/core/domain"

// SettingsStore loads and persists pipeline settings.
type SettingsStore interface {
	// Load reads the persisted settings, with defaults applied for
	// absent fields. Returns domain.ErrSettingsNotFound when no config
	// exists yet.
	Load() (domain.Settings, error)

	// Save persists the settings.
	Save(settings domain.Settings) error
}
