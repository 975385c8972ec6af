package storage

import (
	"context"

	"github.com/klarity-app/klarity/pkg/models"
)

// SettingsStore defines the interface for the singleton settings record.
type SettingsStore interface {
	// GetSettings returns the settings record. Fields missing from storage
	// are backfilled from defaults, so the result is always complete.
	GetSettings(ctx context.Context) (models.UserSettings, error)

	// SaveSettings persists the full record, replacing whatever was stored.
	SaveSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error)
}
