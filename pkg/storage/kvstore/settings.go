package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/klarity-app/klarity/pkg/models"
	"github.com/klarity-app/klarity/pkg/storage"
)

// GetSettings returns the settings record, merged over defaults so that fields
// introduced after an install was created are backfilled. This merge is the
// sole forward-compatibility mechanism for settings schema drift.
func (s *Store) GetSettings(ctx context.Context) (models.UserSettings, error) {
	defaults := models.DefaultSettings()
	raw, ok, err := s.KV.Get(KeySettings)
	if err != nil || !ok {
		return defaults, nil
	}
	settings := defaults
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return defaults, nil
	}
	return settings, nil
}

// SaveSettings persists the full record, replacing whatever was stored.
func (s *Store) SaveSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error) {
	raw, err := json.Marshal(settings)
	if err != nil {
		return settings, fmt.Errorf("%w: marshal %s: %v", storage.ErrPersistence, KeySettings, err)
	}
	if err := s.KV.Set(KeySettings, string(raw)); err != nil {
		return settings, fmt.Errorf("%w: write %s: %v", storage.ErrPersistence, KeySettings, err)
	}
	return settings, nil
}
