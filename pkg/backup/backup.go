// Package backup serializes the full on-device state to a portable snapshot
// and restores from one. Restore is a destructive replace-all: collections
// missing from the snapshot come back empty, not preserved.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/klarity-app/klarity/pkg/kv"
	"github.com/klarity-app/klarity/pkg/models"
	"github.com/klarity-app/klarity/pkg/storage"
	"github.com/klarity-app/klarity/pkg/storage/kvstore"
)

// Version is the snapshot format version tag.
const Version = "1.1"

// ErrInvalidBackup is returned when the input is not a usable snapshot. No
// state has been touched when this is returned.
var ErrInvalidBackup = errors.New("invalid backup file")

// Snapshot is the portable backup format.
type Snapshot struct {
	Transactions []models.Transaction `json:"transactions"`
	Targets      []models.Target      `json:"targets"`
	Settings     models.UserSettings  `json:"settings"`
	Timestamp    string               `json:"timestamp"`
	Version      string               `json:"version"`
}

// Controller owns export and restore of the full application state. It reads
// through the stores but restores through the key-value substrate directly,
// reproducing the wipe-then-write-per-key sequence.
type Controller struct {
	Store storage.Storage
	KV    kv.Store
	Now   func() time.Time
}

// New creates a new Controller.
func New(store storage.Storage, substrate kv.Store) *Controller {
	return &Controller{Store: store, KV: substrate, Now: time.Now}
}

// Export gathers all data points into a snapshot.
func (c *Controller) Export(ctx context.Context) (*Snapshot, error) {
	txs, err := c.Store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	targets, err := c.Store.ListTargets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets: %w", err)
	}
	settings, err := c.Store.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	if targets == nil {
		targets = []models.Target{}
	}
	return &Snapshot{
		Transactions: txs,
		Targets:      targets,
		Settings:     settings,
		Timestamp:    c.Now().UTC().Format(time.RFC3339),
		Version:      Version,
	}, nil
}

// restorePayload defers decoding of each collection so validation can happen
// before anything destructive.
type restorePayload struct {
	Transactions json.RawMessage `json:"transactions"`
	Targets      json.RawMessage `json:"targets"`
	Settings     json.RawMessage `json:"settings"`
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// Restore wipes the three storage keys and replaces them with the snapshot's
// contents. A file is accepted if it carries a transactions array or a
// settings object; anything else is rejected before any mutation. On a write
// failure mid-sequence, settings are best-effort reset to defaults and the
// error is returned — the caller must reload all three collections.
func (c *Controller) Restore(ctx context.Context, raw []byte) error {
	var payload restorePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	var txs []models.Transaction
	hasTxs := false
	if present(payload.Transactions) {
		if err := json.Unmarshal(payload.Transactions, &txs); err == nil {
			hasTxs = true
		}
	}

	settings := models.DefaultSettings()
	hasSettings := present(payload.Settings)
	if hasSettings {
		// Merge over defaults so an old snapshot backfills newer fields.
		if err := json.Unmarshal(payload.Settings, &settings); err != nil {
			return fmt.Errorf("%w: malformed settings: %v", ErrInvalidBackup, err)
		}
	}

	if !hasTxs && !hasSettings {
		return ErrInvalidBackup
	}

	var targets []models.Target
	if present(payload.Targets) {
		// A malformed targets array degrades to empty, same as a missing one.
		_ = json.Unmarshal(payload.Targets, &targets)
	}

	if err := c.replaceAll(txs, targets, settings); err != nil {
		// Salvage a sane settings record; transactions/targets may already be
		// wiped, which the caller was warned about.
		_, _ = c.Store.SaveSettings(ctx, models.DefaultSettings())
		return err
	}
	return nil
}

// replaceAll performs the destructive wipe-then-write sequence. The individual
// writes are not transactional; a failure part-way leaves earlier keys already
// replaced.
func (c *Controller) replaceAll(txs []models.Transaction, targets []models.Target, settings models.UserSettings) error {
	for _, key := range []string{kvstore.KeyTransactions, kvstore.KeyTargets, kvstore.KeySettings} {
		if err := c.KV.Remove(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}

	if txs == nil {
		txs = []models.Transaction{}
	}
	if targets == nil {
		targets = []models.Target{}
	}

	writes := []struct {
		key   string
		value any
	}{
		{kvstore.KeyTransactions, txs},
		{kvstore.KeyTargets, targets},
		{kvstore.KeySettings, settings},
	}
	for _, w := range writes {
		raw, err := json.Marshal(w.value)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", w.key, err)
		}
		if err := c.KV.Set(w.key, string(raw)); err != nil {
			return fmt.Errorf("failed to write %s: %w", w.key, err)
		}
	}
	return nil
}
