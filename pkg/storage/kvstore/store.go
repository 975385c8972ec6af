package kvstore

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/klarity-app/klarity/pkg/kv"
	"github.com/klarity-app/klarity/pkg/models"
	"github.com/klarity-app/klarity/pkg/storage"
)

// Storage keys. Three JSON documents hold the entire on-device state.
const (
	KeyTransactions = "klarity_transactions"
	KeyTargets      = "klarity_targets"
	KeySettings     = "klarity_settings"
)

// Store implements the storage interfaces over a key-value substrate.
type Store struct {
	KV  kv.Store
	Now func() time.Time
}

// New creates a new Store.
func New(store kv.Store) *Store {
	return &Store{KV: store, Now: time.Now}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// readList unmarshals the JSON array stored under key into out. A missing key
// yields an empty list; a corrupt value is treated the same so the caller
// always gets something usable.
func readList[T any](s *Store, key string) []T {
	raw, ok, err := s.KV.Get(key)
	if err != nil || !ok {
		return nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// writeList marshals list and persists it under key. The substrate guarantees
// the previous value survives a failed write.
func writeList[T any](s *Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", storage.ErrPersistence, key, err)
	}
	if err := s.KV.Set(key, string(raw)); err != nil {
		return fmt.Errorf("%w: write %s: %v", storage.ErrPersistence, key, err)
	}
	return nil
}

// sortTransactions orders by date descending, ties by creation timestamp
// descending. Dates are YYYY-MM-DD strings, so lexicographic order is
// chronological order.
func sortTransactions(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date > txs[j].Date
		}
		return txs[i].Timestamp > txs[j].Timestamp
	})
}
