package kvstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/klarity-app/klarity/pkg/models"
)

// delayedEntryWindow is how far in the past a transaction's date may lie before
// the entry counts as delayed.
const delayedEntryWindow = 24 * time.Hour

// ListTransactions retrieves all transactions, sorted newest first.
func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs := readList[models.Transaction](s, KeyTransactions)
	sortTransactions(txs)
	return txs, nil
}

// CreateTransaction appends a transaction to the ledger and returns the freshly
// sorted list. IsDelayedEntry is computed once here and never recomputed.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) ([]models.Transaction, error) {
	now := s.Now()
	if tx.Id == "" {
		tx.Id = uuid.New().String()
	}
	if tx.Timestamp == 0 {
		tx.Timestamp = now.UnixMilli()
	}
	// Fixed-expense marking only makes sense on expenses.
	if tx.Type != models.EXPENSE {
		tx.IsFixedExpense = false
	}
	if day, err := tx.DateTime(); err == nil && now.Sub(day) > delayedEntryWindow {
		tx.IsDelayedEntry = true
	}

	current := readList[models.Transaction](s, KeyTransactions)
	updated := append([]models.Transaction{*tx}, current...)
	if err := writeList(s, KeyTransactions, updated); err != nil {
		// The substrate kept the previous value; hand back the last-good list.
		return s.mustList(ctx), err
	}
	return s.mustList(ctx), nil
}

// UpdateTransaction replaces the transaction with a matching id in full.
// An unknown id leaves the ledger unchanged.
func (s *Store) UpdateTransaction(ctx context.Context, tx *models.Transaction) ([]models.Transaction, error) {
	current := readList[models.Transaction](s, KeyTransactions)
	for i := range current {
		if current[i].Id == tx.Id {
			current[i] = *tx
			if err := writeList(s, KeyTransactions, current); err != nil {
				return s.mustList(ctx), err
			}
			break
		}
	}
	return s.mustList(ctx), nil
}

// DeleteTransaction removes a transaction by id. Removal is unconditional, but
// deleting an Impulse-tagged transaction first bumps the shame counter on the
// settings record and persists it, so the caller is told to refresh settings.
func (s *Store) DeleteTransaction(ctx context.Context, id string) ([]models.Transaction, bool, error) {
	current := readList[models.Transaction](s, KeyTransactions)

	shameTriggered := false
	for i := range current {
		if current[i].Id != id {
			continue
		}
		if current[i].EmotionalTag == models.IMPULSE {
			settings, err := s.GetSettings(ctx)
			if err != nil {
				return s.mustList(ctx), false, err
			}
			settings.ShameCount++
			if _, err := s.SaveSettings(ctx, settings); err != nil {
				return s.mustList(ctx), false, err
			}
			shameTriggered = true
		}
		break
	}

	updated := current[:0:0]
	for _, tx := range current {
		if tx.Id != id {
			updated = append(updated, tx)
		}
	}
	if err := writeList(s, KeyTransactions, updated); err != nil {
		return s.mustList(ctx), shameTriggered, err
	}
	sortTransactions(updated)
	return updated, shameTriggered, nil
}

// mustList re-reads and sorts the ledger for failure paths that already carry
// their own error.
func (s *Store) mustList(ctx context.Context) []models.Transaction {
	list, _ := s.ListTransactions(ctx)
	return list
}
