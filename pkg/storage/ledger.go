package storage

import (
	"context"

	"github.com/klarity-app/klarity/pkg/models"
)

// LedgerStore defines the interface for the transaction ledger.
//
// List output is always sorted by date descending, ties broken by creation
// timestamp descending; callers must not assume any underlying storage order.
type LedgerStore interface {
	// ListTransactions retrieves all transactions, sorted newest first.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// CreateTransaction appends a transaction and returns the updated list.
	// It assigns an id if missing and stamps IsDelayedEntry when the
	// transaction's date is more than 24 hours before now.
	CreateTransaction(ctx context.Context, tx *models.Transaction) ([]models.Transaction, error)

	// UpdateTransaction replaces the transaction with the same id in full.
	// An unknown id leaves the list unchanged.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) ([]models.Transaction, error)

	// DeleteTransaction removes a transaction by id. Deleting an
	// Impulse-tagged transaction increments the settings shame counter as a
	// side effect; the returned bool reports whether that happened.
	DeleteTransaction(ctx context.Context, id string) ([]models.Transaction, bool, error)
}
