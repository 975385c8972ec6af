package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/klarity-app/klarity/pkg/models"
	"github.com/klarity-app/klarity/pkg/storage"
)

// TransactionListResponse carries the refreshed ledger after a mutation.
// ShameTriggered tells the UI to refresh settings after a delete.
type TransactionListResponse struct {
	Transactions   []models.Transaction `json:"transactions"`
	ShameTriggered bool                 `json:"shameTriggered,omitempty"`
}

// ListTransactions returns the full ledger, newest first.
func (h *ApiHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Store.ListTransactions(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list transactions: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, TransactionListResponse{Transactions: txs})
}

// CreateTransaction records a new transaction and returns the updated ledger.
func (h *ApiHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var tx models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if tx.Amount <= 0 {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}

	txs, err := h.Store.CreateTransaction(r.Context(), &tx)
	if err != nil {
		// The store already recovered to its last-good list; report the failure
		// but hand that list back so the UI stays consistent.
		if errors.Is(err, storage.ErrPersistence) {
			writeJSON(w, http.StatusInsufficientStorage, TransactionListResponse{Transactions: txs})
			return
		}
		http.Error(w, fmt.Sprintf("Failed to save transaction: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, TransactionListResponse{Transactions: txs})
}

// UpdateTransaction replaces a transaction in full by id.
func (h *ApiHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var tx models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if tx.Id == "" {
		http.Error(w, "Transaction id is required", http.StatusBadRequest)
		return
	}

	txs, err := h.Store.UpdateTransaction(r.Context(), &tx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to update transaction: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, TransactionListResponse{Transactions: txs})
}

// DeleteTransaction removes a transaction by id and reports whether the shame
// counter was bumped.
func (h *ApiHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	txs, shameTriggered, err := h.Store.DeleteTransaction(r.Context(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete transaction: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, TransactionListResponse{Transactions: txs, ShameTriggered: shameTriggered})
}
