package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/klarity-app/klarity/pkg/models"
)

// TargetListResponse carries the refreshed target list after a mutation, plus
// the refreshed ledger when the mutation produced a synthetic transaction.
type TargetListResponse struct {
	Targets      []models.Target      `json:"targets"`
	Transactions []models.Transaction `json:"transactions,omitempty"`
}

// DepositRequest is the body of a deposit into a savings target.
type DepositRequest struct {
	Amount int64 `json:"amount"`
}

// ListTargets returns all savings targets.
func (h *ApiHandler) ListTargets(w http.ResponseWriter, r *http.Request) {
	targets, err := h.Store.ListTargets(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list targets: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, TargetListResponse{Targets: targets})
}

// SaveTarget upserts a savings target. Creating a target with a positive
// initial balance mirrors that balance into the ledger as a fixed Investasi
// expense, the same coupling a deposit has.
func (h *ApiHandler) SaveTarget(w http.ResponseWriter, r *http.Request) {
	var target models.Target
	if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if target.TargetAmount <= 0 {
		http.Error(w, "Target amount must be positive", http.StatusBadRequest)
		return
	}

	isNew := target.Id == ""
	targets, err := h.Store.SaveTarget(r.Context(), &target)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to save target: %v", err), http.StatusInternalServerError)
		return
	}

	resp := TargetListResponse{Targets: targets}
	if isNew && target.CollectedAmount > 0 {
		txs, err := h.recordSavingsExpense(r, target.CollectedAmount, fmt.Sprintf("Saldo Awal: %s", target.Name))
		if err != nil {
			http.Error(w, fmt.Sprintf("Target saved but recording the expense failed: %v", err), http.StatusInternalServerError)
			return
		}
		resp.Transactions = txs
	}
	writeJSON(w, http.StatusCreated, resp)
}

// DeleteTarget removes a savings target by id.
func (h *ApiHandler) DeleteTarget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	targets, err := h.Store.DeleteTarget(r.Context(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete target: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, TargetListResponse{Targets: targets})
}

// DepositToTarget increments a target's collected amount, then mirrors the
// deposit into the ledger as a fixed Investasi expense dated today. The two
// writes are sequential and not atomic; if the second fails, the target keeps
// the new amount and the ledger lags behind.
func (h *ApiHandler) DepositToTarget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Amount < 0 {
		http.Error(w, "Deposit amount must not be negative", http.StatusBadRequest)
		return
	}

	targets, err := h.Store.ListTargets(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list targets: %v", err), http.StatusInternalServerError)
		return
	}
	var target *models.Target
	for i := range targets {
		if targets[i].Id == id {
			target = &targets[i]
			break
		}
	}
	if target == nil {
		http.Error(w, fmt.Sprintf("Target %s not found", id), http.StatusNotFound)
		return
	}

	target.CollectedAmount += req.Amount
	updated, err := h.Store.SaveTarget(r.Context(), target)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to save target: %v", err), http.StatusInternalServerError)
		return
	}

	resp := TargetListResponse{Targets: updated}
	if req.Amount > 0 {
		txs, err := h.recordSavingsExpense(r, req.Amount, fmt.Sprintf("Tabungan: %s", target.Name))
		if err != nil {
			http.Error(w, fmt.Sprintf("Deposit saved but recording the expense failed: %v", err), http.StatusInternalServerError)
			return
		}
		resp.Transactions = txs
	}
	writeJSON(w, http.StatusOK, resp)
}

// recordSavingsExpense creates the synthetic expense mirroring a savings
// contribution: category Investasi, tagged Need, fixed so it reduces liquidity
// without eating the discretionary daily budget.
func (h *ApiHandler) recordSavingsExpense(r *http.Request, amount int64, reason string) ([]models.Transaction, error) {
	now := h.Now()
	tx := &models.Transaction{
		Amount:         amount,
		Type:           models.EXPENSE,
		Category:       models.CategoryInvestment,
		EmotionalTag:   models.NEED,
		Reason:         reason,
		Date:           now.Format(models.DateLayout),
		Timestamp:      now.UnixMilli(),
		IsFixedExpense: true,
	}
	return h.Store.CreateTransaction(r.Context(), tx)
}
