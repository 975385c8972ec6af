// Package handlers exposes the stores, metrics engine, and backup controller
// over a localhost HTTP API for the UI.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/klarity-app/klarity/pkg/backup"
	"github.com/klarity-app/klarity/pkg/storage"
)

// ApiHandler holds the application's dependencies for the HTTP surface.
type ApiHandler struct {
	Store  storage.Storage
	Backup *backup.Controller
	Now    func() time.Time
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(store storage.Storage, controller *backup.Controller) *ApiHandler {
	return &ApiHandler{Store: store, Backup: controller, Now: time.Now}
}

// Routes mounts all endpoints on a fresh router.
func (h *ApiHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/transactions", h.ListTransactions)
	r.Post("/transactions", h.CreateTransaction)
	r.Put("/transactions", h.UpdateTransaction)
	r.Delete("/transactions/{id}", h.DeleteTransaction)

	r.Get("/targets", h.ListTargets)
	r.Post("/targets", h.SaveTarget)
	r.Delete("/targets/{id}", h.DeleteTarget)
	r.Post("/targets/{id}/deposit", h.DepositToTarget)

	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.SaveSettings)

	r.Get("/dashboard", h.GetDashboard)
	r.Get("/report", h.GetMonthlyReport)

	r.Get("/backup", h.ExportBackup)
	r.Post("/restore", h.RestoreBackup)

	return r
}

// writeJSON encodes v with the standard headers.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
