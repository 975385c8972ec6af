package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/klarity-app/klarity/pkg/models"
)

// GetSettings returns the settings record, always complete.
func (h *ApiHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.GetSettings(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load settings: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// SaveSettings replaces the settings record in full.
func (h *ApiHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.UserSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if settings.PaydayDayOfMonth < 1 || settings.PaydayDayOfMonth > 31 {
		http.Error(w, "Payday day of month must be between 1 and 31", http.StatusBadRequest)
		return
	}

	saved, err := h.Store.SaveSettings(r.Context(), settings)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to save settings: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
