package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/klarity-app/klarity/pkg/backup"
)

// ExportBackup downloads the full state as a snapshot file.
func (h *ApiHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Backup.Export(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create backup: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=klarity_backup_%s.json", h.Now().Format("2006-01-02")))
	writeJSON(w, http.StatusOK, snapshot)
}

// RestoreBackup destructively replaces all state with the uploaded snapshot.
// On failure the caller must reload every collection; transactions and targets
// may already have been wiped.
func (h *ApiHandler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read backup file: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.Backup.Restore(r.Context(), raw); err != nil {
		if errors.Is(err, backup.ErrInvalidBackup) {
			http.Error(w, fmt.Sprintf("Not a valid backup file: %v", err), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Restore failed: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"restored": true})
}
