package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/klarity-app/klarity/pkg/metrics"
	"github.com/klarity-app/klarity/pkg/report"
)

// monthParam resolves the optional ?month=YYYY-MM query, defaulting to the
// month containing now.
func (h *ApiHandler) monthParam(r *http.Request) (string, error) {
	month := r.URL.Query().Get("month")
	if month == "" {
		return h.Now().Format(metrics.MonthLayout), nil
	}
	if _, err := time.Parse(metrics.MonthLayout, month); err != nil {
		return "", fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return month, nil
}

// GetDashboard returns the derived stat block for the selected month.
func (h *ApiHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.Store.ListTransactions(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list transactions: %v", err), http.StatusInternalServerError)
		return
	}
	settings, err := h.Store.GetSettings(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load settings: %v", err), http.StatusInternalServerError)
		return
	}

	stats := metrics.Dashboard(txs, settings, month, h.Now())
	writeJSON(w, http.StatusOK, stats)
}

// GetMonthlyReport streams the month's CSV report.
func (h *ApiHandler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.Store.ListTransactions(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list transactions: %v", err), http.StatusInternalServerError)
		return
	}
	settings, err := h.Store.GetSettings(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load settings: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=klarity_report_%s.csv", month))
	if err := report.WriteMonthlyCSV(w, txs, settings, month, h.Now()); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write report: %v", err), http.StatusInternalServerError)
	}
}
