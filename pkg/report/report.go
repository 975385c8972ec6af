// Package report renders the monthly tabular export consumed outside the core.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/klarity-app/klarity/pkg/metrics"
	"github.com/klarity-app/klarity/pkg/models"
)

// WriteMonthlyCSV writes a sectioned CSV report for the given YYYY-MM month:
// a summary block derived from the metrics engine, then one row per
// transaction of the month, newest first (the order the snapshot arrives in).
func WriteMonthlyCSV(w io.Writer, txs []models.Transaction, settings models.UserSettings, month string, now time.Time) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	stats := metrics.MonthStats(txs, settings, month)

	header := [][]string{
		{"Klarity Monthly Report"},
		{"Month", month},
		{"Generated", now.Format("2006-01-02 15:04:05")},
		{},
		{"SUMMARY"},
		{"Income", strconv.FormatInt(stats.Income, 10)},
		{"Fixed Expenses", strconv.FormatInt(stats.FixedExpense, 10)},
		{"Variable Expenses", strconv.FormatInt(stats.VariableExpense, 10)},
		{"Monthly Budget", strconv.FormatInt(settings.MonthlyBudget, 10)},
		{"Budget Remaining", strconv.FormatInt(stats.BudgetRemaining, 10)},
		{"Budget Used", fmt.Sprintf("%.0f%%", stats.BudgetProgress)},
		{"Deleted Impulse Buys", strconv.Itoa(settings.ShameCount)},
		{},
	}
	for _, row := range header {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	if err := cw.Write([]string{"TRANSACTIONS"}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Date", "Type", "Category", "Tag", "Amount", "Reason", "Fixed", "Delayed"}); err != nil {
		return err
	}
	for _, t := range txs {
		if !t.InMonth(month) {
			continue
		}
		row := []string{
			t.Date,
			string(t.Type),
			t.Category,
			string(t.EmotionalTag),
			strconv.FormatInt(t.Amount, 10),
			t.Reason,
			strconv.FormatBool(t.IsFixedExpense),
			strconv.FormatBool(t.IsDelayedEntry),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write transaction row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
