package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/klarity-app/klarity/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMonthlyCSV(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	settings := models.UserSettings{MonthlyBudget: 1000000, ShameCount: 3}
	txs := []models.Transaction{
		{Id: "a", Amount: 750000, Type: models.EXPENSE, Category: "Belanja", EmotionalTag: models.IMPULSE, Reason: "diskon", Date: "2026-08-12", Timestamp: 2},
		{Id: "b", Amount: 5000000, Type: models.INCOME, Category: "Lainnya", Reason: "gaji", Date: "2026-08-01", Timestamp: 1},
		// Different month, excluded from the rows.
		{Id: "c", Amount: 99999, Type: models.EXPENSE, Category: "Hiburan", Reason: "bioskop", Date: "2026-07-20", Timestamp: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMonthlyCSV(&buf, txs, settings, "2026-08", now))

	out := buf.String()
	assert.Contains(t, out, "Klarity Monthly Report")
	assert.Contains(t, out, "Budget Remaining,250000")
	assert.Contains(t, out, "Budget Used,75%")
	assert.Contains(t, out, "Deleted Impulse Buys,3")
	assert.Contains(t, out, "diskon")
	assert.Contains(t, out, "gaji")
	assert.NotContains(t, out, "bioskop")

	// The whole document must stay parseable CSV.
	r := csv.NewReader(strings.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.NotEmpty(t, records)
}
