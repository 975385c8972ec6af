package metrics

import (
	"testing"
	"time"

	"github.com/klarity-app/klarity/pkg/models"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

func expenseAt(date string, created time.Time, amount int64, tag models.EmotionalTag, fixed bool) models.Transaction {
	return models.Transaction{
		Id:             date,
		Amount:         amount,
		Type:           models.EXPENSE,
		Category:       "Belanja",
		EmotionalTag:   tag,
		Date:           date,
		Timestamp:      created.UnixMilli(),
		IsFixedExpense: fixed,
	}
}

func income(date string, amount int64) models.Transaction {
	return models.Transaction{
		Id: "in-" + date, Amount: amount, Type: models.INCOME,
		Category: "Lainnya", Date: date, Timestamp: now.UnixMilli(),
	}
}

func TestBurnRate(t *testing.T) {
	txs := []models.Transaction{
		expenseAt("2026-08-20", now.AddDate(0, 0, -5), 300000, "", false),
		expenseAt("2026-08-01", now.AddDate(0, 0, -25), 300000, "", false),
		// Recorded 40 days ago: outside the trailing window.
		expenseAt("2026-07-15", now.AddDate(0, 0, -40), 900000, "", false),
		income("2026-08-10", 5000000),
	}

	assert.InDelta(t, 600000.0/30, BurnRate(txs, now), 0.001)
}

func TestDaysUntilPayday(t *testing.T) {
	t.Run("Before Payday", func(t *testing.T) {
		day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, DaysUntilPayday(25, day))
	})

	t.Run("Day After Payday Rolls To Next Month", func(t *testing.T) {
		day := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
		// The 25th of September, not this month's (already passed) 25th.
		assert.Equal(t, 30, DaysUntilPayday(25, day))
	})

	t.Run("Payday Itself Rolls To Next Month", func(t *testing.T) {
		day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 31, DaysUntilPayday(25, day))
	})

	t.Run("Partial Day Rounds Up", func(t *testing.T) {
		day := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, DaysUntilPayday(25, day))
	})

	t.Run("Payday 31 Normalizes In A Short Month", func(t *testing.T) {
		// Feb 2026 has 28 days; Feb 31 normalizes to Mar 3.
		day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 21, DaysUntilPayday(31, day))
	})
}

func TestFutureDamage(t *testing.T) {
	txs := []models.Transaction{
		expenseAt("2026-08-05", now, 150000, models.IMPULSE, false),
		expenseAt("2026-08-18", now, 50000, models.IMPULSE, false),
		// Impulse buys in other months do not count.
		expenseAt("2026-07-05", now, 990000, models.IMPULSE, false),
		// Non-impulse spending this month does not count either.
		expenseAt("2026-08-06", now, 400000, models.NEED, false),
	}

	assert.Equal(t, int64(2400000), FutureDamage(txs, now))
}

func TestLiquidity(t *testing.T) {
	txs := []models.Transaction{
		income("2026-06-01", 4000000),
		income("2026-08-01", 5000000),
		expenseAt("2026-07-10", now, 2000000, "", false),
		expenseAt("2026-08-10", now, 1000000, "", true),
	}

	// All-time, fixed and variable alike.
	assert.Equal(t, int64(6000000), Liquidity(txs))
}

func TestMonthStats(t *testing.T) {
	settings := models.UserSettings{MonthlyBudget: 1000000}

	t.Run("Budget Scenario", func(t *testing.T) {
		txs := []models.Transaction{
			expenseAt("2026-08-12", now, 750000, "", false),
			expenseAt("2026-08-01", now, 300000, "", true),
			income("2026-08-01", 5000000),
			// Another month, ignored.
			expenseAt("2026-07-12", now, 999999, "", false),
		}

		stats := MonthStats(txs, settings, "2026-08")
		assert.Equal(t, int64(750000), stats.VariableExpense)
		assert.Equal(t, int64(300000), stats.FixedExpense)
		assert.Equal(t, int64(5000000), stats.Income)
		assert.Equal(t, int64(250000), stats.BudgetRemaining)
		assert.InDelta(t, 75.0, stats.BudgetProgress, 0.001)
		assert.Equal(t, "amber", ProgressTier(stats.BudgetProgress))
	})

	t.Run("Overspend Clamps Progress", func(t *testing.T) {
		txs := []models.Transaction{expenseAt("2026-08-12", now, 1500000, "", false)}

		stats := MonthStats(txs, settings, "2026-08")
		assert.Equal(t, int64(-500000), stats.BudgetRemaining)
		assert.InDelta(t, 100.0, stats.BudgetProgress, 0.001)
		assert.Equal(t, "critical", ProgressTier(stats.BudgetProgress))
	})

	t.Run("Unconfigured Budget Is Zero Percent", func(t *testing.T) {
		txs := []models.Transaction{expenseAt("2026-08-12", now, 750000, "", false)}

		stats := MonthStats(txs, models.UserSettings{}, "2026-08")
		assert.Equal(t, 0.0, stats.BudgetProgress)
		assert.Equal(t, "ok", ProgressTier(stats.BudgetProgress))
	})
}

func TestDashboard(t *testing.T) {
	settings := models.UserSettings{MonthlyBudget: 1000000, PaydayDayOfMonth: 25}

	t.Run("Safe Daily For Current Month", func(t *testing.T) {
		txs := []models.Transaction{
			income("2026-08-01", 5000000),
			expenseAt("2026-08-12", now, 700000, "", false),
		}

		stats := Dashboard(txs, settings, "2026-08", now)
		assert.True(t, stats.IsCurrentMonth)
		// budgetRemaining 300k < liquidity 4.3M, spread over 30 days.
		assert.Equal(t, 30, stats.DaysUntilPayday)
		assert.InDelta(t, 10000.0, stats.SafeDaily, 0.001)
		assert.True(t, stats.IsCrisis)
	})

	t.Run("Liquidity Caps Safe Daily", func(t *testing.T) {
		txs := []models.Transaction{
			income("2026-08-01", 100000),
		}

		stats := Dashboard(txs, settings, "2026-08", now)
		// Budget remaining is the full 1M, but only 100k exists.
		assert.InDelta(t, 100000.0/30, stats.SafeDaily, 0.001)
	})

	t.Run("Negative Available Floors At Zero", func(t *testing.T) {
		txs := []models.Transaction{
			expenseAt("2026-08-12", now, 2000000, "", false),
		}

		stats := Dashboard(txs, settings, "2026-08", now)
		assert.Equal(t, 0.0, stats.SafeDaily)
		assert.True(t, stats.IsCrisis)
	})

	t.Run("Other Month Has No Safe Daily", func(t *testing.T) {
		txs := []models.Transaction{income("2026-07-01", 5000000)}

		stats := Dashboard(txs, settings, "2026-07", now)
		assert.False(t, stats.IsCurrentMonth)
		assert.Equal(t, 0.0, stats.SafeDaily)
		assert.False(t, stats.IsCrisis)
	})

	t.Run("Comfortable Month Is Not A Crisis", func(t *testing.T) {
		txs := []models.Transaction{income("2026-08-01", 10000000)}

		stats := Dashboard(txs, settings, "2026-08", now)
		// Full budget over 30 days is above the crisis threshold.
		assert.InDelta(t, 1000000.0/30, stats.SafeDaily, 0.001)
		assert.False(t, stats.IsCrisis)
	})
}
