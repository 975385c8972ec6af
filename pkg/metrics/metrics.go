// Package metrics computes the derived financial figures shown on the
// dashboard. Every function is pure: it takes a transaction snapshot and an
// explicit clock and never touches storage.
package metrics

import (
	"math"
	"time"

	"github.com/klarity-app/klarity/pkg/models"
)

// CrisisThreshold is the safe-daily-spend level (smallest currency unit per
// day) below which the current month counts as a crisis.
const CrisisThreshold = 20000

// MonthLayout is the YYYY-MM format used to select a month.
const MonthLayout = "2006-01"

// BurnRate returns average spending per day over the trailing 30 days,
// measured from the transactions' creation instants (a continuous window, not
// calendar-aligned).
func BurnRate(txs []models.Transaction, now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -30).UnixMilli()
	var total int64
	for _, t := range txs {
		if t.Type == models.EXPENSE && t.Timestamp >= cutoff {
			total += t.Amount
		}
	}
	return float64(total) / 30
}

// DaysUntilPayday returns the whole days (rounded up) until the next payday.
// If today's day-of-month is on or past the payday, the target is next month's
// payday; a same-day payday therefore rolls over to the next cycle.
//
// A payday of 31 in a shorter month normalizes forward (Feb 31 becomes early
// March), matching the behavior users already rely on.
func DaysUntilPayday(payday int, now time.Time) int {
	target := time.Date(now.Year(), now.Month(), payday, 0, 0, 0, 0, now.Location())
	if now.Day() >= payday {
		target = time.Date(now.Year(), now.Month()+1, payday, 0, 0, 0, 0, now.Location())
	}
	diff := target.Sub(now)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// FutureDamage projects a year of impulse spending: the sum of Impulse-tagged
// expenses dated in the current calendar month, times 12. A deliberate blunt
// extrapolation, not a forecast.
func FutureDamage(txs []models.Transaction, now time.Time) int64 {
	month := now.Format(MonthLayout)
	var total int64
	for _, t := range txs {
		if t.Type == models.EXPENSE && t.EmotionalTag == models.IMPULSE && t.InMonth(month) {
			total += t.Amount
		}
	}
	return total * 12
}

// Liquidity is all-time income minus all-time expenses, fixed and variable
// alike. It reflects real cash position now, regardless of which month is
// being viewed.
func Liquidity(txs []models.Transaction) int64 {
	var balance int64
	for _, t := range txs {
		switch t.Type {
		case models.INCOME:
			balance += t.Amount
		case models.EXPENSE:
			balance -= t.Amount
		}
	}
	return balance
}

// MonthSummary aggregates one calendar month of the ledger.
type MonthSummary struct {
	Income          int64   `json:"income"`
	FixedExpense    int64   `json:"fixedExpense"`
	VariableExpense int64   `json:"variableExpense"`
	BudgetRemaining int64   `json:"budgetRemaining"`
	BudgetProgress  float64 `json:"budgetProgress"`
}

// MonthStats partitions the month's expenses into fixed and variable pools and
// derives the discretionary budget position. Only variable expenses count
// against the monthly budget. With an unconfigured budget (0) progress is
// defined as 0%; onboarding requires a budget before this is shown.
func MonthStats(txs []models.Transaction, settings models.UserSettings, month string) MonthSummary {
	var sum MonthSummary
	for _, t := range txs {
		if !t.InMonth(month) {
			continue
		}
		switch {
		case t.Type == models.INCOME:
			sum.Income += t.Amount
		case t.IsFixedExpense:
			sum.FixedExpense += t.Amount
		default:
			sum.VariableExpense += t.Amount
		}
	}
	sum.BudgetRemaining = settings.MonthlyBudget - sum.VariableExpense
	if settings.MonthlyBudget > 0 {
		progress := float64(sum.VariableExpense) / float64(settings.MonthlyBudget) * 100
		sum.BudgetProgress = math.Min(100, math.Max(0, progress))
	}
	return sum
}

// ProgressTier buckets budget progress for display: "ok" below 75%, "amber"
// from 75% through 90%, "critical" beyond.
func ProgressTier(progress float64) string {
	switch {
	case progress > 90:
		return "critical"
	case progress >= 75:
		return "amber"
	default:
		return "ok"
	}
}

// DashboardStats bundles every derived figure for one selected month.
type DashboardStats struct {
	MonthSummary
	Liquidity       int64   `json:"liquidity"`
	BurnRate        float64 `json:"burnRate"`
	FutureDamage    int64   `json:"futureDamage"`
	DaysUntilPayday int     `json:"daysUntilPayday"`
	SafeDaily       float64 `json:"safeDaily"`
	IsCurrentMonth  bool    `json:"isCurrentMonth"`
	IsCrisis        bool    `json:"isCrisis"`
	ProgressTier    string  `json:"progressTier"`
}

// Dashboard computes the full stat block for the selected YYYY-MM month.
//
// SafeDaily is only defined for the month containing now: the lesser of real
// liquidity and remaining budget, spread over the days left until payday,
// floored at zero. Any other month, or a zero-day countdown, yields 0.
func Dashboard(txs []models.Transaction, settings models.UserSettings, month string, now time.Time) DashboardStats {
	stats := DashboardStats{
		MonthSummary:    MonthStats(txs, settings, month),
		Liquidity:       Liquidity(txs),
		BurnRate:        BurnRate(txs, now),
		FutureDamage:    FutureDamage(txs, now),
		DaysUntilPayday: DaysUntilPayday(settings.PaydayDayOfMonth, now),
		IsCurrentMonth:  month == now.Format(MonthLayout),
	}

	if stats.IsCurrentMonth && stats.DaysUntilPayday > 0 {
		effectiveAvailable := stats.BudgetRemaining
		if stats.Liquidity < effectiveAvailable {
			effectiveAvailable = stats.Liquidity
		}
		stats.SafeDaily = math.Max(0, float64(effectiveAvailable)/float64(stats.DaysUntilPayday))
	}
	stats.IsCrisis = stats.IsCurrentMonth && stats.SafeDaily < CrisisThreshold
	stats.ProgressTier = ProgressTier(stats.BudgetProgress)
	return stats
}
