package models

import (
	"time"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	INCOME  TransactionType = "INCOME"
	EXPENSE TransactionType = "EXPENSE"
)

// EmotionalTag records why an expense happened. Only meaningful for expenses.
type EmotionalTag string

const (
	NEED      EmotionalTag = "Need"
	IMPULSE   EmotionalTag = "Impulse"
	HUNGER    EmotionalTag = "Hunger"
	SOCIAL    EmotionalTag = "Social"
	EMERGENCY EmotionalTag = "Emergency"
	BOREDOM   EmotionalTag = "Boredom"
)

// Categories is the suggested category list. It is advisory: Transaction.Category
// is a free-form string and older data may hold values outside this list.
var Categories = []string{
	"Makanan & Minuman",
	"Transportasi",
	"Tempat Tinggal",
	"Hiburan",
	"Belanja",
	"Kesehatan",
	"Edukasi",
	"Investasi",
	"Bayar Utang",
	"Lainnya",
}

// CategoryInvestment is the category assigned to the synthetic expense mirroring
// a savings target deposit.
const CategoryInvestment = "Investasi"

// DateLayout is the calendar-day format used by Transaction.Date and Target.Deadline.
const DateLayout = "2006-01-02"

// Transaction represents one recorded cash movement.
// Amount is in the smallest currency unit (whole rupiah); Timestamp is Unix
// milliseconds, matching the v1.1 backup format.
type Transaction struct {
	Id             string          `json:"id"`
	Amount         int64           `json:"amount"`
	Type           TransactionType `json:"type"`
	Category       string          `json:"category"`
	EmotionalTag   EmotionalTag    `json:"emotionalTag,omitempty"`
	Reason         string          `json:"reason"`
	Date           string          `json:"date"`
	Timestamp      int64           `json:"timestamp"`
	IsDelayedEntry bool            `json:"isDelayedEntry,omitempty"`
	IsFixedExpense bool            `json:"isFixedExpense,omitempty"`
}

// DateTime parses the transaction's calendar day.
func (t *Transaction) DateTime() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}

// CreatedAt converts the creation timestamp to a time.Time.
func (t *Transaction) CreatedAt() time.Time {
	return time.UnixMilli(t.Timestamp)
}

// InMonth reports whether the transaction's date falls in the given YYYY-MM month.
func (t *Transaction) InMonth(month string) bool {
	return len(t.Date) >= 7 && t.Date[:7] == month
}

// Target represents a savings goal. CollectedAmount may exceed TargetAmount.
type Target struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	TargetAmount    int64  `json:"targetAmount"`
	CollectedAmount int64  `json:"collectedAmount"`
	Deadline        string `json:"deadline,omitempty"`
}

// UserSettings is the singleton per-install configuration record.
type UserSettings struct {
	MonthlyIncome    int64  `json:"monthlyIncome"`
	MonthlyBudget    int64  `json:"monthlyBudget"`
	PaydayDayOfMonth int    `json:"paydayDayOfMonth"`
	LifeAnchor       string `json:"lifeAnchor"`
	ShameCount       int    `json:"shameCount"`
	InstallDate      int64  `json:"installDate"`
}

// DefaultSettings returns the record created on first load. MonthlyBudget 0 and
// an empty LifeAnchor gate onboarding in the UI.
func DefaultSettings() UserSettings {
	return UserSettings{
		MonthlyIncome:    0,
		MonthlyBudget:    0,
		PaydayDayOfMonth: 1,
		LifeAnchor:       "",
		ShameCount:       0,
		InstallDate:      time.Now().UnixMilli(),
	}
}
