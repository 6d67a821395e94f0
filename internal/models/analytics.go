package models

// ExpenseAnalytics is the derived expense summary. It is recomputed fresh on
// every request; nothing here is cached or persisted.
type ExpenseAnalytics struct {
	TotalSpent         float64            `json:"total_spent"`
	ByCategory         map[string]float64 `json:"by_category"`
	MonthlyTrend       []MonthlyPoint     `json:"monthly_trend"`
	RecentTransactions []Expense          `json:"recent_transactions"`
}

// MonthlyPoint is one month of the spending trend. Only the current calendar
// month is ever produced.
type MonthlyPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// DefaultWaterTarget is the daily glasses-of-water goal.
const DefaultWaterTarget = 8

// DailyWaterLog aggregates one calendar day of water entries. Date is in
// 2006-01-02 form.
type DailyWaterLog struct {
	Date    string `json:"date"`
	Glasses int    `json:"glasses"`
	Target  int    `json:"target"`
}

// ExerciseEntry is one logged exercise activity in display form.
type ExerciseEntry struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Details  string `json:"details"`
}
