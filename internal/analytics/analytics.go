// Package analytics derives summaries from the raw collections. Every call
// recomputes from current store contents; nothing is cached.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/castellanodev/asistente/internal/models"
	"github.com/castellanodev/asistente/internal/store"
)

const recentTransactionLimit = 5

// Service computes derived views over the document store.
type Service struct {
	store store.Store
	now   func() time.Time
}

// NewService creates an analytics service.
func NewService(s store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// ExpenseAnalytics summarizes all recorded expenses: overall total, totals
// grouped by category, a single trend point for the current calendar month,
// and the five most recent transactions (newest first).
func (s *Service) ExpenseAnalytics(ctx context.Context) (models.ExpenseAnalytics, error) {
	expenses, err := s.store.Expenses(ctx)
	if err != nil {
		return models.ExpenseAnalytics{}, err
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var total, monthlyTotal float64
	byCategory := make(map[string]float64)
	for _, e := range expenses {
		total += e.Amount
		byCategory[e.Category] += e.Amount
		if !e.Date.Before(monthStart) && !e.Date.After(now) {
			monthlyTotal += e.Amount
		}
	}

	recent := make([]models.Expense, len(expenses))
	copy(recent, expenses)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}

	return models.ExpenseAnalytics{
		TotalSpent:         total,
		ByCategory:         byCategory,
		MonthlyTrend:       []models.MonthlyPoint{{Month: now.Format("Jan"), Amount: monthlyTotal}},
		RecentTransactions: recent,
	}, nil
}

// WaterIntakeStats aggregates water entries per calendar day, one entry for
// every day from the first of the current month through today inclusive.
// Entries are matched by calendar day, not full timestamp.
func (s *Service) WaterIntakeStats(ctx context.Context) ([]models.DailyWaterLog, error) {
	activities, err := s.store.Wellness(ctx)
	if err != nil {
		return nil, err
	}

	glassesByDay := make(map[string]int)
	for _, a := range activities {
		if a.Type != models.WellnessWater {
			continue
		}
		glassesByDay[a.Date.Format("2006-01-02")] += a.Value
	}

	now := s.now()
	day := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var logs []models.DailyWaterLog
	for !day.After(now) {
		key := day.Format("2006-01-02")
		logs = append(logs, models.DailyWaterLog{
			Date:    key,
			Glasses: glassesByDay[key],
			Target:  models.DefaultWaterTarget,
		})
		day = day.AddDate(0, 0, 1)
	}
	return logs, nil
}

// ExerciseStats lists every exercise activity in display form. Duration
// defaults to zero when the entry carries none.
func (s *Service) ExerciseStats(ctx context.Context) ([]models.ExerciseEntry, error) {
	activities, err := s.store.Wellness(ctx)
	if err != nil {
		return nil, err
	}

	entries := []models.ExerciseEntry{}
	for _, a := range activities {
		if a.Type != models.WellnessExercise {
			continue
		}
		entries = append(entries, models.ExerciseEntry{
			Date:     a.Date.Format("Jan 02"),
			Duration: a.Duration,
			Details:  a.Details,
		})
	}
	return entries, nil
}
