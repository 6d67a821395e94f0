package models

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a to-do item created through the chat interface.
// The only mutation a task supports after creation is toggling Completed.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Date        time.Time `json:"date"`
}

// Event represents a calendar entry. Date and Time are kept exactly as the
// user typed them; parsing only happens when events are sorted for listing.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Recurrence  string    `json:"recurrence,omitempty"`
}

// Expense represents a single recorded expense. Date is assigned by the
// server at creation time, never supplied by the user. Amounts are not
// required to be positive: negative entries model refunds.
type Expense struct {
	ID       uuid.UUID `json:"id"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// WellnessType identifies which payload fields of a WellnessActivity are
// meaningful.
type WellnessType string

const (
	WellnessWater      WellnessType = "water"
	WellnessExercise   WellnessType = "exercise"
	WellnessReflection WellnessType = "reflection"
)

// WellnessActivity is a wellness log entry. Value carries glasses for water
// entries, Details carries free text for exercise entries.
type WellnessActivity struct {
	ID       uuid.UUID    `json:"id"`
	Type     WellnessType `json:"type"`
	Value    int          `json:"value,omitempty"`
	Details  string       `json:"details,omitempty"`
	Duration int          `json:"duration,omitempty"`
	Date     time.Time    `json:"date"`
}
