package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// MessageType is a rendering hint for the presentation layer.
type MessageType string

const (
	MessageText    MessageType = "text"
	MessageChart   MessageType = "chart"
	MessageSummary MessageType = "summary"
)

// Message is one unit of assistant (or echoed user) output. Messages are
// never persisted; they exist only in the reply stream of a single command.
type Message struct {
	ID        uuid.UUID   `json:"id"`
	Text      string      `json:"text"`
	Sender    Sender      `json:"sender"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageType `json:"type,omitempty"`
	Chart     *ChartData  `json:"chart,omitempty"`
}

// ChartKind discriminates the chart payload union.
type ChartKind string

const (
	ChartExpense  ChartKind = "expense"
	ChartWellness ChartKind = "wellness"
)

// ExpensePoint is one bar of the expense-by-category chart.
type ExpensePoint struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// WellnessPoint is one point of the daily water line chart.
type WellnessPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ChartData is a tagged union over the two chart payload shapes. Exactly one
// of Expense or Wellness is populated, matching Kind.
type ChartData struct {
	Kind     ChartKind
	Expense  []ExpensePoint
	Wellness []WellnessPoint
}

// NewExpenseChart builds an expense-series chart payload.
func NewExpenseChart(series []ExpensePoint) *ChartData {
	return &ChartData{Kind: ChartExpense, Expense: series}
}

// NewWellnessChart builds a wellness-series chart payload.
func NewWellnessChart(series []WellnessPoint) *ChartData {
	return &ChartData{Kind: ChartWellness, Wellness: series}
}

type expenseChartJSON struct {
	Kind   ChartKind      `json:"kind"`
	Series []ExpensePoint `json:"series"`
}

type wellnessChartJSON struct {
	Kind   ChartKind       `json:"kind"`
	Series []WellnessPoint `json:"series"`
}

// MarshalJSON encodes the payload as {"kind": ..., "series": [...]}.
func (c ChartData) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ChartExpense:
		return json.Marshal(expenseChartJSON{Kind: c.Kind, Series: c.Expense})
	case ChartWellness:
		return json.Marshal(wellnessChartJSON{Kind: c.Kind, Series: c.Wellness})
	default:
		return nil, fmt.Errorf("unknown chart kind: %q", c.Kind)
	}
}

// UnmarshalJSON decodes a chart payload, rejecting unknown kinds instead of
// carrying untyped data through.
func (c *ChartData) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind ChartKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch probe.Kind {
	case ChartExpense:
		var e expenseChartJSON
		if err := json.Unmarshal(data, &e); err != nil {
			return err
		}
		*c = ChartData{Kind: ChartExpense, Expense: e.Series}
		return nil
	case ChartWellness:
		var w wellnessChartJSON
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		*c = ChartData{Kind: ChartWellness, Wellness: w.Series}
		return nil
	default:
		return fmt.Errorf("unknown chart kind: %q", probe.Kind)
	}
}
