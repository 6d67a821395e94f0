package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/castellanodev/asistente/internal/analytics"
	"github.com/castellanodev/asistente/internal/models"
	"github.com/castellanodev/asistente/internal/store"
	"github.com/castellanodev/asistente/internal/tips"
)

func newTestInterpreter(t *testing.T) (*Interpreter, store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryDocuments())
	it := New(st, analytics.NewService(st), tips.NewProvider(), zap.NewNop())
	return it, st
}

func collectionCounts(t *testing.T, st store.Store) [4]int {
	t.Helper()
	ctx := context.Background()
	tasks, err := st.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	events, err := st.Events(ctx)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	expenses, err := st.Expenses(ctx)
	if err != nil {
		t.Fatalf("Expenses: %v", err)
	}
	wellness, err := st.Wellness(ctx)
	if err != nil {
		t.Fatalf("Wellness: %v", err)
	}
	return [4]int{len(tasks), len(events), len(expenses), len(wellness)}
}

func TestHelp(t *testing.T) {
	t.Parallel()
	it, _ := newTestInterpreter(t)

	for _, line := range []string{"ayuda", "  AYUDA  "} {
		replies := it.Interpret(context.Background(), line)
		if len(replies) != 1 {
			t.Fatalf("Interpret(%q) returned %d messages, want 1", line, len(replies))
		}
		if !strings.Contains(replies[0].Text, "Comandos Disponibles") {
			t.Errorf("help reply missing command list: %q", replies[0].Text)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)

	replies := it.Interpret(context.Background(), "zzz hacer algo")
	if len(replies) != 1 || replies[0].Text != msgUnknownCommand {
		t.Errorf("unexpected replies: %+v", replies)
	}
	if counts := collectionCounts(t, st); counts != [4]int{} {
		t.Errorf("unknown command must not touch the store: %v", counts)
	}
}

func TestRepliesAreFromAssistant(t *testing.T) {
	t.Parallel()
	it, _ := newTestInterpreter(t)

	for _, line := range []string{"ayuda", "tarea agregar leer", "gasto 10 ocio", "zzz"} {
		for _, m := range it.Interpret(context.Background(), line) {
			if m.Sender != models.SenderAssistant {
				t.Errorf("Interpret(%q): sender = %q, want assistant", line, m.Sender)
			}
			if m.ID == uuid.Nil {
				t.Errorf("Interpret(%q): message without id", line)
			}
			if m.Timestamp.IsZero() {
				t.Errorf("Interpret(%q): message without timestamp", line)
			}
		}
	}
}

func TestTaskAdd(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)
	ctx := context.Background()

	replies := it.Interpret(ctx, "tarea agregar Comprar Pan Integral")
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want confirmation + tip", len(replies))
	}
	if replies[0].Text != "✅ Tarea agregada: comprar pan integral" {
		t.Errorf("unexpected confirmation: %q", replies[0].Text)
	}
	if !strings.HasPrefix(replies[1].Text, "💡 Tip: ") {
		t.Errorf("second reply should be a tip: %q", replies[1].Text)
	}

	tasks, err := st.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Description != "comprar pan integral" || tasks[0].Completed {
		t.Errorf("persisted task mismatch: %+v", tasks)
	}
}

func TestTaskList(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)
	ctx := context.Background()

	empty := it.Interpret(ctx, "tarea listar")
	if len(empty) != 1 || empty[0].Text != msgTaskListEmpty {
		t.Errorf("empty listing: %+v", empty)
	}

	it.Interpret(ctx, "tarea agregar pagar alquiler")
	it.Interpret(ctx, "tarea agregar sacar la basura")

	tasks, err := st.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if _, err := st.SetTaskCompleted(ctx, tasks[1].ID, true); err != nil {
		t.Fatalf("SetTaskCompleted: %v", err)
	}

	replies := it.Interpret(ctx, "tarea listar")
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}
	text := replies[0].Text
	if !strings.Contains(text, "📋 Tareas Pendientes (1):") {
		t.Errorf("missing pending section header: %q", text)
	}
	if !strings.Contains(text, "✅ Tareas Completadas (1):") {
		t.Errorf("missing completed section header: %q", text)
	}
	if got := strings.Count(text, "pagar alquiler"); got != 1 {
		t.Errorf("pending task should appear exactly once, got %d", got)
	}
	if !strings.Contains(text, "Progreso: 50% completado") {
		t.Errorf("missing progress line: %q", text)
	}
}

func TestTaskUsageError(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)

	for _, line := range []string{"tarea", "tarea borrar x", "tarea agregar"} {
		replies := it.Interpret(context.Background(), line)
		if len(replies) != 1 || replies[0].Text != msgTaskUsage {
			t.Errorf("Interpret(%q): %+v", line, replies)
		}
	}
	if counts := collectionCounts(t, st); counts != [4]int{} {
		t.Errorf("malformed task commands must not touch the store: %v", counts)
	}
}

func TestEventAdd(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)
	ctx := context.Background()

	replies := it.Interpret(ctx, "evento agregar Cena con Ana, 2026-09-10, 21:00")
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want confirmation + tip", len(replies))
	}
	if replies[0].Text != "📅 Evento agregado: cena con ana el 2026-09-10 a las 21:00" {
		t.Errorf("unexpected confirmation: %q", replies[0].Text)
	}

	events, err := st.Events(ctx)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(events) != 1 || events[0].Name != "cena con ana" || events[0].Date != "2026-09-10" || events[0].Time != "21:00" {
		t.Errorf("persisted event mismatch: %+v", events)
	}
}

func TestEventAddMissingParts(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)

	for _, line := range []string{
		"evento agregar x",
		"evento agregar x, 2026-09-10",
		"evento agregar , 2026-09-10, 21:00",
	} {
		replies := it.Interpret(context.Background(), line)
		if len(replies) != 1 || replies[0].Text != msgEventNeedsFields {
			t.Errorf("Interpret(%q): %+v", line, replies)
		}
	}
	if counts := collectionCounts(t, st); counts != [4]int{} {
		t.Errorf("malformed event commands must not touch the store: %v", counts)
	}
}

func TestEventListSortedByDate(t *testing.T) {
	t.Parallel()
	it, _ := newTestInterpreter(t)
	ctx := context.Background()

	empty := it.Interpret(ctx, "evento listar")
	if len(empty) != 1 || empty[0].Text != msgEventListEmpty {
		t.Errorf("empty listing: %+v", empty)
	}

	// Insert newest first; listing must come back in date order.
	it.Interpret(ctx, "evento agregar concierto, 2026-09-20, 20:00")
	it.Interpret(ctx, "evento agregar dentista, 2026-09-01, 09:30")

	replies := it.Interpret(ctx, "evento listar")
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}
	text := replies[0].Text
	first := strings.Index(text, "1. dentista")
	second := strings.Index(text, "2. concierto")
	if first == -1 || second == -1 || first > second {
		t.Errorf("listing not sorted by date:\n%s", text)
	}
}

func TestExpenseAdd(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)
	ctx := context.Background()

	replies := it.Interpret(ctx, "gasto 50 comida")
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want confirmation + tip", len(replies))
	}
	if replies[0].Text != "💸 Gasto registrado: $50 en comida" {
		t.Errorf("unexpected confirmation: %q", replies[0].Text)
	}
	if !strings.HasPrefix(replies[1].Text, "💡 Tip financiero: ") {
		t.Errorf("second reply should be a finance tip: %q", replies[1].Text)
	}

	it.Interpret(ctx, "gasto 25.50 comida rapida")

	an := analytics.NewService(st)
	ea, err := an.ExpenseAnalytics(ctx)
	if err != nil {
		t.Fatalf("ExpenseAnalytics: %v", err)
	}
	if ea.TotalSpent != 75.50 {
		t.Errorf("TotalSpent = %v, want 75.50", ea.TotalSpent)
	}
	if ea.ByCategory["comida"] != 50 {
		t.Errorf("ByCategory[comida] = %v, want 50", ea.ByCategory["comida"])
	}
	if ea.ByCategory["comida rapida"] != 25.50 {
		t.Errorf("multi-word category not preserved: %v", ea.ByCategory)
	}
}

func TestExpenseNegativeAmountAccepted(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)
	ctx := context.Background()

	replies := it.Interpret(ctx, "gasto -12 devolución")
	if len(replies) != 2 {
		t.Fatalf("refund should be recorded, got %+v", replies)
	}
	expenses, err := st.Expenses(ctx)
	if err != nil {
		t.Fatalf("Expenses: %v", err)
	}
	if len(expenses) != 1 || expenses[0].Amount != -12 {
		t.Errorf("persisted refund mismatch: %+v", expenses)
	}
}

func TestExpenseFormatErrors(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)

	for _, line := range []string{"gasto", "gasto abc comida", "gasto 50"} {
		replies := it.Interpret(context.Background(), line)
		if len(replies) != 1 || replies[0].Text != msgExpenseUsage {
			t.Errorf("Interpret(%q): %+v", line, replies)
		}
	}
	if counts := collectionCounts(t, st); counts != [4]int{} {
		t.Errorf("malformed expense commands must not touch the store: %v", counts)
	}
}

func TestExpenseSummary(t *testing.T) {
	t.Parallel()
	it, _ := newTestInterpreter(t)
	ctx := context.Background()

	// Empty summary must not fail.
	replies := it.Interpret(ctx, "gasto resumen")
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want summary + chart", len(replies))
	}
	if !strings.Contains(replies[0].Text, "Total gastado: $0.00") {
		t.Errorf("empty summary text: %q", replies[0].Text)
	}

	it.Interpret(ctx, "gasto 50 comida")
	it.Interpret(ctx, "gasto 30 transporte")

	replies = it.Interpret(ctx, "gasto resumen")
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want summary + chart", len(replies))
	}
	text := replies[0].Text
	if !strings.Contains(text, "Total gastado: $80.00") {
		t.Errorf("summary total: %q", text)
	}
	if !strings.Contains(text, "• comida: $50.00") || !strings.Contains(text, "• transporte: $30.00") {
		t.Errorf("summary breakdown: %q", text)
	}
	if !strings.Contains(text, "Últimas transacciones:") {
		t.Errorf("summary transactions: %q", text)
	}

	chart := replies[1]
	if chart.Type != models.MessageChart || chart.Chart == nil {
		t.Fatalf("second reply should carry a chart: %+v", chart)
	}
	if chart.Chart.Kind != models.ChartExpense || len(chart.Chart.Expense) != 2 {
		t.Errorf("chart payload mismatch: %+v", chart.Chart)
	}
}

func TestWellnessWater(t *testing.T) {
	t.Parallel()
	it, _ := newTestInterpreter(t)
	ctx := context.Background()

	replies := it.Interpret(ctx, "bienestar agua 3")
	if len(replies) != 3 {
		t.Fatalf("got %d replies, want confirmation + chart + tip", len(replies))
	}
	if replies[0].Text != "🚰 Registrado: 3 vasos de agua. ¡Bien hecho!" {
		t.Errorf("unexpected confirmation: %q", replies[0].Text)
	}
	if replies[1].Type != models.MessageChart || replies[1].Chart == nil || replies[1].Chart.Kind != models.ChartWellness {
		t.Errorf("second reply should carry a wellness chart: %+v", replies[1])
	}
	if !strings.HasPrefix(replies[2].Text, "💡 Tip: ") {
		t.Errorf("third reply should be a tip: %q", replies[2].Text)
	}

	// Same-day entries must sum in the chart.
	replies = it.Interpret(ctx, "bienestar agua 2")
	series := replies[1].Chart.Wellness
	if len(series) == 0 {
		t.Fatal("empty water series")
	}
	today := series[len(series)-1]
	if today.Value != 5 {
		t.Errorf("today's glasses = %d, want 5", today.Value)
	}
}

func TestWellnessExercise(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)
	ctx := context.Background()

	replies := it.Interpret(ctx, "bienestar ejercicio correr 5km en el parque")
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want confirmation + tip (no chart)", len(replies))
	}
	if replies[0].Text != "🏃‍♂️ Ejercicio registrado: correr 5km en el parque. ¡Sigue así!" {
		t.Errorf("unexpected confirmation: %q", replies[0].Text)
	}
	for _, m := range replies {
		if m.Chart != nil {
			t.Errorf("exercise replies must not carry charts: %+v", m)
		}
	}

	wellness, err := st.Wellness(ctx)
	if err != nil {
		t.Fatalf("Wellness: %v", err)
	}
	if len(wellness) != 1 || wellness[0].Type != models.WellnessExercise || wellness[0].Details != "correr 5km en el parque" {
		t.Errorf("persisted activity mismatch: %+v", wellness)
	}
}

func TestWellnessErrors(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)

	tests := []struct {
		line string
		want string
	}{
		{"bienestar agua", msgWaterNeedsGlasses},
		{"bienestar agua muchos", msgWaterNeedsGlasses},
		{"bienestar ejercicio", msgExerciseNeedsText},
		{"bienestar dormir 8h", msgWellnessUsage},
		{"bienestar", msgWellnessUsage},
	}
	for _, tt := range tests {
		replies := it.Interpret(context.Background(), tt.line)
		if len(replies) != 1 || replies[0].Text != tt.want {
			t.Errorf("Interpret(%q): %+v, want %q", tt.line, replies, tt.want)
		}
	}
	if counts := collectionCounts(t, st); counts != [4]int{} {
		t.Errorf("malformed wellness commands must not touch the store: %v", counts)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()
	it, _ := newTestInterpreter(t)
	ctx := context.Background()

	it.Interpret(ctx, "gasto 50 comida")
	it.Interpret(ctx, "bienestar agua 4")

	replies := it.Interpret(ctx, "estadisticas gastos")
	if len(replies) != 1 || replies[0].Chart == nil || replies[0].Chart.Kind != models.ChartExpense {
		t.Errorf("estadisticas gastos: %+v", replies)
	}

	replies = it.Interpret(ctx, "estadisticas bienestar")
	if len(replies) != 1 || replies[0].Chart == nil || replies[0].Chart.Kind != models.ChartWellness {
		t.Errorf("estadisticas bienestar: %+v", replies)
	}

	replies = it.Interpret(ctx, "estadisticas sueño")
	if len(replies) != 1 || replies[0].Text != msgStatsUsage {
		t.Errorf("estadisticas sueño: %+v", replies)
	}
}

func TestTips(t *testing.T) {
	t.Parallel()
	it, _ := newTestInterpreter(t)

	for _, line := range []string{"tips", "tips finance", "tips desconocida"} {
		replies := it.Interpret(context.Background(), line)
		if len(replies) != 1 {
			t.Fatalf("Interpret(%q) returned %d messages, want 1", line, len(replies))
		}
		if !strings.HasPrefix(replies[0].Text, "💡 ") || len(replies[0].Text) <= len("💡 ") {
			t.Errorf("Interpret(%q): %q", line, replies[0].Text)
		}
	}
}

type failingDocuments struct{}

func (failingDocuments) Read(context.Context, store.Collection) ([]byte, error) {
	return nil, errors.New("backend unavailable")
}

func (failingDocuments) Write(context.Context, store.Collection, []byte) error {
	return errors.New("backend unavailable")
}

func (failingDocuments) Close() error { return nil }

func TestStoreFailureYieldsApology(t *testing.T) {
	t.Parallel()
	st := store.New(failingDocuments{})
	it := New(st, analytics.NewService(st), tips.NewProvider(), zap.NewNop())

	for _, line := range []string{"tarea listar", "tarea agregar algo", "gasto resumen", "bienestar agua 2"} {
		replies := it.Interpret(context.Background(), line)
		if len(replies) != 1 || replies[0].Text != msgInternalError {
			t.Errorf("Interpret(%q) with failing store: %+v", line, replies)
		}
	}
}

func TestWaterTimestampIsRecent(t *testing.T) {
	t.Parallel()
	it, st := newTestInterpreter(t)
	ctx := context.Background()

	before := time.Now()
	it.Interpret(ctx, "bienestar agua 1")

	wellness, err := st.Wellness(ctx)
	if err != nil {
		t.Fatalf("Wellness: %v", err)
	}
	if len(wellness) != 1 {
		t.Fatalf("got %d activities, want 1", len(wellness))
	}
	if wellness[0].Date.Before(before.Add(-time.Second)) || wellness[0].Date.After(time.Now().Add(time.Second)) {
		t.Errorf("activity date should be server-assigned now, got %v", wellness[0].Date)
	}
}
