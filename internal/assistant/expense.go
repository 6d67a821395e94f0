package assistant

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/castellanodev/asistente/internal/models"
	"github.com/castellanodev/asistente/internal/tips"
)

const msgExpenseUsage = `Formato incorrecto. Usa "gasto [monto] [categoría]" o "gasto resumen".`

func (it *Interpreter) handleExpense(ctx context.Context, args string) ([]models.Message, error) {
	if args == "resumen" {
		return it.expenseSummary(ctx)
	}

	fields := strings.Fields(args)
	if len(fields) < 2 {
		return []models.Message{it.textMessage(msgExpenseUsage)}, nil
	}
	amountToken := fields[0]
	category := strings.Join(fields[1:], " ")

	// Any numeric amount is accepted, zero and negative included: negative
	// entries model refunds.
	amount, err := strconv.ParseFloat(amountToken, 64)
	if err != nil {
		return []models.Message{it.textMessage(msgExpenseUsage)}, nil
	}

	expense := models.Expense{
		ID:       uuid.New(),
		Amount:   amount,
		Category: category,
		Date:     it.now(),
	}
	if err := it.store.AddExpense(ctx, expense); err != nil {
		return nil, err
	}
	return []models.Message{
		it.textMessage(fmt.Sprintf("💸 Gasto registrado: $%s en %s", amountToken, category)),
		it.textMessage("💡 Tip financiero: " + it.tips.Random(tips.Finance)),
	}, nil
}

func (it *Interpreter) expenseSummary(ctx context.Context) ([]models.Message, error) {
	ea, err := it.analytics.ExpenseAnalytics(ctx)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💰 Resumen de Gastos\n\n")
	fmt.Fprintf(&b, "Total gastado: $%.2f\n\n", ea.TotalSpent)
	b.WriteString("Por categoría:\n")
	for _, p := range expenseChartSeries(ea) {
		fmt.Fprintf(&b, "• %s: $%.2f\n", p.Label, p.Amount)
	}
	b.WriteString("\nÚltimas transacciones:\n")
	for _, t := range ea.RecentTransactions {
		fmt.Fprintf(&b, "• $%.2f en %s (%s)\n", t.Amount, t.Category, t.Date.Format("02/01/2006"))
	}

	return []models.Message{
		it.textMessage(strings.TrimRight(b.String(), "\n")),
		it.chartMessage("Distribución de gastos por categoría:", models.NewExpenseChart(expenseChartSeries(ea))),
	}, nil
}

// expenseChartSeries flattens the by-category map into a stable,
// alphabetically ordered series.
func expenseChartSeries(ea models.ExpenseAnalytics) []models.ExpensePoint {
	labels := make([]string, 0, len(ea.ByCategory))
	for label := range ea.ByCategory {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	series := make([]models.ExpensePoint, len(labels))
	for i, label := range labels {
		series[i] = models.ExpensePoint{Label: label, Amount: ea.ByCategory[label]}
	}
	return series
}
