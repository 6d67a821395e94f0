package assistant

import (
	"context"

	"github.com/castellanodev/asistente/internal/models"
)

const msgStatsUsage = `Tipo de estadística no válido. Usa "estadisticas gastos" o "estadisticas bienestar".`

// handleStats surfaces chart-only views. The wellness view covers water
// intake only.
func (it *Interpreter) handleStats(ctx context.Context, args string) ([]models.Message, error) {
	switch args {
	case "gastos":
		ea, err := it.analytics.ExpenseAnalytics(ctx)
		if err != nil {
			return nil, err
		}
		chart := models.NewExpenseChart(expenseChartSeries(ea))
		return []models.Message{it.chartMessage("📊 Estadísticas de Gastos", chart)}, nil

	case "bienestar":
		logs, err := it.analytics.WaterIntakeStats(ctx)
		if err != nil {
			return nil, err
		}
		chart := models.NewWellnessChart(waterChartSeries(logs))
		return []models.Message{it.chartMessage("📊 Estadísticas de Bienestar", chart)}, nil

	default:
		return []models.Message{it.textMessage(msgStatsUsage)}, nil
	}
}
