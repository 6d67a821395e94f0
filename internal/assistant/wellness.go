package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/castellanodev/asistente/internal/models"
	"github.com/castellanodev/asistente/internal/tips"
)

const (
	msgWaterNeedsGlasses  = "Por favor, especifica el número de vasos de agua."
	msgExerciseNeedsText  = "Por favor, describe tu actividad física."
	msgWellnessUsage      = `Tipo de actividad no válido. Usa "bienestar agua [vasos]" o "bienestar ejercicio [descripción]".`
	waterChartDateLayout  = "02/01"
	waterStoredDateLayout = "2006-01-02"
)

func (it *Interpreter) handleWellness(ctx context.Context, args string) ([]models.Message, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return []models.Message{it.textMessage(msgWellnessUsage)}, nil
	}

	switch fields[0] {
	case "agua":
		return it.logWater(ctx, fields[1:])
	case "ejercicio":
		return it.logExercise(ctx, strings.Join(fields[1:], " "))
	default:
		return []models.Message{it.textMessage(msgWellnessUsage)}, nil
	}
}

func (it *Interpreter) logWater(ctx context.Context, details []string) ([]models.Message, error) {
	if len(details) == 0 {
		return []models.Message{it.textMessage(msgWaterNeedsGlasses)}, nil
	}
	glasses, err := strconv.Atoi(details[0])
	if err != nil {
		return []models.Message{it.textMessage(msgWaterNeedsGlasses)}, nil
	}

	activity := models.WellnessActivity{
		ID:    uuid.New(),
		Type:  models.WellnessWater,
		Value: glasses,
		Date:  it.now(),
	}
	if err := it.store.AddWellness(ctx, activity); err != nil {
		return nil, err
	}

	logs, err := it.analytics.WaterIntakeStats(ctx)
	if err != nil {
		return nil, err
	}

	return []models.Message{
		it.textMessage(fmt.Sprintf("🚰 Registrado: %d vasos de agua. ¡Bien hecho!", glasses)),
		it.chartMessage("Consumo de agua esta semana:", models.NewWellnessChart(waterChartSeries(logs))),
		it.textMessage("💡 Tip: " + it.tips.Random(tips.Hydration)),
	}, nil
}

// logExercise records the activity without attaching a chart: exercise
// statistics exist but are only exposed through the analytics API.
func (it *Interpreter) logExercise(ctx context.Context, exercise string) ([]models.Message, error) {
	if exercise == "" {
		return []models.Message{it.textMessage(msgExerciseNeedsText)}, nil
	}

	activity := models.WellnessActivity{
		ID:      uuid.New(),
		Type:    models.WellnessExercise,
		Details: exercise,
		Date:    it.now(),
	}
	if err := it.store.AddWellness(ctx, activity); err != nil {
		return nil, err
	}

	return []models.Message{
		it.textMessage(fmt.Sprintf("🏃‍♂️ Ejercicio registrado: %s. ¡Sigue así!", exercise)),
		it.textMessage("💡 Tip de ejercicio: " + it.tips.Random(tips.Exercise)),
	}, nil
}

func waterChartSeries(logs []models.DailyWaterLog) []models.WellnessPoint {
	series := make([]models.WellnessPoint, len(logs))
	for i, l := range logs {
		label := l.Date
		if day, err := time.Parse(waterStoredDateLayout, l.Date); err == nil {
			label = day.Format(waterChartDateLayout)
		}
		series[i] = models.WellnessPoint{Label: label, Value: l.Glasses}
	}
	return series
}
