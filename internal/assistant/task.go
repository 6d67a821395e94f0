package assistant

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/castellanodev/asistente/internal/models"
	"github.com/castellanodev/asistente/internal/tips"
)

const (
	msgTaskNeedsDescription = "Por favor, proporciona una descripción para la tarea."
	msgTaskListEmpty        = "No hay tareas pendientes."
	msgTaskUsage            = `Comando de tarea no válido. Usa "tarea agregar [descripción]" o "tarea listar".`
)

func (it *Interpreter) handleTask(ctx context.Context, args string) ([]models.Message, error) {
	if description, ok := strings.CutPrefix(args, "agregar "); ok {
		description = strings.TrimSpace(description)
		if description == "" {
			return []models.Message{it.textMessage(msgTaskNeedsDescription)}, nil
		}

		task := models.Task{
			ID:          uuid.New(),
			Description: description,
			Date:        it.now(),
		}
		if err := it.store.AddTask(ctx, task); err != nil {
			return nil, err
		}
		return []models.Message{
			it.textMessage("✅ Tarea agregada: " + description),
			it.textMessage("💡 Tip: " + it.tips.Random(tips.Productivity)),
		}, nil
	}

	if args == "listar" {
		tasks, err := it.store.Tasks(ctx)
		if err != nil {
			return nil, err
		}
		if len(tasks) == 0 {
			return []models.Message{it.textMessage(msgTaskListEmpty)}, nil
		}
		return []models.Message{it.textMessage(renderTaskList(tasks))}, nil
	}

	return []models.Message{it.textMessage(msgTaskUsage)}, nil
}

func renderTaskList(tasks []models.Task) string {
	var pending, completed []models.Task
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Tareas Pendientes (%d):\n", len(pending))
	b.WriteString(enumerateTasks(pending))
	fmt.Fprintf(&b, "\n\n✅ Tareas Completadas (%d):\n", len(completed))
	b.WriteString(enumerateTasks(completed))

	progress := math.Round(float64(len(completed)) / float64(len(tasks)) * 100)
	fmt.Fprintf(&b, "\n\nProgreso: %.0f%% completado", progress)
	return b.String()
}

func enumerateTasks(tasks []models.Task) string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = fmt.Sprintf("%d. %s", i+1, t.Description)
	}
	return strings.Join(lines, "\n")
}
