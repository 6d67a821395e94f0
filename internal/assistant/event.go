package assistant

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/castellanodev/asistente/internal/models"
	"github.com/castellanodev/asistente/internal/tips"
)

const (
	msgEventNeedsFields = "Por favor, proporciona el nombre, fecha y hora del evento (separados por comas)."
	msgEventListEmpty   = "No hay eventos programados."
	msgEventUsage       = `Comando de evento no válido. Usa "evento agregar [nombre], [fecha], [hora]" o "evento listar".`
)

func (it *Interpreter) handleEvent(ctx context.Context, args string) ([]models.Message, error) {
	if details, ok := strings.CutPrefix(args, "agregar "); ok {
		parts := strings.Split(details, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return []models.Message{it.textMessage(msgEventNeedsFields)}, nil
		}
		name, date, hour := parts[0], parts[1], parts[2]

		event := models.Event{
			ID:   uuid.New(),
			Name: name,
			Date: date,
			Time: hour,
		}
		if err := it.store.AddEvent(ctx, event); err != nil {
			return nil, err
		}
		return []models.Message{
			it.textMessage(fmt.Sprintf("📅 Evento agregado: %s el %s a las %s", name, date, hour)),
			it.textMessage("💡 Tip: " + it.tips.Random(tips.TimeManagement)),
		}, nil
	}

	if args == "listar" {
		events, err := it.store.Events(ctx)
		if err != nil {
			return nil, err
		}
		if len(events) == 0 {
			return []models.Message{it.textMessage(msgEventListEmpty)}, nil
		}
		return []models.Message{it.textMessage(renderEventList(events))}, nil
	}

	return []models.Message{it.textMessage(msgEventUsage)}, nil
}

var eventDateLayouts = []string{"2006-01-02", "02/01/2006", "2/1/2006"}

func parseEventDate(s string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// renderEventList sorts events ascending by parsed date. Unparseable dates
// order after parseable ones, by raw string, so listing never fails.
func renderEventList(events []models.Event) string {
	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, oki := parseEventDate(sorted[i].Date)
		dj, okj := parseEventDate(sorted[j].Date)
		switch {
		case oki && okj:
			return di.Before(dj)
		case oki != okj:
			return oki
		default:
			return sorted[i].Date < sorted[j].Date
		}
	})

	entries := make([]string, len(sorted))
	for i, e := range sorted {
		entries[i] = fmt.Sprintf("%d. %s\n   📆 %s ⏰ %s", i+1, e.Name, e.Date, e.Time)
	}
	return "📅 Próximos Eventos:\n\n" + strings.Join(entries, "\n\n")
}
