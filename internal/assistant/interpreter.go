// Package assistant implements the chat command interpreter: one raw input
// line in, an ordered sequence of reply messages out.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/castellanodev/asistente/internal/analytics"
	"github.com/castellanodev/asistente/internal/models"
	"github.com/castellanodev/asistente/internal/store"
	"github.com/castellanodev/asistente/internal/tips"
)

const (
	msgUnknownCommand = `Comando no reconocido. Escribe "ayuda" para ver los comandos disponibles.`
	msgInternalError  = "Ha ocurrido un error al procesar el comando. Por favor, intenta de nuevo."
)

// Interpreter parses command lines, applies them to the store and shapes the
// replies. It never lets an error escape: any failure becomes a single
// user-facing message.
type Interpreter struct {
	store     store.Store
	analytics *analytics.Service
	tips      *tips.Provider
	logger    *zap.Logger
	now       func() time.Time
}

// New creates an interpreter with its collaborators.
func New(st store.Store, an *analytics.Service, tp *tips.Provider, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		store:     st,
		analytics: an,
		tips:      tp,
		logger:    logger,
		now:       time.Now,
	}
}

// Interpret runs one command line to completion and returns the assistant
// replies in order. The whole line is lowercased before parsing, so stored
// text is lowercase as well.
func (it *Interpreter) Interpret(ctx context.Context, rawLine string) []models.Message {
	line := strings.ToLower(strings.TrimSpace(rawLine))
	if line == "ayuda" {
		return []models.Message{it.textMessage(helpText)}
	}

	action, args, _ := strings.Cut(line, " ")

	replies, err := it.dispatch(ctx, action, args)
	if err != nil {
		it.logger.Error("command_failed",
			zap.String("action", action),
			zap.Error(err),
		)
		return []models.Message{it.textMessage(msgInternalError)}
	}
	return replies
}

func (it *Interpreter) dispatch(ctx context.Context, action, args string) (replies []models.Message, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s handler: %v", action, r)
		}
	}()

	switch action {
	case "tarea":
		return it.handleTask(ctx, args)
	case "evento":
		return it.handleEvent(ctx, args)
	case "gasto":
		return it.handleExpense(ctx, args)
	case "bienestar":
		return it.handleWellness(ctx, args)
	case "estadisticas":
		return it.handleStats(ctx, args)
	case "tips":
		return it.handleTips(args)
	default:
		return []models.Message{it.textMessage(msgUnknownCommand)}, nil
	}
}

func (it *Interpreter) textMessage(text string) models.Message {
	return models.Message{
		ID:        uuid.New(),
		Text:      text,
		Sender:    models.SenderAssistant,
		Timestamp: it.now(),
		Type:      models.MessageText,
	}
}

func (it *Interpreter) chartMessage(text string, chart *models.ChartData) models.Message {
	m := it.textMessage(text)
	m.Type = models.MessageChart
	m.Chart = chart
	return m
}

func (it *Interpreter) handleTips(args string) ([]models.Message, error) {
	category := tips.Category(args)
	if args == "" {
		category = tips.General
	}
	return []models.Message{it.textMessage("💡 " + it.tips.Random(category))}, nil
}
