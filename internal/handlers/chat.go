package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/castellanodev/asistente/internal/assistant"
	"github.com/castellanodev/asistente/internal/logger"
	"github.com/castellanodev/asistente/internal/validation"
)

// ChatHandler runs chat commands through the interpreter.
type ChatHandler struct {
	interpreter *assistant.Interpreter
	logger      *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(it *assistant.Interpreter, zapLogger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		interpreter: it,
		logger:      zapLogger,
	}
}

// RegisterRoutes registers chat routes
func (h *ChatHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/chat/command", h.RunCommand).Methods("POST")
}

// CommandRequest represents one chat command from the client
type CommandRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

// RunCommand executes a single command line and returns the assistant
// replies in order.
func (h *ChatHandler) RunCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	if err := validation.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrors {
				respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Validation failed: %s", fieldError.Error()))
				return
			}
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Validation failed")
		return
	}

	text := validation.SanitizeText(req.Message)

	h.logger.Debug("chat_command_received",
		zap.String("command", logger.SanitizeCommand(text)),
	)

	replies := h.interpreter.Interpret(r.Context(), text)

	respondJSON(w, http.StatusOK, map[string]any{
		"messages": replies,
	})
}
