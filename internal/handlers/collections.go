package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/castellanodev/asistente/internal/store"
)

// CollectionsHandler exposes list views over the stored collections plus the
// task completion toggle. Everything else mutates through chat commands.
type CollectionsHandler struct {
	store  store.Store
	logger *zap.Logger
}

// NewCollectionsHandler creates a new collections handler
func NewCollectionsHandler(st store.Store, zapLogger *zap.Logger) *CollectionsHandler {
	return &CollectionsHandler{store: st, logger: zapLogger}
}

// RegisterRoutes registers the collection list routes
func (h *CollectionsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/tasks", h.ListTasks).Methods("GET")
	r.HandleFunc("/tasks/{id}/completed", h.SetTaskCompleted).Methods("PATCH")
	r.HandleFunc("/events", h.ListEvents).Methods("GET")
	r.HandleFunc("/expenses", h.ListExpenses).Methods("GET")
	r.HandleFunc("/wellness", h.ListWellness).Methods("GET")
}

// ListTasks returns all tasks in insertion order.
func (h *CollectionsHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.Tasks(r.Context())
	if err != nil {
		h.respondStoreError(w, "tasks", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// SetTaskCompleted toggles the completion flag of one task, mirroring the
// checkbox in the task list view.
func (h *CollectionsHandler) SetTaskCompleted(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid task id")
		return
	}

	var req struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	task, err := h.store.SetTaskCompleted(r.Context(), id, req.Completed)
	if errors.Is(err, store.ErrNotFound) {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Task not found")
		return
	}
	if err != nil {
		h.respondStoreError(w, "tasks", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"task": task})
}

// ListEvents returns all events in insertion order.
func (h *CollectionsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.Events(r.Context())
	if err != nil {
		h.respondStoreError(w, "events", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"events": events})
}

// ListExpenses returns all expenses in insertion order.
func (h *CollectionsHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.store.Expenses(r.Context())
	if err != nil {
		h.respondStoreError(w, "expenses", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"expenses": expenses})
}

// ListWellness returns all wellness activities in insertion order.
func (h *CollectionsHandler) ListWellness(w http.ResponseWriter, r *http.Request) {
	activities, err := h.store.Wellness(r.Context())
	if err != nil {
		h.respondStoreError(w, "wellness", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"wellness": activities})
}

func (h *CollectionsHandler) respondStoreError(w http.ResponseWriter, collection string, err error) {
	h.logger.Error("collection_read_failed",
		zap.String("collection", collection),
		zap.Error(err),
	)
	respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to read collection")
}
