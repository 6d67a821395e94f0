package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/castellanodev/asistente/internal/analytics"
)

// AnalyticsHandler exposes the derived statistics used by dashboards.
type AnalyticsHandler struct {
	service *analytics.Service
	logger  *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(svc *analytics.Service, zapLogger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc, logger: zapLogger}
}

// RegisterRoutes registers analytics routes
func (h *AnalyticsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/analytics/expenses", h.ExpenseAnalytics).Methods("GET")
	r.HandleFunc("/analytics/water", h.WaterIntake).Methods("GET")
	r.HandleFunc("/analytics/exercise", h.Exercise).Methods("GET")
}

// ExpenseAnalytics returns totals, category breakdown, monthly trend and
// the most recent transactions.
func (h *AnalyticsHandler) ExpenseAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.ExpenseAnalytics(r.Context())
	if err != nil {
		h.respondAnalyticsError(w, "expenses", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// WaterIntake returns one entry per day of the current month with glasses
// drunk against the daily target.
func (h *AnalyticsHandler) WaterIntake(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.WaterIntakeStats(r.Context())
	if err != nil {
		h.respondAnalyticsError(w, "water", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"days": logs})
}

// Exercise returns the recorded exercise sessions with their durations.
func (h *AnalyticsHandler) Exercise(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ExerciseStats(r.Context())
	if err != nil {
		h.respondAnalyticsError(w, "exercise", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"sessions": entries})
}

func (h *AnalyticsHandler) respondAnalyticsError(w http.ResponseWriter, kind string, err error) {
	h.logger.Error("analytics_computation_failed",
		zap.String("kind", kind),
		zap.Error(err),
	)
	respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to compute analytics")
}
