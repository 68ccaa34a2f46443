package handler

import (
	"context"
	"net/http"

	"storefront-admin/internal/health"

	"github.com/rs/zerolog"
)

// HealthChecker runs the backend probes.
type HealthChecker interface {
	Check(ctx context.Context) (int, health.Report)
}

// HealthHandler serves GET /health.
type HealthHandler struct {
	checker HealthChecker
	logger  zerolog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(checker HealthChecker, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger.With().Str("handler", "health").Logger(),
	}
}

// Check handles /health. Only GET is allowed.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	status, report := h.checker.Check(r.Context())
	if status != http.StatusOK {
		h.logger.Warn().Int("status", status).Str("error", report.Error).Msg(report.Message)
	}

	writeJSON(w, status, report)
}
