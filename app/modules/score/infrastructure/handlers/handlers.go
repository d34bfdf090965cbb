package scorehandlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	scoreservice "github.com/Black-And-White-Club/pinned-scores/app/modules/score/application"
	userservice "github.com/Black-And-White-Club/pinned-scores/app/modules/user/application"
	"go.opentelemetry.io/otel/trace"
)

// ScoreHandlers implements Handlers.
type ScoreHandlers struct {
	service scoreservice.Service
	users   userservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewScoreHandlers creates a new ScoreHandlers instance.
func NewScoreHandlers(
	service scoreservice.Service,
	users userservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &ScoreHandlers{
		service: service,
		users:   users,
		logger:  logger,
		tracer:  tracer,
	}
}

// writeJSON writes v as the response body. Failures after the header is sent
// can only be logged.
func (h *ScoreHandlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("Failed to write response", "error", err, "status", status)
	}
}

func (h *ScoreHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func (h *ScoreHandlers) writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		h.logger.Warn("Failed to write response", "error", err, "status", status)
	}
}
