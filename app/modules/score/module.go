package score

import (
	"context"
	"log/slog"
	"net/http"

	scoreservice "github.com/Black-And-White-Club/pinned-scores/app/modules/score/application"
	scorehandlers "github.com/Black-And-White-Club/pinned-scores/app/modules/score/infrastructure/handlers"
	scoredb "github.com/Black-And-White-Club/pinned-scores/app/modules/score/infrastructure/repositories"
	scorerouter "github.com/Black-And-White-Club/pinned-scores/app/modules/score/infrastructure/router"
	userservice "github.com/Black-And-White-Club/pinned-scores/app/modules/user/application"
	"github.com/Black-And-White-Club/pinned-scores/internal/eventbus"
	"github.com/Black-And-White-Club/pinned-scores/internal/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module wires the pinned score service and its HTTP surface.
type Module struct {
	service  scoreservice.Service
	handlers scorehandlers.Handlers
	logger   *slog.Logger
}

// NewModule creates a new score module. When httpRouter is non-nil the
// /pinned routes are registered on it.
func NewModule(
	ctx context.Context,
	db *bun.DB,
	publisher eventbus.Publisher,
	users userservice.Service,
	requireToken func(http.Handler) http.Handler,
	httpRouter chi.Router,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
	middlewares ...func(http.Handler) http.Handler,
) *Module {
	logger.InfoContext(ctx, "Initializing score module")

	repo := scoredb.NewRepository(db)
	service := scoreservice.NewScoreService(repo, publisher, logger, metrics, tracer, db)
	handlers := scorehandlers.NewScoreHandlers(service, users, logger, tracer)

	if httpRouter != nil {
		scorerouter.RegisterRoutes(httpRouter, handlers, requireToken, middlewares...)
	}

	return &Module{
		service:  service,
		handlers: handlers,
		logger:   logger,
	}
}

// GetService returns the score service for use by other components.
func (m *Module) GetService() scoreservice.Service {
	return m.service
}
