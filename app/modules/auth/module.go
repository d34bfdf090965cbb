package auth

import (
	"context"
	"log/slog"
	"net/http"

	authservice "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/application"
	authhandlers "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/infrastructure/handlers"
	authdb "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinned-scores/internal/observability"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module wires token authentication.
type Module struct {
	service authservice.Service
	logger  *slog.Logger
}

// NewModule creates a new auth module backed by db.
func NewModule(
	ctx context.Context,
	db bun.IDB,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
) *Module {
	logger.InfoContext(ctx, "Initializing auth module")

	repo := authdb.NewRepository(db)
	service := authservice.NewAuthService(repo, logger, metrics, tracer)

	return &Module{
		service: service,
		logger:  logger,
	}
}

// GetService returns the auth service for use by other modules.
func (m *Module) GetService() authservice.Service {
	return m.service
}

// RequireToken returns middleware that rejects requests without a valid token.
func (m *Module) RequireToken() func(http.Handler) http.Handler {
	return authhandlers.RequireToken(m.service, m.logger)
}
