package user

import (
	"context"
	"log/slog"

	userservice "github.com/Black-And-White-Club/pinned-scores/app/modules/user/application"
	userdb "github.com/Black-And-White-Club/pinned-scores/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinned-scores/internal/observability"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module wires user resolution.
type Module struct {
	service userservice.Service
}

// NewModule creates a new user module backed by db.
func NewModule(
	ctx context.Context,
	db bun.IDB,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
) *Module {
	logger.InfoContext(ctx, "Initializing user module")

	repo := userdb.NewRepository(db)
	return &Module{
		service: userservice.NewUserService(repo, logger, metrics, tracer),
	}
}

// GetService returns the user service for use by other modules.
func (m *Module) GetService() userservice.Service {
	return m.service
}
