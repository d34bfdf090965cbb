package userservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	userdb "github.com/Black-And-White-Club/pinned-scores/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinned-scores/internal/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "UserService"

// UserService implements Service.
type UserService struct {
	repo    userdb.Repository
	logger  *slog.Logger
	metrics observability.ServiceMetrics
	tracer  trace.Tracer
}

// NewUserService creates a new UserService.
func NewUserService(
	repo userdb.Repository,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
) *UserService {
	return &UserService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// ResolveUser returns the id of the user named by lookup. A name is resolved
// through username_safe; an explicit id is checked for existence.
func (s *UserService) ResolveUser(ctx context.Context, lookup UserLookup) (id int64, err error) {
	const operationName = "ResolveUser"

	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, serviceName)
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, serviceName, time.Since(start))
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
			span.RecordError(err)
			s.logger.ErrorContext(ctx, "Failed to resolve user", "error", err)
			return
		}
		s.metrics.RecordOperationSuccess(ctx, operationName, serviceName)
	}()

	switch {
	case lookup.Name != nil:
		id, err = s.repo.GetUserIDByName(ctx, nil, *lookup.Name)
		if errors.Is(err, userdb.ErrNotFound) {
			s.logger.InfoContext(ctx, "User name not found", "name", *lookup.Name)
			return 0, ErrUserNotFound
		}
		if err != nil {
			return 0, fmt.Errorf("%s: %w", operationName, err)
		}
		return id, nil

	case lookup.ID != nil:
		exists, err := s.repo.UserExists(ctx, nil, *lookup.ID)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", operationName, err)
		}
		if !exists {
			s.logger.InfoContext(ctx, "User id not found", "user_id", *lookup.ID)
			return 0, ErrUserNotFound
		}
		return *lookup.ID, nil

	default:
		return 0, ErrUserNotFound
	}
}

var _ Service = (*UserService)(nil)
