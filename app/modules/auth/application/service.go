package authservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	authdomain "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/domain"
	authdb "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinned-scores/internal/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "AuthService"

// AuthService implements Service.
type AuthService struct {
	repo    authdb.Repository
	logger  *slog.Logger
	metrics observability.ServiceMetrics
	tracer  trace.Tracer
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	repo authdb.Repository,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
) *AuthService {
	return &AuthService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// Authenticate hashes rawToken and resolves its owner.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (userID int64, err error) {
	const operationName = "Authenticate"

	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, serviceName)
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, serviceName, time.Since(start))
		switch {
		case err == nil:
			s.metrics.RecordOperationSuccess(ctx, operationName, serviceName)
		case errors.Is(err, ErrMissingToken), errors.Is(err, ErrInvalidToken):
			s.logger.WarnContext(ctx, "Token rejected", "reason", err.Error())
		default:
			s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
			span.RecordError(err)
			s.logger.ErrorContext(ctx, "Token lookup failed", "error", err)
		}
	}()

	if rawToken == "" {
		return 0, ErrMissingToken
	}

	userID, err = s.repo.GetUserIDByTokenHash(ctx, nil, authdomain.HashToken(rawToken))
	if errors.Is(err, authdb.ErrNotFound) {
		return 0, ErrInvalidToken
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", operationName, err)
	}

	span.SetAttributes(attribute.Int64("user_id", userID))
	return userID, nil
}

var _ Service = (*AuthService)(nil)
