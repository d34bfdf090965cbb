package scoreservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	scoredb "github.com/Black-And-White-Club/pinned-scores/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinned-scores/internal/eventbus"
	"github.com/Black-And-White-Club/pinned-scores/internal/observability"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "ScoreService"

// ScoreService implements the Service interface.
type ScoreService struct {
	repo      scoredb.Repository
	publisher eventbus.Publisher
	logger    *slog.Logger
	metrics   observability.ServiceMetrics
	tracer    trace.Tracer
	db        *bun.DB
	now       func() time.Time
}

// NewScoreService creates a new ScoreService. db may be nil, in which case
// operations run without a transaction.
func NewScoreService(
	repo scoredb.Repository,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *ScoreService {
	return &ScoreService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		db:        db,
		now:       time.Now,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[T any] func(ctx context.Context) (T, error)

// isDomainError reports whether err is an expected business outcome rather
// than an infrastructure failure.
func isDomainError(err error) bool {
	return errors.Is(err, ErrScoreNotFound) ||
		errors.Is(err, ErrInvalidPage) ||
		errors.Is(err, ErrInvalidLimit) ||
		errors.Is(err, scoredomain.ErrInvalidMode) ||
		errors.Is(err, scoredomain.ErrInvalidVariant)
}

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[T any](
	s *ScoreService,
	ctx context.Context,
	operationName string,
	attrs []attribute.KeyValue,
	op operationFunc[T],
) (result T, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		append([]attribute.KeyValue{attribute.String("operation", operationName)}, attrs...)...,
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, serviceName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, serviceName, time.Since(startTime))
	}()

	logAttrs := make([]any, 0, len(attrs)+1)
	logAttrs = append(logAttrs, slog.String("operation", operationName))
	for _, a := range attrs {
		logAttrs = append(logAttrs, slog.Any(string(a.Key), a.Value.AsInterface()))
	}

	s.logger.InfoContext(ctx, operationName+" triggered", logAttrs...)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered", append(logAttrs, slog.Any("error", err))...)
			s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
			span.RecordError(err)
			var zero T
			result = zero
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		if isDomainError(err) {
			s.logger.WarnContext(ctx, "Operation returned failure result", append(logAttrs, slog.String("reason", err.Error()))...)
			s.metrics.RecordOperationSuccess(ctx, operationName, serviceName)
			return result, wrappedErr
		}
		s.logger.ErrorContext(ctx, "Operation failed with error", append(logAttrs, slog.Any("error", wrappedErr))...)
		s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	s.logger.InfoContext(ctx, operationName+" completed successfully", logAttrs...)
	s.metrics.RecordOperationSuccess(ctx, operationName, serviceName)
	return result, nil
}

// runInTx ensures the operation runs within a transaction.
func runInTx[T any](
	s *ScoreService,
	ctx context.Context,
	fn func(ctx context.Context, db bun.IDB) (T, error),
) (T, error) {
	if s.db == nil {
		return fn(ctx, nil)
	}

	var result T
	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		return txErr
	})

	return result, err
}

// publish sends an event and logs, but never returns, a delivery failure.
func (s *ScoreService) publish(ctx context.Context, subject string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, subject, payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish event",
			slog.String("subject", subject),
			slog.Any("error", err),
		)
	}
}

var _ Service = (*ScoreService)(nil)
