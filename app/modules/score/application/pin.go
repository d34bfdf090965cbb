package scoreservice

import (
	"context"
	"errors"

	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	scoreevents "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain/events"
	scoredb "github.com/Black-And-White-Club/pinned-scores/app/modules/score/infrastructure/repositories"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
)

// Pin marks a score owned by req.UserID as pinned.
func (s *ScoreService) Pin(ctx context.Context, req PinRequest) error {
	return s.setPinned(ctx, "Pin", req, true)
}

// Unpin clears the pinned flag of a score owned by req.UserID.
func (s *ScoreService) Unpin(ctx context.Context, req PinRequest) error {
	return s.setPinned(ctx, "Unpin", req, false)
}

func (s *ScoreService) setPinned(ctx context.Context, operationName string, req PinRequest, pinned bool) error {
	attrs := []attribute.KeyValue{
		attribute.Int64("user_id", req.UserID),
		attribute.Int64("score_id", req.ScoreID),
		attribute.String("variant", req.Variant.String()),
	}

	_, err := withTelemetry(s, ctx, operationName, attrs, func(ctx context.Context) (struct{}, error) {
		if _, err := scoredomain.ParseVariant(int(req.Variant)); err != nil {
			return struct{}{}, err
		}

		_, err := runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (struct{}, error) {
			exists, err := s.repo.ScoreExists(ctx, db, req.Variant, req.ScoreID, req.UserID)
			if err != nil {
				return struct{}{}, err
			}
			if !exists {
				return struct{}{}, ErrScoreNotFound
			}

			if err := s.repo.SetPinned(ctx, db, req.Variant, req.ScoreID, pinned); err != nil {
				if errors.Is(err, scoredb.ErrNotFound) {
					return struct{}{}, ErrScoreNotFound
				}
				return struct{}{}, err
			}
			return struct{}{}, nil
		})
		if err != nil {
			return struct{}{}, err
		}

		subject := scoreevents.ScoreUnpinnedV1
		if pinned {
			subject = scoreevents.ScorePinnedV1
		}
		s.publish(ctx, subject, scoreevents.ScorePinStateChangedPayloadV1{
			ScoreID:    req.ScoreID,
			UserID:     req.UserID,
			Relax:      int(req.Variant),
			Pinned:     pinned,
			OccurredAt: s.now().UTC(),
		})
		return struct{}{}, nil
	})
	return err
}
