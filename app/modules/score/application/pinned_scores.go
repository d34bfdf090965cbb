package scoreservice

import (
	"context"
	"fmt"
	"log/slog"

	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	scoredb "github.com/Black-And-White-Club/pinned-scores/app/modules/score/infrastructure/repositories"
	"go.opentelemetry.io/otel/attribute"
)

// ListPinned returns one page of a user's pinned scores, best pp first, each
// annotated with its computed accuracy and letter grade.
func (s *ScoreService) ListPinned(ctx context.Context, req ListPinnedRequest) ([]GradedScore, error) {
	attrs := []attribute.KeyValue{
		attribute.Int64("user_id", req.UserID),
		attribute.String("mode", req.Mode.String()),
		attribute.String("variant", req.Variant.String()),
		attribute.Int("page", req.Page),
		attribute.Int("limit", req.Limit),
	}

	return withTelemetry(s, ctx, "ListPinned", attrs, func(ctx context.Context) ([]GradedScore, error) {
		if err := validateListRequest(req); err != nil {
			return nil, err
		}

		rows, err := s.repo.GetPinnedScores(ctx, nil, scoredb.PinnedQuery{
			UserID:  req.UserID,
			Mode:    req.Mode,
			Variant: req.Variant,
			Offset:  req.Offset(),
			Limit:   req.Limit,
		})
		if err != nil {
			return nil, err
		}

		graded := make([]GradedScore, 0, len(rows))
		for _, row := range rows {
			graded = append(graded, s.grade(ctx, row))
		}
		return graded, nil
	})
}

func validateListRequest(req ListPinnedRequest) error {
	if !req.Mode.IsValid() {
		return fmt.Errorf("%w: %d", scoredomain.ErrInvalidMode, int(req.Mode))
	}
	if _, err := scoredomain.ParseVariant(int(req.Variant)); err != nil {
		return err
	}
	if req.Page < 1 || req.offsetOverflows() {
		return ErrInvalidPage
	}
	if req.Limit < 0 || req.Limit > MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}

// grade annotates a row. Rows with corrupt counts are listed with a zero rank
// and no letter rather than failing the whole page.
func (s *ScoreService) grade(ctx context.Context, row scoredb.PinnedScore) GradedScore {
	b := row.Breakdown()

	acc, err := scoredomain.ComputeAccuracy(b)
	if err != nil {
		s.logger.WarnContext(ctx, "Cannot compute accuracy for pinned score",
			slog.Int64("score_id", row.ScoreID),
			slog.Any("error", err),
		)
		return GradedScore{PinnedScore: row}
	}
	s.metrics.RecordAccuracy(ctx, b.Mode.String(), acc)

	letter, err := scoredomain.Grade(b, scoredomain.Mods(row.Mods))
	if err != nil {
		letter = ""
	}

	return GradedScore{PinnedScore: row, Rank: acc, Grade: letter}
}
