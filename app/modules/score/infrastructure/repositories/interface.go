package scoredb

import (
	"context"

	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	"github.com/uptrace/bun"
)

// Repository defines the contract for pinned score persistence.
// All methods accept a bun.IDB; a nil db falls back to the repository's connection.
// A variant outside vanilla, relax and autopilot is rejected with
// scoredomain.ErrInvalidVariant before any query runs.
type Repository interface {
	// GetPinnedScores returns one page of pinned scores ordered by pp descending.
	GetPinnedScores(ctx context.Context, db bun.IDB, q PinnedQuery) ([]PinnedScore, error)

	// ScoreExists reports whether scoreID exists in the variant table and belongs to userID.
	ScoreExists(ctx context.Context, db bun.IDB, variant scoredomain.Variant, scoreID, userID int64) (bool, error)

	// SetPinned sets or clears the pinned flag of a score.
	SetPinned(ctx context.Context, db bun.IDB, variant scoredomain.Variant, scoreID int64, pinned bool) error
}
