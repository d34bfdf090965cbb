package scoreservice

import (
	"context"
	"math"

	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	scoredb "github.com/Black-And-White-Club/pinned-scores/app/modules/score/infrastructure/repositories"
)

// Listing bounds.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ListPinnedRequest selects one page of a user's pinned scores. Page is 1-based.
type ListPinnedRequest struct {
	UserID  int64
	Mode    scoredomain.Mode
	Variant scoredomain.Variant
	Page    int
	Limit   int
}

// Offset returns the number of rows skipped before the page. It saturates at
// math.MaxInt instead of wrapping.
func (r ListPinnedRequest) Offset() int {
	if r.Page <= 1 || r.Limit <= 0 {
		return 0
	}
	if r.offsetOverflows() {
		return math.MaxInt
	}
	return r.Limit * (r.Page - 1)
}

func (r ListPinnedRequest) offsetOverflows() bool {
	return r.Limit > 0 && r.Page > 1 && r.Page-1 > math.MaxInt/r.Limit
}

// GradedScore is a pinned score annotated with its computed accuracy (Rank)
// and letter grade.
type GradedScore struct {
	scoredb.PinnedScore
	Rank  float64
	Grade scoredomain.Letter
}

// PinRequest identifies the score a user wants to pin or unpin.
type PinRequest struct {
	UserID  int64
	ScoreID int64
	Variant scoredomain.Variant
}

// Service defines the pinned score operations.
type Service interface {
	ListPinned(ctx context.Context, req ListPinnedRequest) ([]GradedScore, error)
	Pin(ctx context.Context, req PinRequest) error
	Unpin(ctx context.Context, req PinRequest) error
}
