package scoreevents

import "time"

// Pin state subjects. Consumers (profile caches, the website) listen on these
// to refresh a user's pinned list.
const (
	ScorePinnedV1   = "score.pinned.v1"
	ScoreUnpinnedV1 = "score.unpinned.v1"
)

// ScorePinStateChangedPayloadV1 is published after a pin or unpin commits.
type ScorePinStateChangedPayloadV1 struct {
	ScoreID    int64     `json:"score_id"`
	UserID     int64     `json:"user_id"`
	Relax      int       `json:"rx"`
	Pinned     bool      `json:"pinned"`
	OccurredAt time.Time `json:"occurred_at"`
}
