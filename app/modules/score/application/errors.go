package scoreservice

import "errors"

// Domain errors for the score service.
// These are normal outcomes that handlers turn into 4xx responses.
var (
	// ErrScoreNotFound indicates the score is absent from the variant table or owned by someone else.
	ErrScoreNotFound = errors.New("score not found")

	// ErrInvalidPage indicates a page number below 1, or one so large that
	// its row offset does not fit in an int.
	ErrInvalidPage = errors.New("page out of range")

	// ErrInvalidLimit indicates a page size outside 0..MaxLimit.
	ErrInvalidLimit = errors.New("limit must be between 0 and 100")
)
