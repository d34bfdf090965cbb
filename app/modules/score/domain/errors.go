package scoredomain

import "errors"

var (
	// ErrInvalidMode is returned when a breakdown or request names a game mode
	// outside Standard, Taiko, Catch and Mania.
	ErrInvalidMode = errors.New("invalid game mode")

	// ErrInvalidVariant is returned when the relax selector is not 0, 1 or 2.
	ErrInvalidVariant = errors.New("invalid score variant")

	// ErrNegativeCount is returned when any hit count in a breakdown is below zero.
	ErrNegativeCount = errors.New("hit counts must be non-negative")
)
