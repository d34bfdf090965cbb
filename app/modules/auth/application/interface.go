package authservice

import "context"

// Service authenticates legacy API tokens.
type Service interface {
	// Authenticate returns the id of the user owning rawToken.
	Authenticate(ctx context.Context, rawToken string) (int64, error)
}
