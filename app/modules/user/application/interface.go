package userservice

import "context"

// UserLookup identifies a user by display name or numeric id. Name takes
// precedence when both are set.
type UserLookup struct {
	Name *string
	ID   *int64
}

// Service resolves users for the other modules.
type Service interface {
	ResolveUser(ctx context.Context, lookup UserLookup) (int64, error)
}
