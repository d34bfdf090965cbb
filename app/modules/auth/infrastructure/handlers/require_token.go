package authhandlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	authservice "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/domain"
)

type contextKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserIDFromContext returns the user id stored by RequireToken.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(contextKey{}).(int64)
	return id, ok
}

// RequireToken authenticates the request token and stores the owner in the
// request context. Missing and unknown tokens are answered with 400 and a
// plain-text reason; lookup failures with 500.
func RequireToken(service authservice.Service, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			raw, _ := authdomain.ExtractToken(r)

			userID, err := service.Authenticate(ctx, raw)
			switch {
			case errors.Is(err, authservice.ErrMissingToken), errors.Is(err, authservice.ErrInvalidToken):
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			case err != nil:
				logger.ErrorContext(ctx, "Authentication failed", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}
