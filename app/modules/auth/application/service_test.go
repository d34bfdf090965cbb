package authservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	authdomain "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/domain"
	authdb "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinned-scores/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestAuthService_Authenticate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")

	tests := []struct {
		name      string
		token     string
		setupRepo func(*authdb.FakeRepository)
		wantID    int64
		wantErr   error
		anyErr    bool
	}{
		{
			name:  "valid token",
			token: "secret",
			setupRepo: func(r *authdb.FakeRepository) {
				r.GetUserIDByTokenHashFn = func(_ context.Context, _ bun.IDB, hash string) (int64, error) {
					assert.Equal(t, authdomain.HashToken("secret"), hash)
					return 1000, nil
				}
			},
			wantID: 1000,
		},
		{
			name:  "empty token",
			token: "",
			setupRepo: func(r *authdb.FakeRepository) {
				r.GetUserIDByTokenHashFn = func(context.Context, bun.IDB, string) (int64, error) {
					t.Error("repository should not be called for an empty token")
					return 0, nil
				}
			},
			wantErr: ErrMissingToken,
		},
		{
			name:    "unknown token",
			token:   "nope",
			wantErr: ErrInvalidToken,
		},
		{
			name:  "repository failure",
			token: "secret",
			setupRepo: func(r *authdb.FakeRepository) {
				r.GetUserIDByTokenHashFn = func(context.Context, bun.IDB, string) (int64, error) {
					return 0, errors.New("connection reset")
				}
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &authdb.FakeRepository{}
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}
			svc := NewAuthService(repo, logger, observability.NoOpMetrics{}, tracer)

			id, err := svc.Authenticate(context.Background(), tt.token)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrInvalidToken)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
