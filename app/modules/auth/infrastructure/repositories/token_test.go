package authdb

import (
	"context"
	"testing"

	"github.com/Black-And-White-Club/pinned-scores/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpl_GetUserIDByTokenHash(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewSQLiteDB(t)
	gen := testutils.NewTestDataGenerator(21)
	repo := NewRepository(db)

	_, hash := gen.RawToken()
	testutils.InsertToken(t, db, &testutils.TokenRow{UserID: 1009, Token: hash})

	_, otherHash := gen.RawToken()

	tests := []struct {
		name    string
		hash    string
		wantID  int64
		wantErr error
	}{
		{name: "known token", hash: hash, wantID: 1009},
		{name: "unknown token", hash: otherHash, wantErr: ErrNotFound},
		{name: "empty hash", hash: "", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := repo.GetUserIDByTokenHash(ctx, nil, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
