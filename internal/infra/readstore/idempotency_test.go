//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"order-ledger/internal/infra"
	sqlc "order-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdempotencyReadQueries struct {
	mock.Mock
}

func (m *MockIdempotencyReadQueries) GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (sqlc.IdempotencyKeys, error) {
	args := m.Called(ctx, db, key)
	return args.Get(0).(sqlc.IdempotencyKeys), args.Error(1)
}

func TestIdempotencyGet(t *testing.T) {
	key := uuid.New()
	orderID := uuid.New()
	expires := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

	t.Run("completed record", func(t *testing.T) {
		mockQueries := new(MockIdempotencyReadQueries)
		mockQueries.On("GetIdempotencyKey", mock.Anything, mock.Anything, key).Return(sqlc.IdempotencyKeys{
			Key:             key,
			Status:          "completed",
			RequestHash:     "abc",
			ResultOrderID:   pgtype.UUID{Bytes: orderID, Valid: true},
			ResultReference: pgtype.Text{String: "ORD-7K3M9QZX", Valid: true},
			ExpiresAt:       pgtype.Timestamptz{Time: expires, Valid: true},
		}, nil)

		rec, err := NewIdempotencyReadStore(mockQueries, nil).Get(context.Background(), key)

		require.NoError(t, err)
		assert.Equal(t, "completed", rec.Status)
		assert.Nil(t, rec.UserID)
		require.NotNil(t, rec.ResultOrderID)
		assert.Equal(t, orderID, *rec.ResultOrderID)
		require.NotNil(t, rec.ResultReference)
		assert.Equal(t, "ORD-7K3M9QZX", *rec.ResultReference)
		assert.True(t, expires.Equal(rec.ExpiresAt))
		assert.False(t, rec.IsExpired(expires.Add(-time.Minute)))
		assert.True(t, rec.IsExpired(expires.Add(time.Minute)))
	})

	t.Run("unknown key", func(t *testing.T) {
		mockQueries := new(MockIdempotencyReadQueries)
		mockQueries.On("GetIdempotencyKey", mock.Anything, mock.Anything, key).Return(sqlc.IdempotencyKeys{}, pgx.ErrNoRows)

		rec, err := NewIdempotencyReadStore(mockQueries, nil).Get(context.Background(), key)

		assert.Nil(t, rec)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockIdempotencyReadQueries)
		mockQueries.On("GetIdempotencyKey", mock.Anything, mock.Anything, key).Return(sqlc.IdempotencyKeys{}, assert.AnError)

		_, err := NewIdempotencyReadStore(mockQueries, nil).Get(context.Background(), key)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
