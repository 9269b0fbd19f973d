//go:build unit

package repository

import (
	"context"
	"testing"

	"order-ledger/internal/infra"
	sqlc "order-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationWriteQueries struct {
	mock.Mock
}

func (m *MockNotificationWriteQueries) CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) (sqlc.CreateNotificationRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.CreateNotificationRow), args.Error(1)
}

func TestCreateNotification(t *testing.T) {
	userID := uuid.New()
	notificationID := uuid.New()
	params := sqlc.CreateNotificationParams{
		UserID:  userID,
		Title:   "Order delivered",
		Message: "Your order ORD-7K3M9QZX has been delivered.",
		Link:    "storefront://orders/ORD-7K3M9QZX",
	}

	tests := []struct {
		name      string
		mockError error
		wantID    uuid.UUID
		wantError bool
	}{
		{name: "success", wantID: notificationID},
		{name: "database error", mockError: assert.AnError, wantID: uuid.Nil, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockNotificationWriteQueries)
			mockQueries.On("CreateNotification", mock.Anything, mock.Anything, params).
				Return(sqlc.CreateNotificationRow{ID: tt.wantID}, tt.mockError)

			repo := NewNotificationRepository(mockQueries, nilDB{})
			id, err := repo.Create(context.Background(), userID, params.Title, params.Message, params.Link)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantID, id)
			mockQueries.AssertExpectations(t)
		})
	}
}
