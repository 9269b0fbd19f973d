//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"order-ledger/internal/domain/loyalty"
	"order-ledger/internal/infra"
	sqlc "order-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// nilDB satisfies sqlc.DBTX; mocked queries never touch it.
type nilDB struct{ sqlc.DBTX }

type MockLoyaltyWriteQueries struct {
	mock.Mock
}

func (m *MockLoyaltyWriteQueries) CreateLoyaltyGrant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLoyaltyGrantParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLoyaltyWriteQueries) MarkLoyaltyGrantRetracted(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkLoyaltyGrantRetractedParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLoyaltyWriteQueries) AddLoyaltyPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.AddLoyaltyPointsParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockLoyaltyWriteQueries) SubtractLoyaltyPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.SubtractLoyaltyPointsParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockLoyaltyWriteQueries) SetSpinEligible(ctx context.Context, db sqlc.DBTX, arg sqlc.SetSpinEligibleParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func TestInsertGrant(t *testing.T) {
	grant := loyalty.Grant{
		OrderID:    uuid.New(),
		UserID:     uuid.New(),
		Tier:       "Silver",
		Points:     500,
		SpinUnlock: false,
		GrantedAt:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		rows      int64
		mockError error
		wantOK    bool
		wantError bool
	}{
		{name: "first grant for order", rows: 1, wantOK: true},
		{name: "order already granted", rows: 0, wantOK: false},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockLoyaltyWriteQueries)
			mockQueries.On("CreateLoyaltyGrant", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateLoyaltyGrantParams) bool {
				return arg.OrderID == grant.OrderID && arg.Tier == "Silver" && arg.Points == 500 && arg.GrantedAt.Valid
			})).Return(tt.rows, tt.mockError)

			repo := NewLoyaltyRepository(mockQueries, nilDB{})
			ok, err := repo.InsertGrant(context.Background(), grant)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOK, ok)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestMarkRetracted(t *testing.T) {
	orderID := uuid.New()
	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	mockQueries := new(MockLoyaltyWriteQueries)
	mockQueries.On("MarkLoyaltyGrantRetracted", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.MarkLoyaltyGrantRetractedParams) bool {
		return arg.OrderID == orderID && at.Equal(arg.RetractedAt.Time)
	})).Return(int64(1), nil).Once()
	mockQueries.On("MarkLoyaltyGrantRetracted", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil).Once()

	repo := NewLoyaltyRepository(mockQueries, nilDB{})

	first, err := repo.MarkRetracted(context.Background(), orderID, at)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := repo.MarkRetracted(context.Background(), orderID, at)
	require.NoError(t, err)
	assert.False(t, second, "a grant is retracted once")

	mockQueries.AssertExpectations(t)
}

func TestPointAndSpinUpdates(t *testing.T) {
	userID := uuid.New()

	t.Run("add points", func(t *testing.T) {
		mockQueries := new(MockLoyaltyWriteQueries)
		mockQueries.On("AddLoyaltyPoints", mock.Anything, mock.Anything, sqlc.AddLoyaltyPointsParams{Points: 1500, ID: userID}).Return(nil)

		err := NewLoyaltyRepository(mockQueries, nilDB{}).AddPoints(context.Background(), userID, 1500)
		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("subtract points", func(t *testing.T) {
		mockQueries := new(MockLoyaltyWriteQueries)
		mockQueries.On("SubtractLoyaltyPoints", mock.Anything, mock.Anything, sqlc.SubtractLoyaltyPointsParams{Points: 100, ID: userID}).Return(assert.AnError)

		err := NewLoyaltyRepository(mockQueries, nilDB{}).SubtractPoints(context.Background(), userID, 100)
		assert.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		mockQueries.AssertExpectations(t)
	})

	t.Run("set spin eligibility", func(t *testing.T) {
		mockQueries := new(MockLoyaltyWriteQueries)
		mockQueries.On("SetSpinEligible", mock.Anything, mock.Anything, sqlc.SetSpinEligibleParams{ID: userID, SpinEligible: true}).Return(nil)

		err := NewLoyaltyRepository(mockQueries, nilDB{}).SetSpinEligible(context.Background(), userID, true)
		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})
}
