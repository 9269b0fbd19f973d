//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"order-ledger/internal/domain/order"
	"order-ledger/internal/infra"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"
	"order-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReadQueries struct {
	mock.Mock
}

func (m *MockOrderReadQueries) GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Orders), args.Error(1)
}

func (m *MockOrderReadQueries) ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error) {
	args := m.Called(ctx, db, orderID)
	return args.Get(0).([]sqlc.OrderItems), args.Error(1)
}

func (m *MockOrderReadQueries) CountPriorOrders(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) (int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderReadQueries) GetOrderViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrderViewByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetOrderViewByIDRow), args.Error(1)
}

func TestOrderFindByID(t *testing.T) {
	b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.Status = string(order.StatusInTransit)
		b.PaymentMethod = string(order.PaymentCard)
		b.PaymentStatus = string(order.PaymentPaid)
		b.Note = "leave at the gate"
	})
	row, items := b.BuildInfra()

	t.Run("success - aggregate with items", func(t *testing.T) {
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)
		mockQueries.On("ListOrderItems", mock.Anything, mock.Anything, row.ID).Return(items, nil)

		o, err := NewOrderReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, o.ID())
		assert.Equal(t, order.StatusInTransit, o.Status())
		assert.Equal(t, order.PaymentCard, o.PaymentMethod())
		assert.Equal(t, "leave at the gate", o.Note().String())
		assert.Equal(t, "Ada Obi", o.Shipping().RecipientName)
		require.Len(t, o.Items(), 1)
		assert.Equal(t, int32(2), o.Items()[0].Quantity())
		require.NotNil(t, o.UserID())
		assert.Equal(t, *b.UserID, *o.UserID())
		mockQueries.AssertExpectations(t)
	})

	t.Run("order not found", func(t *testing.T) {
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderByID", mock.Anything, mock.Anything, row.ID).Return(sqlc.Orders{}, sql.ErrNoRows)

		o, err := NewOrderReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		assert.Nil(t, o)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertExpectations(t)
	})

	t.Run("items query fails", func(t *testing.T) {
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)
		mockQueries.On("ListOrderItems", mock.Anything, mock.Anything, row.ID).Return([]sqlc.OrderItems(nil), assert.AnError)

		_, err := NewOrderReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("unknown status in storage", func(t *testing.T) {
		broken := row
		broken.Status = "lost"
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderByID", mock.Anything, mock.Anything, row.ID).Return(broken, nil)
		mockQueries.On("ListOrderItems", mock.Anything, mock.Anything, row.ID).Return(items, nil)

		_, err := NewOrderReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCountPriorOrders(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		count     int64
		mockError error
		wantError bool
	}{
		{name: "first order", count: 0},
		{name: "returning customer", count: 3},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockOrderReadQueries)
			mockQueries.On("CountPriorOrders", mock.Anything, mock.Anything, pgconv.UUIDToPgtype(userID)).Return(tt.count, tt.mockError)

			n, err := NewOrderReadStore(mockQueries, nil).CountPriorOrders(context.Background(), userID)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.count, n)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindViewByID(t *testing.T) {
	b := builder.NewOrderBuilder()
	row, items := b.BuildInfra()
	viewRow := sqlc.GetOrderViewByIDRow{
		ID:            row.ID,
		UserID:        row.UserID,
		Reference:     row.Reference,
		Status:        row.Status,
		PaymentMethod: row.PaymentMethod,
		PaymentStatus: row.PaymentStatus,
		Total:         row.Total,
		DeliveryFee:   row.DeliveryFee,
		VoucherID:     pgtype.UUID{Bytes: uuid.New(), Valid: true},
		VoucherCode:   pgtype.Text{String: "WELCOME-10", Valid: true},
		Shipping:      row.Shipping,
		FirstOrder:    true,
		LoyaltyTier:   pgtype.Text{String: "Free Delivery", Valid: true},
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	t.Run("success - view joins voucher and loyalty", func(t *testing.T) {
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderViewByID", mock.Anything, mock.Anything, row.ID).Return(viewRow, nil)
		mockQueries.On("ListOrderItems", mock.Anything, mock.Anything, row.ID).Return(items, nil)

		view, err := NewOrderReadStore(mockQueries, nil).FindViewByID(context.Background(), row.ID)

		require.NoError(t, err)
		expected := b.BuildView()
		assert.Equal(t, expected.Reference, view.Reference)
		assert.Equal(t, expected.Shipping, view.Shipping)
		assert.Equal(t, expected.UserID, view.UserID)
		require.NotNil(t, view.VoucherCode)
		assert.Equal(t, "WELCOME-10", *view.VoucherCode)
		require.NotNil(t, view.LoyaltyTier)
		assert.Equal(t, "Free Delivery", *view.LoyaltyTier)
		assert.Nil(t, view.Note)
		require.Len(t, view.Items, 1)
		assert.Equal(t, int32(1), view.Items[0].LineNo)
		mockQueries.AssertExpectations(t)
	})

	t.Run("guest order has no owner", func(t *testing.T) {
		guestRow := viewRow
		guestRow.UserID = pgtype.UUID{}
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderViewByID", mock.Anything, mock.Anything, row.ID).Return(guestRow, nil)
		mockQueries.On("ListOrderItems", mock.Anything, mock.Anything, row.ID).Return(items, nil)

		view, err := NewOrderReadStore(mockQueries, nil).FindViewByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Nil(t, view.UserID)
	})

	t.Run("order not found", func(t *testing.T) {
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderViewByID", mock.Anything, mock.Anything, row.ID).Return(sqlc.GetOrderViewByIDRow{}, sql.ErrNoRows)

		view, err := NewOrderReadStore(mockQueries, nil).FindViewByID(context.Background(), row.ID)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt shipping document", func(t *testing.T) {
		broken := viewRow
		broken.Shipping = []byte("{")
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderViewByID", mock.Anything, mock.Anything, row.ID).Return(broken, nil)
		mockQueries.On("ListOrderItems", mock.Anything, mock.Anything, row.ID).Return(items, nil)

		_, err := NewOrderReadStore(mockQueries, nil).FindViewByID(context.Background(), row.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
