//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"order-ledger/internal/domain/order"
	"order-ledger/internal/domain/user"
	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase/commands"
	"order-ledger/tests/common/builder"
	"order-ledger/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) seedOrder(t *testing.T, mutate func(b *builder.OrderBuilder)) *order.Order {
	t.Helper()
	b := builder.NewOrderBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	o := b.BuildDomain()
	h.store.PutOrder(o)
	return o
}

func (h *harness) moveTo(orderID uuid.UUID, target order.Status) error {
	return h.orders.UpdateOrderStatus(context.Background(), commands.UpdateOrderStatusInput{
		ActorID:   uuid.New(),
		ActorRole: user.RoleAdmin,
		OrderID:   orderID,
		Target:    string(target),
	})
}

// Shipping then delivering an order sends one email per step and never
// touches the loyalty grant.
func TestUpdateOrderStatus_DeliveryPath(t *testing.T) {
	h := newHarness(t)
	b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.Total = decimal.NewFromInt(50000) })
	h.store.PutProfile(*b.UserID, memstore.Profile{Email: "ada@example.com"})

	placed, err := h.orders.PlaceOrder(context.Background(), b.BuildInput())
	require.NoError(t, err)
	require.Equal(t, int64(500), h.store.Profile(*b.UserID).LoyaltyPoints)

	require.NoError(t, h.moveTo(placed.OrderID, order.StatusInTransit))
	require.NoError(t, h.moveTo(placed.OrderID, order.StatusDelivered))

	stored := h.store.Order(placed.OrderID)
	assert.Equal(t, order.StatusDelivered, stored.Status())
	assert.Equal(t, order.PaymentPaid, stored.PaymentStatus())

	mails := h.mails.Sent()
	require.Len(t, mails, 2)
	assert.Equal(t, string(order.StatusInTransit), mails[0].Status)
	assert.Equal(t, string(order.StatusDelivered), mails[1].Status)
	assert.Equal(t, "ada@example.com", mails[0].To)
	assert.Equal(t, placed.Reference, mails[0].Reference)
	assert.Len(t, mails[0].Items, 1)

	notes := h.notes.Sent()
	require.Len(t, notes, 2)
	assert.Equal(t, *b.UserID, notes[0].UserID)
	assert.Equal(t, "storefront://orders/"+placed.OrderID.String(), notes[0].Link)
	assert.Contains(t, notes[1].Message, string(order.StatusDelivered))

	grant, ok := h.store.Grant(placed.OrderID)
	require.True(t, ok)
	assert.False(t, grant.IsRetracted())
	assert.Equal(t, int64(500), h.store.Profile(*b.UserID).LoyaltyPoints)
}

// Cancelling retracts the bonus once and notifies once, without email.
func TestUpdateOrderStatus_Cancellation(t *testing.T) {
	testCases := []struct {
		name          string
		method        string
		expectPayment order.PaymentStatus
	}{
		{name: "cash on delivery is voided", method: "cash_on_delivery", expectPayment: order.PaymentVoided},
		{name: "prepaid awaits refund", method: "card", expectPayment: order.PaymentRefundPending},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
				b.Total = decimal.NewFromInt(50000)
				b.PaymentMethod = tc.method
			})
			h.store.PutProfile(*b.UserID, memstore.Profile{Email: "ada@example.com"})

			placed, err := h.orders.PlaceOrder(context.Background(), b.BuildInput())
			require.NoError(t, err)

			require.NoError(t, h.moveTo(placed.OrderID, order.StatusCancelled))

			stored := h.store.Order(placed.OrderID)
			assert.Equal(t, order.StatusCancelled, stored.Status())
			assert.Equal(t, tc.expectPayment, stored.PaymentStatus())

			grant, ok := h.store.Grant(placed.OrderID)
			require.True(t, ok)
			assert.True(t, grant.IsRetracted())
			assert.Equal(t, int64(0), h.store.Profile(*b.UserID).LoyaltyPoints)

			assert.Len(t, h.notes.Sent(), 1)
			assert.Empty(t, h.mails.Sent())
		})
	}
}

func TestUpdateOrderStatus_Rejections(t *testing.T) {
	testCases := []struct {
		name        string
		from        order.Status
		role        user.Role
		target      string
		unknown     bool
		expectedErr error
	}{
		{name: "customer cannot change status", from: order.StatusConfirmed, role: user.RoleCustomer, target: string(order.StatusInTransit), expectedErr: commands.ErrAuthorization},
		{name: "operator cannot change status", from: order.StatusConfirmed, role: user.RoleOperator, target: string(order.StatusInTransit), expectedErr: commands.ErrAuthorization},
		{name: "unknown status value", from: order.StatusConfirmed, role: user.RoleAdmin, target: "shipped", expectedErr: commands.ErrValidation},
		{name: "status names are case sensitive", from: order.StatusConfirmed, role: user.RoleAdmin, target: "in transit", expectedErr: commands.ErrValidation},
		{name: "unknown order", from: order.StatusConfirmed, role: user.RoleAdmin, target: string(order.StatusInTransit), unknown: true, expectedErr: commands.ErrOrderNotFound},
		{name: "same status", from: order.StatusConfirmed, role: user.RoleAdmin, target: string(order.StatusConfirmed), expectedErr: commands.ErrIllegalTransition},
		{name: "back to confirmed", from: order.StatusInTransit, role: user.RoleAdmin, target: string(order.StatusConfirmed), expectedErr: commands.ErrIllegalTransition},
		{name: "delivered is terminal", from: order.StatusDelivered, role: user.RoleAdmin, target: string(order.StatusCancelled), expectedErr: commands.ErrIllegalTransition},
		{name: "cancelled is terminal", from: order.StatusCancelled, role: user.RoleAdmin, target: string(order.StatusInTransit), expectedErr: commands.ErrIllegalTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			o := h.seedOrder(t, func(b *builder.OrderBuilder) { b.Status = string(tc.from) })
			orderID := o.ID()
			if tc.unknown {
				orderID = uuid.New()
			}

			err := h.orders.UpdateOrderStatus(context.Background(), commands.UpdateOrderStatusInput{
				ActorID:   uuid.New(),
				ActorRole: tc.role,
				OrderID:   orderID,
				Target:    tc.target,
			})

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
			assert.Equal(t, tc.from, h.store.Order(o.ID()).Status())
			assert.Empty(t, h.notes.Sent())
			assert.Empty(t, h.mails.Sent())
		})
	}
}

func TestUpdateOrderStatus_GuestOrderEmailsShippingAddress(t *testing.T) {
	h := newHarness(t)
	o := h.seedOrder(t, func(b *builder.OrderBuilder) {
		b.UserID = nil
		b.Shipping.Email = "guest@example.com"
	})

	require.NoError(t, h.moveTo(o.ID(), order.StatusInTransit))

	assert.Empty(t, h.notes.Sent())
	mails := h.mails.Sent()
	require.Len(t, mails, 1)
	assert.Equal(t, "guest@example.com", mails[0].To)
}

func TestUpdateOrderStatus_GuestWithoutEmailIsSkipped(t *testing.T) {
	h := newHarness(t)
	o := h.seedOrder(t, func(b *builder.OrderBuilder) {
		b.UserID = nil
		b.Shipping.Email = ""
	})

	require.NoError(t, h.moveTo(o.ID(), order.StatusDelivered))

	assert.Empty(t, h.mails.Sent())
}

func TestUpdateOrderStatus_AccountEmailWins(t *testing.T) {
	h := newHarness(t)
	o := h.seedOrder(t, nil)
	h.store.PutProfile(*o.UserID(), memstore.Profile{Email: "account@example.com"})

	require.NoError(t, h.moveTo(o.ID(), order.StatusInTransit))

	mails := h.mails.Sent()
	require.Len(t, mails, 1)
	assert.Equal(t, "account@example.com", mails[0].To)
}

func TestUpdateOrderStatus_SideEffectFailuresAreSwallowed(t *testing.T) {
	h := newHarness(t)
	h.notes.Err = errors.New("redis down")
	h.mails.Err = errors.New("smtp down")
	o := h.seedOrder(t, nil)

	require.NoError(t, h.moveTo(o.ID(), order.StatusInTransit))

	assert.Equal(t, order.StatusInTransit, h.store.Order(o.ID()).Status())
	assert.Len(t, h.notes.Sent(), 1)
	assert.Len(t, h.mails.Sent(), 1)
}

func TestUpdateOrderStatus_PersistenceFailure(t *testing.T) {
	h := newHarness(t)
	h.store.FailOn["Orders.UpdateStatus"] = errors.New("connection reset")
	o := h.seedOrder(t, nil)

	err := h.moveTo(o.ID(), order.StatusInTransit)

	assert.True(t, errs.Is(err, commands.ErrPersistence))
	assert.Equal(t, order.StatusConfirmed, h.store.Order(o.ID()).Status())
	assert.Empty(t, h.notes.Sent())
}
