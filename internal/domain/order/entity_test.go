//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"order-ledger/internal/domain/order"
	"order-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OrderBuilder)
	errIs  error
}

func TestOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().Build()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, order.StatusConfirmed, actual.Status())
		assert.Equal(t, order.PaymentPending, actual.PaymentStatus())
		assert.Len(t, actual.Items(), 1)
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.False(t, actual.IsGuest())
	})

	t.Run("prepaid order starts paid", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().WithPaymentMethod("card").Build()
		require.NoError(t, err)
		assert.Equal(t, order.PaymentPaid, actual.PaymentStatus())
	})

	t.Run("input validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "guest checkout",
				mutate: func(b *builder.OrderBuilder) { b.WithUserID(nil) },
			},
			{
				name:   "no items",
				mutate: func(b *builder.OrderBuilder) { b.Items = nil },
				errIs:  order.ErrNoItems,
			},
			{
				name:   "zero quantity",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].Quantity = 0 },
				errIs:  order.ErrInvalidQuantity,
			},
			{
				name:   "quantity above limit",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].Quantity = 1000 },
				errIs:  order.ErrInvalidQuantity,
			},
			{
				name:   "unknown item kind",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].Kind = "gift-card" },
				errIs:  order.ErrInvalidItemKind,
			},
			{
				name:   "missing item reference",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].RefID = uuid.Nil },
				errIs:  order.ErrInvalidItem,
			},
			{
				name:   "negative unit price",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].UnitPrice = decimal.NewFromInt(-1) },
				errIs:  order.ErrNegativeAmount,
			},
			{
				name:   "negative total",
				mutate: func(b *builder.OrderBuilder) { b.Total = decimal.NewFromInt(-10) },
				errIs:  order.ErrNegativeAmount,
			},
			{
				name:   "negative delivery fee",
				mutate: func(b *builder.OrderBuilder) { b.DeliveryFee = decimal.NewFromInt(-10) },
				errIs:  order.ErrNegativeAmount,
			},
			{
				name:   "sub-cent total",
				mutate: func(b *builder.OrderBuilder) { b.Total = decimal.RequireFromString("49999.996") },
				errIs:  order.ErrAmountPrecision,
			},
			{
				name:   "sub-cent delivery fee",
				mutate: func(b *builder.OrderBuilder) { b.DeliveryFee = decimal.RequireFromString("1500.005") },
				errIs:  order.ErrAmountPrecision,
			},
			{
				name:   "sub-cent unit price",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].UnitPrice = decimal.RequireFromString("0.001") },
				errIs:  order.ErrAmountPrecision,
			},
			{
				name:   "trailing zeros beyond cents are accepted",
				mutate: func(b *builder.OrderBuilder) { b.Total = decimal.RequireFromString("50000.000") },
			},
			{
				name:   "missing recipient",
				mutate: func(b *builder.OrderBuilder) { b.Shipping.RecipientName = "  " },
				errIs:  order.ErrInvalidShipping,
			},
			{
				name:   "malformed shipping email",
				mutate: func(b *builder.OrderBuilder) { b.Shipping.Email = "nobody" },
				errIs:  order.ErrInvalidShipping,
			},
			{
				name:   "unknown payment method",
				mutate: func(b *builder.OrderBuilder) { b.WithPaymentMethod("barter") },
				errIs:  order.ErrInvalidPaymentMethod,
			},
			{
				name:   "note too long",
				mutate: func(b *builder.OrderBuilder) { b.Note = strings.Repeat("n", 501) },
				errIs:  order.ErrNoteTooLong,
			},
		})
	})

	t.Run("subtotal sums line totals", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		b.Items = append(b.Items, builder.OrderItemFixture{
			Kind:      "bundle",
			RefID:     uuid.New(),
			Quantity:  3,
			UnitPrice: decimal.NewFromInt(2500),
		})
		actual, err := b.Build()
		require.NoError(t, err)

		want := b.Items[0].UnitPrice.Mul(decimal.NewFromInt32(b.Items[0].Quantity)).Add(decimal.NewFromInt(7500))
		assert.True(t, want.Equal(actual.Subtotal()), "got %s", actual.Subtotal())
	})
}

func TestOrderTransitions(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{"confirmed to transit", order.StatusConfirmed, order.StatusInTransit, true},
		{"confirmed to delivered", order.StatusConfirmed, order.StatusDelivered, true},
		{"confirmed to cancelled", order.StatusConfirmed, order.StatusCancelled, true},
		{"transit to delivered", order.StatusInTransit, order.StatusDelivered, true},
		{"transit to cancelled", order.StatusInTransit, order.StatusCancelled, true},
		{"transit back to confirmed", order.StatusInTransit, order.StatusConfirmed, false},
		{"confirmed to confirmed", order.StatusConfirmed, order.StatusConfirmed, false},
		{"out of delivered", order.StatusDelivered, order.StatusCancelled, false},
		{"delivered to transit", order.StatusDelivered, order.StatusInTransit, false},
		{"out of cancelled", order.StatusCancelled, order.StatusConfirmed, false},
		{"cancelled to delivered", order.StatusCancelled, order.StatusDelivered, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := builder.NewOrderBuilder().WithStatus(c.from).BuildDomain()

			change, err := o.TransitionTo(c.to, now)
			if c.allowed {
				require.NoError(t, err)
				assert.Equal(t, c.from, change.From)
				assert.Equal(t, c.to, change.To)
				assert.Equal(t, c.to, o.Status())
				assert.Equal(t, now, o.UpdatedAt())
				return
			}
			require.ErrorIs(t, err, order.ErrIllegalTransition)
			assert.Equal(t, c.from, o.Status())
		})
	}

	t.Run("terminal states", func(t *testing.T) {
		assert.True(t, order.StatusDelivered.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
		assert.False(t, order.StatusConfirmed.IsTerminal())
		assert.False(t, order.StatusInTransit.IsTerminal())
	})

	t.Run("unknown target", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomain()
		_, err := o.TransitionTo(order.Status("Lost"), now)
		require.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}

func TestOrderPaymentStatus(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		method  string
		payment order.PaymentStatus
		target  order.Status
		want    order.PaymentStatus
	}{
		{"cod delivered becomes paid", "cash_on_delivery", order.PaymentPending, order.StatusDelivered, order.PaymentPaid},
		{"cod cancelled is voided", "cash_on_delivery", order.PaymentPending, order.StatusCancelled, order.PaymentVoided},
		{"card cancelled awaits refund", "card", order.PaymentPaid, order.StatusCancelled, order.PaymentRefundPending},
		{"wallet in transit stays paid", "wallet", order.PaymentPaid, order.StatusInTransit, order.PaymentPaid},
		{"cod in transit stays pending", "cash_on_delivery", order.PaymentPending, order.StatusInTransit, order.PaymentPending},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := builder.NewOrderBuilder().
				WithPaymentMethod(c.method).
				WithPaymentStatus(c.payment).
				BuildDomain()

			change, err := o.TransitionTo(c.target, now)
			require.NoError(t, err)
			assert.Equal(t, c.want, change.PaymentStatus)
			assert.Equal(t, c.want, o.PaymentStatus())
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"order confirmed", "In transit", "order delivered", "Cancelled"} {
		got, err := order.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}

	_, err := order.ParseStatus("cancelled")
	require.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestNewReference(t *testing.T) {
	now := time.Now()
	seen := make(map[order.Reference]struct{})
	for range 200 {
		ref, err := order.NewReference(now)
		require.NoError(t, err)
		require.Len(t, ref.String(), len("ORD-")+8)
		require.True(t, strings.HasPrefix(ref.String(), "ORD-"))
		seen[ref] = struct{}{}
	}
	// 40 random bits per reference; a collision in 200 draws would point at a broken entropy source.
	assert.Len(t, seen, 200)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewOrderBuilder().With(c.mutate).Build()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
