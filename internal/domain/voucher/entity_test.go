//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"order-ledger/internal/domain/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVoucher(mutate func(*voucher.ReconstructParams)) *voucher.Voucher {
	discount, _ := voucher.NewDiscount("fixed", decimal.NewFromInt(500))
	maxUses := int32(3)
	p := voucher.ReconstructParams{
		ID:             uuid.New(),
		Code:           voucher.Code("SPRING25"),
		Discount:       discount,
		MinOrderAmount: decimal.NewFromInt(1000),
		MaxUses:        &maxUses,
		UsedCount:      0,
		Active:         true,
	}
	if mutate != nil {
		mutate(&p)
	}
	return voucher.Reconstruct(p)
}

func TestCheckRedeemable(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)
	total := decimal.NewFromInt(5000)

	cases := []struct {
		name   string
		mutate func(*voucher.ReconstructParams)
		total  decimal.Decimal
		errIs  error
	}{
		{name: "redeemable", total: total},
		{name: "inactive", mutate: func(p *voucher.ReconstructParams) { p.Active = false }, total: total, errIs: voucher.ErrInactive},
		{name: "not yet valid", mutate: func(p *voucher.ReconstructParams) { p.ValidFrom = &after }, total: total, errIs: voucher.ErrNotYetValid},
		{name: "expired", mutate: func(p *voucher.ReconstructParams) { p.ValidTo = &before }, total: total, errIs: voucher.ErrExpired},
		{name: "below minimum", total: decimal.NewFromInt(999), errIs: voucher.ErrMinimumNotMet},
		{name: "exhausted", mutate: func(p *voucher.ReconstructParams) { p.UsedCount = 3 }, total: total, errIs: voucher.ErrExhausted},
		{name: "over-used counter is still exhausted", mutate: func(p *voucher.ReconstructParams) { p.UsedCount = 7 }, total: total, errIs: voucher.ErrExhausted},
		{name: "unlimited", mutate: func(p *voucher.ReconstructParams) { p.MaxUses = nil; p.UsedCount = 10000 }, total: total},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := newVoucher(c.mutate).CheckRedeemable(now, c.total)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestRemainingUses(t *testing.T) {
	left, limited := newVoucher(func(p *voucher.ReconstructParams) { p.UsedCount = 1 }).RemainingUses()
	assert.True(t, limited)
	assert.Equal(t, int32(2), left)

	_, limited = newVoucher(func(p *voucher.ReconstructParams) { p.MaxUses = nil }).RemainingUses()
	assert.False(t, limited)
}

func TestCheckHolder(t *testing.T) {
	holder := uuid.New()
	other := uuid.New()

	open := newVoucher(nil)
	require.NoError(t, open.CheckHolder(nil))

	issued := newVoucher(func(p *voucher.ReconstructParams) { p.IssuedTo = &holder })
	require.NoError(t, issued.CheckHolder(&holder))
	require.ErrorIs(t, issued.CheckHolder(&other), voucher.ErrNotOwner)
	require.ErrorIs(t, issued.CheckHolder(nil), voucher.ErrNotOwner)
}

func TestNewSingleUse(t *testing.T) {
	now := time.Now()
	holder := uuid.New()
	discount, err := voucher.NewDiscount("fixed", decimal.NewFromInt(2000))
	require.NoError(t, err)

	v := voucher.NewSingleUse(voucher.Code("REF-ABC123"), discount, holder, now, now.Add(24*time.Hour))

	require.NoError(t, v.CheckRedeemable(now, decimal.NewFromInt(1)))
	require.NotNil(t, v.MaxUses())
	assert.Equal(t, int32(1), *v.MaxUses())
	assert.Equal(t, holder, *v.IssuedTo())
	require.ErrorIs(t, v.CheckRedeemable(now.Add(48*time.Hour), decimal.NewFromInt(1)), voucher.ErrExpired)
}

func TestDiscount(t *testing.T) {
	t.Run("fixed is capped at base", func(t *testing.T) {
		d, err := voucher.NewDiscount("fixed", decimal.NewFromInt(500))
		require.NoError(t, err)
		assert.True(t, d.AmountOff(decimal.NewFromInt(300)).Equal(decimal.NewFromInt(300)))
		assert.True(t, d.AmountOff(decimal.NewFromInt(3000)).Equal(decimal.NewFromInt(500)))
	})

	t.Run("percentage", func(t *testing.T) {
		d, err := voucher.NewDiscount("percentage", decimal.NewFromInt(15))
		require.NoError(t, err)
		assert.True(t, d.AmountOff(decimal.NewFromInt(2000)).Equal(decimal.NewFromInt(300)))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := voucher.NewDiscount("percentage", decimal.NewFromInt(101))
		require.ErrorIs(t, err, voucher.ErrInvalidDiscountPercent)
		_, err = voucher.NewDiscount("fixed", decimal.Zero)
		require.ErrorIs(t, err, voucher.ErrInvalidDiscountAmount)
		_, err = voucher.NewDiscount("bogo", decimal.NewFromInt(1))
		require.ErrorIs(t, err, voucher.ErrInvalidDiscountKind)
	})
}

func TestNewCode(t *testing.T) {
	c, err := voucher.NewCode("  spring-25 ")
	require.NoError(t, err)
	assert.Equal(t, "SPRING-25", c.String())

	_, err = voucher.NewCode("x")
	require.ErrorIs(t, err, voucher.ErrInvalidCode)
}
