//go:build unit

package loyalty_test

import (
	"testing"

	"order-ledger/internal/domain/loyalty"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	table := loyalty.DefaultTable()

	cases := []struct {
		name       string
		total      int64
		firstOrder bool
		wantTier   string
		wantPoints int64
		wantSpin   bool
	}{
		{name: "below every threshold", total: 9999, firstOrder: true},
		{name: "exactly free delivery", total: 10000, firstOrder: false, wantTier: "Free Delivery", wantPoints: 100},
		{name: "first order at 30000 gets welcome spin only", total: 30000, firstOrder: true, wantTier: "Welcome Spin", wantSpin: true},
		{name: "repeat order at 30000 falls back to free delivery", total: 30000, firstOrder: false, wantTier: "Free Delivery", wantPoints: 100},
		{name: "silver beats welcome spin on first order", total: 50000, firstOrder: true, wantTier: "Silver", wantPoints: 500},
		{name: "gold", total: 250000, firstOrder: false, wantTier: "Gold", wantPoints: 1500},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tier, ok := table.TierFor(decimal.NewFromInt(c.total), c.firstOrder)
			if c.wantTier == "" {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, c.wantTier, tier.Name)
			assert.Equal(t, c.wantPoints, tier.Points)
			assert.Equal(t, c.wantSpin, tier.SpinUnlock)
		})
	}
}

func TestTierForIsNotCumulative(t *testing.T) {
	table := loyalty.DefaultTable()

	tier, ok := table.TierFor(decimal.NewFromInt(100000), true)
	assert.True(t, ok)
	// Free Delivery, Welcome Spin and Silver are all crossed; only Gold is granted.
	assert.Equal(t, int64(1500), tier.Points)
	assert.False(t, tier.SpinUnlock)
}

func TestTierForIsDeterministic(t *testing.T) {
	table := loyalty.DefaultTable()
	total := decimal.RequireFromString("54321.50")

	first, _ := table.TierFor(total, false)
	second, _ := table.TierFor(total, false)
	assert.Equal(t, first, second)
}

func TestNewTableSortsTiers(t *testing.T) {
	table := loyalty.NewTable(
		loyalty.Tier{Name: "high", Threshold: decimal.NewFromInt(500), Points: 5},
		loyalty.Tier{Name: "low", Threshold: decimal.NewFromInt(100), Points: 1},
	)

	tiers := table.Tiers()
	assert.Equal(t, "low", tiers[0].Name)
	assert.Equal(t, "high", tiers[1].Name)

	tier, ok := table.TierFor(decimal.NewFromInt(300), false)
	assert.True(t, ok)
	assert.Equal(t, "low", tier.Name)
}
