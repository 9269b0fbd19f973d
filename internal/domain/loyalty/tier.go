package loyalty

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Tier is one spend threshold and the reward it grants. A tier rewards either
// points or the spin unlock, and FirstOrderOnly tiers apply only to a
// customer's first order.
type Tier struct {
	Name           string
	Threshold      decimal.Decimal
	Points         int64
	SpinUnlock     bool
	FirstOrderOnly bool
}

func (t Tier) GrantsPoints() bool { return t.Points > 0 }

type Table struct {
	tiers []Tier
}

// NewTable copies and sorts tiers by ascending threshold.
func NewTable(tiers ...Tier) Table {
	sorted := slices.Clone(tiers)
	slices.SortStableFunc(sorted, func(a, b Tier) int {
		return a.Threshold.Cmp(b.Threshold)
	})
	return Table{tiers: sorted}
}

func DefaultTable() Table {
	return NewTable(
		Tier{Name: "Free Delivery", Threshold: decimal.NewFromInt(10000), Points: 100},
		Tier{Name: "Welcome Spin", Threshold: decimal.NewFromInt(30000), SpinUnlock: true, FirstOrderOnly: true},
		Tier{Name: "Silver", Threshold: decimal.NewFromInt(50000), Points: 500},
		Tier{Name: "Gold", Threshold: decimal.NewFromInt(100000), Points: 1500},
	)
}

// TierFor returns the single highest eligible tier whose threshold does not
// exceed total. Lower tiers crossed on the way are not granted.
func (t Table) TierFor(total decimal.Decimal, firstOrder bool) (Tier, bool) {
	for i := len(t.tiers) - 1; i >= 0; i-- {
		tier := t.tiers[i]
		if tier.FirstOrderOnly && !firstOrder {
			continue
		}
		if total.GreaterThanOrEqual(tier.Threshold) {
			return tier, true
		}
	}
	return Tier{}, false
}

func (t Table) Tiers() []Tier {
	return slices.Clone(t.tiers)
}
