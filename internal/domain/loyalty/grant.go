package loyalty

import (
	"time"

	"github.com/google/uuid"
)

// Grant records the tier awarded for one order so that its retraction undoes
// exactly what was given.
type Grant struct {
	OrderID     uuid.UUID
	UserID      uuid.UUID
	Tier        string
	Points      int64
	SpinUnlock  bool
	GrantedAt   time.Time
	RetractedAt *time.Time
}

func NewGrant(orderID, userID uuid.UUID, tier Tier, now time.Time) Grant {
	return Grant{
		OrderID:    orderID,
		UserID:     userID,
		Tier:       tier.Name,
		Points:     tier.Points,
		SpinUnlock: tier.SpinUnlock,
		GrantedAt:  now,
	}
}

func (g Grant) IsRetracted() bool { return g.RetractedAt != nil }
