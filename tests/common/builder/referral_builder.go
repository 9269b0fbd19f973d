//go:build unit || e2e

package builder

import (
	"time"

	"order-ledger/internal/domain/referral"
	sqlc "order-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ReferralBuilder struct {
	ID             uuid.UUID
	ReferrerID     uuid.UUID
	ReferrerEmail  string
	ReferredID     uuid.UUID
	ReferredEmail  string
	DiscountCode   string
	PurchaseAmount decimal.Decimal
	DiscountGiven  bool
	Status         string
	CreatedAt      time.Time
}

func NewReferralBuilder() *ReferralBuilder {
	return &ReferralBuilder{
		ID:             uuid.New(),
		ReferrerID:     uuid.New(),
		ReferrerEmail:  "referrer@example.com",
		ReferredID:     uuid.New(),
		ReferredEmail:  "friend@example.com",
		DiscountCode:   "FRIEND-5",
		PurchaseAmount: decimal.Zero,
		Status:         string(referral.StatusApplied),
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (r *ReferralBuilder) With(mutate func(*ReferralBuilder)) *ReferralBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReferralBuilder) BuildParams() referral.ReconstructParams {
	return referral.ReconstructParams{
		ID:             r.ID,
		ReferrerID:     r.ReferrerID,
		ReferrerEmail:  r.ReferrerEmail,
		ReferredID:     r.ReferredID,
		ReferredEmail:  r.ReferredEmail,
		DiscountCode:   r.DiscountCode,
		PurchaseAmount: r.PurchaseAmount,
		DiscountGiven:  r.DiscountGiven,
		Status:         referral.Status(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.CreatedAt,
	}
}

func (r *ReferralBuilder) BuildInfra() sqlc.Referrals {
	return sqlc.Referrals{
		ID:                     r.ID,
		ReferrerID:             r.ReferrerID,
		ReferrerEmail:          r.ReferrerEmail,
		ReferredID:             r.ReferredID,
		ReferredEmail:          r.ReferredEmail,
		DiscountCode:           r.DiscountCode,
		ReferredPurchaseAmount: r.PurchaseAmount,
		DiscountGiven:          r.DiscountGiven,
		Status:                 r.Status,
		CreatedAt:              pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:              pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}
