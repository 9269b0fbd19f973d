package referral

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus    = errors.New("invalid referral status")
	ErrNotApplied       = errors.New("referral is no longer in applied status")
	ErrNegativeAmount   = errors.New("contribution cannot be negative")
	ErrStatusRegression = errors.New("referral status cannot move backwards")
)

type Referral struct {
	id             uuid.UUID
	referrerID     uuid.UUID
	referrerEmail  string
	referredID     uuid.UUID
	referredEmail  string
	discountCode   string
	purchaseAmount decimal.Decimal
	discountGiven  bool
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

type ReconstructParams struct {
	ID             uuid.UUID
	ReferrerID     uuid.UUID
	ReferrerEmail  string
	ReferredID     uuid.UUID
	ReferredEmail  string
	DiscountCode   string
	PurchaseAmount decimal.Decimal
	DiscountGiven  bool
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(p ReconstructParams) *Referral {
	return &Referral{
		id:             p.ID,
		referrerID:     p.ReferrerID,
		referrerEmail:  p.ReferrerEmail,
		referredID:     p.ReferredID,
		referredEmail:  p.ReferredEmail,
		discountCode:   p.DiscountCode,
		purchaseAmount: p.PurchaseAmount,
		discountGiven:  p.DiscountGiven,
		status:         p.Status,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}
}

// Progress is the outcome of applying one order to a referral.
type Progress struct {
	From           Status
	Status         Status
	PurchaseAmount decimal.Decimal
	DiscountGiven  bool
	RewardDue      bool
}

func (p Progress) Changed() bool { return p.From != p.Status }

// Advance adds one settled order's total and evaluates the transitions.
func (r *Referral) Advance(total decimal.Decimal, appliedCode string, threshold decimal.Decimal) (Progress, error) {
	if r.status != StatusApplied {
		return Progress{}, ErrNotApplied
	}
	if total.IsNegative() {
		return Progress{}, ErrNegativeAmount
	}
	r.purchaseAmount = r.purchaseAmount.Add(total)
	return r.Evaluate(appliedCode, threshold)
}

// Evaluate applies the transitions for an amount that has already been
// accumulated, as when the store performed the increment itself.
// Completion and qualification are independent; when both fire the stored
// status is completed and the referrer reward is still due.
func (r *Referral) Evaluate(appliedCode string, threshold decimal.Decimal) (Progress, error) {
	if r.status != StatusApplied {
		return Progress{}, ErrNotApplied
	}

	from := r.status
	next := r.status
	rewardDue := false

	if !r.discountGiven && r.matchesDiscountCode(appliedCode) {
		r.discountGiven = true
		next = moreAdvanced(next, StatusCompleted)
	}
	if r.purchaseAmount.GreaterThanOrEqual(threshold) {
		rewardDue = true
		next = moreAdvanced(next, StatusQualified)
	}

	if next != from && !from.CanTransitionTo(next) {
		return Progress{}, ErrStatusRegression
	}
	r.status = next

	return Progress{
		From:           from,
		Status:         r.status,
		PurchaseAmount: r.purchaseAmount,
		DiscountGiven:  r.discountGiven,
		RewardDue:      rewardDue,
	}, nil
}

func (r *Referral) matchesDiscountCode(code string) bool {
	code = strings.TrimSpace(code)
	return code != "" && r.discountCode != "" && strings.EqualFold(code, r.discountCode)
}

func (r *Referral) ID() uuid.UUID                   { return r.id }
func (r *Referral) ReferrerID() uuid.UUID           { return r.referrerID }
func (r *Referral) ReferrerEmail() string           { return r.referrerEmail }
func (r *Referral) ReferredID() uuid.UUID           { return r.referredID }
func (r *Referral) ReferredEmail() string           { return r.referredEmail }
func (r *Referral) DiscountCode() string            { return r.discountCode }
func (r *Referral) PurchaseAmount() decimal.Decimal { return r.purchaseAmount }
func (r *Referral) DiscountGiven() bool             { return r.discountGiven }
func (r *Referral) Status() Status                  { return r.status }
func (r *Referral) CreatedAt() time.Time            { return r.createdAt }
func (r *Referral) UpdatedAt() time.Time            { return r.updatedAt }
