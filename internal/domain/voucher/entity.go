package voucher

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInactive      = errors.New("voucher is inactive")
	ErrNotYetValid   = errors.New("voucher is not yet valid")
	ErrExpired       = errors.New("voucher has expired")
	ErrMinimumNotMet = errors.New("order total below voucher minimum")
	ErrExhausted     = errors.New("voucher usage limit reached")
	ErrNotOwner      = errors.New("voucher is issued to another user")
)

type Voucher struct {
	id             uuid.UUID
	code           Code
	discount       Discount
	minOrderAmount decimal.Decimal
	maxUses        *int32
	usedCount      int32
	active         bool
	validFrom      *time.Time
	validTo        *time.Time
	issuedTo       *uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

type ReconstructParams struct {
	ID             uuid.UUID
	Code           Code
	Discount       Discount
	MinOrderAmount decimal.Decimal
	MaxUses        *int32
	UsedCount      int32
	Active         bool
	ValidFrom      *time.Time
	ValidTo        *time.Time
	IssuedTo       *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(p ReconstructParams) *Voucher {
	return &Voucher{
		id:             p.ID,
		code:           p.Code,
		discount:       p.Discount,
		minOrderAmount: p.MinOrderAmount,
		maxUses:        p.MaxUses,
		usedCount:      p.UsedCount,
		active:         p.Active,
		validFrom:      p.ValidFrom,
		validTo:        p.ValidTo,
		issuedTo:       p.IssuedTo,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}
}

// NewSingleUse builds a voucher that one holder may redeem once before validTo.
func NewSingleUse(code Code, discount Discount, holder uuid.UUID, now, validTo time.Time) *Voucher {
	one := int32(1)
	return &Voucher{
		id:             uuid.New(),
		code:           code,
		discount:       discount,
		minOrderAmount: decimal.Zero,
		maxUses:        &one,
		active:         true,
		validFrom:      &now,
		validTo:        &validTo,
		issuedTo:       &holder,
		createdAt:      now,
		updatedAt:      now,
	}
}

func (v *Voucher) IsExhausted() bool {
	return v.maxUses != nil && v.usedCount >= *v.maxUses
}

func (v *Voucher) RemainingUses() (int32, bool) {
	if v.maxUses == nil {
		return 0, false
	}
	left := *v.maxUses - v.usedCount
	if left < 0 {
		left = 0
	}
	return left, true
}

func (v *Voucher) CheckRedeemable(now time.Time, orderTotal decimal.Decimal) error {
	if !v.active {
		return ErrInactive
	}
	if v.validFrom != nil && now.Before(*v.validFrom) {
		return ErrNotYetValid
	}
	if v.validTo != nil && now.After(*v.validTo) {
		return ErrExpired
	}
	if orderTotal.LessThan(v.minOrderAmount) {
		return ErrMinimumNotMet
	}
	if v.IsExhausted() {
		return ErrExhausted
	}
	return nil
}

func (v *Voucher) CheckHolder(userID *uuid.UUID) error {
	if v.issuedTo == nil {
		return nil
	}
	if userID == nil || *userID != *v.issuedTo {
		return ErrNotOwner
	}
	return nil
}

func (v *Voucher) ID() uuid.UUID                   { return v.id }
func (v *Voucher) Code() Code                      { return v.code }
func (v *Voucher) Discount() Discount              { return v.discount }
func (v *Voucher) MinOrderAmount() decimal.Decimal { return v.minOrderAmount }
func (v *Voucher) MaxUses() *int32                 { return v.maxUses }
func (v *Voucher) UsedCount() int32                { return v.usedCount }
func (v *Voucher) Active() bool                    { return v.active }
func (v *Voucher) ValidFrom() *time.Time           { return v.validFrom }
func (v *Voucher) ValidTo() *time.Time             { return v.validTo }
func (v *Voucher) IssuedTo() *uuid.UUID            { return v.issuedTo }
func (v *Voucher) CreatedAt() time.Time            { return v.createdAt }
func (v *Voucher) UpdatedAt() time.Time            { return v.updatedAt }
