//go:build unit || e2e

package builder

import (
	"time"

	"order-ledger/internal/domain/voucher"
	sqlc "order-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type VoucherBuilder struct {
	ID             uuid.UUID
	Code           string
	DiscountKind   string
	DiscountValue  decimal.Decimal
	MinOrderAmount decimal.Decimal
	MaxUses        *int32
	UsedCount      int32
	Active         bool
	ValidFrom      *time.Time
	ValidTo        *time.Time
	IssuedTo       *uuid.UUID
	CreatedAt      time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	maxUses := int32(10)
	return &VoucherBuilder{
		ID:             uuid.New(),
		Code:           "WELCOME-10",
		DiscountKind:   string(voucher.DiscountFixed),
		DiscountValue:  decimal.NewFromInt(1000),
		MinOrderAmount: decimal.Zero,
		MaxUses:        &maxUses,
		Active:         true,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (v *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(v)
	return v
}

// Capped sets max_uses; a negative cap means unlimited.
func (v *VoucherBuilder) Capped(n int32) *VoucherBuilder {
	if n < 0 {
		v.MaxUses = nil
		return v
	}
	v.MaxUses = &n
	return v
}

// Build methods
func (v *VoucherBuilder) BuildParams() voucher.ReconstructParams {
	discount, err := voucher.NewDiscount(v.DiscountKind, v.DiscountValue)
	if err != nil {
		panic(err)
	}
	return voucher.ReconstructParams{
		ID:             v.ID,
		Code:           voucher.Code(v.Code),
		Discount:       discount,
		MinOrderAmount: v.MinOrderAmount,
		MaxUses:        v.MaxUses,
		UsedCount:      v.UsedCount,
		Active:         v.Active,
		ValidFrom:      v.ValidFrom,
		ValidTo:        v.ValidTo,
		IssuedTo:       v.IssuedTo,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.CreatedAt,
	}
}

func (v *VoucherBuilder) BuildDomain() *voucher.Voucher {
	return voucher.Reconstruct(v.BuildParams())
}

func (v *VoucherBuilder) BuildInfra() sqlc.Vouchers {
	row := sqlc.Vouchers{
		ID:             v.ID,
		Code:           v.Code,
		DiscountKind:   v.DiscountKind,
		DiscountValue:  v.DiscountValue,
		MinOrderAmount: v.MinOrderAmount,
		UsedCount:      v.UsedCount,
		Active:         v.Active,
		CreatedAt:      pgtype.Timestamptz{Time: v.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: v.CreatedAt, Valid: true},
	}
	if v.MaxUses != nil {
		row.MaxUses = pgtype.Int4{Int32: *v.MaxUses, Valid: true}
	}
	if v.ValidFrom != nil {
		row.ValidFrom = pgtype.Timestamptz{Time: *v.ValidFrom, Valid: true}
	}
	if v.ValidTo != nil {
		row.ValidTo = pgtype.Timestamptz{Time: *v.ValidTo, Valid: true}
	}
	if v.IssuedTo != nil {
		row.IssuedTo = pgtype.UUID{Bytes: *v.IssuedTo, Valid: true}
	}
	return row
}
