package converter

import (
	"order-ledger/internal/domain/voucher"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"
)

func VoucherToCreateParams(v *voucher.Voucher) sqlc.CreateVoucherParams {
	return sqlc.CreateVoucherParams{
		ID:             v.ID(),
		Code:           v.Code().String(),
		DiscountKind:   string(v.Discount().Kind()),
		DiscountValue:  v.Discount().Value(),
		MinOrderAmount: v.MinOrderAmount(),
		MaxUses:        pgconv.Int32PtrToPgtype(v.MaxUses()),
		UsedCount:      v.UsedCount(),
		Active:         v.Active(),
		ValidFrom:      pgconv.TimePtrToPgtype(v.ValidFrom()),
		ValidTo:        pgconv.TimePtrToPgtype(v.ValidTo()),
		IssuedTo:       pgconv.UUIDPtrToPgtype(v.IssuedTo()),
		CreatedAt:      pgconv.TimeToPgtype(v.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(v.UpdatedAt()),
	}
}
