package converter

import (
	"order-ledger/internal/domain/voucher"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"
)

func VoucherFromRow(row sqlc.Vouchers) (*voucher.Voucher, error) {
	discount, err := voucher.NewDiscount(row.DiscountKind, row.DiscountValue)
	if err != nil {
		return nil, err
	}
	return voucher.Reconstruct(voucher.ReconstructParams{
		ID:             row.ID,
		Code:           voucher.Code(row.Code),
		Discount:       discount,
		MinOrderAmount: row.MinOrderAmount,
		MaxUses:        pgconv.Int32PtrFromPgtype(row.MaxUses),
		UsedCount:      row.UsedCount,
		Active:         row.Active,
		ValidFrom:      pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidTo:        pgconv.TimePtrFromPgtype(row.ValidTo),
		IssuedTo:       pgconv.UUIDPtrFromPgtype(row.IssuedTo),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
