package repository

import (
	"context"

	"order-ledger/internal/domain/voucher"
	"order-ledger/internal/infra"
	"order-ledger/internal/infra/repository/converter"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"
	"order-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoucherWriteQueries interface {
	IncrementVoucherUsedCount(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementVoucherUsedCountParams) (int64, error)
	CreateVoucherUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherUsageParams) error
	CreateVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherParams) error
}

type VoucherRepository struct {
	queries VoucherWriteQueries
	db      sqlc.DBTX
}

func NewVoucherRepository(queries VoucherWriteQueries, db sqlc.DBTX) *VoucherRepository {
	return &VoucherRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherRepository) IncrementUsedCount(ctx context.Context, id uuid.UUID, expected int32) (bool, error) {
	n, err := r.queries.IncrementVoucherUsedCount(ctx, r.db, sqlc.IncrementVoucherUsedCountParams{
		ID:                id,
		ExpectedUsedCount: expected,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment voucher used count", err)
	}
	return n == 1, nil
}

func (r *VoucherRepository) InsertUsage(ctx context.Context, usage shared.VoucherUsage) error {
	err := r.queries.CreateVoucherUsage(ctx, r.db, sqlc.CreateVoucherUsageParams{
		VoucherID:  usage.VoucherID,
		UserID:     pgconv.UUIDPtrToPgtype(usage.UserID),
		OrderID:    usage.OrderID,
		RedeemedAt: pgconv.TimeToPgtype(usage.RedeemedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record voucher usage", err)
	}
	return nil
}

func (r *VoucherRepository) Create(ctx context.Context, v *voucher.Voucher) error {
	if err := r.queries.CreateVoucher(ctx, r.db, converter.VoucherToCreateParams(v)); err != nil {
		return infra.WrapRepoErr("failed to create voucher", err)
	}
	return nil
}
