package readstore

import (
	"context"

	"order-ledger/internal/domain/voucher"
	"order-ledger/internal/infra"
	"order-ledger/internal/infra/converter"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VoucherReadQueries interface {
	GetVoucherByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vouchers, error)
	VoucherUsageExists(ctx context.Context, db sqlc.DBTX, arg sqlc.VoucherUsageExistsParams) (bool, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      sqlc.DBTX
}

func NewVoucherReadStore(queries VoucherReadQueries, db sqlc.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherReadStore) FindByID(ctx context.Context, id uuid.UUID) (*voucher.Voucher, error) {
	row, err := r.queries.GetVoucherByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get voucher by id", err)
	}

	v, err := converter.VoucherFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode voucher", err)
	}
	return v, nil
}

func (r *VoucherReadStore) UsageExists(ctx context.Context, voucherID, userID uuid.UUID) (bool, error) {
	exists, err := r.queries.VoucherUsageExists(ctx, r.db, sqlc.VoucherUsageExistsParams{
		VoucherID: voucherID,
		UserID:    pgconv.UUIDToPgtype(userID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check voucher usage", err)
	}
	return exists, nil
}
