package repository

import (
	"context"

	"order-ledger/internal/infra"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"
	"order-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	InsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) error
	DeleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) error
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, rec shared.IdempotencyRecord) (bool, error) {
	params := sqlc.InsertIdempotencyKeyParams{
		Key:         rec.Key,
		UserID:      pgconv.UUIDPtrToPgtype(rec.UserID),
		RequestHash: rec.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
	}

	n, err := r.queries.InsertIdempotencyKey(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, key, orderID uuid.UUID, reference string) error {
	params := sqlc.CompleteIdempotencyKeyParams{
		Key:             key,
		ResultOrderID:   pgconv.UUIDToPgtype(orderID),
		ResultReference: pgconv.StringToPgtype(reference),
	}

	if err := r.queries.CompleteIdempotencyKey(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

// Release drops a processing claim so the client can retry; completed keys survive until expiry.
func (r *IdempotencyRepository) Release(ctx context.Context, key uuid.UUID) error {
	if err := r.queries.DeleteIdempotencyKey(ctx, r.db, key); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}
