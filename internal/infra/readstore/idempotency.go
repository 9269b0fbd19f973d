package readstore

import (
	"context"

	"order-ledger/internal/infra"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"
	"order-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	db      sqlc.DBTX
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries, db sqlc.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		db:      db,
	}
}

// Get returns the record as stored; expiry is judged by the caller's clock.
func (r *IdempotencyReadStore) Get(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:             row.Key,
		UserID:          pgconv.UUIDPtrFromPgtype(row.UserID),
		Status:          row.Status,
		RequestHash:     row.RequestHash,
		ResultOrderID:   pgconv.UUIDPtrFromPgtype(row.ResultOrderID),
		ResultReference: pgconv.StringPtrFromPgtype(row.ResultReference),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
