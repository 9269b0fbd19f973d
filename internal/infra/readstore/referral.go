package readstore

import (
	"context"

	"order-ledger/internal/domain/referral"
	"order-ledger/internal/infra"
	"order-ledger/internal/infra/converter"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReferralReadQueries interface {
	GetAppliedReferralByReferred(ctx context.Context, db sqlc.DBTX, referredID uuid.UUID) (sqlc.Referrals, error)
}

type ReferralReadStore struct {
	queries ReferralReadQueries
	db      sqlc.DBTX
}

func NewReferralReadStore(queries ReferralReadQueries, db sqlc.DBTX) *ReferralReadStore {
	return &ReferralReadStore{
		queries: queries,
		db:      db,
	}
}

// FindAppliedByReferred returns the referral still waiting on the referred user's purchases.
func (r *ReferralReadStore) FindAppliedByReferred(ctx context.Context, userID uuid.UUID) (*referral.Referral, error) {
	row, err := r.queries.GetAppliedReferralByReferred(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no applied referral", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get referral", err)
	}

	ref, err := converter.ReferralFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode referral", err)
	}
	return ref, nil
}
