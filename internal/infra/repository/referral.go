package repository

import (
	"context"
	"time"

	"order-ledger/internal/domain/referral"
	"order-ledger/internal/infra"
	infraconv "order-ledger/internal/infra/converter"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReferralWriteQueries interface {
	CreateReferralContribution(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReferralContributionParams) (int64, error)
	AddReferralPurchaseAmount(ctx context.Context, db sqlc.DBTX, arg sqlc.AddReferralPurchaseAmountParams) (sqlc.Referrals, error)
	UpdateReferralProgress(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReferralProgressParams) (int64, error)
}

type ReferralRepository struct {
	queries ReferralWriteQueries
	db      sqlc.DBTX
}

func NewReferralRepository(queries ReferralWriteQueries, db sqlc.DBTX) *ReferralRepository {
	return &ReferralRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReferralRepository) RecordContribution(ctx context.Context, referralID, orderID uuid.UUID, amount decimal.Decimal, at time.Time) (bool, error) {
	n, err := r.queries.CreateReferralContribution(ctx, r.db, sqlc.CreateReferralContributionParams{
		ReferralID: referralID,
		OrderID:    orderID,
		Amount:     amount,
		CreatedAt:  pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record referral contribution", err)
	}
	return n == 1, nil
}

func (r *ReferralRepository) AddPurchaseAmount(ctx context.Context, referralID uuid.UUID, amount decimal.Decimal, at time.Time) (*referral.Referral, error) {
	row, err := r.queries.AddReferralPurchaseAmount(ctx, r.db, sqlc.AddReferralPurchaseAmountParams{
		Amount:    amount,
		UpdatedAt: pgconv.TimeToPgtype(at),
		ID:        referralID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("referral is no longer applied", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to add referral purchase amount", err)
	}

	ref, err := infraconv.ReferralFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode referral", err)
	}
	return ref, nil
}

func (r *ReferralRepository) SaveProgress(ctx context.Context, referralID uuid.UUID, p referral.Progress, at time.Time) (bool, error) {
	n, err := r.queries.UpdateReferralProgress(ctx, r.db, sqlc.UpdateReferralProgressParams{
		Status:        p.Status.String(),
		DiscountGiven: p.DiscountGiven,
		UpdatedAt:     pgconv.TimeToPgtype(at),
		ID:            referralID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to save referral progress", err)
	}
	return n == 1, nil
}
