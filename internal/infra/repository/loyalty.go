package repository

import (
	"context"
	"time"

	"order-ledger/internal/domain/loyalty"
	"order-ledger/internal/infra"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LoyaltyWriteQueries interface {
	CreateLoyaltyGrant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLoyaltyGrantParams) (int64, error)
	MarkLoyaltyGrantRetracted(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkLoyaltyGrantRetractedParams) (int64, error)
	AddLoyaltyPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.AddLoyaltyPointsParams) error
	SubtractLoyaltyPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.SubtractLoyaltyPointsParams) error
	SetSpinEligible(ctx context.Context, db sqlc.DBTX, arg sqlc.SetSpinEligibleParams) error
}

type LoyaltyRepository struct {
	queries LoyaltyWriteQueries
	db      sqlc.DBTX
}

func NewLoyaltyRepository(queries LoyaltyWriteQueries, db sqlc.DBTX) *LoyaltyRepository {
	return &LoyaltyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LoyaltyRepository) InsertGrant(ctx context.Context, g loyalty.Grant) (bool, error) {
	n, err := r.queries.CreateLoyaltyGrant(ctx, r.db, sqlc.CreateLoyaltyGrantParams{
		OrderID:    g.OrderID,
		UserID:     g.UserID,
		Tier:       g.Tier,
		Points:     g.Points,
		SpinUnlock: g.SpinUnlock,
		GrantedAt:  pgconv.TimeToPgtype(g.GrantedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert loyalty grant", err)
	}
	return n == 1, nil
}

func (r *LoyaltyRepository) AddPoints(ctx context.Context, userID uuid.UUID, points int64) error {
	if err := r.queries.AddLoyaltyPoints(ctx, r.db, sqlc.AddLoyaltyPointsParams{Points: points, ID: userID}); err != nil {
		return infra.WrapRepoErr("failed to add loyalty points", err)
	}
	return nil
}

func (r *LoyaltyRepository) SubtractPoints(ctx context.Context, userID uuid.UUID, points int64) error {
	if err := r.queries.SubtractLoyaltyPoints(ctx, r.db, sqlc.SubtractLoyaltyPointsParams{Points: points, ID: userID}); err != nil {
		return infra.WrapRepoErr("failed to subtract loyalty points", err)
	}
	return nil
}

func (r *LoyaltyRepository) SetSpinEligible(ctx context.Context, userID uuid.UUID, eligible bool) error {
	if err := r.queries.SetSpinEligible(ctx, r.db, sqlc.SetSpinEligibleParams{ID: userID, SpinEligible: eligible}); err != nil {
		return infra.WrapRepoErr("failed to set spin eligibility", err)
	}
	return nil
}

func (r *LoyaltyRepository) MarkRetracted(ctx context.Context, orderID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.MarkLoyaltyGrantRetracted(ctx, r.db, sqlc.MarkLoyaltyGrantRetractedParams{
		OrderID:     orderID,
		RetractedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to retract loyalty grant", err)
	}
	return n == 1, nil
}
