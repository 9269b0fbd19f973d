package commands

import (
	"context"

	"order-ledger/internal/domain/loyalty"
	"order-ledger/internal/domain/order"
	"order-ledger/internal/pkg/clock"
	"order-ledger/internal/usecase/shared"
)

type LoyaltyLedger interface {
	// Grant awards the order's tier once; a second call for the same order is a no-op.
	Grant(ctx context.Context, o *order.Order) (*loyalty.Tier, error)
	// Retract undoes the order's grant once, recomputing the tier from the order total.
	Retract(ctx context.Context, o *order.Order) (bool, error)
}

type loyaltyLedgerImpl struct {
	uow   shared.UnitOfWork
	table loyalty.Table
	clock clock.Clock
}

func NewLoyaltyLedger(uow shared.UnitOfWork, table loyalty.Table, clk clock.Clock) LoyaltyLedger {
	return &loyaltyLedgerImpl{uow: uow, table: table, clock: clk}
}

func (l *loyaltyLedgerImpl) Grant(ctx context.Context, o *order.Order) (*loyalty.Tier, error) {
	if o.IsGuest() {
		return nil, nil
	}
	tier, ok := l.table.TierFor(o.Total(), o.FirstOrder())
	if !ok {
		return nil, nil
	}

	userID := *o.UserID()
	grant := loyalty.NewGrant(o.ID(), userID, tier, l.clock.Now())

	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Loyalty().InsertGrant(ctx, grant)
		if err != nil || !inserted {
			return err
		}
		if tier.GrantsPoints() {
			if err := tx.Loyalty().AddPoints(ctx, userID, tier.Points); err != nil {
				return err
			}
		}
		if tier.SpinUnlock {
			return tx.Loyalty().SetSpinEligible(ctx, userID, true)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tier, nil
}

func (l *loyaltyLedgerImpl) Retract(ctx context.Context, o *order.Order) (bool, error) {
	if o.IsGuest() {
		return false, nil
	}
	tier, ok := l.table.TierFor(o.Total(), o.FirstOrder())
	if !ok {
		return false, nil
	}

	userID := *o.UserID()
	var retracted bool
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		marked, err := tx.Loyalty().MarkRetracted(ctx, o.ID(), l.clock.Now())
		if err != nil || !marked {
			return err
		}
		if tier.GrantsPoints() {
			if err := tx.Loyalty().SubtractPoints(ctx, userID, tier.Points); err != nil {
				return err
			}
		}
		if tier.SpinUnlock {
			if err := tx.Loyalty().SetSpinEligible(ctx, userID, false); err != nil {
				return err
			}
		}
		retracted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return retracted, nil
}
