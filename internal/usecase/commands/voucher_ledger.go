package commands

import (
	"context"
	"log/slog"

	"order-ledger/internal/infra"
	"order-ledger/internal/pkg/clock"
	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxRedeemAttempts bounds compare-and-swap retries under sustained contention.
const maxRedeemAttempts = 50

var errLostRace = errs.New("voucher counter changed concurrently")

type RedeemRequest struct {
	VoucherID uuid.UUID
	UserID    *uuid.UUID
	OrderID   uuid.UUID
}

type VoucherLedger interface {
	// TryRedeem consumes one unit of the voucher's capacity for the order.
	// A voucher found exhausted at redemption time is a lost race and yields
	// ErrVoucherRedemptionConflict.
	TryRedeem(ctx context.Context, req RedeemRequest) error
}

type voucherLedgerImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewVoucherLedger(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) VoucherLedger {
	return &voucherLedgerImpl{uow: uow, clock: clk, logger: logger}
}

// Each attempt re-reads used_count and re-checks max_uses before the
// conditional increment. A failed compare-and-swap means another redemption
// committed; after maxRedeemAttempts such losses the redemption gives up
// with ErrVoucherRedemptionConflict.
func (l *voucherLedgerImpl) TryRedeem(ctx context.Context, req RedeemRequest) error {
	for attempt := 1; attempt <= maxRedeemAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return l.redeemOnce(ctx, tx, req)
		})
		if !errs.Is(err, errLostRace) {
			return err
		}

		l.logger.DebugContext(ctx, "voucher redemption lost race, re-checking capacity",
			slog.String("voucher_id", req.VoucherID.String()),
			slog.Int("attempt", attempt))
	}

	l.logger.WarnContext(ctx, "voucher redemption gave up after repeated lost races",
		slog.String("voucher_id", req.VoucherID.String()),
		slog.Int("attempts", maxRedeemAttempts))
	return errs.Mark(errs.Wrapf(errLostRace, "after %d attempts", maxRedeemAttempts), ErrVoucherRedemptionConflict)
}

func (l *voucherLedgerImpl) redeemOnce(ctx context.Context, tx shared.Tx, req RedeemRequest) error {
	v, err := tx.Reads().VoucherByID(ctx, req.VoucherID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrVoucherNotFound)
		}
		return errs.Mark(err, ErrPersistence)
	}
	if v.IsExhausted() {
		return ErrVoucherRedemptionConflict
	}

	swapped, err := tx.Vouchers().IncrementUsedCount(ctx, v.ID(), v.UsedCount())
	if err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	if !swapped {
		return errLostRace
	}

	err = tx.Vouchers().InsertUsage(ctx, shared.VoucherUsage{
		VoucherID:  v.ID(),
		UserID:     req.UserID,
		OrderID:    req.OrderID,
		RedeemedAt: l.clock.Now(),
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, ErrVoucherAlreadyRedeemed)
		}
		return errs.Mark(err, ErrPersistence)
	}
	return nil
}
