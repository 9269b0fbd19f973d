package discount

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"order-ledger/internal/domain/voucher"
	"order-ledger/internal/pkg/clock"
	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase/commands"
	"order-ledger/internal/usecase/shared"

	"github.com/oklog/ulid/v2"
)

const rewardCodePrefix = "REF-"

// Issuer mints the single-use voucher owed to a referrer and tells them about it.
type Issuer struct {
	uow      shared.UnitOfWork
	notifier commands.Notifier
	validity time.Duration
	clock    clock.Clock
	logger   *slog.Logger
}

func NewIssuer(uow shared.UnitOfWork, notifier commands.Notifier, validity time.Duration, clk clock.Clock, logger *slog.Logger) *Issuer {
	return &Issuer{
		uow:      uow,
		notifier: notifier,
		validity: validity,
		clock:    clk,
		logger:   logger,
	}
}

var _ commands.DiscountIssuer = (*Issuer)(nil)

func (i *Issuer) IssueReferralReward(ctx context.Context, req commands.RewardRequest) error {
	now := i.clock.Now()

	code, err := rewardCode(now)
	if err != nil {
		return err
	}
	discount, err := voucher.NewDiscount(string(voucher.DiscountFixed), req.Amount)
	if err != nil {
		return errs.Wrap(err, "reward discount")
	}
	v := voucher.NewSingleUse(code, discount, req.ReferrerID, now, now.Add(i.validity))

	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Vouchers().Create(ctx, v)
	})
	if err != nil {
		return errs.Wrap(err, "create referral reward voucher")
	}

	i.logger.InfoContext(ctx, "referral reward issued",
		"referral_id", req.ReferralID,
		"referrer_id", req.ReferrerID,
		"voucher_id", v.ID(),
		"code", code.String())

	// The voucher is already stored; a lost notification is only logged.
	if err := i.notifier.Notify(ctx, commands.Notification{
		UserID:  req.ReferrerID,
		Title:   "You earned a referral reward",
		Message: "Use code " + code.String() + " for " + req.Amount.StringFixed(2) + " off your next order.",
	}); err != nil {
		i.logger.WarnContext(ctx, "referral reward notification failed", "referrer_id", req.ReferrerID, "error", err)
	}
	return nil
}

func rewardCode(now time.Time) (voucher.Code, error) {
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return "", errs.Wrap(err, "generate reward code")
	}
	s := id.String()
	return voucher.NewCode(rewardCodePrefix + s[len(s)-10:])
}
