package commands

import (
	"context"
	"log/slog"
	"time"

	"order-ledger/internal/domain/referral"
	"order-ledger/internal/infra"
	"order-ledger/internal/pkg/clock"
	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errReferralMoved = errs.New("referral left applied status concurrently")

type ReferralSettings struct {
	QualifyAmount  decimal.Decimal
	RewardAmount   decimal.Decimal
	RewardValidity time.Duration
}

// ReferralContribution is one settled order of a referred user.
type ReferralContribution struct {
	UserID      uuid.UUID
	OrderID     uuid.UUID
	Total       decimal.Decimal
	AppliedCode string
}

type ReferralProgressor interface {
	// Advance applies the contribution to the user's applied referral. It
	// returns nil progress when there is no applied referral or the order
	// already contributed.
	Advance(ctx context.Context, c ReferralContribution) (*referral.Progress, error)
}

type referralProgressorImpl struct {
	uow      shared.UnitOfWork
	issuer   DiscountIssuer
	settings ReferralSettings
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReferralProgressor(
	uow shared.UnitOfWork,
	issuer DiscountIssuer,
	settings ReferralSettings,
	clk clock.Clock,
	logger *slog.Logger,
) ReferralProgressor {
	return &referralProgressorImpl{
		uow:      uow,
		issuer:   issuer,
		settings: settings,
		clock:    clk,
		logger:   logger,
	}
}

func (p *referralProgressorImpl) Advance(ctx context.Context, c ReferralContribution) (*referral.Progress, error) {
	ref, err := p.uow.CommandReads().ActiveReferralForUser(ctx, c.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := p.clock.Now()
	var progress *referral.Progress

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fresh, err := tx.Referrals().RecordContribution(ctx, ref.ID(), c.OrderID, c.Total, now)
		if err != nil || !fresh {
			return err
		}

		stored, err := tx.Referrals().AddPurchaseAmount(ctx, ref.ID(), c.Total, now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errReferralMoved
			}
			return err
		}

		pr, err := stored.Evaluate(c.AppliedCode, p.settings.QualifyAmount)
		if err != nil {
			return err
		}
		if pr.Changed() {
			saved, err := tx.Referrals().SaveProgress(ctx, ref.ID(), pr, now)
			if err != nil {
				return err
			}
			if !saved {
				return errReferralMoved
			}
		}
		progress = &pr
		return nil
	})
	if errs.Is(err, errReferralMoved) {
		p.logger.InfoContext(ctx, "referral no longer applied, contribution skipped",
			slog.String("referral_id", ref.ID().String()),
			slog.String("order_id", c.OrderID.String()))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if progress == nil {
		p.logger.DebugContext(ctx, "order already contributed to referral",
			slog.String("referral_id", ref.ID().String()),
			slog.String("order_id", c.OrderID.String()))
		return nil, nil
	}

	// The applied guard on SaveProgress makes this reachable once per referral.
	if progress.RewardDue {
		runBestEffort(ctx, p.logger, "referral reward issuance", func(ctx context.Context) error {
			return p.issuer.IssueReferralReward(ctx, RewardRequest{
				ReferrerID:    ref.ReferrerID(),
				ReferrerEmail: ref.ReferrerEmail(),
				ReferralID:    ref.ID(),
				Amount:        p.settings.RewardAmount,
			})
		})
	}

	return progress, nil
}
