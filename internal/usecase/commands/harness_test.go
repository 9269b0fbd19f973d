//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"order-ledger/internal/domain/loyalty"
	"order-ledger/internal/pkg/clock"
	"order-ledger/internal/usecase/commands"
	"order-ledger/tests/common/memstore"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type harness struct {
	store   *memstore.Store
	clock   *clock.MockClock
	notes   *memstore.Notifications
	mails   *memstore.Mails
	rewards *memstore.Rewards

	vouchers  commands.VoucherLedger
	loyalty   commands.LoyaltyLedger
	referrals commands.ReferralProgressor
	orders    commands.OrderCommands
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		store:   memstore.New(),
		clock:   clock.NewMockClock(testNow),
		notes:   &memstore.Notifications{},
		mails:   &memstore.Mails{},
		rewards: &memstore.Rewards{},
	}
	h.store.Now = h.clock.Now
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h.vouchers = commands.NewVoucherLedger(h.store, h.clock, logger)
	h.loyalty = commands.NewLoyaltyLedger(h.store, loyalty.DefaultTable(), h.clock)
	h.referrals = commands.NewReferralProgressor(h.store, h.rewards, commands.ReferralSettings{
		QualifyAmount:  decimal.NewFromInt(20000),
		RewardAmount:   decimal.NewFromInt(2000),
		RewardValidity: 90 * 24 * time.Hour,
	}, h.clock, logger)
	h.orders = commands.NewOrderCommands(
		h.store,
		h.vouchers,
		h.loyalty,
		h.referrals,
		h.notes,
		h.mails,
		commands.OrderSettings{
			DeepLinkBase:   "storefront://orders/",
			IdempotencyTTL: 24 * time.Hour,
		},
		h.clock,
		logger,
	)
	return h
}
