package components

import (
	"order-ledger/internal/domain/loyalty"
	"order-ledger/internal/pkg/clock"
	"order-ledger/internal/pkg/config"
	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase"
	"order-ledger/internal/usecase/commands"
	"order-ledger/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	loyalty.DefaultTable,
	NewReferralSettings,
	NewOrderSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewVoucherLedger,
		commands.NewLoyaltyLedger,
		commands.NewReferralProgressor,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewReferralSettings(cfg config.Config) (commands.ReferralSettings, error) {
	qualify, err := decimal.NewFromString(cfg.Referral.QualifyAmount)
	if err != nil {
		return commands.ReferralSettings{}, errs.Wrap(err, "invalid REFERRAL_QUALIFY_AMOUNT")
	}
	reward, err := decimal.NewFromString(cfg.Referral.RewardAmount)
	if err != nil {
		return commands.ReferralSettings{}, errs.Wrap(err, "invalid REFERRAL_REWARD_AMOUNT")
	}
	if !qualify.IsPositive() || !reward.IsPositive() {
		return commands.ReferralSettings{}, errs.New("referral amounts must be positive")
	}
	return commands.ReferralSettings{
		QualifyAmount:  qualify,
		RewardAmount:   reward,
		RewardValidity: cfg.Referral.RewardValidity,
	}, nil
}

func NewOrderSettings(cfg config.Config) commands.OrderSettings {
	return commands.OrderSettings{
		DeepLinkBase:   cfg.Notify.OrderDeepLinkBase,
		IdempotencyTTL: cfg.Order.IdempotencyTTL,
	}
}
