package components

import (
	"log/slog"

	"order-ledger/internal/infra/discount"
	"order-ledger/internal/infra/notify"
	"order-ledger/internal/infra/readstore"
	"order-ledger/internal/infra/repository"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/infra/uow"
	"order-ledger/internal/pkg/clock"
	"order-ledger/internal/pkg/config"
	"order-ledger/internal/usecase/commands"
	"order-ledger/internal/usecase/queries"
	"order-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	adapterModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Command-side reads and repositories are built per transaction inside the
// unit of work; only the query-side stores are provided here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(notify.NotificationStore)),
		),
	),
)

var adapterModule = fx.Module("persistence/adapter",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
		fx.Annotate(
			NewDiscountIssuer,
			fx.As(new(commands.DiscountIssuer)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewNotifier(store notify.NotificationStore, publisher notify.Publisher, cfg config.Config, logger *slog.Logger) *notify.Dispatcher {
	return notify.NewDispatcher(store, publisher, cfg.Redis.PushChannelPrefix, logger)
}

func NewMailer(sender notify.Sender, cfg config.Config, logger *slog.Logger) *notify.Mailer {
	return notify.NewMailer(sender, cfg.Mail.From, logger)
}

func NewDiscountIssuer(u shared.UnitOfWork, notifier commands.Notifier, cfg config.Config, clk clock.Clock, logger *slog.Logger) *discount.Issuer {
	return discount.NewIssuer(u, notifier, cfg.Referral.RewardValidity, clk, logger)
}
