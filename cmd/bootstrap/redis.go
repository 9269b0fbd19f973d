package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"order-ledger/internal/infra/notify"
	"order-ledger/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewPushPublisher,
	),
)

// NewPushPublisher returns a nil publisher when REDIS_ADDR is unset so
// notifications stay in-app only.
func NewPushPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (notify.Publisher, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("push fan-out disabled: REDIS_ADDR not set")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
