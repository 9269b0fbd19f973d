package bootstrap

import (
	"log/slog"

	"order-ledger/internal/infra/notify"
	"order-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailSender,
	),
)

// NewMailSender returns a nil sender when mail is disabled; the mailer then
// logs and skips.
func NewMailSender(cfg config.Config, logger *slog.Logger) (notify.Sender, error) {
	client, err := notify.NewSMTPClient(cfg.Mail)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Info("order status email disabled: MAIL_ENABLED=false")
		return nil, nil
	}
	return client, nil
}
