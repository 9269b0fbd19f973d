package notify

import (
	"bytes"
	"context"
	"log/slog"

	"order-ledger/internal/pkg/config"
	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase/commands"

	"github.com/wneessen/go-mail"
)

// Sender is satisfied by *mail.Client.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type Mailer struct {
	sender Sender
	from   string
	logger *slog.Logger
}

func NewMailer(sender Sender, from string, logger *slog.Logger) *Mailer {
	return &Mailer{
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// NewSMTPClient returns nil when mail is disabled.
func NewSMTPClient(cfg config.MailConfig) (*mail.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "create smtp client")
	}
	return client, nil
}

var _ commands.Mailer = (*Mailer)(nil)

func (m *Mailer) SendOrderStatus(ctx context.Context, email commands.OrderStatusEmail) error {
	if m.sender == nil {
		m.logger.DebugContext(ctx, "mail disabled, skipping order status email", "reference", email.Reference)
		return nil
	}

	msg, err := m.buildOrderStatus(email)
	if err != nil {
		return err
	}

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "send order status email")
	}
	m.logger.InfoContext(ctx, "order status email sent", "reference", email.Reference, "status", email.Status)
	return nil
}

func (m *Mailer) buildOrderStatus(email commands.OrderStatusEmail) (*mail.Msg, error) {
	var body bytes.Buffer
	if err := orderStatusTmpl.Execute(&body, email); err != nil {
		return nil, errs.Wrap(err, "render order status email")
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(email.To); err != nil {
		return nil, errs.Wrap(err, "invalid recipient address")
	}
	msg.Subject("Order " + email.Reference + ": " + email.Status)
	msg.SetBodyString(mail.TypeTextHTML, body.String())
	return msg, nil
}
