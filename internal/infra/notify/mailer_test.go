//go:build unit

package notify_test

import (
	"context"
	"errors"
	"testing"

	"order-ledger/internal/domain/order"
	"order-ledger/internal/infra/notify"
	"order-ledger/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type recordingSender struct {
	msgs []*mail.Msg
	err  error
}

func (s *recordingSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	s.msgs = append(s.msgs, messages...)
	return s.err
}

func statusEmail() commands.OrderStatusEmail {
	return commands.OrderStatusEmail{
		To:        "ada@example.com",
		Reference: "ORD-7K3M9QZX",
		Status:    "order delivered",
		Items: []commands.EmailItem{
			{Kind: "product", Quantity: 2, UnitPrice: decimal.NewFromInt(7500), Option: "large"},
			{Kind: "offer", Quantity: 1, UnitPrice: decimal.RequireFromString("99.5")},
		},
		Total: decimal.NewFromInt(15099),
		Shipping: order.ShippingAddress{
			RecipientName: "Ada <Obi>",
			Phone:         "+2348000000000",
			Line1:         "12 Marina Road",
			City:          "Lagos",
		},
	}
}

func TestMailer_SendOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and sends the status email", func(t *testing.T) {
		sender := &recordingSender{}
		m := notify.NewMailer(sender, "orders@shop.example", discardLogger())

		require.NoError(t, m.SendOrderStatus(ctx, statusEmail()))

		require.Len(t, sender.msgs, 1)
		msg := sender.msgs[0]
		assert.Equal(t, []string{"Order ORD-7K3M9QZX: order delivered"}, msg.GetGenHeader(mail.HeaderSubject))
		to := msg.GetTo()
		require.Len(t, to, 1)
		assert.Equal(t, "ada@example.com", to[0].Address)
		assert.Empty(t, to[0].Name)
		// envelope recipients carry angle brackets
		rcpts, err := msg.GetRecipients()
		require.NoError(t, err)
		assert.Equal(t, []string{"<ada@example.com>"}, rcpts)

		parts := msg.GetParts()
		require.Len(t, parts, 1)
		raw, err := parts[0].GetContent()
		require.NoError(t, err)
		body := string(raw)
		assert.Contains(t, body, "7500.00")
		assert.Contains(t, body, "99.50")
		assert.Contains(t, body, "15099.00")
		assert.Contains(t, body, "product (large)")
		// recipient names are escaped
		assert.Contains(t, body, "Ada &lt;Obi&gt;")
	})

	t.Run("disabled mail is a no-op", func(t *testing.T) {
		m := notify.NewMailer(nil, "orders@shop.example", discardLogger())
		assert.NoError(t, m.SendOrderStatus(ctx, statusEmail()))
	})

	t.Run("invalid recipient", func(t *testing.T) {
		sender := &recordingSender{}
		email := statusEmail()
		email.To = "not an address"

		err := notify.NewMailer(sender, "orders@shop.example", discardLogger()).SendOrderStatus(ctx, email)

		require.Error(t, err)
		assert.Empty(t, sender.msgs)
	})

	t.Run("smtp failure is reported", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("dial tcp: connection refused")}

		err := notify.NewMailer(sender, "orders@shop.example", discardLogger()).SendOrderStatus(ctx, statusEmail())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "send order status email")
	})
}
