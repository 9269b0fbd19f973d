package commands

import (
	"context"
	"log/slog"
	"time"

	"order-ledger/internal/domain/user"
	"order-ledger/internal/pkg/clock"
	"order-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemInput struct {
	Kind      string          `json:"kind"`
	RefID     uuid.UUID       `json:"refId"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Option    string          `json:"option"`
}

type ShippingInput struct {
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Line1         string `json:"line1"`
	Line2         string `json:"line2"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
}

// PlaceOrderInput is hashed as JSON for idempotency; the key itself is excluded.
type PlaceOrderInput struct {
	UserID         *uuid.UUID       `json:"userId"`
	Items          []OrderItemInput `json:"items"`
	Shipping       ShippingInput    `json:"shipping"`
	Total          decimal.Decimal  `json:"total"`
	DeliveryFee    decimal.Decimal  `json:"deliveryFee"`
	VoucherID      *uuid.UUID       `json:"voucherId"`
	PaymentMethod  string           `json:"paymentMethod"`
	Note           string           `json:"note"`
	IdempotencyKey *uuid.UUID       `json:"-"`
}

type PlaceOrderResult struct {
	OrderID         uuid.UUID
	Reference       string
	VoucherRedeemed bool
	LoyaltyTier     *string
	Replayed        bool
}

type UpdateOrderStatusInput struct {
	ActorID   uuid.UUID
	ActorRole user.Role
	OrderID   uuid.UUID
	Target    string
}

type OrderSettings struct {
	DeepLinkBase   string
	IdempotencyTTL time.Duration
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error)
	UpdateOrderStatus(ctx context.Context, in UpdateOrderStatusInput) error
}

type orderUseCaseImpl struct {
	uow       shared.UnitOfWork
	vouchers  VoucherLedger
	loyalty   LoyaltyLedger
	referrals ReferralProgressor
	notifier  Notifier
	mailer    Mailer
	settings  OrderSettings
	clock     clock.Clock
	logger    *slog.Logger
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	vouchers VoucherLedger,
	loyaltyLedger LoyaltyLedger,
	referrals ReferralProgressor,
	notifier Notifier,
	mailer Mailer,
	settings OrderSettings,
	clk clock.Clock,
	logger *slog.Logger,
) OrderCommands {
	return &orderUseCaseImpl{
		uow:       uow,
		vouchers:  vouchers,
		loyalty:   loyaltyLedger,
		referrals: referrals,
		notifier:  notifier,
		mailer:    mailer,
		settings:  settings,
		clock:     clk,
		logger:    logger,
	}
}
