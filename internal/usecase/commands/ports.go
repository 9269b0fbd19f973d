package commands

import (
	"context"

	"order-ledger/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outbound collaborators. Callers treat every error from these as fail-soft.

type Notification struct {
	UserID  uuid.UUID
	Title   string
	Message string
	Link    string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type EmailItem struct {
	Kind      string
	Quantity  int32
	UnitPrice decimal.Decimal
	Option    string
}

type OrderStatusEmail struct {
	To        string
	Reference string
	Status    string
	Items     []EmailItem
	Total     decimal.Decimal
	Shipping  order.ShippingAddress
}

type Mailer interface {
	SendOrderStatus(ctx context.Context, msg OrderStatusEmail) error
}

type RewardRequest struct {
	ReferrerID    uuid.UUID
	ReferrerEmail string
	ReferralID    uuid.UUID
	Amount        decimal.Decimal
}

type DiscountIssuer interface {
	IssueReferralReward(ctx context.Context, req RewardRequest) error
}
