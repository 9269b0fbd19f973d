package queries

import (
	"context"
	"time"

	"order-ledger/internal/domain/user"
	"order-ledger/internal/infra"
	"order-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrOrderAccess   = errs.New("order access denied")
)

type OrderItemView struct {
	LineNo    int32           `json:"lineNo"`
	Kind      string          `json:"kind"`
	RefID     uuid.UUID       `json:"refId"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Option    string          `json:"option,omitempty"`
}

type ShippingView struct {
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Line1         string `json:"line1"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode,omitempty"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	UserID        *uuid.UUID      `json:"userId,omitempty"`
	Reference     string          `json:"reference"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
	Total         decimal.Decimal `json:"total"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	VoucherID     *uuid.UUID      `json:"voucherId,omitempty"`
	VoucherCode   *string         `json:"voucherCode,omitempty"`
	LoyaltyTier   *string         `json:"loyaltyTier,omitempty"`
	FirstOrder    bool            `json:"firstOrder"`
	Note          *string         `json:"note,omitempty"`
	Shipping      ShippingView    `json:"shipping"`
	Items         []OrderItemView `json:"items"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type OrderReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type OrderQueries interface {
	// GetByID returns the order to its owner or to an admin.
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*OrderView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if actorRole.IsAdmin() {
		return view, nil
	}
	// Guest orders are visible to admins only.
	if view.UserID == nil || *view.UserID != actorID {
		return nil, ErrOrderAccess
	}
	return view, nil
}
