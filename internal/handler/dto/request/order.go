package request

import (
	"order-ledger/internal/pkg/patch"
	"order-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	Kind      string          `json:"kind" binding:"required,oneof=product bundle offer"`
	RefID     uuid.UUID       `json:"refId" binding:"required"`
	Quantity  int32           `json:"quantity" binding:"required,min=1,max=999"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Option    *string         `json:"option" binding:"omitempty,max=100"`
}

type ShippingRequest struct {
	RecipientName string  `json:"recipientName" binding:"required,max=100"`
	Phone         string  `json:"phone" binding:"required,max=30"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Line1         string  `json:"line1" binding:"required,max=200"`
	Line2         *string `json:"line2" binding:"omitempty,max=200"`
	City          string  `json:"city" binding:"required,max=100"`
	PostalCode    *string `json:"postalCode" binding:"omitempty,max=20"`
}

// Amounts are validated by the domain; decimals accept JSON numbers or strings.
type PlaceOrderRequest struct {
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,max=100,dive"`
	Shipping      ShippingRequest    `json:"shipping"`
	Total         decimal.Decimal    `json:"total"`
	DeliveryFee   decimal.Decimal    `json:"deliveryFee"`
	VoucherID     *uuid.UUID         `json:"voucherId"`
	PaymentMethod string             `json:"paymentMethod" binding:"required,oneof=cash_on_delivery card wallet"`
	Note          *string            `json:"note" binding:"omitempty,max=500"`
}

func (r PlaceOrderRequest) ToInput(userID *uuid.UUID, idempotencyKey *uuid.UUID) commands.PlaceOrderInput {
	items := make([]commands.OrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.OrderItemInput{
			Kind:      it.Kind,
			RefID:     it.RefID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Option:    patch.Coalesce(it.Option, ""),
		})
	}

	return commands.PlaceOrderInput{
		UserID: userID,
		Items:  items,
		Shipping: commands.ShippingInput{
			RecipientName: r.Shipping.RecipientName,
			Phone:         r.Shipping.Phone,
			Email:         patch.Coalesce(r.Shipping.Email, ""),
			Line1:         r.Shipping.Line1,
			Line2:         patch.Coalesce(r.Shipping.Line2, ""),
			City:          r.Shipping.City,
			PostalCode:    patch.Coalesce(r.Shipping.PostalCode, ""),
		},
		Total:          r.Total,
		DeliveryFee:    r.DeliveryFee,
		VoucherID:      r.VoucherID,
		PaymentMethod:  r.PaymentMethod,
		Note:           patch.Coalesce(r.Note, ""),
		IdempotencyKey: idempotencyKey,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=40"`
}
