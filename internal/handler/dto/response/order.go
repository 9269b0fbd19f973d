package response

import (
	"time"

	"order-ledger/internal/usecase/commands"
	"order-ledger/internal/usecase/queries"
)

type PlaceOrderResponse struct {
	Success         bool    `json:"success"`
	OrderID         string  `json:"orderId"`
	Reference       string  `json:"reference"`
	VoucherRedeemed bool    `json:"voucherRedeemed"`
	LoyaltyTier     *string `json:"loyaltyTier,omitempty"`
	Replayed        bool    `json:"replayed,omitempty"`
}

func FromPlaceOrderResult(r *commands.PlaceOrderResult) PlaceOrderResponse {
	return PlaceOrderResponse{
		Success:         true,
		OrderID:         r.OrderID.String(),
		Reference:       r.Reference,
		VoucherRedeemed: r.VoucherRedeemed,
		LoyaltyTier:     r.LoyaltyTier,
		Replayed:        r.Replayed,
	}
}

type StatusUpdateResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type OrderItemResponse struct {
	LineNo    int32  `json:"lineNo"`
	Kind      string `json:"kind"`
	RefID     string `json:"refId"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Option    string `json:"option,omitempty"`
}

type OrderResponse struct {
	ID            string               `json:"id"`
	UserID        *string              `json:"userId,omitempty"`
	Reference     string               `json:"reference"`
	Status        string               `json:"status"`
	PaymentMethod string               `json:"paymentMethod"`
	PaymentStatus string               `json:"paymentStatus"`
	Total         string               `json:"total"`
	DeliveryFee   string               `json:"deliveryFee"`
	VoucherCode   *string              `json:"voucherCode,omitempty"`
	LoyaltyTier   *string              `json:"loyaltyTier,omitempty"`
	FirstOrder    bool                 `json:"firstOrder"`
	Note          *string              `json:"note,omitempty"`
	Shipping      queries.ShippingView `json:"shipping"`
	Items         []OrderItemResponse  `json:"items"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func FromOrderView(v *queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, OrderItemResponse{
			LineNo:    it.LineNo,
			Kind:      it.Kind,
			RefID:     it.RefID.String(),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Option:    it.Option,
		})
	}

	var userID *string
	if v.UserID != nil {
		s := v.UserID.String()
		userID = &s
	}

	return OrderResponse{
		ID:            v.ID.String(),
		UserID:        userID,
		Reference:     v.Reference,
		Status:        v.Status,
		PaymentMethod: v.PaymentMethod,
		PaymentStatus: v.PaymentStatus,
		Total:         v.Total.StringFixed(2),
		DeliveryFee:   v.DeliveryFee.StringFixed(2),
		VoucherCode:   v.VoucherCode,
		LoyaltyTier:   v.LoyaltyTier,
		FirstOrder:    v.FirstOrder,
		Note:          v.Note,
		Shipping:      v.Shipping,
		Items:         items,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
