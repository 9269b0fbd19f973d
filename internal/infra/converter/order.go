package converter

import (
	"encoding/json"

	"order-ledger/internal/domain/order"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/pkg/pgconv"
)

// shippingDoc is the jsonb layout of orders.shipping.
type shippingDoc struct {
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Line1         string `json:"line1"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode,omitempty"`
}

func ShippingToJSON(a order.ShippingAddress) ([]byte, error) {
	return json.Marshal(shippingDoc(a))
}

func ShippingFromJSON(raw []byte) (order.ShippingAddress, error) {
	var doc shippingDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return order.ShippingAddress{}, errs.Wrap(err, "decode shipping")
	}
	return order.ShippingAddress(doc), nil
}

func ItemsFromRows(rows []sqlc.OrderItems) ([]order.Item, error) {
	items := make([]order.Item, 0, len(rows))
	for _, row := range rows {
		kind, err := order.ParseItemKind(row.Kind)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(kind, row.RefID, row.Quantity, row.UnitPrice, row.ItemOption)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func OrderFromRows(row sqlc.Orders, itemRows []sqlc.OrderItems) (*order.Order, error) {
	items, err := ItemsFromRows(itemRows)
	if err != nil {
		return nil, err
	}
	shipping, err := ShippingFromJSON(row.Shipping)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	method, err := order.ParsePaymentMethod(row.PaymentMethod)
	if err != nil {
		return nil, err
	}
	note, err := order.NewNote(row.Note.String)
	if err != nil {
		return nil, err
	}

	return order.Reconstruct(order.ReconstructParams{
		ID:            row.ID,
		UserID:        pgconv.UUIDPtrFromPgtype(row.UserID),
		Reference:     order.Reference(row.Reference),
		Items:         items,
		Shipping:      shipping,
		Total:         row.Total,
		DeliveryFee:   row.DeliveryFee,
		VoucherID:     pgconv.UUIDPtrFromPgtype(row.VoucherID),
		Status:        status,
		PaymentMethod: method,
		PaymentStatus: order.PaymentStatus(row.PaymentStatus),
		Note:          note,
		FirstOrder:    row.FirstOrder,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
