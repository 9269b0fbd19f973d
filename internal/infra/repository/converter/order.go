package converter

import (
	"order-ledger/internal/domain/order"
	infraconv "order-ledger/internal/infra/converter"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func OrderToCreateParams(o *order.Order) (sqlc.CreateOrderParams, error) {
	shipping, err := infraconv.ShippingToJSON(o.Shipping())
	if err != nil {
		return sqlc.CreateOrderParams{}, err
	}

	params := sqlc.CreateOrderParams{
		ID:            o.ID(),
		UserID:        pgconv.UUIDPtrToPgtype(o.UserID()),
		Reference:     o.Reference().String(),
		Status:        o.Status().String(),
		PaymentMethod: o.PaymentMethod().String(),
		PaymentStatus: o.PaymentStatus().String(),
		Total:         o.Total(),
		DeliveryFee:   o.DeliveryFee(),
		VoucherID:     pgconv.UUIDPtrToPgtype(o.VoucherID()),
		Shipping:      shipping,
		FirstOrder:    o.FirstOrder(),
		CreatedAt:     pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(o.UpdatedAt()),
	}

	if note := o.Note(); !note.IsEmpty() {
		params.Note = pgconv.StringToPgtype(note.String())
	} else {
		params.Note = pgtype.Text{Valid: false}
	}

	return params, nil
}

func OrderItemsToCopyParams(o *order.Order) []sqlc.CreateOrderItemsParams {
	items := o.Items()
	params := make([]sqlc.CreateOrderItemsParams, 0, len(items))
	for i, item := range items {
		params = append(params, sqlc.CreateOrderItemsParams{
			OrderID:    o.ID(),
			LineNo:     int32(i + 1), // #nosec G115 -- item count is bounded by request validation
			Kind:       item.Kind().String(),
			RefID:      item.RefID(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			ItemOption: item.Option(),
		})
	}
	return params
}
