package readstore

import (
	"context"

	"order-ledger/internal/domain/order"
	"order-ledger/internal/infra"
	"order-ledger/internal/infra/converter"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"
	"order-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	CountPriorOrders(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) (int64, error)
	GetOrderViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrderViewByIDRow, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID loads the aggregate with its items for command-side use.
func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}

	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	o, err := converter.OrderFromRows(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order", err)
	}
	return o, nil
}

func (r *OrderReadStore) CountPriorOrders(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountPriorOrders(ctx, r.db, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count prior orders", err)
	}
	return n, nil
}

func (r *OrderReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view by id", err)
	}

	itemRows, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	shipping, err := converter.ShippingFromJSON(row.Shipping)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode shipping", err)
	}

	view := &queries.OrderView{
		ID:            row.ID,
		UserID:        pgconv.UUIDPtrFromPgtype(row.UserID),
		Reference:     row.Reference,
		Status:        row.Status,
		PaymentMethod: row.PaymentMethod,
		PaymentStatus: row.PaymentStatus,
		Total:         row.Total,
		DeliveryFee:   row.DeliveryFee,
		VoucherID:     pgconv.UUIDPtrFromPgtype(row.VoucherID),
		VoucherCode:   pgconv.StringPtrFromPgtype(row.VoucherCode),
		LoyaltyTier:   pgconv.StringPtrFromPgtype(row.LoyaltyTier),
		FirstOrder:    row.FirstOrder,
		Note:          pgconv.StringPtrFromPgtype(row.Note),
		Shipping:      queries.ShippingView(shipping),
		Items:         make([]queries.OrderItemView, 0, len(itemRows)),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, it := range itemRows {
		view.Items = append(view.Items, queries.OrderItemView{
			LineNo:    it.LineNo,
			Kind:      it.Kind,
			RefID:     it.RefID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Option:    it.ItemOption,
		})
	}
	return view, nil
}
