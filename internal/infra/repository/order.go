package repository

import (
	"context"

	"order-ledger/internal/domain/order"
	"order-ledger/internal/infra"
	"order-ledger/internal/infra/repository/converter"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderItems(ctx context.Context, db sqlc.DBTX, arg []sqlc.CreateOrderItemsParams) (int64, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error)
	ClearOrderVoucher(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	params, err := converter.OrderToCreateParams(o)
	if err != nil {
		return infra.WrapRepoErr("failed to encode order", err)
	}
	if err := r.queries.CreateOrder(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	items := converter.OrderItemsToCopyParams(o)
	n, err := r.queries.CreateOrderItems(ctx, r.db, items)
	if err != nil {
		return infra.WrapRepoErr("failed to create order items", err)
	}
	if n != int64(len(items)) {
		return infra.WrapRepoErr("order items partially written", nil)
	}
	return nil
}

// UpdateStatus reports KindConflict when the stored status is no longer change.From.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, change order.StatusChange) error {
	params := sqlc.UpdateOrderStatusParams{
		Status:         change.To.String(),
		PaymentStatus:  change.PaymentStatus.String(),
		UpdatedAt:      pgconv.TimeToPgtype(change.At),
		ID:             orderID,
		ExpectedStatus: change.From.String(),
	}

	n, err := r.queries.UpdateOrderStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *OrderRepository) ClearVoucher(ctx context.Context, orderID uuid.UUID) error {
	if err := r.queries.ClearOrderVoucher(ctx, r.db, orderID); err != nil {
		return infra.WrapRepoErr("failed to clear order voucher", err)
	}
	return nil
}
