//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"order-ledger/internal/domain/order"
	reqdto "order-ledger/internal/handler/dto/request"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/usecase/commands"
	"order-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderItemFixture struct {
	Kind      string
	RefID     uuid.UUID
	Quantity  int32
	UnitPrice decimal.Decimal
	Option    string
}

type OrderBuilder struct {
	ID            uuid.UUID
	UserID        *uuid.UUID
	Reference     string
	Items         []OrderItemFixture
	Shipping      order.ShippingAddress
	Total         decimal.Decimal
	DeliveryFee   decimal.Decimal
	VoucherID     *uuid.UUID
	Status        string
	PaymentMethod string
	PaymentStatus string
	Note          string
	FirstOrder    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	userID := uuid.New()
	return &OrderBuilder{
		ID:        uuid.New(),
		UserID:    &userID,
		Reference: "ORD-20260101-ABC123",
		Items: []OrderItemFixture{
			{Kind: "product", RefID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(7500)},
		},
		Shipping: order.ShippingAddress{
			RecipientName: "Ada Obi",
			Phone:         "+2348000000000",
			Email:         "ada@example.com",
			Line1:         "12 Marina Road",
			City:          "Lagos",
		},
		Total:         decimal.NewFromInt(15000),
		DeliveryFee:   decimal.NewFromInt(1500),
		Status:        string(order.StatusConfirmed),
		PaymentMethod: string(order.PaymentCashOnDelivery),
		PaymentStatus: string(order.PaymentPending),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

// Guest clears the owner.
func (o *OrderBuilder) Guest() *OrderBuilder {
	o.UserID = nil
	return o
}

func (o *OrderBuilder) WithUserID(id *uuid.UUID) *OrderBuilder {
	o.UserID = id
	return o
}

func (o *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	o.Status = string(s)
	return o
}

func (o *OrderBuilder) WithPaymentMethod(m string) *OrderBuilder {
	o.PaymentMethod = m
	return o
}

func (o *OrderBuilder) WithPaymentStatus(s order.PaymentStatus) *OrderBuilder {
	o.PaymentStatus = string(s)
	return o
}

// Build methods

// Build runs the fixture through the same validation as checkout.
func (o *OrderBuilder) Build() (*order.Order, error) {
	items := make([]order.Item, 0, len(o.Items))
	for _, it := range o.Items {
		kind, err := order.ParseItemKind(it.Kind)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(kind, it.RefID, it.Quantity, it.UnitPrice, it.Option)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	shipping, err := order.NewShippingAddress(o.Shipping)
	if err != nil {
		return nil, err
	}
	method, err := order.ParsePaymentMethod(o.PaymentMethod)
	if err != nil {
		return nil, err
	}
	note, err := order.NewNote(o.Note)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(order.NewOrderParams{
		UserID:        o.UserID,
		Items:         items,
		Shipping:      shipping,
		Total:         o.Total,
		DeliveryFee:   o.DeliveryFee,
		VoucherID:     o.VoucherID,
		PaymentMethod: method,
		Note:          note,
	}, o.CreatedAt)
}

func (o *OrderBuilder) BuildPlaceOrderRequestDTO() reqdto.PlaceOrderRequest {
	items := make([]reqdto.OrderItemRequest, 0, len(o.Items))
	for _, it := range o.Items {
		req := reqdto.OrderItemRequest{
			Kind:      it.Kind,
			RefID:     it.RefID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
		if it.Option != "" {
			option := it.Option
			req.Option = &option
		}
		items = append(items, req)
	}

	shipping := reqdto.ShippingRequest{
		RecipientName: o.Shipping.RecipientName,
		Phone:         o.Shipping.Phone,
		Line1:         o.Shipping.Line1,
		City:          o.Shipping.City,
	}
	if o.Shipping.Email != "" {
		email := o.Shipping.Email
		shipping.Email = &email
	}

	req := reqdto.PlaceOrderRequest{
		Items:         items,
		Shipping:      shipping,
		Total:         o.Total,
		DeliveryFee:   o.DeliveryFee,
		VoucherID:     o.VoucherID,
		PaymentMethod: o.PaymentMethod,
	}
	if o.Note != "" {
		note := o.Note
		req.Note = &note
	}
	return req
}

func (o *OrderBuilder) BuildInput() commands.PlaceOrderInput {
	return o.BuildPlaceOrderRequestDTO().ToInput(o.UserID, nil)
}

// BuildDomain reconstructs a persisted order without validation.
func (o *OrderBuilder) BuildDomain() *order.Order {
	items := make([]order.Item, 0, len(o.Items))
	for _, it := range o.Items {
		item, err := order.NewItem(order.ItemKind(it.Kind), it.RefID, it.Quantity, it.UnitPrice, it.Option)
		if err != nil {
			panic(err)
		}
		items = append(items, item)
	}
	note, err := order.NewNote(o.Note)
	if err != nil {
		panic(err)
	}

	return order.Reconstruct(order.ReconstructParams{
		ID:            o.ID,
		UserID:        o.UserID,
		Reference:     order.Reference(o.Reference),
		Items:         items,
		Shipping:      o.Shipping,
		Total:         o.Total,
		DeliveryFee:   o.DeliveryFee,
		VoucherID:     o.VoucherID,
		Status:        order.Status(o.Status),
		PaymentMethod: order.PaymentMethod(o.PaymentMethod),
		PaymentStatus: order.PaymentStatus(o.PaymentStatus),
		Note:          note,
		FirstOrder:    o.FirstOrder,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	})
}

func (o *OrderBuilder) BuildInfra() (sqlc.Orders, []sqlc.OrderItems) {
	shipping, _ := json.Marshal(o.BuildView().Shipping)

	row := sqlc.Orders{
		ID:            o.ID,
		Reference:     o.Reference,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		Total:         o.Total,
		DeliveryFee:   o.DeliveryFee,
		Shipping:      shipping,
		FirstOrder:    o.FirstOrder,
		CreatedAt:     pgtype.Timestamptz{Time: o.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: o.UpdatedAt, Valid: true},
	}
	if o.UserID != nil {
		row.UserID = pgtype.UUID{Bytes: *o.UserID, Valid: true}
	}
	if o.VoucherID != nil {
		row.VoucherID = pgtype.UUID{Bytes: *o.VoucherID, Valid: true}
	}
	if o.Note != "" {
		row.Note = pgtype.Text{String: o.Note, Valid: true}
	}

	items := make([]sqlc.OrderItems, 0, len(o.Items))
	for i, it := range o.Items {
		items = append(items, sqlc.OrderItems{
			OrderID:    o.ID,
			LineNo:     int32(i + 1), // #nosec G115 -- test fixture
			Kind:       it.Kind,
			RefID:      it.RefID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			ItemOption: it.Option,
		})
	}
	return row, items
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	items := make([]queries.OrderItemView, 0, len(o.Items))
	for i, it := range o.Items {
		items = append(items, queries.OrderItemView{
			LineNo:    int32(i + 1), // #nosec G115 -- test fixture
			Kind:      it.Kind,
			RefID:     it.RefID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Option:    it.Option,
		})
	}

	view := &queries.OrderView{
		ID:            o.ID,
		UserID:        o.UserID,
		Reference:     o.Reference,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		Total:         o.Total,
		DeliveryFee:   o.DeliveryFee,
		VoucherID:     o.VoucherID,
		FirstOrder:    o.FirstOrder,
		Shipping: queries.ShippingView{
			RecipientName: o.Shipping.RecipientName,
			Phone:         o.Shipping.Phone,
			Email:         o.Shipping.Email,
			Line1:         o.Shipping.Line1,
			Line2:         o.Shipping.Line2,
			City:          o.Shipping.City,
			PostalCode:    o.Shipping.PostalCode,
		},
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.Note != "" {
		note := o.Note
		view.Note = &note
	}
	return view
}
