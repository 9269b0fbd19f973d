package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems              = errors.New("order must contain at least one item")
	ErrInvalidItem          = errors.New("invalid order item")
	ErrInvalidItemKind      = errors.New("invalid order item kind")
	ErrInvalidQuantity      = errors.New("item quantity out of range")
	ErrNegativeAmount       = errors.New("amount cannot be negative")
	ErrAmountPrecision      = errors.New("amount has more than two decimal places")
	ErrInvalidShipping      = errors.New("invalid shipping address")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrNoteTooLong          = errors.New("note is too long")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrIllegalTransition    = errors.New("illegal order status transition")
)

type NewOrderParams struct {
	UserID        *uuid.UUID
	Items         []Item
	Shipping      ShippingAddress
	Total         decimal.Decimal
	DeliveryFee   decimal.Decimal
	VoucherID     *uuid.UUID
	PaymentMethod PaymentMethod
	Note          Note
}

type Order struct {
	id            uuid.UUID
	userID        *uuid.UUID
	reference     Reference
	items         []Item
	shipping      ShippingAddress
	total         decimal.Decimal
	deliveryFee   decimal.Decimal
	voucherID     *uuid.UUID
	status        Status
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	note          Note
	firstOrder    bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewOrder validates a checkout and returns an order in the initial state.
// Reference and first-order flag are assigned by the caller before persisting.
func NewOrder(p NewOrderParams, now time.Time) (*Order, error) {
	if len(p.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, it := range p.Items {
		if it.refID == uuid.Nil || it.quantity < 1 {
			return nil, ErrInvalidItem
		}
		if !hasCentPrecision(it.unitPrice) {
			return nil, ErrAmountPrecision
		}
	}
	if p.Total.IsNegative() || p.DeliveryFee.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if !hasCentPrecision(p.Total) || !hasCentPrecision(p.DeliveryFee) {
		return nil, ErrAmountPrecision
	}
	if _, err := ParsePaymentMethod(string(p.PaymentMethod)); err != nil {
		return nil, err
	}
	if p.Shipping.RecipientName == "" || p.Shipping.Line1 == "" {
		return nil, ErrInvalidShipping
	}

	paymentStatus := PaymentPending
	if p.PaymentMethod.IsPrepaid() {
		paymentStatus = PaymentPaid
	}

	items := make([]Item, len(p.Items))
	copy(items, p.Items)

	return &Order{
		id:            uuid.New(),
		userID:        p.UserID,
		items:         items,
		shipping:      p.Shipping,
		total:         p.Total,
		deliveryFee:   p.DeliveryFee,
		voucherID:     p.VoucherID,
		status:        StatusConfirmed,
		paymentMethod: p.PaymentMethod,
		paymentStatus: paymentStatus,
		note:          p.Note,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	UserID        *uuid.UUID
	Reference     Reference
	Items         []Item
	Shipping      ShippingAddress
	Total         decimal.Decimal
	DeliveryFee   decimal.Decimal
	VoucherID     *uuid.UUID
	Status        Status
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Note          Note
	FirstOrder    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(p ReconstructParams) *Order {
	return &Order{
		id:            p.ID,
		userID:        p.UserID,
		reference:     p.Reference,
		items:         p.Items,
		shipping:      p.Shipping,
		total:         p.Total,
		deliveryFee:   p.DeliveryFee,
		voucherID:     p.VoucherID,
		status:        p.Status,
		paymentMethod: p.PaymentMethod,
		paymentStatus: p.PaymentStatus,
		note:          p.Note,
		firstOrder:    p.FirstOrder,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

func (o *Order) AssignReference(ref Reference) { o.reference = ref }
func (o *Order) MarkFirstOrder(first bool)     { o.firstOrder = first }

// DropVoucher detaches the voucher after a failed redemption.
func (o *Order) DropVoucher() { o.voucherID = nil }

// StatusChange is the persisted effect of a legal transition.
type StatusChange struct {
	From          Status
	To            Status
	PaymentStatus PaymentStatus
	At            time.Time
}

// TransitionTo validates the move against the transition table and applies it,
// deriving the payment status that follows from the new state.
func (o *Order) TransitionTo(target Status, now time.Time) (StatusChange, error) {
	if !target.IsValid() {
		return StatusChange{}, ErrInvalidStatus
	}
	if !o.status.CanTransitionTo(target) {
		return StatusChange{}, ErrIllegalTransition
	}

	change := StatusChange{
		From:          o.status,
		To:            target,
		PaymentStatus: o.nextPaymentStatus(target),
		At:            now,
	}
	o.status = target
	o.paymentStatus = change.PaymentStatus
	o.updatedAt = now
	return change, nil
}

func (o *Order) nextPaymentStatus(target Status) PaymentStatus {
	switch target {
	case StatusCancelled:
		if o.paymentStatus == PaymentPaid {
			return PaymentRefundPending
		}
		return PaymentVoided
	case StatusDelivered:
		if o.paymentMethod == PaymentCashOnDelivery && o.paymentStatus == PaymentPending {
			return PaymentPaid
		}
	}
	return o.paymentStatus
}

func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

func (o *Order) IsGuest() bool { return o.userID == nil }

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) UserID() *uuid.UUID           { return o.userID }
func (o *Order) Reference() Reference         { return o.reference }
func (o *Order) Items() []Item                { return o.items }
func (o *Order) Shipping() ShippingAddress    { return o.shipping }
func (o *Order) Total() decimal.Decimal       { return o.total }
func (o *Order) DeliveryFee() decimal.Decimal { return o.deliveryFee }
func (o *Order) VoucherID() *uuid.UUID        { return o.voucherID }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Note() Note                   { return o.note }
func (o *Order) FirstOrder() bool             { return o.firstOrder }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
