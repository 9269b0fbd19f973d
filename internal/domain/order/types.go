package order

import "slices"

type Status string

const (
	StatusConfirmed Status = "order confirmed"
	StatusInTransit Status = "In transit"
	StatusDelivered Status = "order delivered"
	StatusCancelled Status = "Cancelled"
)

// allowed target states per current state; states absent from the map are terminal
var transitions = map[Status][]Status{
	StatusConfirmed: {StatusInTransit, StatusDelivered, StatusCancelled},
	StatusInTransit: {StatusDelivered, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	_, ok := transitions[s]
	return !ok
}

func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPaid          PaymentStatus = "paid"
	PaymentRefundPending PaymentStatus = "refund_pending"
	PaymentVoided        PaymentStatus = "voided"
)

func (p PaymentStatus) String() string {
	return string(p)
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentCard           PaymentMethod = "card"
	PaymentWallet         PaymentMethod = "wallet"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// Prepaid methods only reach settlement after the gateway reported success.
func (m PaymentMethod) IsPrepaid() bool {
	return m == PaymentCard || m == PaymentWallet
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentCashOnDelivery, PaymentCard, PaymentWallet:
		return m, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

type ItemKind string

const (
	ItemProduct ItemKind = "product"
	ItemBundle  ItemKind = "bundle"
	ItemOffer   ItemKind = "offer"
)

func (k ItemKind) String() string {
	return string(k)
}

func ParseItemKind(s string) (ItemKind, error) {
	switch k := ItemKind(s); k {
	case ItemProduct, ItemBundle, ItemOffer:
		return k, nil
	default:
		return "", ErrInvalidItemKind
	}
}
