package order

import (
	"crypto/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

const (
	maxItemQuantity  = 999
	maxOptionLength  = 100
	maxNoteLength    = 500
	referencePrefix  = "ORD-"
	referenceSuffixN = 8
)

type Item struct {
	kind      ItemKind
	refID     uuid.UUID
	quantity  int32
	unitPrice decimal.Decimal
	option    string
}

func NewItem(kind ItemKind, refID uuid.UUID, quantity int32, unitPrice decimal.Decimal, option string) (Item, error) {
	if refID == uuid.Nil {
		return Item{}, ErrInvalidItem
	}
	if quantity < 1 || quantity > maxItemQuantity {
		return Item{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return Item{}, ErrNegativeAmount
	}
	if !hasCentPrecision(unitPrice) {
		return Item{}, ErrAmountPrecision
	}
	option = strings.TrimSpace(option)
	if utf8.RuneCountInString(option) > maxOptionLength {
		return Item{}, ErrInvalidItem
	}
	return Item{
		kind:      kind,
		refID:     refID,
		quantity:  quantity,
		unitPrice: unitPrice,
		option:    option,
	}, nil
}

// hasCentPrecision reports whether d fits the numeric(12,2) columns without rounding.
func hasCentPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(2))
}

func (i Item) Kind() ItemKind             { return i.kind }
func (i Item) RefID() uuid.UUID           { return i.refID }
func (i Item) Quantity() int32            { return i.quantity }
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i Item) Option() string             { return i.option }

func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt32(i.quantity))
}

type ShippingAddress struct {
	RecipientName string
	Phone         string
	Email         string
	Line1         string
	Line2         string
	City          string
	PostalCode    string
}

func NewShippingAddress(a ShippingAddress) (ShippingAddress, error) {
	a.RecipientName = strings.TrimSpace(a.RecipientName)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Email = strings.TrimSpace(a.Email)
	a.Line1 = strings.TrimSpace(a.Line1)
	a.Line2 = strings.TrimSpace(a.Line2)
	a.City = strings.TrimSpace(a.City)
	a.PostalCode = strings.TrimSpace(a.PostalCode)

	if a.RecipientName == "" || a.Phone == "" || a.Line1 == "" || a.City == "" {
		return ShippingAddress{}, ErrInvalidShipping
	}
	if a.Email != "" && !strings.Contains(a.Email, "@") {
		return ShippingAddress{}, ErrInvalidShipping
	}
	return a, nil
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > maxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// Reference is the short human-facing order code. It is not guaranteed unique;
// the order id is the identity.
type Reference string

// NewReference takes the tail of a fresh ULID's random component, so two
// references minted in the same millisecond still differ.
func NewReference(now time.Time) (Reference, error) {
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return "", err
	}
	s := id.String()
	return Reference(referencePrefix + s[len(s)-referenceSuffixN:]), nil
}

func (r Reference) String() string {
	return string(r)
}
