package voucher

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCode            = errors.New("invalid voucher code format")
	ErrInvalidDiscountKind    = errors.New("invalid discount kind")
	ErrInvalidDiscountAmount  = errors.New("discount amount must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9-]{3,32}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountKind string

const (
	DiscountFixed      DiscountKind = "fixed"
	DiscountPercentage DiscountKind = "percentage"
)

var hundred = decimal.NewFromInt(100)

type Discount struct {
	kind  DiscountKind
	value decimal.Decimal
}

func NewDiscount(kind string, value decimal.Decimal) (Discount, error) {
	switch DiscountKind(kind) {
	case DiscountFixed:
		if !value.IsPositive() {
			return Discount{}, ErrInvalidDiscountAmount
		}
	case DiscountPercentage:
		if !value.IsPositive() || value.GreaterThan(hundred) {
			return Discount{}, ErrInvalidDiscountPercent
		}
	default:
		return Discount{}, ErrInvalidDiscountKind
	}
	return Discount{kind: DiscountKind(kind), value: value}, nil
}

func (d Discount) Kind() DiscountKind     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }

// AmountOff is capped at the base so a discount never produces a negative total.
func (d Discount) AmountOff(base decimal.Decimal) decimal.Decimal {
	off := d.value
	if d.kind == DiscountPercentage {
		off = base.Mul(d.value).Div(hundred).Round(2)
	}
	if off.GreaterThan(base) {
		return base
	}
	return off
}
