package domain

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Order quantity bounds. Units are whole counts; kilogram weights carry two
// decimal places.
const (
	unitQuantityMin = 1
	unitQuantityMax = 1000
)

var (
	kilogramQuantityMin = decimal.RequireFromString("0.05")
	kilogramQuantityMax = decimal.RequireFromString("100.00")
)

// OrderQuantity is either a UnitQuantity or a KilogramQuantity. Which
// variant is constructible is selected by the product code's kind, never by
// the caller: see NewOrderQuantity.
type OrderQuantity interface {
	// Value returns the quantity as a decimal for pricing arithmetic.
	Value() decimal.Decimal
	// String returns the string representation.
	String() string

	isOrderQuantity()
}

// UnitQuantity is a whole-unit count between 1 and 1000.
type UnitQuantity struct {
	value int
}

// NewUnitQuantity creates a UnitQuantity from raw input.
func NewUnitQuantity(field string, raw int) (UnitQuantity, error) {
	v, err := CreateInt(field, unitQuantityMin, unitQuantityMax, raw)
	if err != nil {
		return UnitQuantity{}, err
	}
	return UnitQuantity{value: v}, nil
}

// Units returns the unit count.
func (q UnitQuantity) Units() int { return q.value }

// Value returns the quantity as a decimal.
func (q UnitQuantity) Value() decimal.Decimal { return decimal.NewFromInt(int64(q.value)) }

// String returns the string representation.
func (q UnitQuantity) String() string { return strconv.Itoa(q.value) }

// MarshalText implements encoding.TextMarshaler.
func (q UnitQuantity) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

func (UnitQuantity) isOrderQuantity() {}

// KilogramQuantity is a weight between 0.05 and 100.00 kg.
type KilogramQuantity struct {
	value decimal.Decimal
}

// NewKilogramQuantity creates a KilogramQuantity from raw input.
func NewKilogramQuantity(field string, raw decimal.Decimal) (KilogramQuantity, error) {
	v, err := CreateDecimal(field, kilogramQuantityMin, kilogramQuantityMax, raw)
	if err != nil {
		return KilogramQuantity{}, err
	}
	return KilogramQuantity{value: v}, nil
}

// Kilograms returns the weight.
func (q KilogramQuantity) Kilograms() decimal.Decimal { return q.value }

// Value returns the quantity as a decimal.
func (q KilogramQuantity) Value() decimal.Decimal { return q.value }

// String returns the string representation.
func (q KilogramQuantity) String() string { return q.value.String() }

// MarshalText implements encoding.TextMarshaler.
func (q KilogramQuantity) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

func (KilogramQuantity) isOrderQuantity() {}

// NewOrderQuantity creates the order-quantity variant matching the product
// code's kind: whole units for widgets, kilograms for gizmos. The code must
// already be validated; the cross-field invariant lives here and nowhere
// else.
func NewOrderQuantity(field string, code ProductCode, raw float64) (OrderQuantity, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return nil, newConstraintError(field, ViolationNotDecimal, "must be a decimal number")
	}

	switch code.(type) {
	case WidgetCode:
		if raw != math.Trunc(raw) {
			return nil, newConstraintError(field, ViolationNotInteger, "must be a whole number of units")
		}
		q, err := NewUnitQuantity(field, int(raw))
		if err != nil {
			return nil, err
		}
		return q, nil
	case GizmoCode:
		q, err := NewKilogramQuantity(field, decimal.NewFromFloat(raw))
		if err != nil {
			return nil, err
		}
		return q, nil
	default:
		// Unreachable while the ProductCode set stays sealed.
		return nil, newConstraintError(field, ViolationUnknownFormat, "unsupported product code kind")
	}
}
