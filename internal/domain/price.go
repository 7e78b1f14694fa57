package domain

import "github.com/shopspring/decimal"

// Price and billing bounds. A billing amount is the sum of line prices and
// carries its own, wider bound: a sum can violate it even when every term is
// a valid Price.
var (
	priceMin = decimal.Zero
	priceMax = decimal.RequireFromString("1000.00")

	billingAmountMin = decimal.Zero
	billingAmountMax = decimal.RequireFromString("10000.00")
)

// Price is a monetary amount between 0.00 and 1000.00.
type Price struct {
	value decimal.Decimal
}

// NewPrice creates a Price from raw input.
func NewPrice(field string, raw decimal.Decimal) (Price, error) {
	v, err := CreateDecimal(field, priceMin, priceMax, raw)
	if err != nil {
		return Price{}, err
	}
	return Price{value: v}, nil
}

// MustNewPrice creates a Price or panics if invalid (use for reference data only).
func MustNewPrice(raw decimal.Decimal) Price {
	p, err := NewPrice("price", raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the amount.
func (p Price) Value() decimal.Decimal { return p.value }

// String returns the string representation.
func (p Price) String() string { return p.value.String() }

// Equals checks if two prices are equal.
func (p Price) Equals(other Price) bool { return p.value.Equal(other.value) }

// MultiplyBy multiplies the price by a quantity, re-running the price bound
// check on the result. A product outside the bound is reported as the same
// kind of constraint error as a bad raw input.
func (p Price) MultiplyBy(qty decimal.Decimal) (Price, error) {
	return NewPrice("linePrice", p.value.Mul(qty))
}

// MarshalText implements encoding.TextMarshaler.
func (p Price) MarshalText() ([]byte, error) { return []byte(p.value.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Price) UnmarshalText(text []byte) error {
	d, err := decimal.NewFromString(string(text))
	if err != nil {
		return newConstraintError("price", ViolationNotDecimal, "must be a decimal number")
	}
	v, err := NewPrice("price", d)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// BillingAmount is a monetary total between 0.00 and 10000.00.
type BillingAmount struct {
	value decimal.Decimal
}

// NewBillingAmount creates a BillingAmount from raw input.
func NewBillingAmount(field string, raw decimal.Decimal) (BillingAmount, error) {
	v, err := CreateDecimal(field, billingAmountMin, billingAmountMax, raw)
	if err != nil {
		return BillingAmount{}, err
	}
	return BillingAmount{value: v}, nil
}

// SumPrices totals a list of line prices into a BillingAmount, re-running
// the billing bound check on the sum.
func SumPrices(prices []Price) (BillingAmount, error) {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p.value)
	}
	return NewBillingAmount("amountToBill", total)
}

// Value returns the amount.
func (b BillingAmount) Value() decimal.Decimal { return b.value }

// String returns the string representation.
func (b BillingAmount) String() string { return b.value.String() }

// Equals checks if two billing amounts are equal.
func (b BillingAmount) Equals(other BillingAmount) bool { return b.value.Equal(other.value) }

// IsBillable reports whether the amount is strictly greater than zero.
func (b BillingAmount) IsBillable() bool { return b.value.GreaterThan(decimal.Zero) }

// MarshalText implements encoding.TextMarshaler.
func (b BillingAmount) MarshalText() ([]byte, error) { return []byte(b.value.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BillingAmount) UnmarshalText(text []byte) error {
	d, err := decimal.NewFromString(string(text))
	if err != nil {
		return newConstraintError("billingAmount", ViolationNotDecimal, "must be a decimal number")
	}
	v, err := NewBillingAmount("billingAmount", d)
	if err != nil {
		return err
	}
	*b = v
	return nil
}
