package domain

import "regexp"

// Constrained scalar value objects. Each follows the same shape: an
// unexported value, a NewX constructor that runs the invariant exactly once,
// and accessors that hand the raw value back out.

const (
	string50MaxLen = 50
	orderIDMaxLen  = 50
	lineIDMaxLen   = 50
)

var (
	// The intent is "looks like an email": something, an @, something.
	emailPattern = regexp.MustCompile(`^.+@.+$`)

	// US 5-digit zip.
	zipPattern = regexp.MustCompile(`^\d{5}$`)
)

// String50 is a non-empty string of at most 50 characters. It backs personal
// names, address lines and city names.
type String50 struct {
	value string
}

// NewString50 creates a String50 from raw input.
func NewString50(field, raw string) (String50, error) {
	v, err := CreateString(field, string50MaxLen, raw)
	if err != nil {
		return String50{}, err
	}
	return String50{value: v}, nil
}

// NewString50Option creates a String50 from optional raw input; an empty raw
// reports absence instead of an error.
func NewString50Option(field, raw string) (String50, bool, error) {
	v, ok, err := CreateStringOption(field, string50MaxLen, raw)
	if err != nil || !ok {
		return String50{}, ok, err
	}
	return String50{value: v}, true, nil
}

// Value returns the underlying string.
func (s String50) Value() string { return s.value }

// String returns the string representation.
func (s String50) String() string { return s.value }

// Equals checks if two values are equal.
func (s String50) Equals(other String50) bool { return s.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (s String50) MarshalText() ([]byte, error) { return []byte(s.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *String50) UnmarshalText(text []byte) error {
	v, err := NewString50("string50", string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// EmailAddress is a string shaped like an email address.
type EmailAddress struct {
	value string
}

// NewEmailAddress creates an EmailAddress from raw input.
func NewEmailAddress(field, raw string) (EmailAddress, error) {
	v, err := CreateLike(field, "an email address", emailPattern, raw)
	if err != nil {
		return EmailAddress{}, err
	}
	return EmailAddress{value: v}, nil
}

// Value returns the underlying string.
func (e EmailAddress) Value() string { return e.value }

// String returns the string representation.
func (e EmailAddress) String() string { return e.value }

// Equals checks if two values are equal.
func (e EmailAddress) Equals(other EmailAddress) bool { return e.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (e EmailAddress) MarshalText() ([]byte, error) { return []byte(e.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EmailAddress) UnmarshalText(text []byte) error {
	v, err := NewEmailAddress("emailAddress", string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ZipCode is a US 5-digit zip code.
type ZipCode struct {
	value string
}

// NewZipCode creates a ZipCode from raw input.
func NewZipCode(field, raw string) (ZipCode, error) {
	v, err := CreateLike(field, "a 5-digit zip code", zipPattern, raw)
	if err != nil {
		return ZipCode{}, err
	}
	return ZipCode{value: v}, nil
}

// Value returns the underlying string.
func (z ZipCode) Value() string { return z.value }

// String returns the string representation.
func (z ZipCode) String() string { return z.value }

// Equals checks if two values are equal.
func (z ZipCode) Equals(other ZipCode) bool { return z.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (z ZipCode) MarshalText() ([]byte, error) { return []byte(z.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *ZipCode) UnmarshalText(text []byte) error {
	v, err := NewZipCode("zipCode", string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// OrderID identifies an order submission. Supplied by the caller, not
// generated here.
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from raw input.
func NewOrderID(field, raw string) (OrderID, error) {
	v, err := CreateString(field, orderIDMaxLen, raw)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{value: v}, nil
}

// Value returns the underlying string.
func (id OrderID) Value() string { return id.value }

// String returns the string representation.
func (id OrderID) String() string { return id.value }

// Equals checks if two values are equal.
func (id OrderID) Equals(other OrderID) bool { return id.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (id OrderID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *OrderID) UnmarshalText(text []byte) error {
	v, err := NewOrderID("orderId", string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// OrderLineID identifies a single line within an order.
type OrderLineID struct {
	value string
}

// NewOrderLineID creates an OrderLineID from raw input.
func NewOrderLineID(field, raw string) (OrderLineID, error) {
	v, err := CreateString(field, lineIDMaxLen, raw)
	if err != nil {
		return OrderLineID{}, err
	}
	return OrderLineID{value: v}, nil
}

// Value returns the underlying string.
func (id OrderLineID) Value() string { return id.value }

// String returns the string representation.
func (id OrderLineID) String() string { return id.value }

// Equals checks if two values are equal.
func (id OrderLineID) Equals(other OrderLineID) bool { return id.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (id OrderLineID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *OrderLineID) UnmarshalText(text []byte) error {
	v, err := NewOrderLineID("orderLineId", string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
