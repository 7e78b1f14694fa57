package domain

import (
	"regexp"
	"strings"
)

// Product code patterns. The leading sigil selects the product kind; the
// digit count is kind-specific.
var (
	widgetPattern = regexp.MustCompile(`^W\d{4}$`)
	gizmoPattern  = regexp.MustCompile(`^G\d{3}$`)
)

// ProductCode is either a WidgetCode or a GizmoCode. The set is sealed: the
// tag decides which order-quantity variant is legal for lines carrying the
// code.
type ProductCode interface {
	// Value returns the raw code.
	Value() string
	// String returns the string representation.
	String() string

	isProductCode()
}

// WidgetCode is a product code of the form W followed by 4 digits. Widgets
// are ordered in whole units.
type WidgetCode struct {
	value string
}

// NewWidgetCode creates a WidgetCode from raw input.
func NewWidgetCode(field, raw string) (WidgetCode, error) {
	v, err := CreateLike(field, `a widget code "W" followed by 4 digits`, widgetPattern, raw)
	if err != nil {
		return WidgetCode{}, err
	}
	return WidgetCode{value: v}, nil
}

// Value returns the raw code.
func (c WidgetCode) Value() string { return c.value }

// String returns the string representation.
func (c WidgetCode) String() string { return c.value }

// MarshalText implements encoding.TextMarshaler.
func (c WidgetCode) MarshalText() ([]byte, error) { return []byte(c.value), nil }

func (WidgetCode) isProductCode() {}

// GizmoCode is a product code of the form G followed by 3 digits. Gizmos are
// ordered by weight in kilograms.
type GizmoCode struct {
	value string
}

// NewGizmoCode creates a GizmoCode from raw input.
func NewGizmoCode(field, raw string) (GizmoCode, error) {
	v, err := CreateLike(field, `a gizmo code "G" followed by 3 digits`, gizmoPattern, raw)
	if err != nil {
		return GizmoCode{}, err
	}
	return GizmoCode{value: v}, nil
}

// Value returns the raw code.
func (c GizmoCode) Value() string { return c.value }

// String returns the string representation.
func (c GizmoCode) String() string { return c.value }

// MarshalText implements encoding.TextMarshaler.
func (c GizmoCode) MarshalText() ([]byte, error) { return []byte(c.value), nil }

func (GizmoCode) isProductCode() {}

// NewProductCode creates a ProductCode from raw input, dispatching on the
// sigil prefix. A recognized sigil with the wrong digit count is a pattern
// mismatch; an unrecognized sigil is a distinct unknown-format error.
func NewProductCode(field, raw string) (ProductCode, error) {
	switch {
	case raw == "":
		return nil, newConstraintError(field, ViolationEmpty, "must not be empty")
	case strings.HasPrefix(raw, "W"):
		c, err := NewWidgetCode(field, raw)
		if err != nil {
			return nil, err
		}
		return c, nil
	case strings.HasPrefix(raw, "G"):
		c, err := NewGizmoCode(field, raw)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, newConstraintError(field, ViolationUnknownFormat, "%q is not a recognized product code format", raw)
	}
}
