package domain

import (
	"errors"
	"fmt"
)

// Violation identifies the way a constrained value failed construction.
// The set is closed; callers branch on the violation, never on message text.
type Violation string

const (
	ViolationEmpty           Violation = "empty"
	ViolationTooLong         Violation = "too_long"
	ViolationTooSmall        Violation = "too_small"
	ViolationTooBig          Violation = "too_big"
	ViolationNotInteger      Violation = "not_integer"
	ViolationNotDecimal      Violation = "not_decimal"
	ViolationPatternMismatch Violation = "pattern_mismatch"
	ViolationUnknownFormat   Violation = "unknown_format"
)

// ConstraintError is returned when a raw value cannot be turned into a
// constrained domain value. Field uses the camelCase JSON name of the
// offending input, e.g. "shippingAddress.zipCode".
type ConstraintError struct {
	Field     string
	Violation Violation
	Message   string
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newConstraintError(field string, violation Violation, format string, args ...any) *ConstraintError {
	return &ConstraintError{
		Field:     field,
		Violation: violation,
		Message:   fmt.Sprintf(format, args...),
	}
}

// IsViolation reports whether err is a ConstraintError carrying the given violation.
func IsViolation(err error, violation Violation) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Violation == violation
}

// The three workflow-level error kinds. Every ConstraintError and every
// remote lookup mismatch is folded into exactly one of these before it
// crosses the workflow boundary.

// ValidationError indicates the submitted order was rejected: bad field
// content, an address the verification authority does not know, or a product
// code missing from the catalog.
type ValidationError struct {
	Err error
}

// NewValidationError wraps err as a ValidationError.
func NewValidationError(err error) *ValidationError {
	return &ValidationError{Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("order validation failed: %v", e.Err)
}

// Unwrap returns the wrapped error.
func (e *ValidationError) Unwrap() error { return e.Err }

// PricingError indicates an arithmetic bound violation while pricing an
// otherwise valid order: a line price or the billing total left its range.
type PricingError struct {
	Err error
}

// NewPricingError wraps err as a PricingError.
func NewPricingError(err error) *PricingError {
	return &PricingError{Err: err}
}

// Error implements the error interface.
func (e *PricingError) Error() string {
	return fmt.Sprintf("order pricing failed: %v", e.Err)
}

// Unwrap returns the wrapped error.
func (e *PricingError) Unwrap() error { return e.Err }

// RemoteServiceError indicates an external capability itself failed in a way
// not classified as a validation outcome, e.g. the address verification
// service being unreachable.
type RemoteServiceError struct {
	Service string
	Err     error
}

// NewRemoteServiceError wraps err as a RemoteServiceError for the named service.
func NewRemoteServiceError(service string, err error) *RemoteServiceError {
	return &RemoteServiceError{Service: service, Err: err}
}

// Error implements the error interface.
func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service %s failed: %v", e.Service, e.Err)
}

// Unwrap returns the wrapped error.
func (e *RemoteServiceError) Unwrap() error { return e.Err }
