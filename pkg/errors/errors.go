package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/orderflow/order-taking-service/internal/domain"
)

// Standard error codes
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodePricingError       = "PRICING_ERROR"
	CodeRemoteServiceError = "REMOTE_SERVICE_ERROR"
	CodeBadRequest         = "BAD_REQUEST"
	CodeNotFound           = "RESOURCE_NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// AppError represents an application error with HTTP status and error code
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	HTTPStatus int               `json:"-"`
	Err        error             `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a single detail to the error
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// Wrap wraps an existing error
func (e *AppError) Wrap(err error) *AppError {
	e.Err = err
	return e
}

// NewAppError creates a new AppError
func NewAppError(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// ErrValidation creates a validation error
func ErrValidation(message string) *AppError {
	return NewAppError(CodeValidationError, message, http.StatusUnprocessableEntity)
}

// ErrPricing creates a pricing error
func ErrPricing(message string) *AppError {
	return NewAppError(CodePricingError, message, http.StatusUnprocessableEntity)
}

// ErrRemoteService creates a remote service error
func ErrRemoteService(service string) *AppError {
	return NewAppError(CodeRemoteServiceError, fmt.Sprintf("%s is temporarily unavailable", service), http.StatusBadGateway)
}

// ErrBadRequest creates a bad request error
func ErrBadRequest(message string) *AppError {
	return NewAppError(CodeBadRequest, message, http.StatusBadRequest)
}

// ErrNotFound creates a not found error
func ErrNotFound(resource string) *AppError {
	return NewAppError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// ErrInternal creates an internal error
func ErrInternal(message string) *AppError {
	if message == "" {
		message = "an internal error occurred"
	}
	return NewAppError(CodeInternalError, message, http.StatusInternalServerError)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// FromWorkflowError maps a place-order workflow error to an AppError. Field
// detail is attached when the underlying cause is a constraint error.
func FromWorkflowError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	var (
		validation *domain.ValidationError
		pricing    *domain.PricingError
		remote     *domain.RemoteServiceError
		constraint *domain.ConstraintError
	)

	switch {
	case errors.As(err, &validation):
		appErr := ErrValidation(validation.Err.Error()).Wrap(err)
		if errors.As(validation.Err, &constraint) {
			appErr.WithDetail("field", constraint.Field).
				WithDetail("violation", string(constraint.Violation))
		}
		return appErr
	case errors.As(err, &pricing):
		appErr := ErrPricing(pricing.Err.Error()).Wrap(err)
		if errors.As(pricing.Err, &constraint) {
			appErr.WithDetail("field", constraint.Field).
				WithDetail("violation", string(constraint.Violation))
		}
		return appErr
	case errors.As(err, &remote):
		return ErrRemoteService(remote.Service).Wrap(err)
	default:
		return ErrInternal("").Wrap(err)
	}
}
