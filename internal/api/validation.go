// Package api holds transport-level helpers for the order-taking HTTP
// surface: request binding and the standard middleware chain.
package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/orderflow/order-taking-service/pkg/errors"
)

// BindAndValidate binds the request body and validates it, mapping binding
// failures to field-keyed AppError details.
func BindAndValidate(c *gin.Context, obj interface{}) *errors.AppError {
	if err := c.ShouldBindJSON(obj); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			appErr := errors.ErrBadRequest("request validation failed")
			for _, fieldError := range validationErrors {
				appErr.WithDetail(fieldName(fieldError), errorMessage(fieldError))
			}
			return appErr
		}
		return errors.ErrBadRequest(fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}

// fieldName extracts the camelCase field name from a validator.FieldError.
func fieldName(fe validator.FieldError) string {
	field := fe.Field()
	if len(field) > 0 {
		field = strings.ToLower(field[:1]) + field[1:]
	}
	return field
}

// errorMessage returns a human-readable message for a binding error.
func errorMessage(fe validator.FieldError) string {
	field := fieldName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must have at least %s elements", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
