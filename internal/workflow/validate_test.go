package workflow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderflow/order-taking-service/internal/domain"
)

func TestValidateOrder(t *testing.T) {
	t.Run("Valid order is converted field by field", func(t *testing.T) {
		order := testOrder()
		order.ShippingAddress.AddressLine2 = "Suite 12"
		order.Lines = append(order.Lines, domain.UnvalidatedOrderLine{
			OrderLineID: "line-2", ProductCode: "G123", Quantity: 2.5,
		})

		validated, err := validateOrder(context.Background(), testCatalog(), &stubChecker{}, order)
		require.NoError(t, err)

		assert.Equal(t, "order-1", validated.OrderID.Value())
		assert.Equal(t, "Ada", validated.CustomerInfo.Name.FirstName.Value())
		assert.Equal(t, "ada@example.com", validated.CustomerInfo.EmailAddress.Value())
		assert.Equal(t, "94105", validated.ShippingAddress.ZipCode.Value())
		require.NotNil(t, validated.ShippingAddress.AddressLine2)
		assert.Equal(t, "Suite 12", validated.ShippingAddress.AddressLine2.Value())
		assert.Nil(t, validated.BillingAddress.AddressLine2)

		require.Len(t, validated.Lines, 2)
		assert.IsType(t, domain.WidgetCode{}, validated.Lines[0].ProductCode)
		assert.IsType(t, domain.UnitQuantity{}, validated.Lines[0].Quantity)
		assert.IsType(t, domain.GizmoCode{}, validated.Lines[1].ProductCode)
		assert.IsType(t, domain.KilogramQuantity{}, validated.Lines[1].Quantity)
	})

	tests := []struct {
		name        string
		mutate      func(o *domain.UnvalidatedOrder)
		expectField string
	}{
		{
			name:        "Empty order id",
			mutate:      func(o *domain.UnvalidatedOrder) { o.OrderID = "" },
			expectField: "orderId",
		},
		{
			name:        "Malformed email",
			mutate:      func(o *domain.UnvalidatedOrder) { o.CustomerInfo.EmailAddress = "not-an-email" },
			expectField: "customerInfo.emailAddress",
		},
		{
			name:        "Missing first name",
			mutate:      func(o *domain.UnvalidatedOrder) { o.CustomerInfo.FirstName = "" },
			expectField: "customerInfo.firstName",
		},
		{
			name:        "Bad billing zip returned by the authority",
			mutate:      func(o *domain.UnvalidatedOrder) { o.BillingAddress.ZipCode = "123" },
			expectField: "billingAddress.zipCode",
		},
		{
			name:        "Empty line id",
			mutate:      func(o *domain.UnvalidatedOrder) { o.Lines[0].OrderLineID = "" },
			expectField: "lines[0].orderLineId",
		},
		{
			name:        "Widget code with wrong digit count",
			mutate:      func(o *domain.UnvalidatedOrder) { o.Lines[0].ProductCode = "W12" },
			expectField: "lines[0].productCode",
		},
		{
			name:        "Fractional widget quantity",
			mutate:      func(o *domain.UnvalidatedOrder) { o.Lines[0].Quantity = 2.5 },
			expectField: "lines[0].quantity",
		},
		{
			name:        "Zero quantity",
			mutate:      func(o *domain.UnvalidatedOrder) { o.Lines[0].Quantity = 0 },
			expectField: "lines[0].quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := testOrder()
			tt.mutate(&order)

			validated, err := validateOrder(context.Background(), testCatalog(), &stubChecker{}, order)
			require.Error(t, err)
			assert.Nil(t, validated)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)

			var ce *domain.ConstraintError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.expectField, ce.Field)
		})
	}

	t.Run("Unrecognized product code format", func(t *testing.T) {
		order := testOrder()
		order.Lines[0].ProductCode = "X1"

		_, err := validateOrder(context.Background(), testCatalog(), &stubChecker{}, order)
		require.Error(t, err)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.True(t, domain.IsViolation(err, domain.ViolationUnknownFormat))
	})

	t.Run("Well-formed code missing from the catalog", func(t *testing.T) {
		order := testOrder()
		order.Lines[0].ProductCode = "W9999"

		_, err := validateOrder(context.Background(), testCatalog(), &stubChecker{}, order)
		require.Error(t, err)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, err.Error(), `product "W9999" does not exist in the catalog`)
	})

	t.Run("First failing line wins when several fail", func(t *testing.T) {
		order := testOrder()
		order.Lines = []domain.UnvalidatedOrderLine{
			{OrderLineID: "line-1", ProductCode: "W12", Quantity: 1},
			{OrderLineID: "line-2", ProductCode: "X1", Quantity: 1},
		}

		_, err := validateOrder(context.Background(), testCatalog(), &stubChecker{}, order)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lines[0].productCode")
		assert.NotContains(t, err.Error(), "lines[1]")
	})

	t.Run("Address not found is a validation error naming the address", func(t *testing.T) {
		checker := &stubChecker{err: fmt.Errorf("authority: %w", ErrAddressNotFound)}

		_, err := validateOrder(context.Background(), testCatalog(), checker, testOrder())
		require.Error(t, err)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.True(t, errors.Is(err, ErrAddressNotFound))
		assert.Contains(t, err.Error(), "shippingAddress")
	})

	t.Run("Invalid address format is a validation error", func(t *testing.T) {
		checker := &stubChecker{err: ErrAddressInvalidFormat}

		_, err := validateOrder(context.Background(), testCatalog(), checker, testOrder())
		require.Error(t, err)

		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Checker transport failure is a remote-service error", func(t *testing.T) {
		checker := &stubChecker{err: errors.New("dial tcp: timeout")}

		_, err := validateOrder(context.Background(), testCatalog(), checker, testOrder())
		require.Error(t, err)

		var remoteErr *domain.RemoteServiceError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "address-verification", remoteErr.Service)
	})

	t.Run("Customer failure short-circuits before the address check", func(t *testing.T) {
		checker := &stubChecker{}
		order := testOrder()
		order.CustomerInfo.EmailAddress = ""

		_, err := validateOrder(context.Background(), testCatalog(), checker, order)
		require.Error(t, err)
		assert.Equal(t, 0, checker.calls)
	})

	t.Run("Both addresses are checked on the happy path", func(t *testing.T) {
		checker := &stubChecker{}

		_, err := validateOrder(context.Background(), testCatalog(), checker, testOrder())
		require.NoError(t, err)
		assert.Equal(t, 2, checker.calls)
	})
}
