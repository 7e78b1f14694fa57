package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderflow/order-taking-service/internal/api/dto"
	"github.com/orderflow/order-taking-service/pkg/errors"
)

func bindOrder(t *testing.T, body string) (*dto.PlaceOrderRequest, *errors.AppError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.PlaceOrderRequest
	return &req, BindAndValidate(c, &req)
}

const orderBodyTemplate = `{
	"orderId": "order-1",
	"customerInfo": {"firstName": "Ada", "lastName": "Lovelace", "emailAddress": "ada@example.com"},
	"shippingAddress": {"addressLine1": "1 Main St", "city": "Springfield", "zipCode": "94105"},
	"billingAddress": {"addressLine1": "1 Main St", "city": "Springfield", "zipCode": "94105"},
	"lines": [{"orderLineId": "line-1", "productCode": "W1234", "quantity": QUANTITY}]
}`

func TestBindAndValidate(t *testing.T) {
	t.Run("Well-formed body binds", func(t *testing.T) {
		req, appErr := bindOrder(t, strings.Replace(orderBodyTemplate, "QUANTITY", "10", 1))
		require.Nil(t, appErr)
		assert.Equal(t, float64(10), req.Lines[0].Quantity)
	})

	t.Run("Explicit zero quantity passes binding for the workflow to reject", func(t *testing.T) {
		req, appErr := bindOrder(t, strings.Replace(orderBodyTemplate, "QUANTITY", "0", 1))
		require.Nil(t, appErr)
		require.Len(t, req.Lines, 1)
		assert.Zero(t, req.Lines[0].Quantity)
	})

	t.Run("Missing order id passes binding for the workflow to reject", func(t *testing.T) {
		body := strings.Replace(orderBodyTemplate, `"orderId": "order-1",`, "", 1)
		req, appErr := bindOrder(t, strings.Replace(body, "QUANTITY", "10", 1))
		require.Nil(t, appErr)
		assert.Empty(t, req.OrderID)
	})

	t.Run("Empty line list fails binding", func(t *testing.T) {
		body := `{
			"orderId": "order-1",
			"customerInfo": {"firstName": "Ada", "lastName": "Lovelace", "emailAddress": "ada@example.com"},
			"shippingAddress": {"addressLine1": "1 Main St", "city": "Springfield", "zipCode": "94105"},
			"billingAddress": {"addressLine1": "1 Main St", "city": "Springfield", "zipCode": "94105"},
			"lines": []
		}`
		_, appErr := bindOrder(t, body)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.CodeBadRequest, appErr.Code)
		assert.Contains(t, appErr.Details, "lines")
	})

	t.Run("Malformed JSON fails binding", func(t *testing.T) {
		_, appErr := bindOrder(t, "{not json")
		require.NotNil(t, appErr)
		assert.Equal(t, errors.CodeBadRequest, appErr.Code)
	})
}
