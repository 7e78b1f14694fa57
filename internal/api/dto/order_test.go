package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderflow/order-taking-service/internal/domain"
)

func TestToUnvalidatedOrder(t *testing.T) {
	req := PlaceOrderRequest{
		OrderID: "order-1",
		CustomerInfo: CustomerInfoRequest{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			EmailAddress: "ada@example.com",
		},
		ShippingAddress: AddressRequest{
			AddressLine1: "1 Main St",
			AddressLine2: "Suite 12",
			City:         "Springfield",
			ZipCode:      "94105",
		},
		BillingAddress: AddressRequest{
			AddressLine1: "2 Billing Rd",
			City:         "Springfield",
			ZipCode:      "94105",
		},
		Lines: []OrderLineRequest{
			{OrderLineID: "line-1", ProductCode: "W1234", Quantity: 10},
			{OrderLineID: "line-2", ProductCode: "G123", Quantity: 2.5},
		},
	}

	order := req.ToUnvalidatedOrder()

	assert.Equal(t, "order-1", order.OrderID)
	assert.Equal(t, "ada@example.com", order.CustomerInfo.EmailAddress)
	assert.Equal(t, "Suite 12", order.ShippingAddress.AddressLine2)
	assert.Equal(t, "2 Billing Rd", order.BillingAddress.AddressLine1)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "W1234", order.Lines[0].ProductCode)
	assert.Equal(t, 2.5, order.Lines[1].Quantity)
}

func pricedOrderFixture(t *testing.T) *domain.PricedOrder {
	t.Helper()

	orderID, err := domain.NewOrderID("orderId", "order-1")
	require.NoError(t, err)
	amount, err := domain.NewBillingAmount("amountToBill", decimal.RequireFromString("50.00"))
	require.NoError(t, err)
	email, err := domain.NewEmailAddress("emailAddress", "ada@example.com")
	require.NoError(t, err)

	order := &domain.PricedOrder{
		OrderID:      orderID,
		AmountToBill: amount,
	}
	order.CustomerInfo.EmailAddress = email
	return order
}

func TestFromEvents(t *testing.T) {
	order := pricedOrderFixture(t)

	t.Run("Full event list", func(t *testing.T) {
		events := []domain.PlaceOrderEvent{
			domain.NewAcknowledgmentSentEvent(order),
			domain.NewOrderPlacedEvent(order),
			domain.NewBillableOrderPlacedEvent(order),
		}

		resp := FromEvents(events)
		assert.Equal(t, "order-1", resp.OrderID)
		assert.Equal(t, "50", resp.AmountToBill)
		assert.True(t, resp.Acknowledged)
		require.Len(t, resp.Events, 3)
		assert.Equal(t, "ordertaking.order.acknowledgment-sent", resp.Events[0].Type)
		assert.Equal(t, "ordertaking.order.placed", resp.Events[1].Type)
		assert.Equal(t, "ordertaking.order.billable", resp.Events[2].Type)
	})

	t.Run("No acknowledgment", func(t *testing.T) {
		events := []domain.PlaceOrderEvent{
			domain.NewOrderPlacedEvent(order),
			domain.NewBillableOrderPlacedEvent(order),
		}

		resp := FromEvents(events)
		assert.False(t, resp.Acknowledged)
		assert.Equal(t, "order-1", resp.OrderID)
	})
}
