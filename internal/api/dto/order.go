// Package dto carries the wire shapes of the order-taking API. Requests are
// deliberately loose: beyond structural checks, content validation belongs
// to the workflow, which reports field-level constraint errors.
package dto

import (
	"time"

	"github.com/orderflow/order-taking-service/internal/domain"
)

// AddressRequest is a raw address submission.
type AddressRequest struct {
	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2"`
	AddressLine3 string `json:"addressLine3"`
	AddressLine4 string `json:"addressLine4"`
	City         string `json:"city" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`
}

// CustomerInfoRequest is a raw customer submission.
type CustomerInfoRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	EmailAddress string `json:"emailAddress" binding:"required"`
}

// OrderLineRequest is a raw order line submission. Quantity carries no
// binding tag: a zero quantity must reach the workflow, which rejects it as
// a constraint violation rather than the transport refusing the body.
type OrderLineRequest struct {
	OrderLineID string  `json:"orderLineId" binding:"required"`
	ProductCode string  `json:"productCode" binding:"required"`
	Quantity    float64 `json:"quantity"`
}

// PlaceOrderRequest is the request body for placing an order. The order id
// is intentionally unconstrained here so the workflow reports its absence as
// a validation error rather than the transport rejecting it.
type PlaceOrderRequest struct {
	OrderID         string              `json:"orderId"`
	CustomerInfo    CustomerInfoRequest `json:"customerInfo" binding:"required"`
	ShippingAddress AddressRequest      `json:"shippingAddress" binding:"required"`
	BillingAddress  AddressRequest      `json:"billingAddress" binding:"required"`
	Lines           []OrderLineRequest  `json:"lines" binding:"required,min=1,dive"`
}

// ToUnvalidatedOrder maps the request to the workflow's input record.
func (r *PlaceOrderRequest) ToUnvalidatedOrder() domain.UnvalidatedOrder {
	lines := make([]domain.UnvalidatedOrderLine, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, domain.UnvalidatedOrderLine{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
		})
	}

	return domain.UnvalidatedOrder{
		OrderID: r.OrderID,
		CustomerInfo: domain.UnvalidatedCustomerInfo{
			FirstName:    r.CustomerInfo.FirstName,
			LastName:     r.CustomerInfo.LastName,
			EmailAddress: r.CustomerInfo.EmailAddress,
		},
		ShippingAddress: toUnvalidatedAddress(r.ShippingAddress),
		BillingAddress:  toUnvalidatedAddress(r.BillingAddress),
		Lines:           lines,
	}
}

func toUnvalidatedAddress(a AddressRequest) domain.UnvalidatedAddress {
	return domain.UnvalidatedAddress{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		AddressLine3: a.AddressLine3,
		AddressLine4: a.AddressLine4,
		City:         a.City,
		ZipCode:      a.ZipCode,
	}
}

// EventResponse summarizes one emitted event.
type EventResponse struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// PlaceOrderResponse is returned when an order was placed successfully.
type PlaceOrderResponse struct {
	OrderID      string          `json:"orderId"`
	AmountToBill string          `json:"amountToBill"`
	Acknowledged bool            `json:"acknowledged"`
	Events       []EventResponse `json:"events"`
}

// FromEvents builds the response from the workflow's event list. The list is
// non-empty on success and always contains the order-placed event.
func FromEvents(events []domain.PlaceOrderEvent) PlaceOrderResponse {
	resp := PlaceOrderResponse{
		Events: make([]EventResponse, 0, len(events)),
	}
	for _, event := range events {
		resp.Events = append(resp.Events, EventResponse{
			Type:      event.EventType(),
			Timestamp: event.OccurredAt(),
		})
		switch e := event.(type) {
		case *domain.OrderPlacedEvent:
			resp.OrderID = e.PricedOrder.OrderID.Value()
			resp.AmountToBill = e.PricedOrder.AmountToBill.String()
		case *domain.AcknowledgmentSentEvent:
			resp.Acknowledged = true
		}
	}
	return resp
}
