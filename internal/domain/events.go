package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlaceOrderEvent is an event emitted by a successful place-order run.
type PlaceOrderEvent interface {
	EventType() string
	OccurredAt() time.Time
	AggregateID() string
}

// BaseEvent contains common event fields.
type BaseEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	AggregateId string    `json:"aggregateId"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }
func (e BaseEvent) AggregateID() string   { return e.AggregateId }

func newBaseEvent(eventType string, orderID OrderID) BaseEvent {
	return BaseEvent{
		ID:          uuid.New().String(),
		Type:        eventType,
		AggregateId: orderID.Value(),
		Timestamp:   time.Now().UTC(),
	}
}

// OrderPlacedEvent is raised for every successfully placed order. It carries
// the full priced order for downstream shipping.
type OrderPlacedEvent struct {
	BaseEvent
	PricedOrder PricedOrder `json:"pricedOrder"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent.
func NewOrderPlacedEvent(order *PricedOrder) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseEvent:   newBaseEvent("ordertaking.order.placed", order.OrderID),
		PricedOrder: *order,
	}
}

// BillableOrderPlacedEvent is raised only when the order has a strictly
// positive amount to bill.
type BillableOrderPlacedEvent struct {
	BaseEvent
	OrderID        OrderID       `json:"orderId"`
	BillingAddress Address       `json:"billingAddress"`
	AmountToBill   BillingAmount `json:"amountToBill"`
}

// NewBillableOrderPlacedEvent creates a new BillableOrderPlacedEvent.
func NewBillableOrderPlacedEvent(order *PricedOrder) *BillableOrderPlacedEvent {
	return &BillableOrderPlacedEvent{
		BaseEvent:      newBaseEvent("ordertaking.order.billable", order.OrderID),
		OrderID:        order.OrderID,
		BillingAddress: order.BillingAddress,
		AmountToBill:   order.AmountToBill,
	}
}

// AcknowledgmentSentEvent is raised only when the confirmation letter was
// actually sent.
type AcknowledgmentSentEvent struct {
	BaseEvent
	OrderID      OrderID      `json:"orderId"`
	EmailAddress EmailAddress `json:"emailAddress"`
}

// NewAcknowledgmentSentEvent creates a new AcknowledgmentSentEvent.
func NewAcknowledgmentSentEvent(order *PricedOrder) *AcknowledgmentSentEvent {
	return &AcknowledgmentSentEvent{
		BaseEvent:    newBaseEvent("ordertaking.order.acknowledgment-sent", order.OrderID),
		OrderID:      order.OrderID,
		EmailAddress: order.CustomerInfo.EmailAddress,
	}
}
