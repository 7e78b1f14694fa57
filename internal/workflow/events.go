package workflow

import "github.com/orderflow/order-taking-service/internal/domain"

// createEvents derives the final event list; it always succeeds. Emission
// order is fixed: acknowledgment first, then order-placed, then billing.
// The billing event is included iff the amount to bill is strictly positive.
func createEvents(order *domain.PricedOrder, ack *domain.AcknowledgmentSentEvent) []domain.PlaceOrderEvent {
	events := make([]domain.PlaceOrderEvent, 0, 3)

	if ack != nil {
		events = append(events, ack)
	}

	events = append(events, domain.NewOrderPlacedEvent(order))

	if order.AmountToBill.IsBillable() {
		events = append(events, domain.NewBillableOrderPlacedEvent(order))
	}

	return events
}
