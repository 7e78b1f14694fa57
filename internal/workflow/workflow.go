package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/orderflow/order-taking-service/internal/domain"
	"github.com/orderflow/order-taking-service/pkg/logging"
	"github.com/orderflow/order-taking-service/pkg/metrics"
)

// Place-order outcomes recorded as metrics labels.
const (
	outcomePlaced              = "placed"
	outcomeValidationFailed    = "validation_failed"
	outcomePricingFailed       = "pricing_failed"
	outcomeRemoteServiceFailed = "remote_service_failed"
)

// PlaceOrderService composes the pipeline steps: validate, price,
// acknowledge, assemble events. Validation and pricing failures abort
// immediately; reaching the acknowledgment step guarantees success.
type PlaceOrderService struct {
	catalog   ProductCatalog
	addresses AddressChecker
	letters   LetterWriter
	sender    AcknowledgmentSender
	publisher EventPublisher
	logger    *logging.Logger
	metrics   *metrics.Metrics
}

// NewPlaceOrderService creates a new PlaceOrderService. The publisher may be
// nil when the caller handles the returned events itself.
func NewPlaceOrderService(
	catalog ProductCatalog,
	addresses AddressChecker,
	letters LetterWriter,
	sender AcknowledgmentSender,
	publisher EventPublisher,
	logger *logging.Logger,
	m *metrics.Metrics,
) *PlaceOrderService {
	return &PlaceOrderService{
		catalog:   catalog,
		addresses: addresses,
		letters:   letters,
		sender:    sender,
		publisher: publisher,
		logger:    logger,
		metrics:   m,
	}
}

// PlaceOrder runs the workflow for one submission. The result is either a
// non-empty event list or exactly one of the three workflow error kinds.
// Concurrent invocations are independent; each operates on values it alone
// owns.
func (s *PlaceOrderService) PlaceOrder(ctx context.Context, order domain.UnvalidatedOrder) ([]domain.PlaceOrderEvent, error) {
	start := time.Now()

	validated, err := validateOrder(ctx, s.catalog, s.addresses, order)
	if err != nil {
		return nil, s.fail(order.OrderID, err, start)
	}

	priced, err := priceOrder(s.catalog, validated)
	if err != nil {
		return nil, s.fail(order.OrderID, err, start)
	}

	ack := acknowledgeOrder(ctx, s.letters, s.sender, priced)
	events := createEvents(priced, ack)

	// Publishing is best effort: the order is placed regardless.
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events); err != nil {
			s.logger.WithError(err).Error("Failed to publish place-order events",
				"orderId", priced.OrderID.Value())
		}
	}

	s.metrics.RecordOrderPlaced(outcomePlaced)
	s.metrics.ObservePlaceOrderDuration(time.Since(start))

	s.logger.Event(ctx, "order.placed", map[string]any{
		"orderId":      priced.OrderID.Value(),
		"amountToBill": priced.AmountToBill.String(),
		"lines":        len(priced.Lines),
		"acknowledged": ack != nil,
		"events":       len(events),
	})

	return events, nil
}

// fail records the failure outcome and hands the typed error back unchanged.
func (s *PlaceOrderService) fail(rawOrderID string, err error, start time.Time) error {
	s.metrics.RecordOrderPlaced(outcomeFor(err))
	s.metrics.ObservePlaceOrderDuration(time.Since(start))
	s.logger.WithError(err).Warn("Order rejected", "orderId", rawOrderID)
	return err
}

func outcomeFor(err error) string {
	var (
		validation *domain.ValidationError
		pricing    *domain.PricingError
		remote     *domain.RemoteServiceError
	)
	switch {
	case errors.As(err, &validation):
		return outcomeValidationFailed
	case errors.As(err, &pricing):
		return outcomePricingFailed
	case errors.As(err, &remote):
		return outcomeRemoteServiceFailed
	default:
		return outcomeRemoteServiceFailed
	}
}
