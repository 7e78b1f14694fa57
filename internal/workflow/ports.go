// Package workflow implements the place-order pipeline: an unvalidated
// submission is validated, priced and acknowledged, producing a list of
// downstream events or exactly one typed error. The pipeline consumes
// external capabilities through the ports defined here; callers supply the
// concrete implementations.
package workflow

import (
	"context"
	"errors"

	"github.com/orderflow/order-taking-service/internal/domain"
)

// Address checker outcomes that are validation results, not remote faults.
// Any other error from CheckAddress is treated as the service itself failing.
var (
	ErrAddressNotFound      = errors.New("address not found")
	ErrAddressInvalidFormat = errors.New("address format is invalid")
)

// ProductCatalog answers catalog membership and unit prices. Price lookup is
// total: it is only ever called with codes whose existence was confirmed.
type ProductCatalog interface {
	ProductExists(code domain.ProductCode) bool
	ProductPrice(code domain.ProductCode) domain.Price
}

// AddressChecker verifies that an address exists. It may suspend on the
// network; the two sentinel errors above fold into a validation error at the
// call site, anything else into a remote-service error.
type AddressChecker interface {
	CheckAddress(ctx context.Context, address domain.UnvalidatedAddress) (domain.CheckedAddress, error)
}

// LetterWriter formats a confirmation letter for a priced order.
type LetterWriter interface {
	Letter(order *domain.PricedOrder) domain.AcknowledgmentLetter
}

// AcknowledgmentSender attempts to deliver an acknowledgment. The outcome is
// a two-valued result, never an error: a failed send is absorbed, not
// propagated.
type AcknowledgmentSender interface {
	Send(ctx context.Context, ack domain.Acknowledgment) domain.SendResult
}

// EventPublisher hands the produced events to downstream subsystems.
type EventPublisher interface {
	Publish(ctx context.Context, events []domain.PlaceOrderEvent) error
}
