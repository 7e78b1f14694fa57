package workflow

import (
	"context"

	"github.com/orderflow/order-taking-service/internal/domain"
)

// acknowledgeOrder formats a confirmation letter and attempts to send it.
// This step cannot fail the workflow: a send that does not go through yields
// no event and the pipeline proceeds exactly as if acknowledgment had not
// been attempted.
func acknowledgeOrder(
	ctx context.Context,
	letters LetterWriter,
	sender AcknowledgmentSender,
	order *domain.PricedOrder,
) *domain.AcknowledgmentSentEvent {
	ack := domain.Acknowledgment{
		EmailAddress: order.CustomerInfo.EmailAddress,
		Letter:       letters.Letter(order),
	}

	if sender.Send(ctx, ack) == domain.SendResultSent {
		return domain.NewAcknowledgmentSentEvent(order)
	}
	return nil
}
