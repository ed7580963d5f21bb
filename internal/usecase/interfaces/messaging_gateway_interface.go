package interfaces

import (
	"context"

	"chatpay/internal/domain/entities"
)

// IMessagingGateway abstracts the WhatsApp messaging provider (Bird).
//
// Sends are fire-and-forget from the state machine's point of view: a failed
// send never rolls back a payment transition, it is logged and retried by the
// caller's policy.
type IMessagingGateway interface {
	SendPaymentLink(ctx context.Context, msg entities.PaymentLinkMessage) error
	SendPaymentConfirmation(ctx context.Context, msg entities.PaymentConfirmationMessage) error
	SendPaymentFailure(ctx context.Context, msg entities.PaymentFailureMessage) error
}
