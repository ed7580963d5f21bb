package interfaces

import (
	"context"

	"chatpay/internal/domain/entities"
)

// IWebhookEventStore abstracts the deduplication records that make webhook
// processing and outbound notification sends idempotent.
type IWebhookEventStore interface {
	// RecordEvent inserts the event if its provider_event_id is unseen.
	// Returns false when the event was already recorded (duplicate delivery).
	RecordEvent(ctx context.Context, ev entities.WebhookEvent) (inserted bool, err error)
	// MarkNotificationSent records that a customer notification for
	// (flow_id, status) was dispatched. Returns false when one was already
	// recorded, so the caller must not send again.
	MarkNotificationSent(ctx context.Context, flowID string, status entities.FlowStatus) (inserted bool, err error)
}
