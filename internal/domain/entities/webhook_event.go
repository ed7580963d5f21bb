package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// WebhookEvent is the idempotency record for one provider webhook delivery.
//
// Storage model (DynamoDB):
//   - PK: provider_event_id
//
// The transport delivers at-least-once; recording the event id before the
// state machine runs gives the business transition at-most-once semantics.
type WebhookEvent struct {
	ProviderEventID string    `json:"provider_event_id"`
	FlowID          string    `json:"flow_id,omitempty"`
	PayloadHash     string    `json:"raw_payload_hash"`
	ReceivedAt      time.Time `json:"received_at"`
}

// HashPayload returns the SHA-256 hex digest of the raw webhook body.
func HashPayload(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
