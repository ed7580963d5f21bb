package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"chatpay/internal/domain/entities"
)

// PreferenceRequest is what the orchestrator needs from the provider to open
// a checkout session. FlowID doubles as the idempotency token: it is passed
// as the provider's external reference so a retried call never duplicates a
// preference.
type PreferenceRequest struct {
	FlowID         string
	ConversationID string
	CustomerPhone  string
	CustomerName   string
	Items          []entities.FlowItem
	TotalAmount    int64
	ExpiresAt      time.Time
}

// PreferenceResult is the provider's checkout session.
type PreferenceResult struct {
	ProviderPaymentID string
	CheckoutURL       string
}

// IPaymentGateway abstracts the payments provider (Mercado Pago).
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (PreferenceResult, error)
	// GetPaymentStatus queries the provider for the current status of a
	// payment and returns the raw provider payload for audit.
	GetPaymentStatus(ctx context.Context, providerPaymentID string) (status string, raw json.RawMessage, err error)
	CancelPayment(ctx context.Context, providerPaymentID string) error
}
