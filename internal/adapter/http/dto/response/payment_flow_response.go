package response

import (
	"time"

	"chatpay/internal/domain/entities"
)

type FlowItemResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type PaymentFlowResponse struct {
	FlowID            string             `json:"flow_id"`
	ConversationID    string             `json:"conversation_id"`
	CustomerPhone     string             `json:"customer_phone"`
	CustomerName      string             `json:"customer_name,omitempty"`
	Items             []FlowItemResponse `json:"items"`
	TotalAmount       int64              `json:"total_amount"`
	TotalFormatted    string             `json:"total_formatted"`
	ProviderPaymentID string             `json:"provider_payment_id,omitempty"`
	CheckoutURL       string             `json:"checkout_url,omitempty"`
	Status            string             `json:"status"`
	StatusReason      string             `json:"status_reason,omitempty"`
	RetryCount        int                `json:"retry_count"`
	Metadata          map[string]string  `json:"metadata,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	ExpiresAt         time.Time          `json:"expires_at"`
}

func FromPaymentFlow(f entities.PaymentFlow) PaymentFlowResponse {
	items := make([]FlowItemResponse, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, FlowItemResponse{
			ID:        it.ID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return PaymentFlowResponse{
		FlowID:            f.FlowID,
		ConversationID:    f.ConversationID,
		CustomerPhone:     f.CustomerPhone,
		CustomerName:      f.CustomerName,
		Items:             items,
		TotalAmount:       f.TotalAmount,
		TotalFormatted:    entities.FormatCOP(f.TotalAmount),
		ProviderPaymentID: f.ProviderPaymentID,
		CheckoutURL:       f.CheckoutURL,
		Status:            string(f.Status),
		StatusReason:      f.StatusReason,
		RetryCount:        f.RetryCount,
		Metadata:          f.Metadata,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
		ExpiresAt:         f.ExpiresAt,
	}
}

// ExpireSweepResponse reports one run of the stale-flow sweep.
type ExpireSweepResponse struct {
	Expired int `json:"expired"`
}

// WebhookAckResponse is the 200 body returned to the payment provider.
type WebhookAckResponse struct {
	Status string `json:"status"`
}
