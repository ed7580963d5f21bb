package request

import (
	"chatpay/internal/domain/entities"
	"chatpay/internal/usecase"
)

// PaymentFlowCreateRequest is the payload for starting a payment flow from a
// WhatsApp conversation. Prices arrive as integer COP amounts; the server
// recomputes the total and ignores any client-side sum.

type FlowItemRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type PaymentFlowCreateRequest struct {
	ConversationID string            `json:"conversation_id"`
	CustomerPhone  string            `json:"customer_phone"`
	CustomerName   string            `json:"customer_name"`
	Items          []FlowItemRequest `json:"items"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

func (r PaymentFlowCreateRequest) ToInput() usecase.InitiateFlowInput {
	items := make([]entities.FlowItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.FlowItem{
			ID:        it.ID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return usecase.InitiateFlowInput{
		ConversationID: r.ConversationID,
		CustomerPhone:  r.CustomerPhone,
		CustomerName:   r.CustomerName,
		Items:          items,
		Metadata:       r.Metadata,
	}
}

// PaymentFlowCancelRequest carries the optional cancellation reason.
type PaymentFlowCancelRequest struct {
	Reason string `json:"reason"`
}
