package entities

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// FlowStatus represents the lifecycle of a payment flow.
//
// Domain notes:
//   - Transitions are monotonic along the state machine; the only backward-ish
//     move is an explicit cancellation from a non-terminal state.
//   - Terminal statuses never change again: webhook replays on a terminal flow
//     are recorded but ignored.

type FlowStatus string

const (
	FlowStatusCreated   FlowStatus = "CREATED"
	FlowStatusLinkSent  FlowStatus = "LINK_SENT"
	FlowStatusPending   FlowStatus = "PENDING"
	FlowStatusApproved  FlowStatus = "APPROVED"
	FlowStatusRejected  FlowStatus = "REJECTED"
	FlowStatusCancelled FlowStatus = "CANCELLED"
	FlowStatusExpired   FlowStatus = "EXPIRED"
)

var (
	ErrInvalidPhone    = errors.New("invalid colombian phone number")
	ErrEmptyItems      = errors.New("items must not be empty")
	ErrInvalidItem     = errors.New("invalid item")
	ErrInvalidQuantity = errors.New("item quantity must be >= 1")
	ErrInvalidPrice    = errors.New("item unit_price must be >= 0")
)

// FlowItem is a single cart line inside a payment flow.
//
// Monetary representation:
//   - UnitPrice is an integer amount in COP. Colombian pesos carry no
//     fractional unit in checkout flows, and integer arithmetic avoids the
//     rounding drift floats introduce in currency totals.
type FlowItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// PaymentFlow is the central entity: one end-to-end attempt to collect payment
// for a cart within a WhatsApp conversation.
//
// Storage model (DynamoDB):
//   - PK: flow_id
//   - GSI1 (provider_payment_id-index): provider_payment_id
//
// Invariants:
//   - FlowID is immutable and unique for the lifetime of the record.
//   - ProviderPaymentID, once set, is immutable.
//   - TotalAmount is always recomputed from Items, never trusted from input.
type PaymentFlow struct {
	FlowID            string            `json:"flow_id"`
	ConversationID    string            `json:"conversation_id"`
	CustomerPhone     string            `json:"customer_phone"`
	CustomerName      string            `json:"customer_name,omitempty"`
	Items             []FlowItem        `json:"items"`
	TotalAmount       int64             `json:"total_amount"`
	ProviderPaymentID string            `json:"provider_payment_id,omitempty"`
	CheckoutURL       string            `json:"checkout_url,omitempty"`
	Status            FlowStatus        `json:"status"`
	StatusReason      string            `json:"status_reason,omitempty"`
	RetryCount        int               `json:"retry_count"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	ExpiresAt         time.Time         `json:"expires_at"`
}

// ComputeTotal returns the server-side total: sum(quantity * unit_price).
func ComputeTotal(items []FlowItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Quantity * it.UnitPrice
	}
	return total
}

// ValidateItems enforces the cart rules applied before any external call.
func ValidateItems(items []FlowItem) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	for _, it := range items {
		if strings.TrimSpace(it.ID) == "" || strings.TrimSpace(it.Title) == "" {
			return ErrInvalidItem
		}
		if it.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if it.UnitPrice < 0 {
			return ErrInvalidPrice
		}
	}
	return nil
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone validates and normalizes a Colombian phone number.
//
// Accepted inputs: "+57XXXXXXXXXX", "57XXXXXXXXXX" (12 digits) or a bare
// 10-digit mobile number, which gets the 57 country prefix. Returns the
// canonical "+57..." form.
func NormalizePhone(phone string) (string, error) {
	clean := nonDigits.ReplaceAllString(phone, "")
	if len(clean) == 10 {
		clean = "57" + clean
	}
	if len(clean) != 12 || !strings.HasPrefix(clean, "57") {
		return "", ErrInvalidPhone
	}
	return "+" + clean, nil
}

// IsTerminal reports whether the flow reached a status that accepts no
// further mutation.
func (f *PaymentFlow) IsTerminal() bool {
	switch f.Status {
	case FlowStatusApproved, FlowStatusRejected, FlowStatusCancelled, FlowStatusExpired:
		return true
	}
	return false
}

// flowTransitions is the allowed-transition table of the state machine.
// Terminal states have no outgoing edges.
var flowTransitions = map[FlowStatus][]FlowStatus{
	FlowStatusCreated:  {FlowStatusLinkSent, FlowStatusRejected, FlowStatusCancelled, FlowStatusExpired},
	FlowStatusLinkSent: {FlowStatusPending, FlowStatusApproved, FlowStatusRejected, FlowStatusCancelled, FlowStatusExpired},
	FlowStatusPending:  {FlowStatusApproved, FlowStatusRejected, FlowStatusCancelled, FlowStatusExpired},
}

// CanTransitionTo reports whether moving from the current status to target is
// allowed by the state machine.
func (f *PaymentFlow) CanTransitionTo(target FlowStatus) bool {
	for _, s := range flowTransitions[f.Status] {
		if s == target {
			return true
		}
	}
	return false
}

// Transition moves the flow to target and stamps UpdatedAt. Callers must have
// checked CanTransitionTo first; Transition double-checks and refuses
// silently-invalid moves.
func (f *PaymentFlow) Transition(target FlowStatus) bool {
	if !f.CanTransitionTo(target) {
		return false
	}
	f.Status = target
	f.UpdatedAt = time.Now().UTC()
	return true
}
