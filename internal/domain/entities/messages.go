package entities

import (
	"fmt"
	"strconv"
	"time"
)

// Outbound WhatsApp message payloads. These are value types only; rendering
// into provider templates happens in the messaging gateway.

// PaymentLinkMessage carries everything needed to send a checkout link.
type PaymentLinkMessage struct {
	ConversationID string
	CustomerPhone  string
	CustomerName   string
	TotalAmount    int64
	Items          []FlowItem
	CheckoutURL    string
	ExpiresAt      time.Time
}

// PaymentConfirmationMessage is sent after an approved payment.
type PaymentConfirmationMessage struct {
	ConversationID    string
	CustomerPhone     string
	CustomerName      string
	ProviderPaymentID string
	TotalAmount       int64
	Items             []FlowItem
}

// PaymentFailureMessage is sent after a rejected payment, with a retry option.
type PaymentFailureMessage struct {
	ConversationID string
	CustomerPhone  string
	CustomerName   string
	Reason         string
	RetryURL       string
	SupportPhone   string
}

// FormatCOP renders an integer peso amount in the Colombian convention,
// e.g. 1234567 -> "$1.234.567 COP".
func FormatCOP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return fmt.Sprintf("$%s COP", s)
}

// ItemSummary renders a short line-per-item cart summary for message bodies.
func ItemSummary(items []FlowItem) string {
	summary := ""
	for _, it := range items {
		if summary != "" {
			summary += "\n"
		}
		summary += fmt.Sprintf("• %s x%d - %s", it.Title, it.Quantity, FormatCOP(it.Quantity*it.UnitPrice))
	}
	return summary
}
