package request

import "encoding/json"

// MercadoPagoNotification is the webhook envelope Mercado Pago posts on
// payment events. `data.id` is the payment resource id; the notification
// carries no status, so the receiver must query the payments API.
//
// `id` arrives as a number on real deliveries and as a string on the
// dashboard's test sends, so it is decoded through json.Number.

type MercadoPagoNotificationData struct {
	ID string `json:"id"`
}

type MercadoPagoNotification struct {
	ID     json.Number                 `json:"id"`
	Type   string                      `json:"type"`
	Action string                      `json:"action"`
	Data   MercadoPagoNotificationData `json:"data"`
}

// EventID returns the provider event id, or "" when the envelope carried none.
func (n MercadoPagoNotification) EventID() string {
	return n.ID.String()
}
