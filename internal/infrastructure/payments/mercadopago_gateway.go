package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"chatpay/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")

// MercadoPagoGateway wraps the Mercado Pago SDK behind IPaymentGateway.
//
// Checkout sessions are created as preferences with external_reference set to
// the flow id, so a retried creation call lands on the same session instead
// of opening a second one. Status queries and cancellation use the payments
// API keyed by the provider payment id.

type MercadoPagoGateway struct {
	prefClient    preference.Client
	paymentClient payment.Client
	sandbox       bool
	mockMode      bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized sandbox=%v", isSandboxToken(accessToken))

	return &MercadoPagoGateway{
		prefClient:    preference.NewClient(cfg),
		paymentClient: payment.NewClient(cfg),
		sandbox:       isSandboxToken(accessToken),
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req interfaces.PreferenceRequest) (interfaces.PreferenceResult, error) {
	if g != nil && g.mockMode {
		id := "mock-pref-" + req.FlowID
		log.Printf("[payment][gateway] mock preference created flow_id=%s provider_payment_id=%s", req.FlowID, id)
		return interfaces.PreferenceResult{
			ProviderPaymentID: id,
			CheckoutURL:       "https://sandbox.mercadopago.test/checkout/" + id,
		}, nil
	}

	if g == nil || g.prefClient == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.PreferenceResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] preference create start flow_id=%s items=%d total=%d", req.FlowID, len(req.Items), req.TotalAmount)

	items := make([]preference.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, preference.ItemRequest{
			ID:         it.ID,
			Title:      it.Title,
			Quantity:   int(it.Quantity),
			UnitPrice:  float64(it.UnitPrice),
			CurrencyID: "COP",
		})
	}

	expiresAt := req.ExpiresAt.UTC()
	prefReq := preference.Request{
		Items:             items,
		ExternalReference: req.FlowID,
		Expires:           true,
		ExpirationDateTo:  &expiresAt,
		NotificationURL:   strings.TrimSpace(os.Getenv("MERCADOPAGO_NOTIFICATION_URL")),
		Payer: &preference.PayerRequest{
			Name:  req.CustomerName,
			Phone: &preference.PhoneRequest{Number: strings.TrimPrefix(req.CustomerPhone, "+")},
		},
		Metadata: map[string]any{
			"source":          "whatsapp_integration",
			"conversation_id": req.ConversationID,
		},
	}

	resp, err := g.prefClient.Create(ctx, prefReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed flow_id=%s err=%v", req.FlowID, err)
		return interfaces.PreferenceResult{}, err
	}

	checkoutURL := resp.InitPoint
	if g.sandbox && resp.SandboxInitPoint != "" {
		checkoutURL = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] preference create success flow_id=%s provider_payment_id=%s", req.FlowID, resp.ID)

	return interfaces.PreferenceResult{ProviderPaymentID: resp.ID, CheckoutURL: checkoutURL}, nil
}

func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, providerPaymentID string) (string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		raw := json.RawMessage(fmt.Sprintf(`{"id":%q,"status":"approved","status_detail":"accredited"}`, providerPaymentID))
		return "approved", raw, nil
	}

	if g == nil || g.paymentClient == nil {
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		log.Printf("[payment][gateway] non-numeric payment id provider_payment_id=%s", providerPaymentID)
		return "", nil, ErrInvalidProviderPaymentID
	}

	resp, err := g.paymentClient.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk payment get failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	log.Printf("[payment][gateway] payment status provider_payment_id=%s status=%s", providerPaymentID, resp.Status)
	return resp.Status, raw, nil
}

func (g *MercadoPagoGateway) CancelPayment(ctx context.Context, providerPaymentID string) error {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock cancel provider_payment_id=%s", providerPaymentID)
		return nil
	}

	if g == nil || g.paymentClient == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return ErrInvalidProviderPaymentID
	}

	if _, err := g.paymentClient.Cancel(ctx, id); err != nil {
		log.Printf("[payment][gateway] sdk payment cancel failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return err
	}
	log.Printf("[payment][gateway] payment cancelled provider_payment_id=%s", providerPaymentID)
	return nil
}

func isSandboxToken(accessToken string) bool {
	return strings.HasPrefix(strings.TrimSpace(accessToken), "TEST-")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
