package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"chatpay/internal/domain/entities"
	"chatpay/internal/usecase/interfaces"
	"chatpay/pkg/retry"
)

var ErrMissingBirdCredentials = errors.New("missing BIRD_API_KEY / BIRD_WORKSPACE_ID / BIRD_CHANNEL_ID")
var ErrBirdSendFailed = errors.New("bird message send failed")

// BirdClient sends WhatsApp messages through the Bird API.
//
// Transport failures are retried here with the shared retry policy; the
// orchestrator treats any error that survives the retries as non-fatal for
// the payment state (a lost message never rolls back a transition).

type BirdClient struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	workspaceID string
	channelID   string
	policy      retry.Policy
	mockMode    bool
}

var _ interfaces.IMessagingGateway = (*BirdClient)(nil)

func NewBirdClientFromEnv() (*BirdClient, error) {
	if isMessagingGatewayMockEnabled() {
		log.Printf("[messaging][gateway] mock mode enabled")
		return &BirdClient{mockMode: true}, nil
	}

	apiKey := strings.TrimSpace(os.Getenv("BIRD_API_KEY"))
	workspaceID := strings.TrimSpace(os.Getenv("BIRD_WORKSPACE_ID"))
	channelID := strings.TrimSpace(os.Getenv("BIRD_CHANNEL_ID"))
	if apiKey == "" || workspaceID == "" || channelID == "" {
		log.Printf("[messaging][gateway] missing bird credentials")
		return nil, ErrMissingBirdCredentials
	}

	return &BirdClient{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     getenvDefault("BIRD_BASE_URL", "https://api.bird.com"),
		apiKey:      apiKey,
		workspaceID: workspaceID,
		channelID:   channelID,
		policy:      retry.DefaultPolicy(),
	}, nil
}

func (c *BirdClient) SendPaymentLink(ctx context.Context, msg entities.PaymentLinkMessage) error {
	text := buildPaymentLinkText(msg)
	return c.sendText(ctx, msg.CustomerPhone, text, "payment_link")
}

func (c *BirdClient) SendPaymentConfirmation(ctx context.Context, msg entities.PaymentConfirmationMessage) error {
	text := buildPaymentConfirmationText(msg)
	return c.sendText(ctx, msg.CustomerPhone, text, "payment_confirmation")
}

func (c *BirdClient) SendPaymentFailure(ctx context.Context, msg entities.PaymentFailureMessage) error {
	text := buildPaymentFailureText(msg)
	return c.sendText(ctx, msg.CustomerPhone, text, "payment_failure")
}

type birdMessageRequest struct {
	Receiver birdReceiver `json:"receiver"`
	Body     birdBody     `json:"body"`
}

type birdReceiver struct {
	Contacts []birdContact `json:"contacts"`
}

type birdContact struct {
	IdentifierValue string `json:"identifierValue"`
	IdentifierKey   string `json:"identifierKey"`
}

type birdBody struct {
	Type string   `json:"type"`
	Text birdText `json:"text"`
}

type birdText struct {
	Text string `json:"text"`
}

func (c *BirdClient) sendText(ctx context.Context, phone, text, kind string) error {
	if c.mockMode {
		log.Printf("[messaging][gateway] mock send kind=%s phone=%s len=%d", kind, phone, len(text))
		return nil
	}

	payload, err := json.Marshal(birdMessageRequest{
		Receiver: birdReceiver{Contacts: []birdContact{{IdentifierKey: "phonenumber", IdentifierValue: phone}}},
		Body:     birdBody{Type: "text", Text: birdText{Text: text}},
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/workspaces/%s/channels/%s/messages", c.baseURL, c.workspaceID, c.channelID)

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "AccessKey "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		log.Printf("[messaging][gateway] send rejected kind=%s status=%d body=%s", kind, resp.StatusCode, string(body))
		return fmt.Errorf("%w: status %d", ErrBirdSendFailed, resp.StatusCode)
	}

	if err := c.policy.Do(ctx, op); err != nil {
		log.Printf("[messaging][gateway] send failed kind=%s phone=%s err=%v", kind, phone, err)
		return err
	}
	log.Printf("[messaging][gateway] send success kind=%s phone=%s", kind, phone)
	return nil
}

func buildPaymentLinkText(msg entities.PaymentLinkMessage) string {
	greeting := "¡Hola!"
	if msg.CustomerName != "" {
		greeting = fmt.Sprintf("¡Hola %s!", msg.CustomerName)
	}
	return fmt.Sprintf(
		"%s 🛍️\n\nTu pedido está listo para pagar:\n\n%s\n\nTotal: %s\n\nPaga aquí: %s\n\n⏰ El enlace vence el %s.",
		greeting,
		entities.ItemSummary(msg.Items),
		entities.FormatCOP(msg.TotalAmount),
		msg.CheckoutURL,
		msg.ExpiresAt.Format("02/01/2006 15:04"),
	)
}

func buildPaymentConfirmationText(msg entities.PaymentConfirmationMessage) string {
	greeting := "¡Gracias por tu compra!"
	if msg.CustomerName != "" {
		greeting = fmt.Sprintf("¡Gracias por tu compra, %s!", msg.CustomerName)
	}
	return fmt.Sprintf(
		"%s ✅\n\nTu pago fue aprobado.\n\n%s\n\nTotal pagado: %s\nReferencia de pago: %s",
		greeting,
		entities.ItemSummary(msg.Items),
		entities.FormatCOP(msg.TotalAmount),
		msg.ProviderPaymentID,
	)
}

func buildPaymentFailureText(msg entities.PaymentFailureMessage) string {
	text := fmt.Sprintf("Lo sentimos 😔\n\nTu pago no pudo ser procesado: %s", msg.Reason)
	if msg.RetryURL != "" {
		text += fmt.Sprintf("\n\nIntenta de nuevo aquí: %s", msg.RetryURL)
	}
	if msg.SupportPhone != "" {
		text += fmt.Sprintf("\n\n¿Necesitas ayuda? Escríbenos al %s.", msg.SupportPhone)
	}
	return text
}

func isMessagingGatewayMockEnabled() bool {
	for _, key := range []string{"MESSAGING_GATEWAY_MOCK", "BIRD_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
