package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	request "chatpay/internal/adapter/http/dto/request"
	response "chatpay/internal/adapter/http/dto/response"
	"chatpay/internal/usecase"
	"chatpay/pkg"
	"chatpay/pkg/signature"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Mercado Pago payment notifications.
//
// The provider delivers at-least-once with retries on any non-2xx answer, so
// the handler answers 200 for every outcome that a retry cannot improve
// (unknown ids, duplicates, terminal flows) and reserves 5xx for transient
// store or provider failures.

type WebhookHandler struct {
	usecase usecase.IPaymentOrchestratorUseCase
	secret  string
}

func NewWebhookHandler(uc usecase.IPaymentOrchestratorUseCase, secret string) *WebhookHandler {
	if strings.TrimSpace(secret) == "" {
		log.Printf("[webhook][handler] MERCADOPAGO_WEBHOOK_SECRET not set; signature verification disabled")
	}
	return &WebhookHandler{usecase: uc, secret: strings.TrimSpace(secret)}
}

// HandleMercadoPagoNotification verifies, parses and applies one webhook
// delivery.
func (h *WebhookHandler) HandleMercadoPagoNotification(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.secret != "" {
		received := extractSignature(c.GetHeader("X-Signature"))
		if err := signature.Verify(raw, received, h.secret); err != nil {
			log.Printf("[webhook][handler] signature rejected err=%v", err)
			appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	var notif request.MercadoPagoNotification
	if err := json.Unmarshal(raw, &notif); err != nil {
		log.Printf("[webhook][handler] malformed notification err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Malformed notification payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if notif.Type != "" && notif.Type != "payment" {
		// Other topics (merchant_order, plan, ...) are acknowledged untouched.
		log.Printf("[webhook][handler] non-payment topic ignored type=%s action=%s", notif.Type, notif.Action)
		c.JSON(http.StatusOK, response.WebhookAckResponse{Status: "ignored"})
		return
	}

	providerPaymentID := strings.TrimSpace(notif.Data.ID)
	if providerPaymentID == "" {
		log.Printf("[webhook][handler] notification without data.id action=%s", notif.Action)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Notification carries no payment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] notification received provider_event_id=%s provider_payment_id=%s action=%s",
		notif.EventID(), providerPaymentID, notif.Action)

	if err := h.usecase.ProcessPaymentNotification(c.Request.Context(), notif.EventID(), providerPaymentID, raw); err != nil {
		// A 5xx makes the provider redeliver; dedup keeps that safe.
		log.Printf("[webhook][handler] processing failed provider_payment_id=%s err=%v", providerPaymentID, err)
		appErr := pkg.NewDomainError("WEBHOOK_PROCESSING_FAILED", "Notification could not be processed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Status: "ok"})
}

// extractSignature accepts either a bare hex digest or the provider's
// "ts=...,v1=<hex>" composite header form.
func extractSignature(header string) string {
	header = strings.TrimSpace(header)
	if !strings.Contains(header, "v1=") {
		return header
	}
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if v, ok := strings.CutPrefix(part, "v1="); ok {
			return strings.TrimSpace(v)
		}
	}
	return header
}
