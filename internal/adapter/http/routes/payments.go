package routes

import (
	"chatpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentFlowHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePaymentFlow)
		// Static segment wins over :flow_id, so "expire" never resolves as an id.
		payments.POST("/expire", paymentHandler.ExpireStaleFlows)
		payments.GET("/:flow_id", paymentHandler.GetPaymentFlow)
		payments.POST("/:flow_id/cancel", paymentHandler.CancelPaymentFlow)
		payments.POST("/:flow_id/retry", paymentHandler.RetryPaymentFlow)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", webhookHandler.HandleMercadoPagoNotification)
	}
}
