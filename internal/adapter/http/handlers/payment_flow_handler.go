package handlers

import (
	"errors"
	"log"
	"net/http"

	request "chatpay/internal/adapter/http/dto/request"
	response "chatpay/internal/adapter/http/dto/response"
	"chatpay/internal/domain/entities"
	"chatpay/internal/usecase"
	"chatpay/internal/usecase/interfaces"
	"chatpay/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFlowPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment flow payload", http.StatusBadRequest)
)

// PaymentFlowHandler handles the HTTP surface of the payment flow lifecycle.

type PaymentFlowHandler struct {
	usecase usecase.IPaymentOrchestratorUseCase
}

func NewPaymentFlowHandler(uc usecase.IPaymentOrchestratorUseCase) *PaymentFlowHandler {
	return &PaymentFlowHandler{usecase: uc}
}

// CreatePaymentFlow starts a flow: persists it, opens a checkout session and
// sends the payment link to the customer.
func (h *PaymentFlowHandler) CreatePaymentFlow(c *gin.Context) {
	var payload request.PaymentFlowCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start conversation_id=%s items=%d", payload.ConversationID, len(payload.Items))

	flow, err := h.usecase.InitiateFlow(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] create failed conversation_id=%s err=%v", payload.ConversationID, err)
		appErr := mapPaymentFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success flow_id=%s status=%s", flow.FlowID, flow.Status)

	c.JSON(http.StatusCreated, response.FromPaymentFlow(flow))
}

// GetPaymentFlow returns the current state of a flow.
func (h *PaymentFlowHandler) GetPaymentFlow(c *gin.Context) {
	flowID := c.Param("flow_id")

	flow, err := h.usecase.GetFlow(c.Request.Context(), flowID)
	if err != nil {
		log.Printf("[payment][handler] get failed flow_id=%s err=%v", flowID, err)
		appErr := mapPaymentFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentFlow(flow))
}

// CancelPaymentFlow cancels a non-terminal flow on the customer's request.
func (h *PaymentFlowHandler) CancelPaymentFlow(c *gin.Context) {
	flowID := c.Param("flow_id")

	var payload request.PaymentFlowCancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		// The body is optional; an absent or empty reason is fine.
		payload = request.PaymentFlowCancelRequest{}
	}
	log.Printf("[payment][handler] cancel start flow_id=%s", flowID)

	flow, err := h.usecase.CancelFlow(c.Request.Context(), flowID, payload.Reason)
	if err != nil {
		log.Printf("[payment][handler] cancel failed flow_id=%s err=%v", flowID, err)
		appErr := mapPaymentFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] cancel success flow_id=%s", flow.FlowID)

	c.JSON(http.StatusOK, response.FromPaymentFlow(flow))
}

// RetryPaymentFlow opens a fresh flow for the same cart after a terminal
// failure. The original flow stays untouched.
func (h *PaymentFlowHandler) RetryPaymentFlow(c *gin.Context) {
	flowID := c.Param("flow_id")
	log.Printf("[payment][handler] retry start flow_id=%s", flowID)

	flow, err := h.usecase.RetryFlow(c.Request.Context(), flowID)
	if err != nil {
		log.Printf("[payment][handler] retry failed flow_id=%s err=%v", flowID, err)
		appErr := mapPaymentFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] retry success original_flow_id=%s retry_flow_id=%s", flowID, flow.FlowID)

	c.JSON(http.StatusCreated, response.FromPaymentFlow(flow))
}

// ExpireStaleFlows runs one sweep over flows past their expiry deadline.
// Intended to be called by a scheduler.
func (h *PaymentFlowHandler) ExpireStaleFlows(c *gin.Context) {
	expired, err := h.usecase.ExpireStaleFlows(c.Request.Context())
	if err != nil {
		log.Printf("[payment][handler] expire sweep failed err=%v", err)
		appErr := mapPaymentFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] expire sweep done expired=%d", expired)

	c.JSON(http.StatusOK, response.ExpireSweepResponse{Expired: expired})
}

func mapPaymentFlowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConversationID),
		errors.Is(err, entities.ErrInvalidPhone),
		errors.Is(err, entities.ErrEmptyItems),
		errors.Is(err, entities.ErrInvalidItem),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFlowNotFound):
		return pkg.NewDomainErrorSimple("FLOW_NOT_FOUND", "Payment flow not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFlowNotCancellable):
		return pkg.NewDomainErrorSimple("FLOW_NOT_CANCELLABLE", "Payment flow already reached a final state", http.StatusConflict)
	case errors.Is(err, usecase.ErrFlowNotRetryable):
		return pkg.NewDomainErrorSimple("FLOW_NOT_RETRYABLE", "Only failed flows can be retried", http.StatusConflict)
	case errors.Is(err, interfaces.ErrFlowConflict):
		return pkg.NewDomainErrorSimple("FLOW_CONFLICT", "Payment flow already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrPreferenceCreateFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider refused to open a checkout session", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
