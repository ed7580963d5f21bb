package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chatpay/internal/adapter/http/handlers/mocks"
	"chatpay/internal/domain/entities"
	"chatpay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func flowFixture() entities.PaymentFlow {
	now := time.Now().UTC()
	return entities.PaymentFlow{
		FlowID:         "flow_abc",
		ConversationID: "conv-1",
		CustomerPhone:  "+573001234567",
		Items:          []entities.FlowItem{{ID: "sku-1", Title: "Camisa", Quantity: 2, UnitPrice: 100000}},
		TotalAmount:    200000,
		CheckoutURL:    "https://mp.test/c",
		Status:         entities.FlowStatusLinkSent,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(30 * time.Minute),
	}
}

func TestPaymentFlowHandler_CreatePaymentFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePaymentFlow)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePaymentFlow)

		uc.EXPECT().InitiateFlow(gomock.Any(), gomock.Any()).Return(entities.PaymentFlow{}, entities.ErrInvalidPhone)

		body := `{"conversation_id":"conv-1","customer_phone":"12345","items":[{"id":"sku-1","title":"Camisa","quantity":1,"unit_price":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider failure mapped to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePaymentFlow)

		uc.EXPECT().InitiateFlow(gomock.Any(), gomock.Any()).
			Return(entities.PaymentFlow{}, usecase.ErrPreferenceCreateFailed)

		body := `{"conversation_id":"conv-1","customer_phone":"573001234567","items":[{"id":"sku-1","title":"Camisa","quantity":1,"unit_price":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePaymentFlow)

		uc.EXPECT().InitiateFlow(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.InitiateFlowInput) (entities.PaymentFlow, error) {
				if in.ConversationID != "conv-1" {
					t.Fatalf("unexpected conversation id %q", in.ConversationID)
				}
				if len(in.Items) != 1 || in.Items[0].UnitPrice != 100000 {
					t.Fatalf("unexpected items %+v", in.Items)
				}
				return flowFixture(), nil
			})

		body := `{"conversation_id":"conv-1","customer_phone":"573001234567","items":[{"id":"sku-1","title":"Camisa","quantity":2,"unit_price":100000}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["flow_id"] != "flow_abc" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if resp["checkout_url"] != "https://mp.test/c" {
			t.Fatalf("expected checkout url, got body: %s", w.Body.String())
		}
		if resp["total_formatted"] != "$200.000 COP" {
			t.Fatalf("expected formatted total, got body: %s", w.Body.String())
		}
	})
}

func TestPaymentFlowHandler_GetPaymentFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:flow_id", h.GetPaymentFlow)

		uc.EXPECT().GetFlow(gomock.Any(), "flow_missing").Return(entities.PaymentFlow{}, usecase.ErrFlowNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/flow_missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:flow_id", h.GetPaymentFlow)

		uc.EXPECT().GetFlow(gomock.Any(), "flow_abc").Return(flowFixture(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/flow_abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "LINK_SENT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentFlowHandler_CancelPaymentFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("terminal conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:flow_id/cancel", h.CancelPaymentFlow)

		uc.EXPECT().CancelFlow(gomock.Any(), "flow_abc", gomock.Any()).
			Return(entities.PaymentFlow{}, usecase.ErrFlowNotCancellable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/flow_abc/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:flow_id/cancel", h.CancelPaymentFlow)

		cancelled := flowFixture()
		cancelled.Status = entities.FlowStatusCancelled
		uc.EXPECT().CancelFlow(gomock.Any(), "flow_abc", "changed my mind").Return(cancelled, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/flow_abc/cancel", bytes.NewBufferString(`{"reason":"changed my mind"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentFlowHandler_RetryPaymentFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("active flow conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:flow_id/retry", h.RetryPaymentFlow)

		uc.EXPECT().RetryFlow(gomock.Any(), "flow_abc").Return(entities.PaymentFlow{}, usecase.ErrFlowNotRetryable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/flow_abc/retry", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns new flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:flow_id/retry", h.RetryPaymentFlow)

		retried := flowFixture()
		retried.FlowID = "flow_def"
		uc.EXPECT().RetryFlow(gomock.Any(), "flow_abc").Return(retried, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/flow_abc/retry", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["flow_id"] != "flow_def" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentFlowHandler_ExpireStaleFlows(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentOrchestratorUseCase(ctrl)
	h := NewPaymentFlowHandler(uc)

	r := gin.New()
	r.POST("/v1/payments/expire", h.ExpireStaleFlows)

	uc.EXPECT().ExpireStaleFlows(gomock.Any()).Return(2, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/expire", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["expired"] != float64(2) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMapPaymentFlowError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidConversationID, http.StatusBadRequest},
		{entities.ErrInvalidPhone, http.StatusBadRequest},
		{entities.ErrEmptyItems, http.StatusBadRequest},
		{entities.ErrInvalidQuantity, http.StatusBadRequest},
		{entities.ErrInvalidPrice, http.StatusBadRequest},
		{usecase.ErrFlowNotFound, http.StatusNotFound},
		{usecase.ErrFlowNotCancellable, http.StatusConflict},
		{usecase.ErrFlowNotRetryable, http.StatusConflict},
		{usecase.ErrPreferenceCreateFailed, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		got := mapPaymentFlowError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
