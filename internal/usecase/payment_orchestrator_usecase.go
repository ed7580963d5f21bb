package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"chatpay/internal/domain/entities"
	"chatpay/internal/usecase/interfaces"
	"chatpay/pkg/retry"

	"github.com/google/uuid"
)

var (
	ErrFlowNotFound           = errors.New("payment flow not found")
	ErrInvalidConversationID  = errors.New("invalid conversation_id")
	ErrFlowNotCancellable     = errors.New("payment flow is not cancellable")
	ErrFlowNotRetryable       = errors.New("payment flow is not retryable")
	ErrPreferenceCreateFailed = errors.New("payment preference creation failed")
)

const (
	defaultFlowTTLMinutes = 30

	// StatusReasonPreferenceFailed marks flows terminalized because the
	// provider refused to open a checkout session after all retries.
	StatusReasonPreferenceFailed = "preference_creation_failed"
)

// InitiateFlowInput is the validated-at-the-boundary request to start a flow.
type InitiateFlowInput struct {
	ConversationID string
	CustomerPhone  string
	CustomerName   string
	Items          []entities.FlowItem
	Metadata       map[string]string
}

// IPaymentOrchestratorUseCase owns the payment-flow state machine: it is the
// only writer of PaymentFlow records. Handlers and adapters never mutate a
// flow directly.
//
// Concurrency model: each call runs on its own request goroutine with no
// shared in-process state; all coordination happens through conditional
// writes on the flow record and insert-once dedup records. No lock is held
// across an external call.

type IPaymentOrchestratorUseCase interface {
	InitiateFlow(ctx context.Context, in InitiateFlowInput) (entities.PaymentFlow, error)
	// ProcessStatusUpdate applies one provider-reported status to the flow
	// identified by providerPaymentID. Unknown payment ids and terminal
	// flows are steady-state no-ops, not errors.
	ProcessStatusUpdate(ctx context.Context, providerPaymentID, reportedStatus, providerEventID string, raw json.RawMessage) error
	// ProcessPaymentNotification resolves the current payment status from the
	// provider and feeds it into ProcessStatusUpdate. This is the webhook
	// entrypoint: Mercado Pago notifications carry only resource ids.
	ProcessPaymentNotification(ctx context.Context, providerEventID, providerPaymentID string, raw json.RawMessage) error
	CancelFlow(ctx context.Context, flowID, reason string) (entities.PaymentFlow, error)
	RetryFlow(ctx context.Context, flowID string) (entities.PaymentFlow, error)
	ExpireStaleFlows(ctx context.Context) (int, error)
	GetFlow(ctx context.Context, flowID string) (entities.PaymentFlow, error)
}

type PaymentOrchestratorUseCase struct {
	flows     interfaces.IPaymentFlowStore
	events    interfaces.IWebhookEventStore
	gateway   interfaces.IPaymentGateway
	messenger interfaces.IMessagingGateway

	createPolicy retry.Policy
	flowTTL      time.Duration
	supportPhone string
}

var _ IPaymentOrchestratorUseCase = (*PaymentOrchestratorUseCase)(nil)

func NewPaymentOrchestratorUseCase(
	flows interfaces.IPaymentFlowStore,
	events interfaces.IWebhookEventStore,
	gateway interfaces.IPaymentGateway,
	messenger interfaces.IMessagingGateway,
) *PaymentOrchestratorUseCase {
	return &PaymentOrchestratorUseCase{
		flows:        flows,
		events:       events,
		gateway:      gateway,
		messenger:    messenger,
		createPolicy: createPolicyFromEnv(),
		flowTTL:      flowTTLFromEnv(),
		supportPhone: strings.TrimSpace(os.Getenv("SUPPORT_PHONE")),
	}
}

func (u *PaymentOrchestratorUseCase) InitiateFlow(ctx context.Context, in InitiateFlowInput) (entities.PaymentFlow, error) {
	conversationID := strings.TrimSpace(in.ConversationID)
	if conversationID == "" {
		log.Printf("[payment][usecase] initiate rejected: empty conversation_id")
		return entities.PaymentFlow{}, ErrInvalidConversationID
	}
	phone, err := entities.NormalizePhone(in.CustomerPhone)
	if err != nil {
		log.Printf("[payment][usecase] initiate rejected: bad phone conversation_id=%s err=%v", conversationID, err)
		return entities.PaymentFlow{}, err
	}
	if err := entities.ValidateItems(in.Items); err != nil {
		log.Printf("[payment][usecase] initiate rejected: bad items conversation_id=%s err=%v", conversationID, err)
		return entities.PaymentFlow{}, err
	}

	now := time.Now().UTC()
	flow := entities.PaymentFlow{
		FlowID:         "flow_" + uuid.NewString(),
		ConversationID: conversationID,
		CustomerPhone:  phone,
		CustomerName:   strings.TrimSpace(in.CustomerName),
		Items:          in.Items,
		TotalAmount:    entities.ComputeTotal(in.Items),
		Status:         entities.FlowStatusCreated,
		Metadata:       in.Metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(u.flowTTL),
	}

	if err := u.flows.Insert(ctx, flow); err != nil {
		log.Printf("[payment][usecase] initiate insert failed flow_id=%s err=%v", flow.FlowID, err)
		return entities.PaymentFlow{}, err
	}
	log.Printf("[payment][usecase] flow created flow_id=%s conversation_id=%s total=%d items=%d",
		flow.FlowID, conversationID, flow.TotalAmount, len(flow.Items))

	// The flow id rides along as the provider's external reference, so a
	// retried call can never open a second checkout session.
	prefReq := interfaces.PreferenceRequest{
		FlowID:         flow.FlowID,
		ConversationID: flow.ConversationID,
		CustomerPhone:  flow.CustomerPhone,
		CustomerName:   flow.CustomerName,
		Items:          flow.Items,
		TotalAmount:    flow.TotalAmount,
		ExpiresAt:      flow.ExpiresAt,
	}

	var pref interfaces.PreferenceResult
	err = u.createPolicy.Do(ctx, func() error {
		p, err := u.gateway.CreatePreference(ctx, prefReq)
		if err != nil {
			flow.RetryCount++
			log.Printf("[payment][usecase] preference create attempt failed flow_id=%s retry_count=%d err=%v",
				flow.FlowID, flow.RetryCount, err)
			return err
		}
		pref = p
		return nil
	})
	if err != nil {
		u.terminalizeAfterCreateFailure(ctx, flow)
		return entities.PaymentFlow{}, fmt.Errorf("%w: %v", ErrPreferenceCreateFailed, err)
	}

	flow.ProviderPaymentID = pref.ProviderPaymentID
	flow.CheckoutURL = pref.CheckoutURL
	flow.Transition(entities.FlowStatusLinkSent)
	if err := u.flows.ConditionalUpdate(ctx, flow, entities.FlowStatusCreated); err != nil {
		log.Printf("[payment][usecase] link-sent update failed flow_id=%s err=%v", flow.FlowID, err)
		return entities.PaymentFlow{}, err
	}
	log.Printf("[payment][usecase] preference created flow_id=%s provider_payment_id=%s", flow.FlowID, flow.ProviderPaymentID)

	// A failed send never rolls back the preference: the flow stays
	// LINK_SENT and a later retry call can resend.
	if err := u.messenger.SendPaymentLink(ctx, entities.PaymentLinkMessage{
		ConversationID: flow.ConversationID,
		CustomerPhone:  flow.CustomerPhone,
		CustomerName:   flow.CustomerName,
		TotalAmount:    flow.TotalAmount,
		Items:          flow.Items,
		CheckoutURL:    flow.CheckoutURL,
		ExpiresAt:      flow.ExpiresAt,
	}); err != nil {
		log.Printf("[payment][usecase] payment link send failed flow_id=%s err=%v", flow.FlowID, err)
	} else {
		log.Printf("[payment][usecase] payment link sent flow_id=%s", flow.FlowID)
	}

	return flow, nil
}

func (u *PaymentOrchestratorUseCase) terminalizeAfterCreateFailure(ctx context.Context, flow entities.PaymentFlow) {
	flow.StatusReason = StatusReasonPreferenceFailed
	flow.Transition(entities.FlowStatusRejected)
	if err := u.flows.ConditionalUpdate(ctx, flow, entities.FlowStatusCreated); err != nil {
		log.Printf("[payment][usecase] terminalize failed flow_id=%s err=%v", flow.FlowID, err)
		return
	}
	log.Printf("[payment][usecase] flow terminalized flow_id=%s reason=%s retry_count=%d",
		flow.FlowID, StatusReasonPreferenceFailed, flow.RetryCount)
}

// mapProviderStatus translates a Mercado Pago payment status into a target
// flow status. Unrecognized statuses are ignored, never an error.
func mapProviderStatus(reported string) (entities.FlowStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(reported)) {
	case "approved":
		return entities.FlowStatusApproved, true
	case "pending", "in_process":
		return entities.FlowStatusPending, true
	case "rejected", "cancelled", "refunded":
		return entities.FlowStatusRejected, true
	default:
		return "", false
	}
}

func (u *PaymentOrchestratorUseCase) ProcessPaymentNotification(ctx context.Context, providerEventID, providerPaymentID string, raw json.RawMessage) error {
	status, _, err := u.gateway.GetPaymentStatus(ctx, providerPaymentID)
	if err != nil {
		log.Printf("[webhook][usecase] status query failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return err
	}
	return u.ProcessStatusUpdate(ctx, providerPaymentID, status, providerEventID, raw)
}

func (u *PaymentOrchestratorUseCase) ProcessStatusUpdate(ctx context.Context, providerPaymentID, reportedStatus, providerEventID string, raw json.RawMessage) error {
	flow, err := u.flows.GetByProviderPaymentID(ctx, providerPaymentID)
	if err != nil {
		return err
	}
	if flow.FlowID == "" {
		// Expected for cross-environment webhook replays; never fatal.
		log.Printf("[webhook][usecase] unknown payment id provider_payment_id=%s provider_event_id=%s", providerPaymentID, providerEventID)
		return nil
	}

	if providerEventID == "" {
		providerEventID = entities.HashPayload(raw)
	}
	inserted, err := u.events.RecordEvent(ctx, entities.WebhookEvent{
		ProviderEventID: providerEventID,
		FlowID:          flow.FlowID,
		PayloadHash:     entities.HashPayload(raw),
		ReceivedAt:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if !inserted {
		log.Printf("[webhook][usecase] duplicate delivery ignored provider_event_id=%s flow_id=%s", providerEventID, flow.FlowID)
		return nil
	}

	if flow.IsTerminal() {
		// Providers redeliver after terminal states; record and move on.
		log.Printf("[webhook][usecase] terminal flow untouched flow_id=%s status=%s reported=%s",
			flow.FlowID, flow.Status, reportedStatus)
		return nil
	}

	target, ok := mapProviderStatus(reportedStatus)
	if !ok {
		log.Printf("[webhook][usecase] unrecognized provider status ignored flow_id=%s reported=%s", flow.FlowID, reportedStatus)
		return nil
	}

	if err := u.applyTransition(ctx, flow, target, true); err != nil {
		return err
	}
	return nil
}

// applyTransition performs the conditional-write transition with a single
// re-read retry when a concurrent webhook or sweep raced the first attempt.
func (u *PaymentOrchestratorUseCase) applyTransition(ctx context.Context, flow entities.PaymentFlow, target entities.FlowStatus, retryOnce bool) error {
	if !flow.CanTransitionTo(target) {
		log.Printf("[webhook][usecase] transition not allowed flow_id=%s from=%s to=%s", flow.FlowID, flow.Status, target)
		return nil
	}

	expected := flow.Status
	flow.Transition(target)
	err := u.flows.ConditionalUpdate(ctx, flow, expected)
	if errors.Is(err, interfaces.ErrConcurrentUpdate) {
		if !retryOnce {
			log.Printf("[webhook][usecase] transition lost race twice flow_id=%s to=%s", flow.FlowID, target)
			return err
		}
		current, rerr := u.flows.GetByFlowID(ctx, flow.FlowID)
		if rerr != nil {
			return rerr
		}
		if current.FlowID == "" {
			return ErrFlowNotFound
		}
		if current.IsTerminal() || current.Status == target {
			log.Printf("[webhook][usecase] race resolved by winner flow_id=%s status=%s", current.FlowID, current.Status)
			return nil
		}
		return u.applyTransition(ctx, current, target, false)
	}
	if err != nil {
		return err
	}

	log.Printf("[payment][usecase] status transition flow_id=%s from=%s to=%s", flow.FlowID, expected, target)
	u.notifyCustomer(ctx, flow, target)
	return nil
}

// notifyCustomer dispatches at most one outbound message per (flow, status)
// pair. The insert-once marker closes the race where two deliveries of
// distinct event ids both reach the transition point.
func (u *PaymentOrchestratorUseCase) notifyCustomer(ctx context.Context, flow entities.PaymentFlow, status entities.FlowStatus) {
	if status != entities.FlowStatusApproved && status != entities.FlowStatusRejected {
		return
	}

	inserted, err := u.events.MarkNotificationSent(ctx, flow.FlowID, status)
	if err != nil {
		log.Printf("[payment][usecase] notification marker failed flow_id=%s status=%s err=%v", flow.FlowID, status, err)
		return
	}
	if !inserted {
		log.Printf("[payment][usecase] notification already sent flow_id=%s status=%s", flow.FlowID, status)
		return
	}

	switch status {
	case entities.FlowStatusApproved:
		err = u.messenger.SendPaymentConfirmation(ctx, entities.PaymentConfirmationMessage{
			ConversationID:    flow.ConversationID,
			CustomerPhone:     flow.CustomerPhone,
			CustomerName:      flow.CustomerName,
			ProviderPaymentID: flow.ProviderPaymentID,
			TotalAmount:       flow.TotalAmount,
			Items:             flow.Items,
		})
	case entities.FlowStatusRejected:
		err = u.messenger.SendPaymentFailure(ctx, entities.PaymentFailureMessage{
			ConversationID: flow.ConversationID,
			CustomerPhone:  flow.CustomerPhone,
			CustomerName:   flow.CustomerName,
			Reason:         failureReason(flow),
			RetryURL:       flow.CheckoutURL,
			SupportPhone:   u.supportPhone,
		})
	}
	if err != nil {
		log.Printf("[payment][usecase] notification send failed flow_id=%s status=%s err=%v", flow.FlowID, status, err)
		return
	}
	log.Printf("[payment][usecase] notification sent flow_id=%s status=%s", flow.FlowID, status)
}

func failureReason(flow entities.PaymentFlow) string {
	if flow.StatusReason != "" {
		return flow.StatusReason
	}
	return "el pago fue rechazado por el medio de pago"
}

func (u *PaymentOrchestratorUseCase) CancelFlow(ctx context.Context, flowID, reason string) (entities.PaymentFlow, error) {
	flow, err := u.getExisting(ctx, flowID)
	if err != nil {
		return entities.PaymentFlow{}, err
	}
	if flow.IsTerminal() {
		return entities.PaymentFlow{}, ErrFlowNotCancellable
	}

	expected := flow.Status
	flow.StatusReason = strings.TrimSpace(reason)
	flow.Transition(entities.FlowStatusCancelled)
	if err := u.flows.ConditionalUpdate(ctx, flow, expected); err != nil {
		log.Printf("[payment][usecase] cancel update failed flow_id=%s err=%v", flow.FlowID, err)
		return entities.PaymentFlow{}, err
	}
	log.Printf("[payment][usecase] flow cancelled flow_id=%s reason=%s", flow.FlowID, flow.StatusReason)

	// Provider-side cancellation is best effort; the flow is already
	// terminal locally and webhook replays on it are no-ops.
	if flow.ProviderPaymentID != "" {
		if err := u.gateway.CancelPayment(ctx, flow.ProviderPaymentID); err != nil {
			log.Printf("[payment][usecase] provider cancel failed flow_id=%s provider_payment_id=%s err=%v",
				flow.FlowID, flow.ProviderPaymentID, err)
		}
	}
	return flow, nil
}

func (u *PaymentOrchestratorUseCase) RetryFlow(ctx context.Context, flowID string) (entities.PaymentFlow, error) {
	flow, err := u.getExisting(ctx, flowID)
	if err != nil {
		return entities.PaymentFlow{}, err
	}
	switch flow.Status {
	case entities.FlowStatusRejected, entities.FlowStatusExpired, entities.FlowStatusCancelled:
	default:
		return entities.PaymentFlow{}, ErrFlowNotRetryable
	}

	attempt := 1
	if prev, err := strconv.Atoi(flow.Metadata["retry_attempt"]); err == nil {
		attempt = prev + 1
	}
	retryFlow, err := u.InitiateFlow(ctx, InitiateFlowInput{
		ConversationID: flow.ConversationID,
		CustomerPhone:  flow.CustomerPhone,
		CustomerName:   flow.CustomerName,
		Items:          flow.Items,
		Metadata: map[string]string{
			"original_flow_id": originalFlowID(flow),
			"retry_attempt":    strconv.Itoa(attempt),
		},
	})
	if err != nil {
		return entities.PaymentFlow{}, err
	}
	log.Printf("[payment][usecase] retry initiated original_flow_id=%s retry_flow_id=%s attempt=%d",
		flow.FlowID, retryFlow.FlowID, attempt)
	return retryFlow, nil
}

func originalFlowID(flow entities.PaymentFlow) string {
	if id := flow.Metadata["original_flow_id"]; id != "" {
		return id
	}
	return flow.FlowID
}

func (u *PaymentOrchestratorUseCase) ExpireStaleFlows(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	stale, err := u.flows.ListExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, flow := range stale {
		expected := flow.Status
		if !flow.Transition(entities.FlowStatusExpired) {
			continue
		}
		if err := u.flows.ConditionalUpdate(ctx, flow, expected); err != nil {
			// An in-flight webhook won the record; its outcome stands.
			log.Printf("[payment][usecase] expiry lost race flow_id=%s err=%v", flow.FlowID, err)
			continue
		}
		expired++
		log.Printf("[payment][usecase] flow expired flow_id=%s", flow.FlowID)
	}
	if expired > 0 {
		log.Printf("[payment][usecase] expiry sweep done expired=%d scanned=%d", expired, len(stale))
	}
	return expired, nil
}

func (u *PaymentOrchestratorUseCase) GetFlow(ctx context.Context, flowID string) (entities.PaymentFlow, error) {
	return u.getExisting(ctx, flowID)
}

func (u *PaymentOrchestratorUseCase) getExisting(ctx context.Context, flowID string) (entities.PaymentFlow, error) {
	flowID = strings.TrimSpace(flowID)
	if flowID == "" {
		return entities.PaymentFlow{}, ErrFlowNotFound
	}
	flow, err := u.flows.GetByFlowID(ctx, flowID)
	if err != nil {
		return entities.PaymentFlow{}, err
	}
	if flow.FlowID == "" {
		return entities.PaymentFlow{}, ErrFlowNotFound
	}
	return flow, nil
}

func createPolicyFromEnv() retry.Policy {
	p := retry.DefaultPolicy()
	if v, err := strconv.ParseUint(strings.TrimSpace(os.Getenv("PAYMENT_CREATE_MAX_RETRIES")), 10, 8); err == nil && v > 0 {
		p.MaxAttempts = v
	}
	return p
}

func flowTTLFromEnv() time.Duration {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv("PAYMENT_FLOW_TTL_MINUTES"))); err == nil && v > 0 {
		return time.Duration(v) * time.Minute
	}
	return defaultFlowTTLMinutes * time.Minute
}
