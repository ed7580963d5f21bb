package interfaces

import (
	"context"
	"errors"
	"time"

	"chatpay/internal/domain/entities"
)

var (
	// ErrFlowConflict means an Insert hit an existing flow_id.
	ErrFlowConflict = errors.New("payment flow already exists")
	// ErrConcurrentUpdate means a ConditionalUpdate lost the compare-and-swap
	// on status to a concurrent writer.
	ErrConcurrentUpdate = errors.New("payment flow concurrently updated")
)

// IPaymentFlowStore abstracts DynamoDB persistence for PaymentFlow.
//
// Lookup methods follow the repository convention used across this codebase:
// a missing record is returned as a zero-value entity with a nil error, and
// the use case decides whether absence is an error.
type IPaymentFlowStore interface {
	// Insert writes a fresh flow record. Fails with ErrFlowConflict when the
	// flow_id already exists.
	Insert(ctx context.Context, flow entities.PaymentFlow) error
	GetByFlowID(ctx context.Context, flowID string) (entities.PaymentFlow, error)
	GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (entities.PaymentFlow, error)
	// ConditionalUpdate persists the flow only if the stored status still
	// equals expectedStatus (optimistic concurrency). Fails with
	// ErrConcurrentUpdate when the condition does not hold.
	ConditionalUpdate(ctx context.Context, flow entities.PaymentFlow, expectedStatus entities.FlowStatus) error
	// ListExpired returns non-terminal flows whose expires_at has passed.
	ListExpired(ctx context.Context, now time.Time) ([]entities.PaymentFlow, error)
}
