package interfaces

import (
	"context"
	"time"

	"turismo_xpto/internal/domain/entities"
)

// CostDetailsPatch carries the editable detail fields of an operator cost.
// A nil field is left unchanged.
type CostDetailsPatch struct {
	CostBeforeTax   *int64
	VAT             *int64
	TotalCost       *int64
	ServiceDate     *time.Time
	PaymentDeadline *time.Time
}

// IOperatorCostRepository abstracts DynamoDB persistence for OperatorCost.
//
// Transition methods take the record the guard validated, apply the state
// patch and the audit entry as a single transactional write, and re-assert
// the guard's precondition as a condition expression on the cost item. On
// success they return that record with the committed patch projected onto
// it, never a fresh read: a concurrent later write must not leak into the
// state a caller's own transition produced. A zero-value result with a nil
// error means the conditional check failed at write time: the record is gone
// or its state changed since it was loaded.
type IOperatorCostRepository interface {
	GetByID(ctx context.Context, id string) (entities.OperatorCost, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.OperatorCost, error)
	ListAll(ctx context.Context) ([]entities.OperatorCost, error)
	ApprovePayment(ctx context.Context, cost entities.OperatorCost, paidAt time.Time, entry entities.HistoryEntry) (entities.OperatorCost, error)
	Lock(ctx context.Context, cost entities.OperatorCost, lock entities.LockState, entry entities.HistoryEntry) (entities.OperatorCost, error)
	Unlock(ctx context.Context, cost entities.OperatorCost, entry entities.HistoryEntry) (entities.OperatorCost, error)
	UpdateDetails(ctx context.Context, cost entities.OperatorCost, patch CostDetailsPatch, entry entities.HistoryEntry) (entities.OperatorCost, error)
}
