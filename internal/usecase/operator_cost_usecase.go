package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/internal/domain/transition"
	"turismo_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCostNotFound     = errors.New("operator cost not found")
	ErrCostConflict     = errors.New("operator cost modified concurrently")
	ErrInvalidCostID    = errors.New("invalid operator cost id")
	ErrInvalidRequestID = errors.New("invalid request id")
	ErrEmptyCostPatch   = errors.New("no detail changes supplied")
)

// IOperatorCostUseCase is the single entry point for the guarded transitions
// of an operator cost.
//
// Every mutation follows the same shape: load the record, run the transition
// guard, then hand the state patch and the before/after audit diff to the
// repository as one transactional write. Retrying a committed mutation fails
// the guard on the fresh state; a second approval is a caller error, never
// silently absorbed.

type IOperatorCostUseCase interface {
	ApprovePayment(ctx context.Context, id string, paymentDate *time.Time, actor entities.Actor) (entities.OperatorCost, error)
	Lock(ctx context.Context, id string, actor entities.Actor) (entities.OperatorCost, error)
	Unlock(ctx context.Context, id string, actor entities.Actor) (entities.OperatorCost, error)
	UpdateDetails(ctx context.Context, id string, patch interfaces.CostDetailsPatch, actor entities.Actor) (entities.OperatorCost, error)
	GetByID(ctx context.Context, id string) (entities.OperatorCost, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.OperatorCost, error)
}

type OperatorCostUseCase struct {
	repo interfaces.IOperatorCostRepository
	now  func() time.Time
}

var _ IOperatorCostUseCase = (*OperatorCostUseCase)(nil)

func NewOperatorCostUseCase(repo interfaces.IOperatorCostRepository) *OperatorCostUseCase {
	return &OperatorCostUseCase{repo: repo, now: time.Now}
}

func (u *OperatorCostUseCase) ApprovePayment(ctx context.Context, id string, paymentDate *time.Time, actor entities.Actor) (entities.OperatorCost, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OperatorCost{}, ErrInvalidCostID
	}

	cost, err := u.load(ctx, id)
	if err != nil {
		return entities.OperatorCost{}, err
	}
	if err := transition.Check(cost, transition.Approve, actor.Role); err != nil {
		return entities.OperatorCost{}, err
	}

	paidAt := u.now().UTC()
	if paymentDate != nil {
		paidAt = paymentDate.UTC()
	}

	entry := u.newHistoryEntry(cost.ID, entities.HistoryActionApprove, actor.ID, []entities.FieldChange{
		{Field: entities.FieldPaymentStatus, Before: strPtr(string(cost.PaymentStatus)), After: strPtr(string(entities.PaymentStatusPaid))},
		{Field: entities.FieldPaymentDate, Before: timePtrStr(cost.PaymentDate), After: strPtr(timeStr(paidAt))},
	})

	updated, err := u.repo.ApprovePayment(ctx, cost, paidAt, entry)
	if err != nil {
		log.Printf("[cost][usecase] approve persist failed id=%s err=%v", cost.ID, err)
		return entities.OperatorCost{}, err
	}
	if updated.ID == "" {
		return entities.OperatorCost{}, ErrCostConflict
	}
	log.Printf("[cost][usecase] approved id=%s actor=%s paid_at=%s", updated.ID, actor.ID, paidAt.Format(time.RFC3339))
	return updated, nil
}

func (u *OperatorCostUseCase) Lock(ctx context.Context, id string, actor entities.Actor) (entities.OperatorCost, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OperatorCost{}, ErrInvalidCostID
	}

	cost, err := u.load(ctx, id)
	if err != nil {
		return entities.OperatorCost{}, err
	}
	if err := transition.Check(cost, transition.Lock, actor.Role); err != nil {
		return entities.OperatorCost{}, err
	}

	at := u.now().UTC()
	lock := entities.Locked(at, actor.ID)

	entry := u.newHistoryEntry(cost.ID, entities.HistoryActionLock, actor.ID, []entities.FieldChange{
		{Field: entities.FieldIsLocked, Before: strPtr("false"), After: strPtr("true")},
		{Field: entities.FieldLockedAt, Before: nil, After: strPtr(timeStr(at))},
		{Field: entities.FieldLockedBy, Before: nil, After: strPtr(actor.ID)},
	})

	updated, err := u.repo.Lock(ctx, cost, lock, entry)
	if err != nil {
		log.Printf("[cost][usecase] lock persist failed id=%s err=%v", cost.ID, err)
		return entities.OperatorCost{}, err
	}
	if updated.ID == "" {
		return entities.OperatorCost{}, ErrCostConflict
	}
	log.Printf("[cost][usecase] locked id=%s actor=%s", updated.ID, actor.ID)
	return updated, nil
}

func (u *OperatorCostUseCase) Unlock(ctx context.Context, id string, actor entities.Actor) (entities.OperatorCost, error) {
	// Authorization first: a non-admin probing ids learns nothing about which
	// records exist.
	if !transition.Allowed(transition.Unlock, actor.Role) {
		return entities.OperatorCost{}, transition.ErrForbidden
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OperatorCost{}, ErrInvalidCostID
	}

	cost, err := u.load(ctx, id)
	if err != nil {
		return entities.OperatorCost{}, err
	}
	if err := transition.Check(cost, transition.Unlock, actor.Role); err != nil {
		return entities.OperatorCost{}, err
	}

	lockedAt, lockedBy, _ := cost.Lock.Holder()
	entry := u.newHistoryEntry(cost.ID, entities.HistoryActionUnlock, actor.ID, []entities.FieldChange{
		{Field: entities.FieldIsLocked, Before: strPtr("true"), After: strPtr("false")},
		{Field: entities.FieldLockedAt, Before: strPtr(timeStr(lockedAt)), After: nil},
		{Field: entities.FieldLockedBy, Before: strPtr(lockedBy), After: nil},
	})

	updated, err := u.repo.Unlock(ctx, cost, entry)
	if err != nil {
		log.Printf("[cost][usecase] unlock persist failed id=%s err=%v", cost.ID, err)
		return entities.OperatorCost{}, err
	}
	if updated.ID == "" {
		return entities.OperatorCost{}, ErrCostConflict
	}
	log.Printf("[cost][usecase] unlocked id=%s actor=%s", updated.ID, actor.ID)
	return updated, nil
}

func (u *OperatorCostUseCase) UpdateDetails(ctx context.Context, id string, patch interfaces.CostDetailsPatch, actor entities.Actor) (entities.OperatorCost, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OperatorCost{}, ErrInvalidCostID
	}
	if patch.CostBeforeTax == nil && patch.VAT == nil && patch.TotalCost == nil &&
		patch.ServiceDate == nil && patch.PaymentDeadline == nil {
		return entities.OperatorCost{}, ErrEmptyCostPatch
	}

	cost, err := u.load(ctx, id)
	if err != nil {
		return entities.OperatorCost{}, err
	}
	if err := transition.Check(cost, transition.Update, actor.Role); err != nil {
		return entities.OperatorCost{}, err
	}

	changes := detailChanges(cost, patch)
	if len(changes) == 0 {
		return entities.OperatorCost{}, ErrEmptyCostPatch
	}

	entry := u.newHistoryEntry(cost.ID, entities.HistoryActionUpdate, actor.ID, changes)

	updated, err := u.repo.UpdateDetails(ctx, cost, patch, entry)
	if err != nil {
		log.Printf("[cost][usecase] update persist failed id=%s err=%v", cost.ID, err)
		return entities.OperatorCost{}, err
	}
	if updated.ID == "" {
		return entities.OperatorCost{}, ErrCostConflict
	}
	return updated, nil
}

func (u *OperatorCostUseCase) GetByID(ctx context.Context, id string) (entities.OperatorCost, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OperatorCost{}, ErrInvalidCostID
	}
	return u.load(ctx, id)
}

func (u *OperatorCostUseCase) ListByRequestID(ctx context.Context, requestID string) ([]entities.OperatorCost, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	return u.repo.ListByRequestID(ctx, requestID)
}

func (u *OperatorCostUseCase) load(ctx context.Context, id string) (entities.OperatorCost, error) {
	cost, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OperatorCost{}, err
	}
	if cost.ID == "" {
		return entities.OperatorCost{}, ErrCostNotFound
	}
	return cost, nil
}

func (u *OperatorCostUseCase) newHistoryEntry(entityID string, action entities.HistoryAction, actorID string, changes []entities.FieldChange) entities.HistoryEntry {
	return entities.HistoryEntry{
		ID:        uuid.NewString(),
		EntityID:  entityID,
		Action:    action,
		Changes:   changes,
		UserID:    actorID,
		Timestamp: u.now().UTC(),
	}
}

// detailChanges builds one FieldChange per supplied field whose value actually
// differs from the loaded record.
func detailChanges(cost entities.OperatorCost, patch interfaces.CostDetailsPatch) []entities.FieldChange {
	var changes []entities.FieldChange
	if patch.CostBeforeTax != nil && *patch.CostBeforeTax != cost.CostBeforeTax {
		changes = append(changes, entities.FieldChange{Field: entities.FieldCostBeforeTax, Before: int64Str(cost.CostBeforeTax), After: int64Str(*patch.CostBeforeTax)})
	}
	if patch.VAT != nil && *patch.VAT != cost.VAT {
		changes = append(changes, entities.FieldChange{Field: entities.FieldVAT, Before: int64Str(cost.VAT), After: int64Str(*patch.VAT)})
	}
	if patch.TotalCost != nil && *patch.TotalCost != cost.TotalCost {
		changes = append(changes, entities.FieldChange{Field: entities.FieldTotalCost, Before: int64Str(cost.TotalCost), After: int64Str(*patch.TotalCost)})
	}
	if patch.ServiceDate != nil && !patch.ServiceDate.Equal(cost.ServiceDate) {
		changes = append(changes, entities.FieldChange{Field: entities.FieldServiceDate, Before: strPtr(timeStr(cost.ServiceDate)), After: strPtr(timeStr(*patch.ServiceDate))})
	}
	if patch.PaymentDeadline != nil && !equalTimePtr(patch.PaymentDeadline, cost.PaymentDeadline) {
		changes = append(changes, entities.FieldChange{Field: entities.FieldPaymentDeadline, Before: timePtrStr(cost.PaymentDeadline), After: strPtr(timeStr(*patch.PaymentDeadline))})
	}
	return changes
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func strPtr(s string) *string { return &s }

func int64Str(v int64) *string {
	s := strconv.FormatInt(v, 10)
	return &s
}

func timeStr(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func timePtrStr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := timeStr(*t)
	return &s
}
