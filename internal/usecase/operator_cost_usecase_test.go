package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/internal/domain/transition"
	"turismo_xpto/internal/usecase/interfaces"
	mock_interfaces "turismo_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newCostUseCase(repo interfaces.IOperatorCostRepository) *OperatorCostUseCase {
	uc := NewOperatorCostUseCase(repo)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func pendingCost() entities.OperatorCost {
	return entities.OperatorCost{
		ID:            "oc-1",
		RequestID:     "req-1",
		SupplierID:    "sup-1",
		ServiceType:   "hotel",
		TotalCost:     150000,
		PaymentStatus: entities.PaymentStatusPending,
	}
}

func findChange(t *testing.T, changes []entities.FieldChange, field entities.CostField) entities.FieldChange {
	t.Helper()
	for _, c := range changes {
		if c.Field == field {
			return c
		}
	}
	t.Fatalf("missing change for field %s", field)
	return entities.FieldChange{}
}

func TestOperatorCostUseCase_ApprovePayment(t *testing.T) {
	actor := entities.Actor{ID: "user-1", Role: entities.RoleSeller}

	t.Run("invalid id", func(t *testing.T) {
		uc := newCostUseCase(nil)
		_, err := uc.ApprovePayment(context.Background(), "   ", nil, actor)
		if !errors.Is(err, ErrInvalidCostID) {
			t.Fatalf("expected ErrInvalidCostID, got %v", err)
		}
	})

	t.Run("repo get error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(entities.OperatorCost{}, errors.New("db"))

		_, err := uc.ApprovePayment(context.Background(), "oc-1", nil, actor)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(entities.OperatorCost{}, nil)

		_, err := uc.ApprovePayment(context.Background(), "oc-1", nil, actor)
		if !errors.Is(err, ErrCostNotFound) {
			t.Fatalf("expected ErrCostNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		cost := pendingCost()
		cost.PaymentStatus = entities.PaymentStatusPaid
		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(cost, nil)

		_, err := uc.ApprovePayment(context.Background(), "oc-1", nil, actor)
		if !errors.Is(err, transition.ErrAlreadyPaid) {
			t.Fatalf("expected ErrAlreadyPaid, got %v", err)
		}
	})

	t.Run("locked wins over paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		cost := pendingCost()
		cost.PaymentStatus = entities.PaymentStatusPaid
		cost.Lock = entities.Locked(fixedNow, "admin-1")
		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(cost, nil)

		_, err := uc.ApprovePayment(context.Background(), "oc-1", nil, actor)
		if !errors.Is(err, transition.ErrAlreadyLocked) {
			t.Fatalf("expected ErrAlreadyLocked, got %v", err)
		}
	})

	t.Run("success records status and date diff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(pendingCost(), nil)
		repo.EXPECT().ApprovePayment(gomock.Any(), pendingCost(), fixedNow, gomock.AssignableToTypeOf(entities.HistoryEntry{})).DoAndReturn(
			func(_ context.Context, _ entities.OperatorCost, paidAt time.Time, entry entities.HistoryEntry) (entities.OperatorCost, error) {
				if entry.ID == "" || entry.EntityID != "oc-1" || entry.UserID != "user-1" {
					t.Fatalf("unexpected entry: %+v", entry)
				}
				if entry.Action != entities.HistoryActionApprove || !entry.Timestamp.Equal(fixedNow) {
					t.Fatalf("unexpected entry metadata: %+v", entry)
				}
				status := findChange(t, entry.Changes, entities.FieldPaymentStatus)
				if *status.Before != "PENDING" || *status.After != "PAID" {
					t.Fatalf("unexpected status diff: %+v", status)
				}
				date := findChange(t, entry.Changes, entities.FieldPaymentDate)
				if date.Before != nil || *date.After != fixedNow.Format(time.RFC3339) {
					t.Fatalf("unexpected date diff: %+v", date)
				}
				updated := pendingCost()
				updated.PaymentStatus = entities.PaymentStatusPaid
				updated.PaymentDate = &paidAt
				return updated, nil
			},
		)

		res, err := uc.ApprovePayment(context.Background(), " oc-1 ", nil, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("expected PAID, got %s", res.PaymentStatus)
		}
	})

	t.Run("explicit payment date overrides approval time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		explicit := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(pendingCost(), nil)
		repo.EXPECT().ApprovePayment(gomock.Any(), pendingCost(), explicit, gomock.Any()).Return(pendingCost(), nil)

		if _, err := uc.ApprovePayment(context.Background(), "oc-1", &explicit, actor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("conditional write failure maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(pendingCost(), nil)
		repo.EXPECT().ApprovePayment(gomock.Any(), pendingCost(), fixedNow, gomock.Any()).Return(entities.OperatorCost{}, nil)

		_, err := uc.ApprovePayment(context.Background(), "oc-1", nil, actor)
		if !errors.Is(err, ErrCostConflict) {
			t.Fatalf("expected ErrCostConflict, got %v", err)
		}
	})
}

func TestOperatorCostUseCase_Lock(t *testing.T) {
	actor := entities.Actor{ID: "user-1", Role: entities.RoleOperator}

	t.Run("already locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		cost := pendingCost()
		cost.Lock = entities.Locked(fixedNow, "admin-1")
		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(cost, nil)

		_, err := uc.Lock(context.Background(), "oc-1", actor)
		if !errors.Is(err, transition.ErrAlreadyLocked) {
			t.Fatalf("expected ErrAlreadyLocked, got %v", err)
		}
	})

	t.Run("success records lock metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(pendingCost(), nil)
		repo.EXPECT().Lock(gomock.Any(), pendingCost(), entities.Locked(fixedNow, "user-1"), gomock.AssignableToTypeOf(entities.HistoryEntry{})).DoAndReturn(
			func(_ context.Context, _ entities.OperatorCost, lock entities.LockState, entry entities.HistoryEntry) (entities.OperatorCost, error) {
				if entry.Action != entities.HistoryActionLock {
					t.Fatalf("unexpected action: %s", entry.Action)
				}
				flag := findChange(t, entry.Changes, entities.FieldIsLocked)
				if *flag.Before != "false" || *flag.After != "true" {
					t.Fatalf("unexpected lock flag diff: %+v", flag)
				}
				by := findChange(t, entry.Changes, entities.FieldLockedBy)
				if by.Before != nil || *by.After != "user-1" {
					t.Fatalf("unexpected locked_by diff: %+v", by)
				}
				updated := pendingCost()
				updated.Lock = lock
				return updated, nil
			},
		)

		res, err := uc.Lock(context.Background(), "oc-1", actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Lock.IsLocked() {
			t.Fatalf("expected locked result")
		}
	})

	t.Run("conditional write failure maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(pendingCost(), nil)
		repo.EXPECT().Lock(gomock.Any(), pendingCost(), gomock.Any(), gomock.Any()).Return(entities.OperatorCost{}, nil)

		_, err := uc.Lock(context.Background(), "oc-1", actor)
		if !errors.Is(err, ErrCostConflict) {
			t.Fatalf("expected ErrCostConflict, got %v", err)
		}
	})
}

func TestOperatorCostUseCase_Unlock(t *testing.T) {
	admin := entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}

	t.Run("non-admin rejected before the record is loaded", func(t *testing.T) {
		uc := newCostUseCase(nil)
		_, err := uc.Unlock(context.Background(), "oc-1", entities.Actor{ID: "user-1", Role: entities.RoleSeller})
		if !errors.Is(err, transition.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := newCostUseCase(nil)
		_, err := uc.Unlock(context.Background(), "  ", admin)
		if !errors.Is(err, ErrInvalidCostID) {
			t.Fatalf("expected ErrInvalidCostID, got %v", err)
		}
	})

	t.Run("not locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(pendingCost(), nil)

		_, err := uc.Unlock(context.Background(), "oc-1", admin)
		if !errors.Is(err, transition.ErrNotLocked) {
			t.Fatalf("expected ErrNotLocked, got %v", err)
		}
	})

	t.Run("success records previous holder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		lockedAt := time.Date(2026, 3, 9, 8, 30, 0, 0, time.UTC)
		cost := pendingCost()
		cost.Lock = entities.Locked(lockedAt, "user-2")
		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(cost, nil)
		repo.EXPECT().Unlock(gomock.Any(), cost, gomock.AssignableToTypeOf(entities.HistoryEntry{})).DoAndReturn(
			func(_ context.Context, _ entities.OperatorCost, entry entities.HistoryEntry) (entities.OperatorCost, error) {
				if entry.Action != entities.HistoryActionUnlock {
					t.Fatalf("unexpected action: %s", entry.Action)
				}
				at := findChange(t, entry.Changes, entities.FieldLockedAt)
				if *at.Before != lockedAt.Format(time.RFC3339) || at.After != nil {
					t.Fatalf("unexpected locked_at diff: %+v", at)
				}
				by := findChange(t, entry.Changes, entities.FieldLockedBy)
				if *by.Before != "user-2" || by.After != nil {
					t.Fatalf("unexpected locked_by diff: %+v", by)
				}
				return pendingCost(), nil
			},
		)

		res, err := uc.Unlock(context.Background(), "oc-1", admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Lock.IsLocked() {
			t.Fatalf("expected unlocked result")
		}
	})

	t.Run("conditional write failure maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		cost := pendingCost()
		cost.Lock = entities.Locked(fixedNow, "user-2")
		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(cost, nil)
		repo.EXPECT().Unlock(gomock.Any(), cost, gomock.Any()).Return(entities.OperatorCost{}, nil)

		_, err := uc.Unlock(context.Background(), "oc-1", admin)
		if !errors.Is(err, ErrCostConflict) {
			t.Fatalf("expected ErrCostConflict, got %v", err)
		}
	})
}

func TestOperatorCostUseCase_UpdateDetails(t *testing.T) {
	actor := entities.Actor{ID: "user-1", Role: entities.RoleSeller}
	newTotal := int64(200000)

	t.Run("empty patch", func(t *testing.T) {
		uc := newCostUseCase(nil)
		_, err := uc.UpdateDetails(context.Background(), "oc-1", interfaces.CostDetailsPatch{}, actor)
		if !errors.Is(err, ErrEmptyCostPatch) {
			t.Fatalf("expected ErrEmptyCostPatch, got %v", err)
		}
	})

	t.Run("patch equal to stored values is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		cost := pendingCost()
		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(cost, nil)

		same := cost.TotalCost
		_, err := uc.UpdateDetails(context.Background(), "oc-1", interfaces.CostDetailsPatch{TotalCost: &same}, actor)
		if !errors.Is(err, ErrEmptyCostPatch) {
			t.Fatalf("expected ErrEmptyCostPatch, got %v", err)
		}
	})

	t.Run("locked record rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		cost := pendingCost()
		cost.Lock = entities.Locked(fixedNow, "admin-1")
		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(cost, nil)

		_, err := uc.UpdateDetails(context.Background(), "oc-1", interfaces.CostDetailsPatch{TotalCost: &newTotal}, actor)
		if !errors.Is(err, transition.ErrAlreadyLocked) {
			t.Fatalf("expected ErrAlreadyLocked, got %v", err)
		}
	})

	t.Run("success records only changed fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		cost := pendingCost()
		sameVAT := cost.VAT
		patch := interfaces.CostDetailsPatch{TotalCost: &newTotal, VAT: &sameVAT}

		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(cost, nil)
		repo.EXPECT().UpdateDetails(gomock.Any(), cost, patch, gomock.AssignableToTypeOf(entities.HistoryEntry{})).DoAndReturn(
			func(_ context.Context, _ entities.OperatorCost, _ interfaces.CostDetailsPatch, entry entities.HistoryEntry) (entities.OperatorCost, error) {
				if entry.Action != entities.HistoryActionUpdate {
					t.Fatalf("unexpected action: %s", entry.Action)
				}
				if len(entry.Changes) != 1 {
					t.Fatalf("expected a single change, got %+v", entry.Changes)
				}
				total := findChange(t, entry.Changes, entities.FieldTotalCost)
				if *total.Before != "150000" || *total.After != "200000" {
					t.Fatalf("unexpected total diff: %+v", total)
				}
				updated := cost
				updated.TotalCost = newTotal
				return updated, nil
			},
		)

		res, err := uc.UpdateDetails(context.Background(), "oc-1", patch, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalCost != newTotal {
			t.Fatalf("expected updated total, got %d", res.TotalCost)
		}
	})

	t.Run("conditional write failure maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "oc-1").Return(pendingCost(), nil)
		repo.EXPECT().UpdateDetails(gomock.Any(), pendingCost(), gomock.Any(), gomock.Any()).Return(entities.OperatorCost{}, nil)

		_, err := uc.UpdateDetails(context.Background(), "oc-1", interfaces.CostDetailsPatch{TotalCost: &newTotal}, actor)
		if !errors.Is(err, ErrCostConflict) {
			t.Fatalf("expected ErrCostConflict, got %v", err)
		}
	})
}

func TestOperatorCostUseCase_Reads(t *testing.T) {
	t.Run("get by id invalid", func(t *testing.T) {
		uc := newCostUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCostID) {
			t.Fatalf("expected ErrInvalidCostID, got %v", err)
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "oc-9").Return(entities.OperatorCost{}, nil)

		_, err := uc.GetByID(context.Background(), "oc-9")
		if !errors.Is(err, ErrCostNotFound) {
			t.Fatalf("expected ErrCostNotFound, got %v", err)
		}
	})

	t.Run("list by request id invalid", func(t *testing.T) {
		uc := newCostUseCase(nil)
		_, err := uc.ListByRequestID(context.Background(), "")
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("list by request id passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorCostRepository(ctrl)
		uc := newCostUseCase(repo)

		repo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.OperatorCost{pendingCost()}, nil)

		costs, err := uc.ListByRequestID(context.Background(), " req-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(costs) != 1 {
			t.Fatalf("expected one cost, got %d", len(costs))
		}
	})
}
