package repository

import (
	"testing"
	"time"

	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/internal/usecase/interfaces"
)

func storedCost() entities.OperatorCost {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return entities.OperatorCost{
		ID:            "oc-1",
		RequestID:     "req-1",
		SupplierID:    "sup-1",
		ServiceType:   "hotel",
		CostBeforeTax: 100000,
		VAT:           20000,
		TotalCost:     120000,
		PaymentStatus: entities.PaymentStatusPending,
		ServiceDate:   created.Add(30 * 24 * time.Hour),
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

// Transitions hand back the loaded record with only their own patch applied,
// so the projection helpers must touch nothing beyond the transitioned fields.
func TestTransitionProjections(t *testing.T) {
	t.Run("approve sets status and payment date only", func(t *testing.T) {
		loaded := storedCost()
		paidAt := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

		got := approvedCost(loaded, paidAt)
		if got.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("expected PAID, got %s", got.PaymentStatus)
		}
		if got.PaymentDate == nil || !got.PaymentDate.Equal(paidAt) {
			t.Fatalf("unexpected payment date: %v", got.PaymentDate)
		}
		got.PaymentStatus = loaded.PaymentStatus
		got.PaymentDate = loaded.PaymentDate
		if got != loaded {
			t.Fatalf("approve touched fields outside its patch: %+v", got)
		}
	})

	t.Run("lock and unlock touch only the lock state", func(t *testing.T) {
		loaded := storedCost()
		lock := entities.Locked(time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), "admin-1")

		locked := lockedCost(loaded, lock)
		if _, by, ok := locked.Lock.Holder(); !ok || by != "admin-1" {
			t.Fatalf("unexpected lock state: %+v", locked.Lock)
		}
		locked.Lock = loaded.Lock
		if locked != loaded {
			t.Fatalf("lock touched fields outside its patch: %+v", locked)
		}

		released := unlockedCost(lockedCost(loaded, lock))
		if released.Lock.IsLocked() {
			t.Fatalf("expected unlocked result")
		}
		if released != loaded {
			t.Fatalf("unlock touched fields outside its patch: %+v", released)
		}
	})

	t.Run("detail patch overlays only the fields it carries", func(t *testing.T) {
		loaded := storedCost()
		newTotal := int64(200000)
		deadline := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

		got := patchedCost(loaded, interfaces.CostDetailsPatch{
			TotalCost:       &newTotal,
			PaymentDeadline: &deadline,
		})
		if got.TotalCost != newTotal {
			t.Fatalf("expected patched total, got %d", got.TotalCost)
		}
		if got.PaymentDeadline == nil || !got.PaymentDeadline.Equal(deadline) {
			t.Fatalf("unexpected deadline: %v", got.PaymentDeadline)
		}
		if got.CostBeforeTax != loaded.CostBeforeTax || got.VAT != loaded.VAT {
			t.Fatalf("nil patch fields must keep stored values: %+v", got)
		}
		if !got.ServiceDate.Equal(loaded.ServiceDate) {
			t.Fatalf("service date changed without a patch value: %v", got.ServiceDate)
		}
	})
}
