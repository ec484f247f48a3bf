package request

import (
	"errors"
	"testing"
	"time"
)

func TestApprovePaymentRequest_ResolvePaymentDate(t *testing.T) {
	t.Run("absent date", func(t *testing.T) {
		d, err := ApprovePaymentRequest{}.ResolvePaymentDate()
		if err != nil || d != nil {
			t.Fatalf("expected nil date, got %v / %v", d, err)
		}
	})

	t.Run("valid date", func(t *testing.T) {
		d, err := ApprovePaymentRequest{PaymentDate: " 2026-02-28 "}.ResolvePaymentDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		if d == nil || !d.Equal(want) {
			t.Fatalf("unexpected date: %v", d)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := ApprovePaymentRequest{PaymentDate: "28/02/2026"}.ResolvePaymentDate()
		if !errors.Is(err, ErrInvalidDateValue) {
			t.Fatalf("expected ErrInvalidDateValue, got %v", err)
		}
	})
}

func TestUpdateCostRequest_ToPatch(t *testing.T) {
	t.Run("amounts pass through", func(t *testing.T) {
		total := int64(200000)
		vat := int64(40000)
		patch, err := UpdateCostRequest{TotalCost: &total, VAT: &vat}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.TotalCost == nil || *patch.TotalCost != 200000 || *patch.VAT != 40000 {
			t.Fatalf("unexpected patch: %+v", patch)
		}
		if patch.ServiceDate != nil || patch.PaymentDeadline != nil {
			t.Fatalf("expected absent dates: %+v", patch)
		}
	})

	t.Run("dates parsed", func(t *testing.T) {
		serviceDate := "2026-05-01"
		deadline := "2026-04-15"
		patch, err := UpdateCostRequest{ServiceDate: &serviceDate, PaymentDeadline: &deadline}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.ServiceDate == nil || !patch.ServiceDate.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected service date: %v", patch.ServiceDate)
		}
		if patch.PaymentDeadline == nil || !patch.PaymentDeadline.Equal(time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected deadline: %v", patch.PaymentDeadline)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		bad := "someday"
		_, err := UpdateCostRequest{ServiceDate: &bad}.ToPatch()
		if !errors.Is(err, ErrInvalidDateValue) {
			t.Fatalf("expected ErrInvalidDateValue, got %v", err)
		}
	})
}
