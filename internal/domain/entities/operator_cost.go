package entities

import "time"

// PaymentStatus represents where an operator cost sits in the payment lifecycle.
//
// Domain notes:
//   - The back office is the source of truth for operator cost state.
//   - PARTIAL is set by the (external) booking workflow when a deposit exists;
//     this service only ever moves records forward to PAID via payment approval.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// LockState is the lock flag together with its metadata.
//
// Modeled as a tagged value so a half-locked record (flag set, holder missing)
// cannot be represented in memory. The persisted row still stores the flat
// is_locked / locked_at / locked_by columns.
type LockState struct {
	locked bool
	at     time.Time
	by     string
}

func Locked(at time.Time, by string) LockState {
	return LockState{locked: true, at: at, by: by}
}

func Unlocked() LockState {
	return LockState{}
}

func (l LockState) IsLocked() bool { return l.locked }

// Holder returns the lock metadata; ok is false for an unlocked state.
func (l LockState) Holder() (at time.Time, by string, ok bool) {
	if !l.locked {
		return time.Time{}, "", false
	}
	return l.at, l.by, true
}

// OperatorCost is a third-party service cost booked against a customer request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//
// Monetary representation:
//   - All amounts are integer minor currency units. Aggregations never touch
//     floating point.
//
// SupplierID links the supplier catalog when the supplier is registered there;
// SupplierName is the free-text fallback for one-off suppliers.
type OperatorCost struct {
	ID              string
	RequestID       string
	SupplierID      string
	SupplierName    string
	ServiceType     string
	ServiceDate     time.Time
	CostBeforeTax   int64
	VAT             int64
	TotalCost       int64
	PaymentStatus   PaymentStatus
	PaymentDate     *time.Time
	PaymentDeadline *time.Time
	Lock            LockState
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
