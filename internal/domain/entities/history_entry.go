package entities

import "time"

// HistoryAction tags what kind of mutation a history entry records.
type HistoryAction string

const (
	HistoryActionCreate  HistoryAction = "CREATE"
	HistoryActionUpdate  HistoryAction = "UPDATE"
	HistoryActionDelete  HistoryAction = "DELETE"
	HistoryActionLock    HistoryAction = "LOCK"
	HistoryActionUnlock  HistoryAction = "UNLOCK"
	HistoryActionApprove HistoryAction = "APPROVE"
)

// CostField names an OperatorCost field a history diff may reference.
// Diffs are constrained to this set so entries stay queryable for compliance
// reports instead of degrading into free-form maps.
type CostField string

const (
	FieldPaymentStatus   CostField = "payment_status"
	FieldPaymentDate     CostField = "payment_date"
	FieldPaymentDeadline CostField = "payment_deadline"
	FieldIsLocked        CostField = "is_locked"
	FieldLockedAt        CostField = "locked_at"
	FieldLockedBy        CostField = "locked_by"
	FieldCostBeforeTax   CostField = "cost_before_tax"
	FieldVAT             CostField = "vat"
	FieldTotalCost       CostField = "total_cost"
	FieldServiceDate     CostField = "service_date"
)

// FieldChange is one before/after pair inside a history diff.
// A nil value means the field had (or has) no value.
type FieldChange struct {
	Field  CostField
	Before *string
	After  *string
}

// HistoryEntry is one immutable audit record: a single mutation of a single
// operator cost, expressed as a field-level diff.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (entity_id-index): entity_id, range key timestamp
//
// UserName is resolved from the user directory at read time, never persisted.
type HistoryEntry struct {
	ID        string
	EntityID  string
	Action    HistoryAction
	Changes   []FieldChange
	UserID    string
	UserName  string
	Timestamp time.Time
}
