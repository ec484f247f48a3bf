package entities

import "time"

// StatusBucket is one cell of the payment-status report.
type StatusBucket struct {
	Count int
	Total int64
}

// PaymentStatusReport partitions unpaid and recently paid operator costs by
// deadline proximity. A record lands in at most one of Pending, Overdue and
// DueThisWeek; Overdue takes precedence over DueThisWeek.
type PaymentStatusReport struct {
	Pending       StatusBucket
	Overdue       StatusBucket
	DueThisWeek   StatusBucket
	PaidThisMonth StatusBucket
}

// SupplierBalance is the per-supplier rollup of operator costs.
// Exactly one of SupplierID and SupplierName keys the group: id when the
// supplier is cataloged, free-text name otherwise.
type SupplierBalance struct {
	SupplierID   string
	SupplierName string
	Count        int
	Total        int64
	Average      int64
}

// CashflowSummary compares money received and supplier costs paid in one
// calendar month.
type CashflowSummary struct {
	Year         int
	Month        time.Month
	RevenueTotal int64
	CostTotal    int64
	Net          int64
}
