package response

import "turismo_xpto/internal/domain/entities"

type StatusBucketResponse struct {
	Count int   `json:"count"`
	Total int64 `json:"total"`
}

type PaymentStatusReportResponse struct {
	Pending       StatusBucketResponse `json:"pending"`
	Overdue       StatusBucketResponse `json:"overdue"`
	DueThisWeek   StatusBucketResponse `json:"due_this_week"`
	PaidThisMonth StatusBucketResponse `json:"paid_this_month"`
}

func FromPaymentStatusReport(r entities.PaymentStatusReport) PaymentStatusReportResponse {
	return PaymentStatusReportResponse{
		Pending:       fromBucket(r.Pending),
		Overdue:       fromBucket(r.Overdue),
		DueThisWeek:   fromBucket(r.DueThisWeek),
		PaidThisMonth: fromBucket(r.PaidThisMonth),
	}
}

func fromBucket(b entities.StatusBucket) StatusBucketResponse {
	return StatusBucketResponse{Count: b.Count, Total: b.Total}
}

type SupplierBalanceResponse struct {
	SupplierID   string `json:"supplier_id,omitempty"`
	SupplierName string `json:"supplier_name,omitempty"`
	Count        int    `json:"count"`
	Total        int64  `json:"total"`
	Average      int64  `json:"average"`
}

func FromSupplierBalances(balances []entities.SupplierBalance) []SupplierBalanceResponse {
	out := make([]SupplierBalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, SupplierBalanceResponse{
			SupplierID:   b.SupplierID,
			SupplierName: b.SupplierName,
			Count:        b.Count,
			Total:        b.Total,
			Average:      b.Average,
		})
	}
	return out
}

type CashflowResponse struct {
	Year         int   `json:"year"`
	Month        int   `json:"month"`
	RevenueTotal int64 `json:"revenue_total"`
	CostTotal    int64 `json:"cost_total"`
	Net          int64 `json:"net"`
}

func FromCashflow(s entities.CashflowSummary) CashflowResponse {
	return CashflowResponse{
		Year:         s.Year,
		Month:        int(s.Month),
		RevenueTotal: s.RevenueTotal,
		CostTotal:    s.CostTotal,
		Net:          s.Net,
	}
}
