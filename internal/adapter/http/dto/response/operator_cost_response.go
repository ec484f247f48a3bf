package response

import (
	"time"

	"turismo_xpto/internal/domain/entities"
)

type OperatorCostResponse struct {
	ID              string     `json:"id"`
	RequestID       string     `json:"request_id"`
	SupplierID      string     `json:"supplier_id,omitempty"`
	SupplierName    string     `json:"supplier_name,omitempty"`
	ServiceType     string     `json:"service_type"`
	ServiceDate     time.Time  `json:"service_date"`
	CostBeforeTax   int64      `json:"cost_before_tax"`
	VAT             int64      `json:"vat"`
	TotalCost       int64      `json:"total_cost"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentDate     *time.Time `json:"payment_date,omitempty"`
	PaymentDeadline *time.Time `json:"payment_deadline,omitempty"`
	IsLocked        bool       `json:"is_locked"`
	LockedAt        *time.Time `json:"locked_at,omitempty"`
	LockedBy        string     `json:"locked_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromOperatorCost(c entities.OperatorCost) OperatorCostResponse {
	res := OperatorCostResponse{
		ID:              c.ID,
		RequestID:       c.RequestID,
		SupplierID:      c.SupplierID,
		SupplierName:    c.SupplierName,
		ServiceType:     c.ServiceType,
		ServiceDate:     c.ServiceDate,
		CostBeforeTax:   c.CostBeforeTax,
		VAT:             c.VAT,
		TotalCost:       c.TotalCost,
		PaymentStatus:   string(c.PaymentStatus),
		PaymentDate:     c.PaymentDate,
		PaymentDeadline: c.PaymentDeadline,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if at, by, ok := c.Lock.Holder(); ok {
		res.IsLocked = true
		res.LockedAt = &at
		res.LockedBy = by
	}
	return res
}

func FromOperatorCosts(costs []entities.OperatorCost) []OperatorCostResponse {
	out := make([]OperatorCostResponse, 0, len(costs))
	for _, c := range costs {
		out = append(out, FromOperatorCost(c))
	}
	return out
}
