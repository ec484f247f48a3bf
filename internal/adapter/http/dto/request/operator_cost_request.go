package request

import (
	"errors"
	"strings"
	"time"

	"turismo_xpto/internal/usecase/interfaces"
)

var ErrInvalidDateValue = errors.New("invalid date value")

const dateLayout = "2006-01-02"

// ApprovePaymentRequest optionally overrides the payment date. When absent,
// the approval timestamp is used.
type ApprovePaymentRequest struct {
	PaymentDate string `json:"payment_date"`
}

func (r ApprovePaymentRequest) ResolvePaymentDate() (*time.Time, error) {
	v := strings.TrimSpace(r.PaymentDate)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, ErrInvalidDateValue
	}
	t = t.UTC()
	return &t, nil
}

// UpdateCostRequest edits the detail fields of an unlocked operator cost.
// Absent fields stay unchanged; amounts are integer minor currency units.
type UpdateCostRequest struct {
	CostBeforeTax   *int64  `json:"cost_before_tax"`
	VAT             *int64  `json:"vat"`
	TotalCost       *int64  `json:"total_cost"`
	ServiceDate     *string `json:"service_date"`
	PaymentDeadline *string `json:"payment_deadline"`
}

func (r UpdateCostRequest) ToPatch() (interfaces.CostDetailsPatch, error) {
	patch := interfaces.CostDetailsPatch{
		CostBeforeTax: r.CostBeforeTax,
		VAT:           r.VAT,
		TotalCost:     r.TotalCost,
	}
	if r.ServiceDate != nil {
		t, err := parseDate(*r.ServiceDate)
		if err != nil {
			return interfaces.CostDetailsPatch{}, err
		}
		patch.ServiceDate = t
	}
	if r.PaymentDeadline != nil {
		t, err := parseDate(*r.PaymentDeadline)
		if err != nil {
			return interfaces.CostDetailsPatch{}, err
		}
		patch.PaymentDeadline = t
	}
	return patch, nil
}

func parseDate(v string) (*time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return nil, ErrInvalidDateValue
	}
	t = t.UTC()
	return &t, nil
}
