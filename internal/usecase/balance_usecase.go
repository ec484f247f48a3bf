package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/internal/usecase/interfaces"
)

var ErrInvalidPeriod = errors.New("invalid report period")

// IBalanceUseCase computes financial rollups over operator costs and revenues.
// Nothing is stored; every call recomputes from the persisted records.

type IBalanceUseCase interface {
	PaymentStatusReport(ctx context.Context) (entities.PaymentStatusReport, error)
	SupplierBalanceSummary(ctx context.Context, supplierType string) ([]entities.SupplierBalance, error)
	MonthlyCashflow(ctx context.Context, year int, month time.Month) (entities.CashflowSummary, error)
}

type BalanceUseCase struct {
	costs     interfaces.IOperatorCostRepository
	revenues  interfaces.IRevenueRepository
	suppliers interfaces.ISupplierRepository
	now       func() time.Time
}

var _ IBalanceUseCase = (*BalanceUseCase)(nil)

func NewBalanceUseCase(costs interfaces.IOperatorCostRepository, revenues interfaces.IRevenueRepository, suppliers interfaces.ISupplierRepository) *BalanceUseCase {
	return &BalanceUseCase{costs: costs, revenues: revenues, suppliers: suppliers, now: time.Now}
}

// PaymentStatusReport buckets costs by deadline proximity. Overdue is checked
// before dueThisWeek, so a past deadline never counts as due; a record lands
// in at most one of pending/overdue/dueThisWeek.
func (u *BalanceUseCase) PaymentStatusReport(ctx context.Context) (entities.PaymentStatusReport, error) {
	costs, err := u.costs.ListAll(ctx)
	if err != nil {
		return entities.PaymentStatusReport{}, err
	}

	now := u.now().UTC()
	weekAhead := now.Add(7 * 24 * time.Hour)

	var report entities.PaymentStatusReport
	for _, c := range costs {
		if c.PaymentStatus == entities.PaymentStatusPaid {
			if c.PaymentDate != nil && sameMonth(c.PaymentDate.UTC(), now) {
				addToBucket(&report.PaidThisMonth, c.TotalCost)
			}
			continue
		}

		switch {
		case c.PaymentDeadline != nil && c.PaymentDeadline.UTC().Before(now):
			addToBucket(&report.Overdue, c.TotalCost)
		case c.PaymentDeadline != nil && !c.PaymentDeadline.UTC().After(weekAhead):
			addToBucket(&report.DueThisWeek, c.TotalCost)
		case c.PaymentStatus == entities.PaymentStatusPending:
			addToBucket(&report.Pending, c.TotalCost)
		}
	}
	return report, nil
}

// SupplierBalanceSummary groups costs by catalog supplier id, falling back to
// the free-text supplier name for one-off providers. When supplierType is set,
// only cataloged suppliers of that type are included; free-text groups carry
// no type and are filtered out.
func (u *BalanceUseCase) SupplierBalanceSummary(ctx context.Context, supplierType string) ([]entities.SupplierBalance, error) {
	supplierType = strings.TrimSpace(supplierType)

	costs, err := u.costs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := u.suppliers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Supplier, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	groups := make(map[string]*entities.SupplierBalance)
	for _, c := range costs {
		var key string
		var balance entities.SupplierBalance
		switch {
		case c.SupplierID != "":
			s := byID[c.SupplierID]
			if supplierType != "" && s.Type != supplierType {
				continue
			}
			key = "id:" + c.SupplierID
			balance = entities.SupplierBalance{SupplierID: c.SupplierID, SupplierName: s.Name}
		case c.SupplierName != "":
			if supplierType != "" {
				continue
			}
			key = "name:" + c.SupplierName
			balance = entities.SupplierBalance{SupplierName: c.SupplierName}
		default:
			continue
		}

		g, ok := groups[key]
		if !ok {
			g = &balance
			groups[key] = g
		}
		g.Count++
		g.Total += c.TotalCost
	}

	out := make([]entities.SupplierBalance, 0, len(groups))
	for _, g := range groups {
		g.Average = halfUpAverage(g.Total, g.Count)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].SupplierName < out[j].SupplierName
	})
	return out, nil
}

func (u *BalanceUseCase) MonthlyCashflow(ctx context.Context, year int, month time.Month) (entities.CashflowSummary, error) {
	if year < 2000 || month < time.January || month > time.December {
		return entities.CashflowSummary{}, ErrInvalidPeriod
	}

	revenues, err := u.revenues.ListAll(ctx)
	if err != nil {
		return entities.CashflowSummary{}, err
	}
	costs, err := u.costs.ListAll(ctx)
	if err != nil {
		return entities.CashflowSummary{}, err
	}

	summary := entities.CashflowSummary{Year: year, Month: month}
	for _, r := range revenues {
		if inMonth(r.ReceivedDate.UTC(), year, month) {
			summary.RevenueTotal += r.Amount
		}
	}
	for _, c := range costs {
		if c.PaymentStatus == entities.PaymentStatusPaid && c.PaymentDate != nil && inMonth(c.PaymentDate.UTC(), year, month) {
			summary.CostTotal += c.TotalCost
		}
	}
	summary.Net = summary.RevenueTotal - summary.CostTotal
	return summary, nil
}

func addToBucket(b *entities.StatusBucket, total int64) {
	b.Count++
	b.Total += total
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func inMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// halfUpAverage rounds to the nearest whole currency unit; 0 for empty groups.
func halfUpAverage(total int64, count int) int64 {
	if count == 0 {
		return 0
	}
	n := int64(count)
	q := total / n
	r := total % n
	if r < 0 {
		r = -r
	}
	if 2*r >= n {
		if total < 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}
