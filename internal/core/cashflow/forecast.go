package cashflow

import (
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectCash projects months of flat income and expenses forward from
// balance, starting with the month after now.
//
// Balance is floored at zero for display. ProjectedBalance keeps the raw
// running balance so callers can tell when cash would actually run out; see
// FirstShortfall.
func ProjectCash(balance, income, expenses decimal.Decimal, months int, now time.Time) []domain.MonthlyData {
	projection := make([]domain.MonthlyData, 0, max(0, months))
	running := balance
	for i := 1; i <= months; i++ {
		start := monthStart(now, i)
		running = running.Add(income).Sub(expenses)
		raw := running
		projection = append(projection, domain.MonthlyData{
			Key:              monthKey(start),
			Month:            start.Format("Jan"),
			Income:           income,
			Expenses:         expenses,
			Balance:          decimal.Max(decimal.Zero, raw),
			ProjectedBalance: &raw,
		})
	}
	return projection
}

// FirstShortfall returns the 1-based month of projection where the raw
// balance first drops below zero, or 0 when it never does.
func FirstShortfall(projection []domain.MonthlyData) int {
	for i, m := range projection {
		b := m.Balance
		if m.ProjectedBalance != nil {
			b = *m.ProjectedBalance
		}
		if b.IsNegative() {
			return i + 1
		}
	}
	return 0
}
