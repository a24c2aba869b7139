package cashflow

import (
	"fmt"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var discretionaryShare = decimal.RequireFromString(discretionaryReserveShare)

// SafeToSpend returns how much may be spent this month while keeping
// minRunwayMonths of burn in reserve. The amount is a whole number between
// zero and the current balance.
func SafeToSpend(summary domain.CashFlowSummary, minRunwayMonths int) domain.SafeToSpend {
	reserve := summary.BurnRate.Mul(decimal.NewFromInt(int64(minRunwayMonths)))
	available := decimal.Max(decimal.Zero, summary.CurrentBalance.Sub(reserve))
	excessIncome := decimal.Max(decimal.Zero, summary.TotalIncome.Sub(summary.BurnRate))
	safe := decimal.Min(available, excessIncome.Add(available.Mul(discretionaryShare)))

	var percentage float64
	if summary.CurrentBalance.IsPositive() {
		percentage = safe.Div(summary.CurrentBalance).Mul(hundred).InexactFloat64()
	}

	var explanation string
	switch {
	case !safe.IsPositive():
		explanation = fmt.Sprintf("Your cash reserves are needed to maintain at least %d months of runway. Avoid additional spending.", minRunwayMonths)
	case percentage < modestSpendPercentage:
		explanation = fmt.Sprintf("You can safely spend a small amount while keeping %d months of survival runway.", minRunwayMonths)
	default:
		explanation = fmt.Sprintf("Based on your current income and expenses, you can safely spend this amount without risking your %d-month safety buffer.", minRunwayMonths)
	}

	amount := decimal.Max(decimal.Zero, roundHalfUp(safe))
	if summary.CurrentBalance.IsPositive() && amount.GreaterThan(summary.CurrentBalance) {
		amount = summary.CurrentBalance.Floor()
	}

	return domain.SafeToSpend{
		Amount:             amount,
		Percentage:         roundToInt(percentage),
		Explanation:        explanation,
		MinRunwayProtected: minRunwayMonths,
	}
}
