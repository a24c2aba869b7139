package cashflow

import (
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize builds the cash flow snapshot for now.
//
// TotalIncome and TotalExpenses cover now's calendar month only, while
// BurnRate averages every expense in the rolling three-month window over
// three months. CurrentBalance applies the whole supplied history to
// startingBalance.
func Summarize(transactions []domain.Transaction, startingBalance decimal.Decimal, now time.Time) domain.CashFlowSummary {
	window := newBurnWindow(now)

	var monthIncome, monthExpenses, recentExpenses, allIncome, allExpenses decimal.Decimal
	for _, t := range transactions {
		switch t.Kind {
		case domain.KindIncome:
			allIncome = allIncome.Add(t.Amount)
			if inMonthOf(t.Date, now) {
				monthIncome = monthIncome.Add(t.Amount)
			}
		case domain.KindExpense:
			allExpenses = allExpenses.Add(t.Amount)
			if inMonthOf(t.Date, now) {
				monthExpenses = monthExpenses.Add(t.Amount)
			}
			if window.contains(t) {
				recentExpenses = recentExpenses.Add(t.Amount)
			}
		}
	}

	burnRate := recentExpenses.Div(burnMonths)
	currentBalance := startingBalance.Add(allIncome).Sub(allExpenses)

	return domain.CashFlowSummary{
		CurrentBalance: currentBalance,
		TotalIncome:    monthIncome,
		TotalExpenses:  monthExpenses,
		NetCashFlow:    monthIncome.Sub(monthExpenses),
		BurnRate:       burnRate,
		RunwayMonths:   runwayMonths(currentBalance, burnRate),
	}
}

// runwayMonths floors balance/burn, or returns RunwaySentinel when nothing burns.
func runwayMonths(balance, burn decimal.Decimal) int {
	if !burn.IsPositive() {
		return RunwaySentinel
	}
	return int(balance.Div(burn).Floor().IntPart())
}
