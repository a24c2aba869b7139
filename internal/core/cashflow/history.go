package cashflow

import (
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyHistory groups transactions into calendar-month income and expense
// totals for the months-long window ending with now's month, oldest first.
// Months without transactions are present with zero totals; transactions
// outside the window are ignored.
//
// Balances are estimated end-of-month balances walked backward from
// startingBalance, which is taken to be the balance right now.
func MonthlyHistory(transactions []domain.Transaction, startingBalance decimal.Decimal, months int, now time.Time) []domain.MonthlyData {
	if months <= 0 {
		return []domain.MonthlyData{}
	}

	history := make([]domain.MonthlyData, months)
	index := make(map[string]int, months)
	for i := range history {
		start := monthStart(now, i-(months-1))
		key := monthKey(start)
		history[i] = domain.MonthlyData{
			Key:      key,
			Month:    start.Format("Jan"),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
		index[key] = i
	}

	for _, t := range transactions {
		i, ok := index[monthKey(t.Date)]
		if !ok {
			continue
		}
		switch t.Kind {
		case domain.KindIncome:
			history[i].Income = history[i].Income.Add(t.Amount)
		case domain.KindExpense:
			history[i].Expenses = history[i].Expenses.Add(t.Amount)
		}
	}

	balance := startingBalance
	for i := len(history) - 1; i >= 0; i-- {
		history[i].Balance = balance
		balance = balance.Sub(history[i].Income).Add(history[i].Expenses)
	}

	return history
}
