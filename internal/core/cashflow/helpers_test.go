package cashflow_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// now is the fixed clock every engine test runs against.
var now = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func income(amount string, date time.Time) domain.Transaction {
	return domain.Transaction{ID: "inc-" + date.Format("20060102") + "-" + amount, Kind: domain.KindIncome, Amount: dec(amount), Date: date, Category: "sales"}
}

func expense(category, amount string, date time.Time) domain.Transaction {
	return domain.Transaction{ID: "exp-" + category + "-" + date.Format("20060102"), Kind: domain.KindExpense, Amount: dec(amount), Date: date, Category: category}
}

// months builds a history with the given income and expense pairs, oldest first.
func months(pairs ...[2]string) []domain.MonthlyData {
	history := make([]domain.MonthlyData, len(pairs))
	for i, p := range pairs {
		history[i] = domain.MonthlyData{Income: dec(p[0]), Expenses: dec(p[1])}
	}
	return history
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) bool {
	t.Helper()
	return assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}
