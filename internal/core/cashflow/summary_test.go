package cashflow_test

import (
	"testing"

	"github.com/SscSPs/cashflow_dashboard/internal/core/cashflow"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyLedger(t *testing.T) {
	summary := cashflow.Summarize(nil, dec("10000"), now)

	assertDecimal(t, "10000", summary.CurrentBalance)
	assertDecimal(t, "0", summary.TotalIncome)
	assertDecimal(t, "0", summary.TotalExpenses)
	assertDecimal(t, "0", summary.NetCashFlow)
	assertDecimal(t, "0", summary.BurnRate)
	assert.Equal(t, cashflow.RunwaySentinel, summary.RunwayMonths)
}

func TestSummarize_RunwayIsFloored(t *testing.T) {
	txns := []domain.Transaction{
		expense("salary", "28500", day(2026, 7, 20)),
		expense("salary", "28500", day(2026, 8, 15)),
		expense("salary", "28500", day(2026, 9, 15)),
		income("73500", day(2026, 10, 5)),
	}

	summary := cashflow.Summarize(txns, dec("137000"), now)

	assertDecimal(t, "125000", summary.CurrentBalance)
	assertDecimal(t, "28500", summary.BurnRate)
	assertDecimal(t, "73500", summary.TotalIncome)
	assertDecimal(t, "0", summary.TotalExpenses)
	assertDecimal(t, "73500", summary.NetCashFlow)
	assert.Equal(t, 4, summary.RunwayMonths)
}

func TestSummarize_BurnWindowRollsWithToday(t *testing.T) {
	txns := []domain.Transaction{
		expense("rent", "3000", day(2026, 7, 13)), // one day before the window
		expense("rent", "3000", day(2026, 7, 14)),
	}

	summary := cashflow.Summarize(txns, dec("10000"), now)

	assertDecimal(t, "1000", summary.BurnRate)
	assertDecimal(t, "4000", summary.CurrentBalance)
	assertDecimal(t, "0", summary.TotalExpenses)
}

func TestSummarize_FutureExpensesAreNotBurn(t *testing.T) {
	txns := []domain.Transaction{
		expense("rent", "3000", day(2026, 10, 14)),
		expense("rent", "3000", day(2027, 3, 1)),
	}

	summary := cashflow.Summarize(txns, dec("10000"), now)
	breakdown := cashflow.BurnBreakdown(txns, cashflow.DefaultTaxonomy(), now)

	assertDecimal(t, "1000", summary.BurnRate)
	assertDecimal(t, "4000", summary.CurrentBalance)
	assertDecimal(t, "1000", breakdown.SurvivalBurn)
	assert.Empty(t, cashflow.SilentExpenseKillers(txns, now))
}

func TestSummarize_CurrentMonthTotals(t *testing.T) {
	txns := []domain.Transaction{
		income("5000", day(2026, 10, 1)),
		income("2000", day(2025, 10, 1)), // same month, other year
		expense("software", "1200", day(2026, 10, 31)),
		expense("software", "800", day(2026, 9, 30)),
	}

	summary := cashflow.Summarize(txns, dec("0"), now)

	assertDecimal(t, "5000", summary.TotalIncome)
	assertDecimal(t, "1200", summary.TotalExpenses)
	assertDecimal(t, "3800", summary.NetCashFlow)
	assertDecimal(t, "5000", summary.CurrentBalance)
}

func TestSummarize_RunwayNeverIncreasesWithSpend(t *testing.T) {
	base := []domain.Transaction{
		income("4000", day(2026, 9, 1)),
		expense("rent", "2000", day(2026, 9, 1)),
		expense("marketing", "1000", day(2026, 10, 2)),
	}
	previous := cashflow.Summarize(base, dec("50000"), now).RunwayMonths

	for _, amount := range []string{"1500", "3000", "9000", "40000"} {
		txns := append([]domain.Transaction(nil), base...)
		txns[2] = expense("marketing", amount, day(2026, 10, 2))

		runway := cashflow.Summarize(txns, dec("50000"), now).RunwayMonths
		assert.LessOrEqual(t, runway, previous, "amount %s", amount)
		previous = runway
	}
}
