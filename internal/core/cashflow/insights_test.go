package cashflow_test

import (
	"testing"

	"github.com/SscSPs/cashflow_dashboard/internal/core/cashflow"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insightIDs(insights []domain.Insight) []string {
	ids := make([]string, len(insights))
	for i, in := range insights {
		ids[i] = in.ID
	}
	return ids
}

func TestInsights_Runway(t *testing.T) {
	critical := cashflow.Insights(domain.CashFlowSummary{RunwayMonths: 1}, nil, now)
	require.NotEmpty(t, critical)
	assert.Equal(t, "runway-critical", critical[0].ID)
	assert.Equal(t, domain.InsightDanger, critical[0].Type)
	assert.Equal(t, "You have only 1 month of runway left. Consider reducing expenses or raising funds immediately.", critical[0].Message)
	assert.Equal(t, "View Expenses", critical[0].ActionLabel)

	warning := cashflow.Insights(domain.CashFlowSummary{RunwayMonths: 5}, nil, now)
	require.NotEmpty(t, warning)
	assert.Equal(t, "runway-warning", warning[0].ID)
	assert.Equal(t, "You have 5 months of runway. Start planning for your next funding round or revenue growth.", warning[0].Message)

	assert.Empty(t, cashflow.Insights(domain.CashFlowSummary{RunwayMonths: 7}, nil, now))
}

func TestInsights_SpendingAndCategories(t *testing.T) {
	summary := domain.CashFlowSummary{
		TotalIncome:   dec("4000"),
		TotalExpenses: dec("7000"),
		NetCashFlow:   dec("-3000"),
		RunwayMonths:  cashflow.RunwaySentinel,
	}
	txns := []domain.Transaction{
		expense("office_supplies", "3000", day(2026, 10, 2)),
		expense("rent", "3000", day(2026, 10, 1)),
		expense("software", "1000", day(2026, 10, 3)),
		expense("payroll", "50000", day(2026, 9, 30)), // last month
		income("4000", day(2026, 10, 1)),
	}

	got := cashflow.Insights(summary, txns, now)

	assert.Equal(t, []string{"expense-growth", "biggest-expense"}, insightIDs(got))
	assert.Equal(t, "Your expenses exceed income by 75% this month. Review your spending to extend runway.", got[0].Message)
	assert.Equal(t, "Office Supplies accounts for 43% of your expenses this month.", got[1].Message)
}

func TestInsights_PositiveFlowWithoutExpenses(t *testing.T) {
	summary := domain.CashFlowSummary{TotalIncome: dec("100"), NetCashFlow: dec("100"), RunwayMonths: cashflow.RunwaySentinel}

	got := cashflow.Insights(summary, []domain.Transaction{income("100", day(2026, 10, 1))}, now)

	assert.Equal(t, []string{"positive-cashflow"}, insightIDs(got))
	assert.Equal(t, domain.InsightSuccess, got[0].Type)
}

func TestCFOInsights_SortedByPriority(t *testing.T) {
	summary := domain.CashFlowSummary{
		TotalIncome: dec("9000"), TotalExpenses: dec("6000"), NetCashFlow: dec("3000"),
		BurnRate: dec("2000"), RunwayMonths: 5,
	}
	burn := domain.BurnBreakdown{WasteBurn: dec("3000")}
	stability := domain.IncomeStability{VolatilityScore: 60, Warning: "volatile"}

	got := cashflow.CFOInsights(summary, burn, stability)

	ids := make([]string, len(got))
	for i, in := range got {
		ids[i] = in.ID
	}
	assert.Equal(t, []string{"hiring-warning", "income-volatility", "waste-elimination", "positive-flow"}, ids)
	assert.Equal(t, "Cutting this adds ~2 month(s) of runway", got[2].Impact)
	assert.Equal(t, "You have $3,000/month in waste expenses that can be eliminated.", got[2].Message)
	assert.Equal(t, "volatile", got[1].Message)
	assert.Equal(t, domain.PriorityHigh, got[1].Priority)
	assert.Equal(t, "You're adding $3,000 to your savings each month. Keep it up!", got[3].Message)
}

func TestCFOInsights_Overspending(t *testing.T) {
	summary := domain.CashFlowSummary{
		TotalIncome: dec("4000"), TotalExpenses: dec("5000"), NetCashFlow: dec("-1000"),
		BurnRate: dec("5000"), RunwayMonths: 14,
	}

	got := cashflow.CFOInsights(summary, domain.BurnBreakdown{}, domain.IncomeStability{IsStable: true})

	assert.Len(t, got, 2)
	assert.Equal(t, "expense-growth", got[0].ID)
	assert.Equal(t, "Your expenses are 25% higher than income. This rate will drain your savings.", got[0].Message)
	assert.Equal(t, "$1,000 leaves your account every month", got[0].Impact)
	assert.Equal(t, "runway-good", got[1].ID)
}

func TestCFOInsights_UnstableWithoutWarning(t *testing.T) {
	got := cashflow.CFOInsights(domain.CashFlowSummary{RunwayMonths: cashflow.RunwaySentinel}, domain.BurnBreakdown{}, domain.IncomeStability{VolatilityScore: 40})

	require.Len(t, got, 1)
	assert.Equal(t, "Your income fluctuates significantly, making it harder to plan.", got[0].Message)
	assert.Equal(t, domain.PriorityMedium, got[0].Priority)
}

func TestCFOInsights_WasteWithoutBurn(t *testing.T) {
	got := cashflow.CFOInsights(
		domain.CashFlowSummary{RunwayMonths: cashflow.RunwaySentinel},
		domain.BurnBreakdown{WasteBurn: dec("10")},
		domain.IncomeStability{IsStable: true},
	)

	require.Len(t, got, 1)
	assert.Equal(t, "Cutting this adds ~0 month(s) of runway", got[0].Impact)
}
