package cashflow_test

import (
	"testing"

	"github.com/SscSPs/cashflow_dashboard/internal/core/cashflow"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateWhatIf_HireWithPositiveBaseline(t *testing.T) {
	summary := domain.CashFlowSummary{
		CurrentBalance: dec("30000"),
		TotalIncome:    dec("10000"),
		TotalExpenses:  dec("8000"),
		NetCashFlow:    dec("2000"),
		BurnRate:       dec("2700"),
		RunwayMonths:   11,
	}
	scenario := domain.WhatIfScenario{HireCount: 1, AvgSalary: dec("5000")}

	got := cashflow.SimulateWhatIf(summary, scenario, now)

	assertDecimal(t, "13000", got.NewExpenses)
	assertDecimal(t, "10000", got.NewIncome)
	assertDecimal(t, "-3000", got.NewNetCashFlow)
	assertDecimal(t, "3000", got.NewBurnRate)
	assert.Equal(t, 10, got.NewRunway)
	assert.Equal(t, "This scenario reduces your runway by 1 months.", got.ImpactSummary)
	require.NotNil(t, got.CashOutDate)
	assert.Equal(t, now.AddDate(0, 0, 300), *got.CashOutDate)
}

func TestSimulateWhatIf_HireWithoutBaselineRunway(t *testing.T) {
	summary := domain.CashFlowSummary{
		CurrentBalance: dec("30000"),
		TotalIncome:    dec("10000"),
		TotalExpenses:  dec("8000"),
		NetCashFlow:    dec("2000"),
		BurnRate:       dec("0"),
		RunwayMonths:   cashflow.RunwaySentinel,
	}

	got := cashflow.SimulateWhatIf(summary, domain.WhatIfScenario{HireCount: 1, AvgSalary: dec("5000")}, now)

	assert.Equal(t, "This scenario increases your monthly burn by $3,000.", got.ImpactSummary)
}

func TestSimulateWhatIf_NoBurnAnywhere(t *testing.T) {
	summary := domain.CashFlowSummary{
		CurrentBalance: dec("5000"), TotalIncome: dec("0"), TotalExpenses: dec("0"),
		NetCashFlow: dec("0"), BurnRate: dec("0"), RunwayMonths: cashflow.RunwaySentinel,
	}

	got := cashflow.SimulateWhatIf(summary, domain.WhatIfScenario{}, now)

	assertDecimal(t, "0", got.NewBurnRate)
	assert.Equal(t, cashflow.RunwaySentinel, got.NewRunway)
	assert.Nil(t, got.CashOutDate)
	assert.Equal(t, "This scenario maintains your current financial trajectory.", got.ImpactSummary)
}

func TestSimulateWhatIf_ImpactSummaryOrder(t *testing.T) {
	tests := []struct {
		name     string
		summary  domain.CashFlowSummary
		scenario domain.WhatIfScenario
		want     string
	}{
		{
			name: "crossing into profit",
			summary: domain.CashFlowSummary{
				CurrentBalance: dec("20000"), TotalIncome: dec("5000"), TotalExpenses: dec("6000"),
				NetCashFlow: dec("-1000"), BurnRate: dec("6000"), RunwayMonths: 3,
			},
			scenario: domain.WhatIfScenario{RevenueChangePct: 50},
			want:     "This scenario makes you profitable with $1,500 positive flow!",
		},
		{
			name: "already profitable and improving",
			summary: domain.CashFlowSummary{
				CurrentBalance: dec("20000"), TotalIncome: dec("5000"), TotalExpenses: dec("4000"),
				NetCashFlow: dec("1000"), BurnRate: dec("4000"), RunwayMonths: 5,
			},
			scenario: domain.WhatIfScenario{RevenueChangePct: 10},
			want:     "This scenario improves your monthly cash flow by $500!",
		},
		{
			name: "cuts win over burn comparison",
			summary: domain.CashFlowSummary{
				CurrentBalance: dec("20000"), TotalIncome: dec("5000"), TotalExpenses: dec("6000"),
				NetCashFlow: dec("-1000"), BurnRate: dec("6000"), RunwayMonths: 3,
			},
			scenario: domain.WhatIfScenario{OtherExpenseChangePct: -10},
			want:     "This scenario improves your monthly cash flow by $600!",
		},
		{
			name: "burn below trailing average",
			summary: domain.CashFlowSummary{
				CurrentBalance: dec("20000"), TotalIncome: dec("5000"), TotalExpenses: dec("6000"),
				NetCashFlow: dec("-1000"), BurnRate: dec("6000"), RunwayMonths: 3,
			},
			want: "This scenario extends your runway or saves you $5,000 monthly!",
		},
		{
			name: "marketing push",
			summary: domain.CashFlowSummary{
				CurrentBalance: dec("100000"), TotalIncome: dec("0"), TotalExpenses: dec("10000"),
				NetCashFlow: dec("-10000"), BurnRate: dec("10000"), RunwayMonths: 10,
			},
			scenario: domain.WhatIfScenario{MarketingChangePct: 25},
			want:     "This scenario reduces your runway by 2 months.",
		},
		{
			name: "burn up but floored runway unchanged",
			summary: domain.CashFlowSummary{
				CurrentBalance: dec("105000"), TotalIncome: dec("0"), TotalExpenses: dec("10000"),
				NetCashFlow: dec("-10000"), BurnRate: dec("10000"), RunwayMonths: 10,
			},
			scenario: domain.WhatIfScenario{MarketingChangePct: 1},
			want:     "This scenario increases your monthly burn by $100.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cashflow.SimulateWhatIf(tt.summary, tt.scenario, now)
			assert.Equal(t, tt.want, got.ImpactSummary)
		})
	}
}

func TestSimulateWhatIf_RunwayClampedToSentinel(t *testing.T) {
	summary := domain.CashFlowSummary{
		CurrentBalance: dec("10000000"), TotalIncome: dec("0"), TotalExpenses: dec("1"),
		NetCashFlow: dec("-1"), BurnRate: dec("1"), RunwayMonths: 10000000,
	}

	got := cashflow.SimulateWhatIf(summary, domain.WhatIfScenario{}, now)

	assert.Equal(t, cashflow.RunwaySentinel, got.NewRunway)
	require.NotNil(t, got.CashOutDate)
	assert.Equal(t, now.AddDate(0, 0, cashflow.RunwaySentinel*30), *got.CashOutDate)
}
