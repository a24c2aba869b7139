package cashflow_test

import (
	"testing"

	"github.com/SscSPs/cashflow_dashboard/internal/core/cashflow"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestHealthScore_Bands(t *testing.T) {
	flat := months([2]string{"10000", "5000"}, [2]string{"10000", "5000"}, [2]string{"10000", "5000"})

	tests := []struct {
		name       string
		summary    domain.CashFlowSummary
		history    []domain.MonthlyData
		wantScore  int
		wantStatus domain.HealthStatus
		wantHint   string
		want       domain.HealthFactors
	}{
		{
			name: "healthy business",
			summary: domain.CashFlowSummary{
				CurrentBalance: dec("120000"), TotalIncome: dec("10000"), TotalExpenses: dec("5000"),
				NetCashFlow: dec("5000"), BurnRate: dec("5000"), RunwayMonths: 24,
			},
			history:    flat,
			wantScore:  85,
			wantStatus: domain.HealthHealthy,
			wantHint:   "Consider investing in growth or building a larger safety buffer.",
			want:       domain.HealthFactors{BalanceFactor: 25, BurnRateFactor: 20, RunwayFactor: 25, IncomeTrendFactor: 8, ExpenseGrowthFactor: 8},
		},
		{
			name: "no activity falls back to neutral factors",
			summary: domain.CashFlowSummary{
				CurrentBalance: dec("10000"), TotalIncome: dec("0"), TotalExpenses: dec("0"),
				NetCashFlow: dec("0"), BurnRate: dec("0"), RunwayMonths: cashflow.RunwaySentinel,
			},
			wantScore:  65,
			wantStatus: domain.HealthModerate,
			wantHint:   "Build up your cash reserves to extend your runway.",
			want:       domain.HealthFactors{BalanceFactor: 25, BurnRateFactor: 0, RunwayFactor: 25, IncomeTrendFactor: 8, ExpenseGrowthFactor: 8},
		},
		{
			name: "nearly out of cash",
			summary: domain.CashFlowSummary{
				CurrentBalance: dec("1000"), TotalIncome: dec("0"), TotalExpenses: dec("5000"),
				NetCashFlow: dec("-5000"), BurnRate: dec("5000"), RunwayMonths: 0,
			},
			wantScore:  15,
			wantStatus: domain.HealthCritical,
			wantHint:   "You have 0 months before running out of cash. Cut all non-essential spending immediately.",
			want:       domain.HealthFactors{BalanceFactor: 0, BurnRateFactor: 0, RunwayFactor: 0, IncomeTrendFactor: 8, ExpenseGrowthFactor: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cashflow.HealthScore(tt.summary, tt.history)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantHint, got.ActionHint)
			assert.Equal(t, tt.want, got.Factors)
			assert.NotEmpty(t, got.Explanation)
		})
	}
}

func TestHealthScore_ModerateHintDependsOnNetFlow(t *testing.T) {
	summary := domain.CashFlowSummary{
		CurrentBalance: dec("10000"), TotalIncome: dec("0"), TotalExpenses: dec("0"),
		NetCashFlow: dec("-1"), BurnRate: dec("0"), RunwayMonths: cashflow.RunwaySentinel,
	}

	got := cashflow.HealthScore(summary, nil)

	assert.Equal(t, domain.HealthModerate, got.Status)
	assert.Equal(t, "Focus on increasing revenue or reducing expenses to improve your score.", got.ActionHint)
}

func TestHealthScore_WarningHintMentionsRunway(t *testing.T) {
	// 6.25 + 0 + 4.17 + 15 + 7.5 rounds to 33
	summary := domain.CashFlowSummary{
		CurrentBalance: dec("9000"), TotalIncome: dec("1000"), TotalExpenses: dec("3000"),
		NetCashFlow: dec("-2000"), BurnRate: dec("3000"), RunwayMonths: 3,
	}
	history := months([2]string{"500", "3000"}, [2]string{"750", "3000"}, [2]string{"1125", "3000"})

	got := cashflow.HealthScore(summary, history)

	assert.Equal(t, domain.HealthWarning, got.Status)
	assert.Equal(t, 15, got.Factors.IncomeTrendFactor)
	assert.Equal(t, 8, got.Factors.ExpenseGrowthFactor)
	assert.Contains(t, got.ActionHint, "3 months of runway")
}

func TestHealthScore_TrendFactorsMirrorEachOther(t *testing.T) {
	summary := domain.CashFlowSummary{CurrentBalance: dec("1000"), BurnRate: dec("1000"), RunwayMonths: 1}
	growing := months([2]string{"1000", "1000"}, [2]string{"1500", "1500"}, [2]string{"2250", "2250"})
	shrinking := months([2]string{"2000", "2000"}, [2]string{"1000", "1000"}, [2]string{"500", "500"})

	up := cashflow.HealthScore(summary, growing)
	assert.Equal(t, 15, up.Factors.IncomeTrendFactor)
	assert.Equal(t, 0, up.Factors.ExpenseGrowthFactor)

	down := cashflow.HealthScore(summary, shrinking)
	assert.Equal(t, 0, down.Factors.IncomeTrendFactor)
	assert.Equal(t, 15, down.Factors.ExpenseGrowthFactor)
}

func TestHealthScore_StaysInBounds(t *testing.T) {
	summaries := []domain.CashFlowSummary{
		{CurrentBalance: dec("-50000"), TotalIncome: dec("0"), TotalExpenses: dec("9000"), BurnRate: dec("1000"), RunwayMonths: -50},
		{CurrentBalance: dec("5000000"), TotalIncome: dec("900000"), TotalExpenses: dec("1"), BurnRate: dec("1"), RunwayMonths: cashflow.RunwaySentinel},
		{CurrentBalance: dec("0"), TotalIncome: dec("0"), TotalExpenses: dec("0"), BurnRate: dec("0"), RunwayMonths: cashflow.RunwaySentinel},
	}
	histories := [][]domain.MonthlyData{
		nil,
		months([2]string{"0", "10"}, [2]string{"100000", "0"}),
		months([2]string{"100", "100"}, [2]string{"1", "100000"}, [2]string{"100000", "1"}),
	}

	for _, s := range summaries {
		for _, h := range histories {
			got := cashflow.HealthScore(s, h)
			assert.GreaterOrEqual(t, got.Score, 0)
			assert.LessOrEqual(t, got.Score, 100)
			assert.LessOrEqual(t, got.Factors.BalanceFactor, 25)
			assert.LessOrEqual(t, got.Factors.BurnRateFactor, 20)
			assert.GreaterOrEqual(t, got.Factors.BurnRateFactor, 0)
			assert.LessOrEqual(t, got.Factors.RunwayFactor, 25)
			assert.GreaterOrEqual(t, got.Factors.IncomeTrendFactor, 0)
			assert.LessOrEqual(t, got.Factors.IncomeTrendFactor, 15)
			assert.GreaterOrEqual(t, got.Factors.ExpenseGrowthFactor, 0)
			assert.LessOrEqual(t, got.Factors.ExpenseGrowthFactor, 15)
		}
	}
}
