package cashflow_test

import (
	"testing"

	"github.com/SscSPs/cashflow_dashboard/internal/core/cashflow"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func recurringIncome(amount string, m int) domain.Transaction {
	t := income(amount, day(2026, 10, 1).AddDate(0, -m, 0))
	t.IsRecurring = true
	return t
}

func TestIncomeStability_FlatRecurringIncome(t *testing.T) {
	txns := []domain.Transaction{recurringIncome("10000", 0), recurringIncome("10000", 1), recurringIncome("10000", 2)}
	history := months([2]string{"10000", "0"}, [2]string{"10000", "0"}, [2]string{"10000", "0"})

	got := cashflow.IncomeStability(txns, history)

	assert.Equal(t, 0, got.VolatilityScore)
	assert.Equal(t, domain.TrendStable, got.Trend)
	assert.Equal(t, 100, got.RecurringPercentage)
	assert.True(t, got.IsStable)
	assert.Empty(t, got.Warning)
}

func TestIncomeStability_Volatility(t *testing.T) {
	tests := []struct {
		name    string
		history []domain.MonthlyData
		want    int
		trend   domain.IncomeTrend
	}{
		{"too few points is neutral", months([2]string{"1000", "0"}, [2]string{"5000", "0"}), 50, domain.TrendIncreasing},
		{"no points", nil, 50, domain.TrendStable},
		{"no income at all", months([2]string{"0", "0"}, [2]string{"0", "0"}, [2]string{"0", "0"}), 100, domain.TrendStable},
		{"rising", months([2]string{"1000", "0"}, [2]string{"1000", "0"}, [2]string{"2000", "0"}), 35, domain.TrendIncreasing},
		{"falling", months([2]string{"2000", "0"}, [2]string{"1000", "0"}, [2]string{"1000", "0"}), 35, domain.TrendDecreasing},
		{"capped", months([2]string{"0", "0"}, [2]string{"0", "0"}, [2]string{"0", "0"}, [2]string{"900", "0"}), 100, domain.TrendIncreasing},
		{"within ten percent is stable", months([2]string{"9999", "0"}, [2]string{"1000", "0"}, [2]string{"1050", "0"}, [2]string{"1090", "0"}), 100, domain.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cashflow.IncomeStability(nil, tt.history)
			assert.Equal(t, tt.want, got.VolatilityScore)
			assert.Equal(t, tt.trend, got.Trend)
		})
	}
}

func TestIncomeStability_Warnings(t *testing.T) {
	oneTime := income("4000", day(2026, 10, 1))
	recurring := recurringIncome("1000", 0)

	t.Run("volatility takes priority", func(t *testing.T) {
		history := months([2]string{"0", "0"}, [2]string{"0", "0"}, [2]string{"5000", "0"})
		got := cashflow.IncomeStability([]domain.Transaction{oneTime}, history)
		assert.Equal(t, "Your income varies significantly month-to-month. This makes planning harder.", got.Warning)
		assert.False(t, got.IsStable)
	})
	t.Run("mostly one-time income", func(t *testing.T) {
		got := cashflow.IncomeStability([]domain.Transaction{oneTime, recurring}, nil)
		assert.Equal(t, 20, got.RecurringPercentage)
		assert.Equal(t, "Most of your income is one-time. Consider building recurring revenue streams.", got.Warning)
	})
	t.Run("neutral volatility with recurring income", func(t *testing.T) {
		got := cashflow.IncomeStability([]domain.Transaction{recurring}, nil)
		assert.Empty(t, got.Warning)
		assert.False(t, got.IsStable, "neutral volatility of 50 is not stable")
	})
	t.Run("expenses do not count", func(t *testing.T) {
		spend := expense("rent", "1000", day(2026, 10, 1))
		spend.IsRecurring = true
		got := cashflow.IncomeStability([]domain.Transaction{spend}, nil)
		assert.Equal(t, 0, got.RecurringPercentage)
	})
}
