package cashflow

import (
	"math"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	volatileIncomeWarning = "Your income varies significantly month-to-month. This makes planning harder."
	oneTimeIncomeWarning  = "Most of your income is one-time. Consider building recurring revenue streams."
)

// IncomeStability scores how predictable income is. The recurring share is
// all-time; volatility is the coefficient of variation of monthly income
// across history and the trend compares the ends of the last three months.
func IncomeStability(transactions []domain.Transaction, history []domain.MonthlyData) domain.IncomeStability {
	var all, recurring decimal.Decimal
	for _, t := range transactions {
		if !t.IsIncome() {
			continue
		}
		all = all.Add(t.Amount)
		if t.IsRecurring {
			recurring = recurring.Add(t.Amount)
		}
	}
	var recurringPct float64
	if all.IsPositive() {
		recurringPct = recurring.Div(all).Mul(hundred).InexactFloat64()
	}

	volatility := incomeVolatility(history)

	var warning string
	switch {
	case volatility > volatileWarningLimit:
		warning = volatileIncomeWarning
	case recurringPct < lowRecurringShareLimit:
		warning = oneTimeIncomeWarning
	}

	return domain.IncomeStability{
		IsStable:            volatility < stableVolatilityLimit && recurringPct > stableRecurringShare,
		VolatilityScore:     roundToInt(volatility),
		RecurringPercentage: roundToInt(recurringPct),
		Warning:             warning,
		Trend:               incomeTrend(history),
	}
}

// incomeVolatility is the population coefficient of variation in percent,
// capped at maxVolatility.
func incomeVolatility(history []domain.MonthlyData) float64 {
	if len(history) < minVolatilityPoints {
		return neutralVolatility
	}
	incomes := make([]float64, len(history))
	var sum float64
	for i, m := range history {
		incomes[i] = m.Income.InexactFloat64()
		sum += incomes[i]
	}
	n := float64(len(incomes))
	avg := sum / n
	if avg <= 0 {
		return maxVolatility
	}
	var variance float64
	for _, v := range incomes {
		variance += (v - avg) * (v - avg)
	}
	variance /= n
	return math.Min(maxVolatility, math.Sqrt(variance)/avg*100)
}

func incomeTrend(history []domain.MonthlyData) domain.IncomeTrend {
	if len(history) < 2 {
		return domain.TrendStable
	}
	recent := history[max(0, len(history)-trendWindow):]
	first := recent[0].Income.InexactFloat64()
	last := recent[len(recent)-1].Income.InexactFloat64()
	switch {
	case last > first*trendRiseMultiplier:
		return domain.TrendIncreasing
	case last < first*trendFallMultiplier:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}
