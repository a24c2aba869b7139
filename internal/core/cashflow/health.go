package cashflow

import (
	"fmt"
	"math"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// HealthScore combines five capped factors into a 0-100 score.
//
// Balance and runway reward months of cover, the burn-rate factor rewards a
// low expense to income ratio this month, and the two trend factors look at
// month-over-month growth across the last three history entries.
func HealthScore(summary domain.CashFlowSummary, history []domain.MonthlyData) domain.CashHealthScore {
	balance := summary.CurrentBalance.InexactFloat64()
	burn := summary.BurnRate.InexactFloat64()
	income := summary.TotalIncome.InexactFloat64()
	expenses := summary.TotalExpenses.InexactFloat64()

	monthsOfCover := noBurnCoverMonths
	if burn > 0 {
		monthsOfCover = balance / burn
	}
	balanceFactor := math.Min(balanceFactorCap, monthsOfCover/coverTargetMonths*balanceFactorCap)

	expenseRatio := noIncomeExpenseRatio
	if income > 0 {
		expenseRatio = expenses / income
	}
	burnRateFactor := clampFloat(burnRateFactorCap-(expenseRatio-expenseRatioBaseline)*burnRateFactorCap, 0, burnRateFactorCap)

	runwayFactor := math.Min(runwayFactorCap, float64(summary.RunwayMonths)/runwayTargetMonths*runwayFactorCap)

	incomeTrend := trendFactor(history, func(m domain.MonthlyData) float64 { return m.Income.InexactFloat64() }, 1)
	expenseGrowth := trendFactor(history, func(m domain.MonthlyData) float64 { return m.Expenses.InexactFloat64() }, -1)

	score := roundToInt(balanceFactor + burnRateFactor + runwayFactor + incomeTrend + expenseGrowth)
	status := healthStatus(score)
	explanation, hint := healthExplanation(status, summary)

	return domain.CashHealthScore{
		Score:       max(0, min(100, score)),
		Status:      status,
		Explanation: explanation,
		ActionHint:  hint,
		Factors: domain.HealthFactors{
			BalanceFactor:       roundToInt(balanceFactor),
			BurnRateFactor:      roundToInt(burnRateFactor),
			RunwayFactor:        roundToInt(runwayFactor),
			IncomeTrendFactor:   roundToInt(incomeTrend),
			ExpenseGrowthFactor: roundToInt(expenseGrowth),
		},
	}
}

// trendFactor maps the mean month-over-month growth of the last trendWindow
// entries onto 0..trendFactorCap around trendFactorNeutral. direction -1
// inverts the mapping so growth lowers the factor.
func trendFactor(history []domain.MonthlyData, value func(domain.MonthlyData) float64, direction float64) float64 {
	if len(history) < 2 {
		return trendFactorNeutral
	}
	recent := history[max(0, len(history)-trendWindow):]

	var growth float64
	for i := 1; i < len(recent); i++ {
		prev, cur := value(recent[i-1]), value(recent[i])
		if prev > 0 {
			growth += (cur - prev) / prev
		}
	}
	growth /= float64(len(recent) - 1)

	return clampFloat(trendFactorNeutral+direction*growth*trendFactorCap, 0, trendFactorCap)
}

func healthStatus(score int) domain.HealthStatus {
	switch {
	case score >= healthyScore:
		return domain.HealthHealthy
	case score >= moderateScore:
		return domain.HealthModerate
	case score >= warningScore:
		return domain.HealthWarning
	default:
		return domain.HealthCritical
	}
}

func healthExplanation(status domain.HealthStatus, summary domain.CashFlowSummary) (string, string) {
	switch status {
	case domain.HealthHealthy:
		return "Your finances are in great shape! You have healthy cash reserves and sustainable spending.",
			"Consider investing in growth or building a larger safety buffer."
	case domain.HealthModerate:
		hint := "Build up your cash reserves to extend your runway."
		if summary.NetCashFlow.IsNegative() {
			hint = "Focus on increasing revenue or reducing expenses to improve your score."
		}
		return "Your finances are stable but could use improvement. Watch your spending trends.", hint
	case domain.HealthWarning:
		return "Warning: Your financial health needs attention. Cash reserves may be running low.",
			fmt.Sprintf("With %d months of runway, prioritize cutting non-essential expenses and focus on revenue-generating activities.", summary.RunwayMonths)
	default:
		return "Critical: Your business is at financial risk. Immediate action is required.",
			fmt.Sprintf("You have %d months before running out of cash. Cut all non-essential spending immediately.", summary.RunwayMonths)
	}
}
