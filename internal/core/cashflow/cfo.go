package cashflow

import (
	"fmt"
	"sort"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// CFOInsights produces rule-based advice from the summary, the burn
// breakdown and income stability, ordered high priority first. Rules keep
// their relative order within a priority.
func CFOInsights(summary domain.CashFlowSummary, burn domain.BurnBreakdown, stability domain.IncomeStability) []domain.CFOInsight {
	insights := []domain.CFOInsight{}
	runway := summary.RunwayMonths

	if runway < hiringSafeRunway {
		insights = append(insights, domain.CFOInsight{
			ID:       "hiring-warning",
			Type:     domain.CFOHiring,
			Title:    "Hiring is Risky Right Now",
			Message:  fmt.Sprintf("With %d months of runway, adding a new hire would significantly reduce your survival time. Consider waiting until you have 12+ months of runway.", runway),
			Impact:   "Each $5K salary reduces runway by ~1 month",
			Priority: domain.PriorityHigh,
		})
	}

	if summary.TotalExpenses.GreaterThan(summary.TotalIncome) && summary.TotalIncome.IsPositive() {
		insights = append(insights, domain.CFOInsight{
			ID:       "expense-growth",
			Type:     domain.CFOExpense,
			Title:    "You're Spending More Than You Earn",
			Message:  fmt.Sprintf("Your expenses are %d%% higher than income. This rate will drain your savings.", overspendPct(summary)),
			Impact:   fmt.Sprintf("$%s leaves your account every month", formatAmount(summary.NetCashFlow.Abs())),
			Priority: domain.PriorityHigh,
		})
	}

	if burn.WasteBurn.IsPositive() {
		var gain int
		if summary.BurnRate.IsPositive() {
			gain = roundToInt(burn.WasteBurn.Div(summary.BurnRate).InexactFloat64())
		}
		insights = append(insights, domain.CFOInsight{
			ID:       "waste-elimination",
			Type:     domain.CFOExpense,
			Title:    "Cut Waste to Extend Runway",
			Message:  fmt.Sprintf("You have $%s/month in waste expenses that can be eliminated.", formatAmount(burn.WasteBurn)),
			Impact:   fmt.Sprintf("Cutting this adds ~%d month(s) of runway", gain),
			Priority: domain.PriorityMedium,
		})
	}

	if !stability.IsStable {
		message := stability.Warning
		if message == "" {
			message = "Your income fluctuates significantly, making it harder to plan."
		}
		priority := domain.PriorityMedium
		if stability.VolatilityScore > volatileWarningLimit {
			priority = domain.PriorityHigh
		}
		insights = append(insights, domain.CFOInsight{
			ID:       "income-volatility",
			Type:     domain.CFORevenue,
			Title:    "Unstable Income Pattern",
			Message:  message,
			Priority: priority,
		})
	}

	if summary.NetCashFlow.IsPositive() {
		insights = append(insights, domain.CFOInsight{
			ID:       "positive-flow",
			Type:     domain.CFOGeneral,
			Title:    "Growing Your Safety Net",
			Message:  fmt.Sprintf("You're adding $%s to your savings each month. Keep it up!", formatAmount(summary.NetCashFlow)),
			Priority: domain.PriorityLow,
		})
	}

	if runway >= hiringSafeRunway && runway < healthyRunwayCeiling {
		insights = append(insights, domain.CFOInsight{
			ID:       "runway-good",
			Type:     domain.CFORunway,
			Title:    "Healthy Runway",
			Message:  "You have a solid runway. Now might be a good time to invest in growth.",
			Priority: domain.PriorityLow,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority.Rank() < insights[j].Priority.Rank()
	})
	return insights
}
