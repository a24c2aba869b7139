package cashflow

import (
	"fmt"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var wasteActionLimit = decimal.NewFromInt(wasteActionThreshold)

// WeeklyActions suggests up to maxWeeklyActions tasks. Earlier actions win
// when the list is truncated; the subscription review is always first.
func WeeklyActions(summary domain.CashFlowSummary, burn domain.BurnBreakdown, killers []domain.SilentExpenseKiller) []domain.WeeklyAction {
	actions := []domain.WeeklyAction{{
		ID:       "review-subs",
		Action:   "Review all subscriptions and cancel unused ones",
		Category: domain.ActionReview,
		Reason:   "Regular review prevents waste and saves money",
	}}

	if summary.RunwayMonths < warningRunwayMonths {
		actions = append(actions,
			domain.WeeklyAction{
				ID:       "cut-non-essential",
				Action:   "Cut all non-essential expenses immediately",
				Category: domain.ActionReduce,
				Reason:   fmt.Sprintf("With only %d months of runway, every dollar matters", summary.RunwayMonths),
			},
			domain.WeeklyAction{
				ID:       "delay-hiring",
				Action:   "Delay any new hires until runway improves",
				Category: domain.ActionDelay,
				Reason:   "Adding salaries will accelerate cash burnout",
			})
	}

	if summary.NetCashFlow.IsNegative() {
		actions = append(actions, domain.WeeklyAction{
			ID:       "increase-prices",
			Action:   "Consider increasing prices by 10-20%",
			Category: domain.ActionIncrease,
			Reason:   "Most startups underprice. A small increase can significantly impact runway.",
		})
	}

	if burn.WasteBurn.GreaterThan(wasteActionLimit) {
		actions = append(actions, domain.WeeklyAction{
			ID:       "eliminate-waste",
			Action:   fmt.Sprintf("Eliminate waste expenses ($%s/month identified)", formatAmount(burn.WasteBurn)),
			Category: domain.ActionReduce,
			Reason:   "Waste expenses offer no business value",
		})
	}

	if len(killers) > 0 {
		actions = append(actions, domain.WeeklyAction{
			ID:       "address-killer",
			Action:   killers[0].ActionSuggestion,
			Category: domain.ActionReview,
			Reason:   "This expense is growing faster than expected",
		})
	}

	if len(actions) > maxWeeklyActions {
		actions = actions[:maxWeeklyActions]
	}
	return actions
}
