package cashflow

import (
	"fmt"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// scenarioOutcome carries the baseline and projected figures the impact rules compare.
type scenarioOutcome struct {
	baseNet, newNet    decimal.Decimal
	baseBurn, newBurn  decimal.Decimal
	baseRunway, runway int // runway is not clamped to RunwaySentinel
}

type impactRule struct {
	name    string
	applies func(o scenarioOutcome) bool
	message func(o scenarioOutcome) string
}

// impactRules are evaluated in order and the first match describes the scenario.
var impactRules = []impactRule{
	{
		name: "profitable",
		applies: func(o scenarioOutcome) bool {
			return o.newNet.GreaterThan(o.baseNet) && o.newNet.IsPositive() && !o.baseNet.IsPositive()
		},
		message: func(o scenarioOutcome) string {
			return fmt.Sprintf("This scenario makes you profitable with $%s positive flow!", formatAmount(o.newNet))
		},
	},
	{
		name:    "improved",
		applies: func(o scenarioOutcome) bool { return o.newNet.GreaterThan(o.baseNet) },
		message: func(o scenarioOutcome) string {
			return fmt.Sprintf("This scenario improves your monthly cash flow by $%s!", formatAmount(o.newNet.Sub(o.baseNet)))
		},
	},
	{
		name: "runway_reduced",
		applies: func(o scenarioOutcome) bool {
			return o.newBurn.GreaterThan(o.baseBurn) && o.baseRunway > o.runway && o.baseRunway < RunwaySentinel
		},
		message: func(o scenarioOutcome) string {
			return fmt.Sprintf("This scenario reduces your runway by %d months.", o.baseRunway-o.runway)
		},
	},
	{
		name:    "burn_increased",
		applies: func(o scenarioOutcome) bool { return o.newBurn.GreaterThan(o.baseBurn) },
		message: func(o scenarioOutcome) string {
			return fmt.Sprintf("This scenario increases your monthly burn by $%s.", formatAmount(o.newBurn.Sub(o.baseBurn)))
		},
	},
	{
		name:    "burn_decreased",
		applies: func(o scenarioOutcome) bool { return o.newBurn.LessThan(o.baseBurn) },
		message: func(o scenarioOutcome) string {
			return fmt.Sprintf("This scenario extends your runway or saves you $%s monthly!", formatAmount(o.baseBurn.Sub(o.newBurn)))
		},
	},
	{
		name:    "unchanged",
		applies: func(scenarioOutcome) bool { return true },
		message: func(scenarioOutcome) string { return "This scenario maintains your current financial trajectory." },
	},
}

func describeImpact(o scenarioOutcome) string {
	for _, r := range impactRules {
		if r.applies(o) {
			return r.message(o)
		}
	}
	return ""
}

// SimulateWhatIf applies a scenario to this month's income and expenses and
// projects the resulting burn and runway. Burn is the magnitude of a negative
// net flow; a positive flow burns nothing.
func SimulateWhatIf(summary domain.CashFlowSummary, scenario domain.WhatIfScenario, now time.Time) domain.WhatIfResult {
	hiringCost := scenario.AvgSalary.Mul(decimal.NewFromInt(int64(scenario.HireCount)))
	marketingDelta := summary.TotalExpenses.Mul(pct(scenario.MarketingChangePct))
	otherDelta := summary.TotalExpenses.Mul(pct(scenario.OtherExpenseChangePct))
	revenueDelta := summary.TotalIncome.Mul(pct(scenario.RevenueChangePct))

	newIncome := summary.TotalIncome.Add(revenueDelta)
	newExpenses := summary.TotalExpenses.Add(hiringCost).Add(marketingDelta).Add(otherDelta)
	newNet := newIncome.Sub(newExpenses)
	newBurn := decimal.Max(decimal.Zero, newNet.Neg())

	runway := runwayMonths(summary.CurrentBalance, newBurn)
	clamped := min(runway, RunwaySentinel)

	var cashOut *time.Time
	if newBurn.IsPositive() {
		d := now.AddDate(0, 0, clamped*daysPerMonth)
		cashOut = &d
	}

	return domain.WhatIfResult{
		NewIncome:   newIncome,
		NewExpenses: newExpenses,
		NewBurnRate: roundHalfUp(newBurn),
		NewRunway:   clamped,
		CashOutDate: cashOut,
		ImpactSummary: describeImpact(scenarioOutcome{
			baseNet:    summary.NetCashFlow,
			newNet:     newNet,
			baseBurn:   summary.BurnRate,
			newBurn:    newBurn,
			baseRunway: summary.RunwayMonths,
			runway:     runway,
		}),
		NewNetCashFlow: roundHalfUp(newNet),
	}
}
