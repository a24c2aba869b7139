package cashflow

import (
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	drawImpactFactor = decimal.RequireFromString(founderDrawImpactFactor)
	drawWarningShare = decimal.RequireFromString(founderDrawWarningShare)
)

const founderDrawWarning = "Founder draws are significantly reducing your runway. Consider reducing personal withdrawals."

// FounderDrawImpact estimates the runway months consumed by founder draws,
// scaled by founderDrawImpactFactor.
func FounderDrawImpact(transactions []domain.Transaction, summary domain.CashFlowSummary, now time.Time) domain.FounderDrawImpact {
	window := newBurnWindow(now)

	var total, recent decimal.Decimal
	for _, t := range transactions {
		if !t.IsFounderDrawSpend() {
			continue
		}
		total = total.Add(t.Amount)
		if window.contains(t) {
			recent = recent.Add(t.Amount)
		}
	}
	average := recent.Div(burnMonths)

	impact := domain.FounderDrawImpact{
		TotalDraws:         total,
		MonthlyDrawAverage: average,
	}
	if summary.BurnRate.IsPositive() {
		months := average.Div(summary.BurnRate).
			Mul(decimal.NewFromInt(int64(summary.RunwayMonths))).
			Mul(drawImpactFactor)
		impact.RunwayImpact = int(roundHalfUp(months).IntPart())
	}
	if average.GreaterThan(summary.BurnRate.Mul(drawWarningShare)) {
		impact.Warning = founderDrawWarning
	}
	return impact
}
