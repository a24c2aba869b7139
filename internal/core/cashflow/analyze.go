package cashflow

import (
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// Options tunes a dashboard analysis pass.
type Options struct {
	HistoryMonths     int
	MinRunwayMonths   int
	ForecastMonths    int
	Taxonomy          Taxonomy
	DismissedAlertIDs []string
}

// DefaultOptions returns the options used when the caller has no preferences.
func DefaultOptions() Options {
	return Options{
		HistoryMonths:   DefaultHistoryMonths,
		MinRunwayMonths: DefaultMinRunwayMonths,
		ForecastMonths:  DefaultForecastMonths,
		Taxonomy:        DefaultTaxonomy(),
	}
}

// Analyze computes every dashboard view from one set of inputs and a single now.
func Analyze(transactions []domain.Transaction, business domain.BusinessConfig, now time.Time, opts Options) domain.Dashboard {
	history := MonthlyHistory(transactions, business.StartingBalance, opts.HistoryMonths, now)
	summary := Summarize(transactions, business.StartingBalance, now)

	burn := BurnBreakdown(transactions, opts.Taxonomy, now)
	stability := IncomeStability(transactions, history)
	killers := SilentExpenseKillers(transactions, now)

	return domain.Dashboard{
		AsOf:          now,
		Currency:      business.Currency,
		Summary:       summary,
		History:       history,
		Health:        HealthScore(summary, history),
		SafeToSpend:   SafeToSpend(summary, opts.MinRunwayMonths),
		Burn:          burn,
		Stability:     stability,
		Insights:      Insights(summary, transactions, now),
		CFOInsights:   CFOInsights(summary, burn, stability),
		Alerts:        ActiveAlerts(PanicAlerts(summary, history, now), opts.DismissedAlertIDs),
		SilentKillers: killers,
		WeeklyActions: WeeklyActions(summary, burn, killers),
		Forecast:      ProjectCash(summary.CurrentBalance, summary.TotalIncome, summary.BurnRate, opts.ForecastMonths, now),
		Experiments:   Experiments(transactions),
		FounderDraws:  FounderDrawImpact(transactions, summary, now),
	}
}
