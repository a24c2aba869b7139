package cashflow

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var spikeRatio = decimal.RequireFromString(expenseSpikeRatio)

// PanicAlerts detects urgent conditions: critically low runway, the last two
// history months both losing money, and a month-over-month expense spike.
// Alerts are stamped with now.
func PanicAlerts(summary domain.CashFlowSummary, history []domain.MonthlyData, now time.Time) []domain.PanicAlert {
	alerts := []domain.PanicAlert{}
	newAlert := func(id string, kind domain.AlertType, severity domain.Severity, title, message string) domain.PanicAlert {
		return domain.PanicAlert{ID: id, Type: kind, Title: title, Message: message, Severity: severity, CreatedAt: now}
	}

	if runway := summary.RunwayMonths; runway <= criticalRunwayMonths {
		alerts = append(alerts, newAlert("runway-critical", domain.AlertRunwayCritical, domain.SeverityCritical,
			"Critical: Running Out of Money",
			fmt.Sprintf("You only have %d %s of cash left. Take immediate action.", runway, plural(runway, "month"))))
	}

	if len(history) < 2 {
		return alerts
	}
	prev, cur := history[len(history)-2], history[len(history)-1]

	if prev.Expenses.GreaterThan(prev.Income) && cur.Expenses.GreaterThan(cur.Income) {
		alerts = append(alerts, newAlert("consecutive-loss", domain.AlertConsecutiveLoss, domain.SeverityWarning,
			"Two Months of Losses",
			"Your expenses have exceeded income for two consecutive months. Review spending patterns."))
	}

	if prev.Expenses.IsPositive() && cur.Expenses.GreaterThan(prev.Expenses.Mul(spikeRatio)) {
		increase := roundToInt(cur.Expenses.Sub(prev.Expenses).Div(prev.Expenses).Mul(hundred).InexactFloat64())
		alerts = append(alerts, newAlert("expense-spike", domain.AlertExpenseSpike, domain.SeverityWarning,
			"Spending Spike Detected",
			fmt.Sprintf("Your expenses increased by %d%% this month. Make sure this was intentional.", increase)))
	}

	return alerts
}

// ActiveAlerts returns the alerts whose IDs are not in dismissedIDs.
// The input slice is left untouched.
func ActiveAlerts(alerts []domain.PanicAlert, dismissedIDs []string) []domain.PanicAlert {
	active := make([]domain.PanicAlert, 0, len(alerts))
	for _, a := range alerts {
		if slices.Contains(dismissedIDs, a.ID) {
			continue
		}
		active = append(active, a)
	}
	return active
}
