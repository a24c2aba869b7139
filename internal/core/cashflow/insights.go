package cashflow

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Insights generates the short observations shown at the top of the dashboard.
func Insights(summary domain.CashFlowSummary, transactions []domain.Transaction, now time.Time) []domain.Insight {
	insights := []domain.Insight{}

	runway := summary.RunwayMonths
	switch {
	case runway <= criticalRunwayMonths:
		insights = append(insights, domain.Insight{
			ID:          "runway-critical",
			Type:        domain.InsightDanger,
			Title:       "Critical: Low Runway",
			Message:     fmt.Sprintf("You have only %d %s of runway left. Consider reducing expenses or raising funds immediately.", runway, plural(runway, "month")),
			ActionLabel: "View Expenses",
		})
	case runway <= warningRunwayMonths:
		insights = append(insights, domain.Insight{
			ID:      "runway-warning",
			Type:    domain.InsightWarning,
			Title:   "Runway Alert",
			Message: fmt.Sprintf("You have %d months of runway. Start planning for your next funding round or revenue growth.", runway),
		})
	}

	if summary.TotalExpenses.GreaterThan(summary.TotalIncome) && summary.TotalIncome.IsPositive() {
		insights = append(insights, domain.Insight{
			ID:          "expense-growth",
			Type:        domain.InsightWarning,
			Title:       "Spending More Than Earning",
			Message:     fmt.Sprintf("Your expenses exceed income by %d%% this month. Review your spending to extend runway.", overspendPct(summary)),
			ActionLabel: "Review Spending",
		})
	}

	if category, share, ok := topExpenseCategory(transactions, now); ok {
		insights = append(insights, domain.Insight{
			ID:      "biggest-expense",
			Type:    domain.InsightInfo,
			Title:   "Top Spending Category",
			Message: fmt.Sprintf("%s accounts for %d%% of your expenses this month.", categoryTitle(category), share),
		})
	}

	if summary.NetCashFlow.IsPositive() {
		insights = append(insights, domain.Insight{
			ID:      "positive-cashflow",
			Type:    domain.InsightSuccess,
			Title:   "Positive Cash Flow",
			Message: "Great news! You're making more than you're spending this month. Keep it up!",
		})
	}

	return insights
}

// overspendPct is how far this month's expenses exceed income, as a whole percent.
func overspendPct(summary domain.CashFlowSummary) int {
	return roundToInt(summary.TotalExpenses.Sub(summary.TotalIncome).Div(summary.TotalIncome).Mul(hundred).InexactFloat64())
}

// topExpenseCategory finds the largest expense category of now's month and
// its share of that month's expenses. Ties go to the category seen first.
func topExpenseCategory(transactions []domain.Transaction, now time.Time) (string, int, bool) {
	totals := map[string]decimal.Decimal{}
	var order []string
	var sum decimal.Decimal
	for _, t := range transactions {
		if !t.IsExpense() || !inMonthOf(t.Date, now) {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		sum = sum.Add(t.Amount)
	}
	if len(order) == 0 || !sum.IsPositive() {
		return "", 0, false
	}

	top := order[0]
	for _, c := range order[1:] {
		if totals[c].GreaterThan(totals[top]) {
			top = c
		}
	}
	return top, roundToInt(totals[top].Div(sum).Mul(hundred).InexactFloat64()), true
}

// categoryTitle turns "office_supplies" into "Office Supplies".
func categoryTitle(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
