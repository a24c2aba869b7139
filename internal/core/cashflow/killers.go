package cashflow

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	softwareLimit  = decimal.NewFromInt(recurringSoftwareLimit)
	softwareSevere = decimal.NewFromInt(recurringSoftwareSevere)
)

// SilentExpenseKillers finds expense categories whose latest month grew more
// than killerMinGrowthPct over the month before it, looking back
// killerLookbackMonths from now, plus every recurring software expense above
// recurringSoftwareLimit. The result is sorted by monthly amount, largest first.
func SilentExpenseKillers(transactions []domain.Transaction, now time.Time) []domain.SilentExpenseKiller {
	byCategory := map[string]map[int]decimal.Decimal{}
	var categories []string
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		offset := monthsAgo(t.Date, now)
		if offset < 0 || offset > killerLookbackMonths {
			continue
		}
		months, ok := byCategory[t.Category]
		if !ok {
			months = map[int]decimal.Decimal{}
			byCategory[t.Category] = months
			categories = append(categories, t.Category)
		}
		months[offset] = months[offset].Add(t.Amount)
	}

	killers := []domain.SilentExpenseKiller{}
	for _, category := range categories {
		if k, ok := growingCategory(category, byCategory[category]); ok {
			killers = append(killers, k)
		}
	}

	for _, t := range transactions {
		if !t.IsExpense() || !t.IsRecurring || t.Category != domain.CategorySoftware || !t.Amount.GreaterThan(softwareLimit) {
			continue
		}
		severity := domain.KillerMedium
		if t.Amount.GreaterThan(softwareSevere) {
			severity = domain.KillerHigh
		}
		killers = append(killers, domain.SilentExpenseKiller{
			ID:               t.ID,
			Description:      "High recurring cost: " + t.Description,
			Category:         t.Category,
			MonthlyAmount:    t.Amount,
			ActionSuggestion: "Review if this subscription is still needed or can be downgraded",
			Severity:         severity,
		})
	}

	sort.SliceStable(killers, func(i, j int) bool {
		return killers[i].MonthlyAmount.GreaterThan(killers[j].MonthlyAmount)
	})
	return killers
}

// growingCategory compares the most recent month with spend against the next
// most recent one.
func growingCategory(category string, months map[int]decimal.Decimal) (domain.SilentExpenseKiller, bool) {
	if len(months) < 2 {
		return domain.SilentExpenseKiller{}, false
	}
	offsets := make([]int, 0, len(months))
	for o := range months {
		offsets = append(offsets, o)
	}
	sort.Ints(offsets)

	current, previous := months[offsets[0]], months[offsets[1]]
	if !previous.IsPositive() || !current.GreaterThan(previous) {
		return domain.SilentExpenseKiller{}, false
	}
	growth := current.Sub(previous).Div(previous).Mul(hundred).InexactFloat64()
	if growth <= killerMinGrowthPct {
		return domain.SilentExpenseKiller{}, false
	}

	return domain.SilentExpenseKiller{
		ID:               category,
		Description:      fmt.Sprintf("%s expenses increased", category),
		Category:         category,
		MonthlyAmount:    current,
		GrowthRate:       growth,
		ActionSuggestion: fmt.Sprintf("Review your %s spending - it grew %d%% last month", category, roundToInt(growth)),
		Severity:         killerSeverity(growth),
	}, true
}

func killerSeverity(growth float64) domain.KillerSeverity {
	switch {
	case growth < killerMediumGrowthPct:
		return domain.KillerLow
	case growth < killerHighGrowthPct:
		return domain.KillerMedium
	default:
		return domain.KillerHigh
	}
}
