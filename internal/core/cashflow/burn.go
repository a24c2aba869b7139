package cashflow

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	growthHeavy   = decimal.RequireFromString(growthHeavyShare)
	survivalHeavy = decimal.RequireFromString(survivalHeavyShare)
)

// Taxonomy maps expense categories without an explicit burn category onto
// survival or growth. Anything not listed is growth.
type Taxonomy struct {
	Survival []string `json:"survival"`
	Growth   []string `json:"growth"`
}

// DefaultTaxonomy returns the built-in category lists.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Survival: []string{"rent", "salary", "utilities", "legal"},
		Growth:   []string{"marketing", "software", "equipment"},
	}
}

// Classify picks the burn category of an expense. An explicit burn category
// wins, then the survival and growth lists, then founder draws count as
// survival.
func (tx Taxonomy) Classify(t domain.Transaction) domain.BurnCategory {
	if c, ok := t.ExplicitBurnCategory(); ok {
		return c
	}
	switch {
	case slices.Contains(tx.Survival, t.Category):
		return domain.BurnSurvival
	case slices.Contains(tx.Growth, t.Category):
		return domain.BurnGrowth
	case t.IsFounderDraw:
		return domain.BurnSurvival
	default:
		return domain.BurnGrowth
	}
}

// BurnBreakdown splits the trailing three-month burn into monthly survival,
// growth and waste rates. Buckets are rounded to whole amounts and TotalBurn
// is their sum.
func BurnBreakdown(transactions []domain.Transaction, taxonomy Taxonomy, now time.Time) domain.BurnBreakdown {
	window := newBurnWindow(now)

	var survival, growth, waste decimal.Decimal
	for _, t := range transactions {
		if !t.IsExpense() || !window.contains(t) {
			continue
		}
		monthly := t.Amount.Div(burnMonths)
		switch taxonomy.Classify(t) {
		case domain.BurnSurvival:
			survival = survival.Add(monthly)
		case domain.BurnWaste:
			waste = waste.Add(monthly)
		default:
			growth = growth.Add(monthly)
		}
	}

	total := survival.Add(growth).Add(waste)
	recommendations := []string{}
	if waste.IsPositive() {
		recommendations = append(recommendations,
			fmt.Sprintf("Eliminating waste expenses could save you $%s/month", formatAmount(roundHalfUp(waste))))
	}
	if growth.GreaterThan(total.Mul(growthHeavy)) {
		recommendations = append(recommendations, "Consider scaling back growth spending if runway is a concern")
	}
	if survival.GreaterThan(total.Mul(survivalHeavy)) {
		recommendations = append(recommendations, "High fixed costs - look for ways to reduce overhead")
	}

	survival, growth, waste = roundHalfUp(survival), roundHalfUp(growth), roundHalfUp(waste)
	return domain.BurnBreakdown{
		SurvivalBurn:    survival,
		GrowthBurn:      growth,
		WasteBurn:       waste,
		TotalBurn:       survival.Add(growth).Add(waste),
		Recommendations: recommendations,
	}
}
