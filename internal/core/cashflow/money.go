package cashflow

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	hundred    = decimal.NewFromInt(100)
	half       = decimal.RequireFromString("0.5")
	burnMonths = decimal.NewFromInt(BurnWindowMonths)
)

// roundHalfUp rounds to the nearest integer with halves going toward positive infinity,
// so -2.5 becomes -2 and 2.5 becomes 3.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// roundToInt is roundHalfUp for float ratios and scores.
func roundToInt(f float64) int {
	return int(math.Floor(f + 0.5))
}

func clampFloat(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}

// pct converts a whole-percent float (10 means 10%) to a decimal fraction.
func pct(p float64) decimal.Decimal {
	return decimal.NewFromFloat(p).Div(hundred)
}

// formatAmount renders an amount with en-US digit grouping and at most three
// fraction digits, e.g. 1234.5 -> "1,234.5". No currency symbol is added.
func formatAmount(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", number.Decimal(d.Round(3).InexactFloat64(), number.MaxFractionDigits(3)))
}
