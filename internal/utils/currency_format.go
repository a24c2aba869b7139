package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"CAD": "C$",
	"AUD": "A$",
}

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// CurrencySymbol returns the display symbol for a currency code. Unknown
// codes are shown as the code followed by a space.
func CurrencySymbol(currency string) string {
	code := strings.ToUpper(currency)
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	if code == "" {
		return currencySymbols["USD"]
	}
	return code + " "
}

// FormatCurrency renders an amount with two decimals and en-US grouping.
// Example: 1234.5 USD returns "$1,234.50", -80 EUR returns "-€80.00"
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return withSymbol(amount, currency, func(abs decimal.Decimal) string {
		return group(abs.Round(2), 2, 2)
	})
}

// FormatCompactCurrency shortens large amounts for summaries.
// Example: 12500 USD returns "$12.5K", 2000000 GBP returns "£2M", 950 returns "$950"
func FormatCompactCurrency(amount decimal.Decimal, currency string) string {
	return withSymbol(amount, currency, func(abs decimal.Decimal) string {
		switch {
		case abs.GreaterThanOrEqual(million):
			return group(abs.Div(million).Round(1), 0, 1) + "M"
		case abs.GreaterThanOrEqual(thousand):
			return group(abs.Div(thousand).Round(1), 0, 1) + "K"
		default:
			return group(abs.Round(0), 0, 0)
		}
	})
}

func withSymbol(amount decimal.Decimal, currency string, format func(decimal.Decimal) string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + CurrencySymbol(currency) + format(amount.Abs())
}

func group(d decimal.Decimal, minFraction, maxFraction int) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(minFraction),
		number.MaxFractionDigits(maxFraction)))
}
