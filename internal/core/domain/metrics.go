package domain

import (
	"github.com/shopspring/decimal"
)

// CashFlowSummary is the base snapshot every other view is derived from.
type CashFlowSummary struct {
	CurrentBalance decimal.Decimal `json:"currentBalance" swaggertype:"string"`
	TotalIncome    decimal.Decimal `json:"totalIncome" swaggertype:"string"`   // Current calendar month only
	TotalExpenses  decimal.Decimal `json:"totalExpenses" swaggertype:"string"` // Current calendar month only
	NetCashFlow    decimal.Decimal `json:"netCashFlow" swaggertype:"string"`
	BurnRate       decimal.Decimal `json:"burnRate" swaggertype:"string"` // Trailing three-month average expense
	RunwayMonths   int             `json:"runwayMonths"`
}

// MonthlyData is one calendar month of history or one projected month.
type MonthlyData struct {
	Key      string          `json:"key"`   // YYYY-MM
	Month    string          `json:"month"` // Short month label, e.g. "Jan"
	Income   decimal.Decimal `json:"income" swaggertype:"string"`
	Expenses decimal.Decimal `json:"expenses" swaggertype:"string"`
	Balance  decimal.Decimal `json:"balance" swaggertype:"string"`
	// ProjectedBalance is the unclamped balance of a forecast month. Nil for history.
	ProjectedBalance *decimal.Decimal `json:"projectedBalance,omitempty" swaggertype:"string"`
}

// HealthStatus bands a health score.
type HealthStatus string

const (
	HealthCritical HealthStatus = "critical"
	HealthWarning  HealthStatus = "warning"
	HealthModerate HealthStatus = "moderate"
	HealthHealthy  HealthStatus = "healthy"
)

// HealthFactors holds the rounded sub-scores that make up a health score.
type HealthFactors struct {
	BalanceFactor       int `json:"balanceFactor"`
	BurnRateFactor      int `json:"burnRateFactor"`
	RunwayFactor        int `json:"runwayFactor"`
	IncomeTrendFactor   int `json:"incomeTrendFactor"`
	ExpenseGrowthFactor int `json:"expenseGrowthFactor"`
}

// CashHealthScore is a 0-100 composite view of financial health.
type CashHealthScore struct {
	Score       int           `json:"score"`
	Status      HealthStatus  `json:"status"`
	Explanation string        `json:"explanation"`
	ActionHint  string        `json:"actionHint"`
	Factors     HealthFactors `json:"factors"`
}

// SafeToSpend is the discretionary amount available while protecting a minimum runway.
type SafeToSpend struct {
	Amount             decimal.Decimal `json:"amount" swaggertype:"string"`
	Percentage         int             `json:"percentage"` // Of current balance
	Explanation        string          `json:"explanation"`
	MinRunwayProtected int             `json:"minRunwayProtected"` // Months
}

// BurnBreakdown splits the monthly burn into survival, growth and waste.
type BurnBreakdown struct {
	SurvivalBurn    decimal.Decimal `json:"survivalBurn" swaggertype:"string"`
	GrowthBurn      decimal.Decimal `json:"growthBurn" swaggertype:"string"`
	WasteBurn       decimal.Decimal `json:"wasteBurn" swaggertype:"string"`
	TotalBurn       decimal.Decimal `json:"totalBurn" swaggertype:"string"`
	Recommendations []string        `json:"recommendations"`
}

// IncomeTrend is the direction of recent monthly income.
type IncomeTrend string

const (
	TrendIncreasing IncomeTrend = "increasing"
	TrendStable     IncomeTrend = "stable"
	TrendDecreasing IncomeTrend = "decreasing"
)

// IncomeStability describes how predictable income is.
type IncomeStability struct {
	IsStable            bool        `json:"isStable"`
	VolatilityScore     int         `json:"volatilityScore"` // 0-100, lower is more stable
	RecurringPercentage int         `json:"recurringPercentage"`
	Warning             string      `json:"warning,omitempty"`
	Trend               IncomeTrend `json:"trend"`
}
