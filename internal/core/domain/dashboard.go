package domain

import "time"

// Dashboard bundles every view computed in one analysis pass.
type Dashboard struct {
	AsOf          time.Time             `json:"asOf"`
	Currency      string                `json:"currency"`
	Summary       CashFlowSummary       `json:"summary"`
	History       []MonthlyData         `json:"history"`
	Health        CashHealthScore       `json:"health"`
	SafeToSpend   SafeToSpend           `json:"safeToSpend"`
	Burn          BurnBreakdown         `json:"burn"`
	Stability     IncomeStability       `json:"stability"`
	Insights      []Insight             `json:"insights"`
	CFOInsights   []CFOInsight          `json:"cfoInsights"`
	Alerts        []PanicAlert          `json:"alerts"`
	SilentKillers []SilentExpenseKiller `json:"silentKillers"`
	WeeklyActions []WeeklyAction        `json:"weeklyActions"`
	Forecast      []MonthlyData         `json:"forecast"`
	Experiments   ExperimentSummary     `json:"experiments"`
	FounderDraws  FounderDrawImpact     `json:"founderDraws"`
}

// CashProjection is a forecast computed on its own, outside a dashboard.
type CashProjection struct {
	AsOf   time.Time     `json:"asOf"`
	Months []MonthlyData `json:"months"`
}
