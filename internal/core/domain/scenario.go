package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WhatIfScenario describes a speculative change to the current month.
// Percentage changes are expressed as whole percents (10 means +10%).
type WhatIfScenario struct {
	HireCount             int             `json:"hireCount"`
	AvgSalary             decimal.Decimal `json:"avgSalary" swaggertype:"string"`
	MarketingChangePct    float64         `json:"marketingChange"`
	RevenueChangePct      float64         `json:"revenueChange"`
	OtherExpenseChangePct float64         `json:"expenseChange"`
}

// WhatIfResult is the projected outcome of a scenario.
type WhatIfResult struct {
	NewIncome      decimal.Decimal `json:"newIncome" swaggertype:"string"`
	NewExpenses    decimal.Decimal `json:"newExpenses" swaggertype:"string"`
	NewBurnRate    decimal.Decimal `json:"newBurnRate" swaggertype:"string"`
	NewRunway      int             `json:"newRunway"`
	CashOutDate    *time.Time      `json:"cashOutDate"`
	ImpactSummary  string          `json:"impactSummary"`
	NewNetCashFlow decimal.Decimal `json:"newNetCashFlow" swaggertype:"string"`
}

// Experiment is one expense flagged as an experiment.
type Experiment struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
}

// ExperimentSummary aggregates experiment spend.
type ExperimentSummary struct {
	TotalSpend          decimal.Decimal `json:"totalSpend" swaggertype:"string"`
	ExperimentCount     int             `json:"experimentCount"`
	Experiments         []Experiment    `json:"experiments"`
	NoReturnExperiments []string        `json:"noReturnExperiments"`
}

// FounderDrawImpact estimates how much founder withdrawals cost in runway.
type FounderDrawImpact struct {
	TotalDraws         decimal.Decimal `json:"totalDraws" swaggertype:"string"`
	MonthlyDrawAverage decimal.Decimal `json:"monthlyDrawAverage" swaggertype:"string"`
	RunwayImpact       int             `json:"runwayImpact"` // Months
	Warning            string          `json:"warning,omitempty"`
}
