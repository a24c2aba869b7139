package dto

import (
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for transaction dates and asOf.
const DateLayout = "2006-01-02"

// BusinessRequest is the business profile sent with every analysis request.
type BusinessRequest struct {
	Name                 string          `json:"name"`
	Type                 string          `json:"type" binding:"omitempty,oneof=service product saas retail other"`
	Currency             string          `json:"currency" binding:"omitempty,uppercase,len=3"`
	StartingBalance      decimal.Decimal `json:"startingBalance" swaggertype:"number"`
	MonthlyFixedExpenses decimal.Decimal `json:"monthlyFixedExpenses" binding:"gte=0" swaggertype:"number"`
}

// TransactionRequest is a single ledger entry. Amount is a non-negative
// magnitude; Type decides whether it adds or removes cash.
type TransactionRequest struct {
	ID                 string          `json:"id"`
	Type               string          `json:"type" binding:"required,oneof=income expense"`
	Amount             decimal.Decimal `json:"amount" binding:"gte=0" swaggertype:"number"`
	Date               string          `json:"date" binding:"required,datetime=2006-01-02"`
	Category           string          `json:"category" binding:"required"`
	Description        string          `json:"description"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringFrequency string          `json:"recurringFrequency" binding:"omitempty,oneof=weekly monthly yearly"`
	BurnCategory       string          `json:"burnCategory" binding:"omitempty,oneof=survival growth waste"`
	IsExperiment       bool            `json:"isExperiment"`
	ExperimentNotes    string          `json:"experimentNotes"`
	IsFounderDraw      bool            `json:"isFounderDraw"`
}

// LedgerRequest carries the inputs shared by every analysis endpoint.
type LedgerRequest struct {
	Business     BusinessRequest      `json:"business"`
	Transactions []TransactionRequest `json:"transactions" binding:"dive"`
}

// DashboardRequest asks for the full dashboard.
type DashboardRequest struct {
	LedgerRequest
	MinRunwayMonths   *int     `json:"minRunwayMonths,omitempty" binding:"omitempty,gte=0"`
	DismissedAlertIDs []string `json:"dismissedAlertIds"`
}

// ScenarioRequest describes a what-if change. Percentages are whole percents.
type ScenarioRequest struct {
	HireCount       int             `json:"hireCount" binding:"gte=0"`
	AvgSalary       decimal.Decimal `json:"avgSalary" binding:"gte=0" swaggertype:"number"`
	MarketingChange float64         `json:"marketingChange"`
	RevenueChange   float64         `json:"revenueChange"`
	ExpenseChange   float64         `json:"expenseChange"`
}

// WhatIfRequest asks for a scenario simulation against the ledger.
type WhatIfRequest struct {
	LedgerRequest
	Scenario ScenarioRequest `json:"scenario"`
}

// ForecastRequest asks for a cash projection from the ledger.
type ForecastRequest struct {
	LedgerRequest
}
