package domain

import (
	"fmt"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BusinessType is a descriptive label for the kind of business.
type BusinessType string

const (
	BusinessService BusinessType = "service"
	BusinessProduct BusinessType = "product"
	BusinessSaaS    BusinessType = "saas"
	BusinessRetail  BusinessType = "retail"
	BusinessOther   BusinessType = "other"
)

// BusinessConfig is the business profile supplied alongside the transactions.
type BusinessConfig struct {
	Name     string       `json:"name"`
	Type     BusinessType `json:"type"`
	Currency string       `json:"currency"` // Label only, never converted
	// StartingBalance is the balance as of now, not at the start of the history.
	StartingBalance      decimal.Decimal `json:"startingBalance"`
	MonthlyFixedExpenses decimal.Decimal `json:"monthlyFixedExpenses"` // Informational
}

// Validate checks the business profile.
func (b BusinessConfig) Validate() error {
	switch b.Type {
	case "", BusinessService, BusinessProduct, BusinessSaaS, BusinessRetail, BusinessOther:
	default:
		return fmt.Errorf("%w: unknown business type '%s'", apperrors.ErrValidation, b.Type)
	}
	if b.MonthlyFixedExpenses.IsNegative() {
		return fmt.Errorf("%w: monthly fixed expenses must be non-negative", apperrors.ErrValidation)
	}
	return nil
}
