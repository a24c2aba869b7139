package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction brings cash in or takes it out.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// BurnCategory classifies an expense by necessity.
type BurnCategory string

const (
	BurnSurvival BurnCategory = "survival"
	BurnGrowth   BurnCategory = "growth"
	BurnWaste    BurnCategory = "waste"
)

// RecurringFrequency is only meaningful when a transaction is recurring.
type RecurringFrequency string

const (
	FrequencyWeekly  RecurringFrequency = "weekly"
	FrequencyMonthly RecurringFrequency = "monthly"
	FrequencyYearly  RecurringFrequency = "yearly"
)

// Well-known category tags referenced by the analysis rules.
const (
	CategorySoftware    = "software"
	CategoryFounderDraw = "founder_draw"
)

// Transaction is a single, immutable cash event supplied by the caller.
// Amount is always a magnitude; the cash effect comes from Kind.
type Transaction struct {
	ID                 string             `json:"id"`
	Kind               TransactionKind    `json:"type"`
	Amount             decimal.Decimal    `json:"amount"` // Non-negative magnitude
	Date               time.Time          `json:"date"`   // Calendar date, time of day is ignored
	Category           string             `json:"category"`
	Description        string             `json:"description"`
	IsRecurring        bool               `json:"isRecurring"`
	RecurringFrequency RecurringFrequency `json:"recurringFrequency,omitempty"`
	BurnCategory       BurnCategory       `json:"burnCategory,omitempty"` // Expense only
	IsExperiment       bool               `json:"isExperiment"`           // Expense only
	ExperimentNotes    string             `json:"experimentNotes,omitempty"`
	IsFounderDraw      bool               `json:"isFounderDraw"` // Expense only
}

// IsIncome reports whether the transaction adds cash.
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense reports whether the transaction removes cash.
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// ExplicitBurnCategory returns the caller-assigned burn category.
// Burn metadata on income is treated as absent.
func (t Transaction) ExplicitBurnCategory() (BurnCategory, bool) {
	if !t.IsExpense() {
		return "", false
	}
	switch t.BurnCategory {
	case BurnSurvival, BurnGrowth, BurnWaste:
		return t.BurnCategory, true
	}
	return "", false
}

// IsExperimentSpend reports whether the transaction is an expense flagged as an experiment.
func (t Transaction) IsExperimentSpend() bool {
	return t.IsExpense() && t.IsExperiment
}

// IsFounderDrawSpend reports whether the transaction is a founder withdrawal.
func (t Transaction) IsFounderDrawSpend() bool {
	return t.IsExpense() && (t.IsFounderDraw || t.Category == CategoryFounderDraw)
}

// Validate checks the invariants the analysis engine relies on.
func (t Transaction) Validate() error {
	switch t.Kind {
	case KindIncome, KindExpense:
	default:
		return fmt.Errorf("%w: unknown transaction type '%s' for transaction %s", apperrors.ErrValidation, t.Kind, t.ID)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must be non-negative for transaction %s", apperrors.ErrValidation, t.ID)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required for transaction %s", apperrors.ErrValidation, t.ID)
	}
	switch t.RecurringFrequency {
	case "", FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
	default:
		return fmt.Errorf("%w: unknown recurring frequency '%s' for transaction %s", apperrors.ErrValidation, t.RecurringFrequency, t.ID)
	}
	switch t.BurnCategory {
	case "", BurnSurvival, BurnGrowth, BurnWaste:
	default:
		return fmt.Errorf("%w: unknown burn category '%s' for transaction %s", apperrors.ErrValidation, t.BurnCategory, t.ID)
	}
	return nil
}
