package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/google/uuid"
)

const defaultCurrency = "USD"

// ToDomainBusiness converts a business request to a validated domain BusinessConfig.
// Missing type and currency default to "other" and USD.
func ToDomainBusiness(req dto.BusinessRequest) (domain.BusinessConfig, error) {
	b := domain.BusinessConfig{
		Name:                 req.Name,
		Type:                 domain.BusinessType(req.Type),
		Currency:             req.Currency,
		StartingBalance:      req.StartingBalance,
		MonthlyFixedExpenses: req.MonthlyFixedExpenses,
	}
	if b.Type == "" {
		b.Type = domain.BusinessOther
	}
	if b.Currency == "" {
		b.Currency = defaultCurrency
	}
	if err := b.Validate(); err != nil {
		return domain.BusinessConfig{}, err
	}
	return b, nil
}

// ToDomainTransaction converts the transaction request at position index of
// its ledger to a validated domain Transaction. Requests without an ID get one
// derived from the index and their contents, so a resubmitted ledger keeps its IDs.
func ToDomainTransaction(req dto.TransactionRequest, index int) (domain.Transaction, error) {
	id := req.ID
	if id == "" {
		id = derivedTransactionID(req, index)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: invalid date '%s' for transaction %s", apperrors.ErrValidation, req.Date, id)
	}

	t := domain.Transaction{
		ID:                 id,
		Kind:               domain.TransactionKind(req.Type),
		Amount:             req.Amount,
		Date:               date,
		Category:           req.Category,
		Description:        req.Description,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: domain.RecurringFrequency(req.RecurringFrequency),
		BurnCategory:       domain.BurnCategory(req.BurnCategory),
		IsExperiment:       req.IsExperiment,
		ExperimentNotes:    req.ExperimentNotes,
		IsFounderDraw:      req.IsFounderDraw,
	}
	if !t.IsRecurring {
		t.RecurringFrequency = ""
	}
	if err := t.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	return t, nil
}

func derivedTransactionID(req dto.TransactionRequest, index int) string {
	name := fmt.Sprintf("%d|%s|%s|%s|%s", index, req.Type, req.Date, req.Amount.String(), req.Category)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// ToDomainTransactions converts every request, stopping at the first invalid one.
func ToDomainTransactions(reqs []dto.TransactionRequest) ([]domain.Transaction, error) {
	txns := make([]domain.Transaction, 0, len(reqs))
	for i, req := range reqs {
		t, err := ToDomainTransaction(req, i)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// ToDomainScenario converts a what-if request to a domain scenario.
func ToDomainScenario(req dto.ScenarioRequest) domain.WhatIfScenario {
	return domain.WhatIfScenario{
		HireCount:             req.HireCount,
		AvgSalary:             req.AvgSalary,
		MarketingChangePct:    req.MarketingChange,
		RevenueChangePct:      req.RevenueChange,
		OtherExpenseChangePct: req.ExpenseChange,
	}
}
