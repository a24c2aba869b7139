package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainTransaction(t *testing.T) {
	req := dto.TransactionRequest{
		ID:                 "t-1",
		Type:               "expense",
		Amount:             decimal.NewFromInt(250),
		Date:               "2026-10-02",
		Category:           "software",
		Description:        "CI minutes",
		IsRecurring:        true,
		RecurringFrequency: "monthly",
		BurnCategory:       "growth",
	}

	got, err := mapping.ToDomainTransaction(req, 0)

	require.NoError(t, err)
	assert.Equal(t, "t-1", got.ID)
	assert.Equal(t, domain.KindExpense, got.Kind)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, domain.FrequencyMonthly, got.RecurringFrequency)
	assert.Equal(t, domain.BurnGrowth, got.BurnCategory)
}

func TestToDomainTransaction_GeneratesStableID(t *testing.T) {
	req := dto.TransactionRequest{Type: "income", Amount: decimal.NewFromInt(900), Date: "2026-10-02", Category: "sales"}

	first, err := mapping.ToDomainTransaction(req, 3)
	require.NoError(t, err)
	again, err := mapping.ToDomainTransaction(req, 3)
	require.NoError(t, err)
	moved, err := mapping.ToDomainTransaction(req, 4)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(first.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, first.ID, again.ID)
	assert.NotEqual(t, first.ID, moved.ID)
}

func TestToDomainTransactions_SameLedgerSameIDs(t *testing.T) {
	reqs := []dto.TransactionRequest{
		{Type: "expense", Amount: decimal.NewFromInt(49), Date: "2026-10-02", Category: "software", IsRecurring: true, RecurringFrequency: "monthly"},
		{Type: "expense", Amount: decimal.NewFromInt(49), Date: "2026-10-02", Category: "software", IsRecurring: true, RecurringFrequency: "monthly"},
	}

	first, err := mapping.ToDomainTransactions(reqs)
	require.NoError(t, err)
	second, err := mapping.ToDomainTransactions(reqs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first[0].ID, first[1].ID)
}

func TestToDomainTransaction_DropsFrequencyWhenNotRecurring(t *testing.T) {
	got, err := mapping.ToDomainTransaction(dto.TransactionRequest{ID: "x", Type: "income", Date: "2026-10-02", Category: "sales", RecurringFrequency: "weekly"}, 0)

	require.NoError(t, err)
	assert.Empty(t, got.RecurringFrequency)
}

func TestToDomainTransaction_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  dto.TransactionRequest
		msg  string
	}{
		{"bad date", dto.TransactionRequest{ID: "a", Type: "income", Date: "14/10/2026"}, "invalid date"},
		{"negative amount", dto.TransactionRequest{ID: "b", Type: "expense", Date: "2026-10-02", Amount: decimal.NewFromInt(-1)}, "non-negative"},
		{"unknown type", dto.TransactionRequest{ID: "c", Type: "transfer", Date: "2026-10-02"}, "unknown transaction type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapping.ToDomainTransaction(tt.req, 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestToDomainTransactions_ReportsIndex(t *testing.T) {
	_, err := mapping.ToDomainTransactions([]dto.TransactionRequest{
		{ID: "ok", Type: "income", Date: "2026-10-02"},
		{ID: "bad", Type: "income", Date: "nope"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "transaction 1")
}

func TestToDomainBusiness(t *testing.T) {
	got, err := mapping.ToDomainBusiness(dto.BusinessRequest{Name: "Acme", StartingBalance: decimal.NewFromInt(5000)})

	require.NoError(t, err)
	assert.Equal(t, domain.BusinessOther, got.Type)
	assert.Equal(t, "USD", got.Currency)
	assert.True(t, got.StartingBalance.Equal(decimal.NewFromInt(5000)))

	_, err = mapping.ToDomainBusiness(dto.BusinessRequest{Type: "charity"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToDomainScenario(t *testing.T) {
	got := mapping.ToDomainScenario(dto.ScenarioRequest{HireCount: 2, AvgSalary: decimal.NewFromInt(4000), MarketingChange: 10, RevenueChange: -5, ExpenseChange: 3})

	assert.Equal(t, 2, got.HireCount)
	assert.True(t, got.AvgSalary.Equal(decimal.NewFromInt(4000)))
	assert.Equal(t, 10.0, got.MarketingChangePct)
	assert.Equal(t, -5.0, got.RevenueChangePct)
	assert.Equal(t, 3.0, got.OtherExpenseChangePct)
}
