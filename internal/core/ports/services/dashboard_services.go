package services

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
)

// DashboardSvcFacade runs cash-flow analyses over a caller supplied ledger.
// A zero asOf means "now" according to the service clock.
type DashboardSvcFacade interface {
	// Dashboard computes every dashboard view in one pass
	Dashboard(ctx context.Context, req dto.DashboardRequest, asOf time.Time) (*domain.Dashboard, error)

	// WhatIf simulates a scenario against the current month
	WhatIf(ctx context.Context, req dto.WhatIfRequest, asOf time.Time) (*domain.WhatIfResult, error)

	// Forecast projects the cash balance over the given number of months
	Forecast(ctx context.Context, req dto.ForecastRequest, months int, asOf time.Time) (*domain.CashProjection, error)
}
