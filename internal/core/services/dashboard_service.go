package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/cashflow"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/mapping"
)

// MaxForecastMonths bounds the forecast horizon a caller may request.
const MaxForecastMonths = 60

// dashboardService implements the DashboardSvcFacade interface
type dashboardService struct {
	BaseService
	clock   func() time.Time
	options cashflow.Options
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithClock sets the clock used when a request does not pin asOf.
func WithClock(clock func() time.Time) DashboardServiceOption {
	return func(s *dashboardService) {
		s.clock = clock
	}
}

// WithAnalysisOptions replaces the default analysis options.
func WithAnalysisOptions(opts cashflow.Options) DashboardServiceOption {
	return func(s *dashboardService) {
		s.options = opts
	}
}

// NewDashboardService creates a new dashboard service with the provided options
func NewDashboardService(options ...DashboardServiceOption) portssvc.DashboardSvcFacade {
	svc := &dashboardService{
		clock:   time.Now,
		options: cashflow.DefaultOptions(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure dashboardService implements the DashboardSvcFacade interface
var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) resolveNow(asOf time.Time) time.Time {
	if asOf.IsZero() {
		return s.clock().UTC()
	}
	return asOf
}

// loadLedger converts and validates the business profile and transactions of a request.
func (s *dashboardService) loadLedger(ctx context.Context, req dto.LedgerRequest) (domain.BusinessConfig, []domain.Transaction, error) {
	business, err := mapping.ToDomainBusiness(req.Business)
	if err != nil {
		s.LogError(ctx, err, "Invalid business profile", slog.String("business", req.Business.Name))
		return domain.BusinessConfig{}, nil, err
	}
	txns, err := mapping.ToDomainTransactions(req.Transactions)
	if err != nil {
		s.LogError(ctx, err, "Invalid transactions", slog.Int("transaction_count", len(req.Transactions)))
		return domain.BusinessConfig{}, nil, err
	}
	return business, txns, nil
}

// Dashboard computes every dashboard view in one pass
func (s *dashboardService) Dashboard(ctx context.Context, req dto.DashboardRequest, asOf time.Time) (*domain.Dashboard, error) {
	opts := s.options
	if req.MinRunwayMonths != nil {
		if *req.MinRunwayMonths < 0 {
			err := fmt.Errorf("%w: minRunwayMonths must be non-negative", apperrors.ErrValidation)
			s.LogError(ctx, err, "Invalid dashboard request", slog.Int("min_runway_months", *req.MinRunwayMonths))
			return nil, err
		}
		opts.MinRunwayMonths = *req.MinRunwayMonths
	}
	opts.DismissedAlertIDs = req.DismissedAlertIDs

	business, txns, err := s.loadLedger(ctx, req.LedgerRequest)
	if err != nil {
		return nil, err
	}

	now := s.resolveNow(asOf)
	dashboard := cashflow.Analyze(txns, business, now, opts)

	s.LogInfo(ctx, "Dashboard generated successfully",
		slog.String("business", business.Name),
		slog.String("asOf", now.Format(dto.DateLayout)),
		slog.Int("transaction_count", len(txns)),
		slog.Int("health_score", dashboard.Health.Score),
		slog.Int("alert_count", len(dashboard.Alerts)))
	return &dashboard, nil
}

// WhatIf simulates a scenario against the current month
func (s *dashboardService) WhatIf(ctx context.Context, req dto.WhatIfRequest, asOf time.Time) (*domain.WhatIfResult, error) {
	if req.Scenario.HireCount < 0 || req.Scenario.AvgSalary.IsNegative() {
		err := fmt.Errorf("%w: hire count and salary must be non-negative", apperrors.ErrValidation)
		s.LogError(ctx, err, "Invalid what-if scenario", slog.Int("hire_count", req.Scenario.HireCount))
		return nil, err
	}

	business, txns, err := s.loadLedger(ctx, req.LedgerRequest)
	if err != nil {
		return nil, err
	}

	now := s.resolveNow(asOf)
	summary := cashflow.Summarize(txns, business.StartingBalance, now)
	result := cashflow.SimulateWhatIf(summary, mapping.ToDomainScenario(req.Scenario), now)

	s.LogDebug(ctx, "What-if scenario simulated",
		slog.String("business", business.Name),
		slog.Int("current_runway", summary.RunwayMonths),
		slog.Int("new_runway", result.NewRunway))
	return &result, nil
}

// Forecast projects the cash balance over the given number of months.
// Zero months uses the configured default horizon.
func (s *dashboardService) Forecast(ctx context.Context, req dto.ForecastRequest, months int, asOf time.Time) (*domain.CashProjection, error) {
	if months == 0 {
		months = s.options.ForecastMonths
	}
	if months < 1 || months > MaxForecastMonths {
		err := fmt.Errorf("%w: forecast months must be between 1 and %d", apperrors.ErrValidation, MaxForecastMonths)
		s.LogError(ctx, err, "Invalid forecast horizon", slog.Int("months", months))
		return nil, err
	}

	business, txns, err := s.loadLedger(ctx, req.LedgerRequest)
	if err != nil {
		return nil, err
	}

	now := s.resolveNow(asOf)
	summary := cashflow.Summarize(txns, business.StartingBalance, now)
	projection := &domain.CashProjection{
		AsOf:   now,
		Months: cashflow.ProjectCash(summary.CurrentBalance, summary.TotalIncome, summary.BurnRate, months, now),
	}

	s.LogInfo(ctx, "Forecast generated successfully",
		slog.String("business", business.Name),
		slog.Int("months", months),
		slog.Int("shortfall_month", cashflow.FirstShortfall(projection.Months)))
	return projection, nil
}
