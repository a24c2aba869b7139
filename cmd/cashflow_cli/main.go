package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/cashflow"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/core/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return errors.New("missing command")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	switch args[0] {
	case "report":
		return runReport(ctx, cfg, args[1:], stdout)
	case "whatif":
		return runWhatIf(ctx, cfg, args[1:], stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Cash Flow CLI")
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  cashflow_cli <command> [options] file...")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  report    Print the cash-flow dashboard for one or more ledger files")
	fmt.Fprintln(w, "  whatif    Simulate hires and percentage changes against a ledger file")
	fmt.Fprintln(w, "  help      Show this help message")
	fmt.Fprintln(w, "\nRun 'cashflow_cli <command> -h' for more information on a command.")
}

func newDashboardService(cfg *config.Config) portssvc.DashboardSvcFacade {
	return services.NewServiceContainer(cfg).Dashboard
}

func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	asOf, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -as-of '%s', use YYYY-MM-DD", s)
	}
	return asOf, nil
}

func runReport(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	asOfStr := fs.String("as-of", "", "Analysis date (YYYY-MM-DD), defaults to today")
	minRunway := fs.Int("min-runway", -1, "Months of runway safe-to-spend protects (default from MIN_RUNWAY_MONTHS)")
	asJSON := fs.Bool("json", false, "Print the dashboard as JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		return errors.New("usage: cashflow_cli report [-as-of D] [-min-runway N] [-json] file...")
	}
	asOf, err := parseAsOf(*asOfStr)
	if err != nil {
		return err
	}

	svc := newDashboardService(cfg)
	validate := dto.NewValidator()
	dashboards := make([]*domain.Dashboard, len(files))

	// Each ledger is an independent analysis pass.
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			ledger, err := loadLedger(path, validate)
			if err != nil {
				return err
			}
			req := dto.DashboardRequest{LedgerRequest: ledger}
			if *minRunway >= 0 {
				req.MinRunwayMonths = minRunway
			}
			d, err := svc.Dashboard(gctx, req, asOf)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			dashboards[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, d := range dashboards {
		if *asJSON {
			if err := writeJSON(stdout, dto.ToDashboardResponse(d)); err != nil {
				return err
			}
			continue
		}
		renderReport(stdout, files[i], d)
	}
	return nil
}

func runWhatIf(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("whatif", flag.ContinueOnError)
	asOfStr := fs.String("as-of", "", "Analysis date (YYYY-MM-DD), defaults to today")
	hires := fs.Int("hires", 0, "Number of new hires")
	salary := fs.String("salary", "0", "Average monthly salary per hire")
	marketing := fs.Float64("marketing", 0, "Marketing spend change in percent")
	revenue := fs.Float64("revenue", 0, "Revenue change in percent")
	expenses := fs.Float64("expenses", 0, "Other expense change in percent")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return errors.New("usage: cashflow_cli whatif [-hires N] [-salary X] [-marketing P] [-revenue P] [-expenses P] [-as-of D] file")
	}
	path := fs.Arg(0)
	asOf, err := parseAsOf(*asOfStr)
	if err != nil {
		return err
	}
	avgSalary, err := decimal.NewFromString(*salary)
	if err != nil {
		return fmt.Errorf("invalid -salary '%s': %w", *salary, err)
	}

	ledger, err := loadLedger(path, dto.NewValidator())
	if err != nil {
		return err
	}
	req := dto.WhatIfRequest{
		LedgerRequest: ledger,
		Scenario: dto.ScenarioRequest{
			HireCount:       *hires,
			AvgSalary:       avgSalary,
			MarketingChange: *marketing,
			RevenueChange:   *revenue,
			ExpenseChange:   *expenses,
		},
	}

	result, err := newDashboardService(cfg).WhatIf(ctx, req, asOf)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	renderWhatIf(stdout, ledger.Business.Currency, result)
	return nil
}

// runwayText renders a runway in months, treating the sentinel as "not burning".
func runwayText(months int) string {
	if months >= cashflow.RunwaySentinel {
		return "not burning cash"
	}
	if months == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", months)
}
