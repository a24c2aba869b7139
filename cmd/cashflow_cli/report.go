package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/cashflow_dashboard/internal/core/cashflow"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/utils"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderReport prints a plain-text dashboard.
func renderReport(w io.Writer, source string, d *domain.Dashboard) {
	balance := utils.FormatCurrency(d.Summary.CurrentBalance, d.Currency)
	income := utils.FormatCurrency(d.Summary.TotalIncome, d.Currency)
	expenses := utils.FormatCurrency(d.Summary.TotalExpenses, d.Currency)
	net := utils.FormatCurrency(d.Summary.NetCashFlow, d.Currency)

	fmt.Fprintf(w, "== %s as of %s\n", source, d.AsOf.Format(dto.DateLayout))
	fmt.Fprintf(w, "Balance:        %s\n", balance)
	fmt.Fprintf(w, "This month:     income %s, expenses %s, net %s\n", income, expenses, net)
	fmt.Fprintf(w, "Burn rate:      %s/month (survival %s, growth %s, waste %s)\n",
		utils.FormatCurrency(d.Summary.BurnRate, d.Currency),
		utils.FormatCompactCurrency(d.Burn.SurvivalBurn, d.Currency),
		utils.FormatCompactCurrency(d.Burn.GrowthBurn, d.Currency),
		utils.FormatCompactCurrency(d.Burn.WasteBurn, d.Currency))
	fmt.Fprintf(w, "Runway:         %s\n", runwayText(d.Summary.RunwayMonths))
	fmt.Fprintf(w, "Health:         %d/100 (%s) %s\n", d.Health.Score, d.Health.Status, d.Health.Explanation)
	fmt.Fprintf(w, "Safe to spend:  %s (%d%% of balance)\n", utils.FormatCurrency(d.SafeToSpend.Amount, d.Currency), d.SafeToSpend.Percentage)

	if len(d.Forecast) > 0 {
		points := make([]string, 0, len(d.Forecast))
		for _, m := range d.Forecast {
			points = append(points, m.Month+" "+utils.FormatCompactCurrency(m.Balance, d.Currency))
		}
		fmt.Fprintf(w, "Forecast:       %s\n", strings.Join(points, ", "))
		if month := cashflow.FirstShortfall(d.Forecast); month > 0 {
			fmt.Fprintf(w, "                cash runs out in month %d of the forecast\n", month)
		}
	}

	section(w, "Alerts", len(d.Alerts), func(i int) string {
		a := d.Alerts[i]
		return fmt.Sprintf("[%s] %s: %s", a.Severity, a.Title, a.Message)
	})
	section(w, "Insights", len(d.Insights), func(i int) string {
		in := d.Insights[i]
		return fmt.Sprintf("[%s] %s: %s", in.Type, in.Title, in.Message)
	})
	section(w, "CFO insights", len(d.CFOInsights), func(i int) string {
		in := d.CFOInsights[i]
		return fmt.Sprintf("[%s] %s: %s", in.Priority, in.Title, in.Message)
	})
	section(w, "Silent expense killers", len(d.SilentKillers), func(i int) string {
		k := d.SilentKillers[i]
		return fmt.Sprintf("[%s] %s (%s/month)", k.Severity, k.Description, utils.FormatCurrency(k.MonthlyAmount, d.Currency))
	})
	section(w, "This week", len(d.WeeklyActions), func(i int) string {
		a := d.WeeklyActions[i]
		return fmt.Sprintf("%s (%s)", a.Action, a.Reason)
	})
	fmt.Fprintln(w)
}

func section(w io.Writer, title string, n int, line func(int) string) {
	if n == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for i := range n {
		fmt.Fprintf(w, "  - %s\n", line(i))
	}
}

// renderWhatIf prints a scenario outcome.
func renderWhatIf(w io.Writer, currency string, r *domain.WhatIfResult) {
	fmt.Fprintf(w, "Income:         %s\n", utils.FormatCurrency(r.NewIncome, currency))
	fmt.Fprintf(w, "Expenses:       %s\n", utils.FormatCurrency(r.NewExpenses, currency))
	fmt.Fprintf(w, "Net cash flow:  %s\n", utils.FormatCurrency(r.NewNetCashFlow, currency))
	fmt.Fprintf(w, "Burn rate:      %s/month\n", utils.FormatCurrency(r.NewBurnRate, currency))
	fmt.Fprintf(w, "Runway:         %s\n", runwayText(r.NewRunway))
	if r.CashOutDate != nil {
		fmt.Fprintf(w, "Cash out:       %s\n", r.CashOutDate.Format(dto.DateLayout))
	}
	fmt.Fprintf(w, "Impact:         %s\n", r.ImpactSummary)
}
