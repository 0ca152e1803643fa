// Package renderer turns the structured earnings report into markdown for
// terminal display or publishing. It is a consumer of the report object,
// never of the ledger itself.
package renderer

import (
	"fmt"
	"strings"

	"github.com/finlens/earnings"
)

// Namer resolves a display name for a symbol. A nil Namer leaves symbols as
// they appear in the ledger.
type Namer interface {
	Resolve(symbol string) string
}

func resolve(names Namer, symbol string) string {
	if names == nil {
		return symbol
	}
	return names.Resolve(symbol)
}

// EarningsMarkdown renders the full realized-earnings report.
func EarningsMarkdown(r *earnings.EarningsReport, names Namer) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Realized Earnings Report\n\n")
	fmt.Fprintln(&b, "| Category | Total |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Equity Realized PnL | %s |\n", r.EquityTotal.SignedString())
	fmt.Fprintf(&b, "| Options Realized PnL | %s |\n", r.OptionTotal.SignedString())
	fmt.Fprintf(&b, "| Company Dividends | %s |\n", r.DividendTotal.SignedString())
	fmt.Fprintf(&b, "| Money-Market Dividends | %s |\n", r.MoneyMarketTotal.SignedString())
	fmt.Fprintf(&b, "| Other Interest | %s |\n", r.InterestTotal.SignedString())
	fmt.Fprintf(&b, "| **Grand Total** | **%s** |\n\n", r.GrandTotal.SignedString())

	b.WriteString(equitiesMarkdown(r, names))
	b.WriteString(optionsMarkdown(r, names))
	b.WriteString(dividendsMarkdown(r, names))
	b.WriteString(moneyMarketMarkdown(r))
	b.WriteString(interestMarkdown(r))
	b.WriteString(warningsMarkdown(r))

	return b.String()
}

func equitiesMarkdown(r *earnings.EarningsReport, names Namer) string {
	if len(r.Equities) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprint(&b, "## Equities\n\n")
	fmt.Fprintln(&b, "| Symbol | Realized | Held | Avg Days | Share |")
	fmt.Fprintln(&b, "|:---|---:|:---|---:|---:|")
	for _, row := range r.Equities {
		fmt.Fprintf(&b, "| %s | %s | %s | %.0f | %s |\n",
			resolve(names, row.Symbol),
			row.Realized.SignedString(),
			dateRange(row.FirstAcquired, row.LastDisposed),
			row.AvgHoldingDays,
			row.Share,
		)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | | | |\n\n", r.EquityTotal.SignedString())
	return b.String()
}

func optionsMarkdown(r *earnings.EarningsReport, names Namer) string {
	if len(r.Options) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprint(&b, "## Closed Options\n\n")
	fmt.Fprintln(&b, "| Contract | Net | Open/Close | Share |")
	fmt.Fprintln(&b, "|:---|---:|:---|---:|")
	for _, row := range r.Options {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			resolve(names, row.Symbol),
			row.Net.SignedString(),
			dateRange(row.Opened, row.Closed),
			row.Share,
		)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | | |\n\n", r.OptionTotal.SignedString())
	return b.String()
}

func dividendsMarkdown(r *earnings.EarningsReport, names Namer) string {
	if len(r.Dividends) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprint(&b, "## Company Dividends\n\n")
	fmt.Fprintln(&b, "| Payer | Amount | Paid | Share |")
	fmt.Fprintln(&b, "|:---|---:|:---|---:|")
	for _, row := range r.Dividends {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			resolve(names, row.Key),
			row.Amount.SignedString(),
			dateRange(row.First, row.Last),
			row.Share,
		)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | | |\n\n", r.DividendTotal.SignedString())
	return b.String()
}

func moneyMarketMarkdown(r *earnings.EarningsReport) string {
	if len(r.MoneyMarket) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprint(&b, "## Money-Market Dividends by Month\n\n")
	fmt.Fprintln(&b, "| Month | Amount | Share |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, row := range r.MoneyMarket {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", row.Key, row.Amount.SignedString(), row.Share)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | |\n\n", r.MoneyMarketTotal.SignedString())
	return b.String()
}

func interestMarkdown(r *earnings.EarningsReport) string {
	if len(r.Interest) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprint(&b, "## Other Interest\n\n")
	fmt.Fprintln(&b, "| Date | Description | Amount | Share |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for _, row := range r.Interest {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			dateString(row.First), row.Key, row.Amount.SignedString(), row.Share)
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** | |\n\n", r.InterestTotal.SignedString())
	return b.String()
}

func warningsMarkdown(r *earnings.EarningsReport) string {
	if len(r.Warnings) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprint(&b, "## Warnings\n\n")
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "* %s\n", w)
	}
	b.WriteString("\n")
	return b.String()
}

func dateString(d earnings.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}

func dateRange(from, to earnings.Date) string {
	if from.IsZero() && to.IsZero() {
		return "-"
	}
	return dateString(from) + " to " + dateString(to)
}
