package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/finlens/earnings"
)

type staticNamer map[string]string

func (n staticNamer) Resolve(symbol string) string {
	if name, ok := n[symbol]; ok {
		return name
	}
	return symbol
}

func sampleReport(t *testing.T) *earnings.EarningsReport {
	t.Helper()
	l := earnings.NewLedger(
		earnings.Transaction{
			Symbol: "ACME", Kind: earnings.KindBought, Class: earnings.ClassEquity,
			Date:     earnings.NewDate(2024, time.January, 10),
			Quantity: earnings.Q(10), Amount: earnings.USD(-100),
		},
		earnings.Transaction{
			Symbol: "ACME", Kind: earnings.KindSold, Class: earnings.ClassEquity,
			Date:     earnings.NewDate(2024, time.March, 10),
			Quantity: earnings.Q(-10), Amount: earnings.USD(150),
		},
		earnings.Transaction{
			Symbol: "ACME", Kind: earnings.KindDividend, Class: earnings.ClassEquity,
			Date:   earnings.NewDate(2024, time.March, 15),
			Amount: earnings.USD(25), Description: "ACME CORP CASH DIV",
		},
	)
	return earnings.NewEarningsReport(l)
}

func TestEarningsMarkdown(t *testing.T) {
	md := EarningsMarkdown(sampleReport(t), nil)

	for _, want := range []string{
		"# Realized Earnings Report",
		"## Equities",
		"## Company Dividends",
		"| ACME |",
		"Grand Total",
		"+$75.00",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("EarningsMarkdown() is missing %q:\n%s", want, md)
		}
	}

	// Empty categories produce no section at all.
	for _, unwanted := range []string{"## Closed Options", "## Other Interest", "## Warnings"} {
		if strings.Contains(md, unwanted) {
			t.Errorf("EarningsMarkdown() contains %q for an empty category", unwanted)
		}
	}
}

func TestEarningsMarkdown_ResolvesNames(t *testing.T) {
	md := EarningsMarkdown(sampleReport(t), staticNamer{"ACME": "Acme Corporation"})
	if !strings.Contains(md, "| Acme Corporation |") {
		t.Errorf("EarningsMarkdown() did not resolve the payer name:\n%s", md)
	}
}
