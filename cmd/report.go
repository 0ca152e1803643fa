package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finlens/earnings"
	"github.com/finlens/earnings/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	json bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "realized earnings report over the whole ledger" }
func (*reportCmd) Usage() string {
	return `ern report [-json]

  Computes realized gain/loss on equities (FIFO), netted results on closed
  option positions, dividend and interest income, and displays the report.

Usage Examples:
# Display the report for ./transactions.csv
$ ern report

# Export the report as JSON for downstream tooling
$ ern report -json > report.json

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Write the report as JSON on stdout instead of rendering it")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	names, err := DecodeNames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading securities metadata: %v\n", err)
		return subcommands.ExitFailure
	}

	report := earnings.NewEarningsReport(ledger)

	if c.json {
		if err := earnings.EncodeReport(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.EarningsMarkdown(report, names))
	printWarnings(report.Warnings)
	return subcommands.ExitSuccess
}
