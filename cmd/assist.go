package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finlens/earnings"
	"github.com/finlens/earnings/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-flash"

const assistInstruction = `You are a financial reporting assistant. You are
given a realized-earnings report in markdown: realized gain/loss on equities
(FIFO lot accounting), closed option positions, dividend and interest income.
Summarize it in plain language for the account holder: the overall result,
the biggest winners and losers, and anything unusual in the warnings. Do not
give investment advice.`

// assistCmd asks a model for a plain-language summary of the report.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "plain-language summary of the earnings report" }
func (*assistCmd) Usage() string {
	return `ern assist

  Computes the realized earnings report and asks Gemini for a plain-language
  summary of it. Requires Gemini API credentials in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	report := earnings.NewEarningsReport(ledger)
	md := renderer.EarningsMarkdown(report, nil)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	resp, err := client.Models.GenerateContent(ctx, assistModel,
		genai.Text(assistInstruction+"\n\n"+md), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating summary:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
