// Package cmd implements the CLI application to compute realized earnings.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/finlens/earnings"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.csv", "Path to the brokerage activity export (CSV format)")
var namesFile = flag.String("names-file", "", "Path to an optional securities metadata file (JSON) used to resolve display names")

// DecodeLedgerFile reads and validates the app ledger file.
func DecodeLedgerFile() (*earnings.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return earnings.DecodeLedger(f)
}

// DecodeNames loads the optional securities metadata file. A nil resolver is
// valid and leaves symbols unresolved.
func DecodeNames() (*earnings.NameResolver, error) {
	if *namesFile == "" {
		return nil, nil
	}
	f, err := os.Open(*namesFile)
	if err != nil {
		return nil, fmt.Errorf("could not open metadata %q: %w", *namesFile, err)
	}
	defer f.Close()
	return earnings.NewNameResolver(f)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the terminal renderer cannot be set up.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// printWarnings reports ledger warnings on stderr so they never mix with the
// report on stdout.
func printWarnings(warnings []earnings.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning, %s\n", w)
	}
}
