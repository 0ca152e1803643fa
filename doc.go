// Package earnings turns a brokerage transaction ledger into a realized
// earnings report. It is designed to be local-first and auditable: every
// figure in the report can be traced back to ledger rows, and anything the
// engine had to guess about is surfaced as a warning instead of being
// silently dropped.
//
// The core functionalities include:
//   - Ledger Model: decoding broker CSV exports into a normalized,
//     chronologically sorted transaction ledger with row-level warnings.
//   - Equity Lot Matching: pairing each equity sale against the oldest open
//     purchase lots of the same symbol to compute realized profit and loss
//     and holding periods.
//   - Option Aggregation: netting the cash flows of option positions that
//     have been closed, exercised, or expired.
//   - Income Aggregation: grouping dividend and interest payments into
//     mutually exclusive buckets (company dividends by payer, money market
//     dividends by month, other interest per payment).
//   - Report Assembly: combining the category results into a single report
//     with totals, grand total, and each category's share of the whole.
//
// This package serves as the foundational logic for the `ern` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package earnings
