package earnings

import (
	"fmt"
	"iter"
	"sort"
)

// Warning records a non-fatal problem found while parsing or matching.
// Warnings ride along with the report instead of failing the batch.
type Warning struct {
	Row    int // 1-based source row, 0 when the warning is not tied to a row
	Reason string
}

func (w Warning) String() string {
	if w.Row == 0 {
		return w.Reason
	}
	return fmt.Sprintf("row %d: %s", w.Row, w.Reason)
}

// Ledger holds the validated, ordered sequence of transactions of one report
// run, together with the warnings collected along the way.
//
// After stableSort the transactions are in chronological order, ties broken
// by original ledger order, which makes every downstream aggregation
// deterministic.
type Ledger struct {
	transactions []Transaction
	warnings     []Warning
	sorted       bool
}

// NewLedger creates a ledger over the given transactions.
func NewLedger(txs ...Transaction) *Ledger {
	return &Ledger{transactions: txs}
}

// Append adds a transaction to the ledger.
func (l *Ledger) Append(tx Transaction) {
	l.transactions = append(l.transactions, tx)
	l.sorted = false
}

// warnf records a warning attached to a source row.
func (l *Ledger) warnf(row int, format string, args ...any) {
	l.warnings = append(l.warnings, Warning{Row: row, Reason: fmt.Sprintf(format, args...)})
}

// Warnings returns the warnings collected so far.
func (l *Ledger) Warnings() []Warning { return l.warnings }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions iterates over all transactions in ledger order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// stableSort orders transactions by date ascending, preserving original
// ledger order for same-day rows. Rows with an unparseable (zero) date sort
// first; they never take part in date-sensitive aggregation anyway.
func (l *Ledger) stableSort() {
	if l.sorted {
		return
	}
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
	l.sorted = true
}

// groupBySymbol partitions the selected transactions by symbol, preserving
// ledger order inside each group, and returns the symbols in first-seen
// order. The ledger slice is the arena; groups only reference it.
func (l *Ledger) groupBySymbol(keep func(Transaction) bool) (map[string][]Transaction, []string) {
	groups := make(map[string][]Transaction)
	var order []string
	for _, tx := range l.transactions {
		if !keep(tx) {
			continue
		}
		if _, seen := groups[tx.Symbol]; !seen {
			order = append(order, tx.Symbol)
		}
		groups[tx.Symbol] = append(groups[tx.Symbol], tx)
	}
	return groups, order
}
