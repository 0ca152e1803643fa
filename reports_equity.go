package earnings

import "github.com/shopspring/decimal"

// MatchResult is the realized outcome of FIFO-matching one equity symbol.
// It is produced only for symbols where at least one sale actually consumed
// owned inventory; a symbol with only unmatched sells contributes nothing.
type MatchResult struct {
	Symbol         string
	Realized       Money
	Matched        Quantity
	FirstAcquired  Date    // acquisition date of the oldest consumed lot
	LastDisposed   Date    // date of the last sale that matched a lot
	AvgHoldingDays float64 // holding days weighted by matched quantity
}

// matchEquities computes FIFO realized gain/loss per equity symbol.
//
// Each symbol's Bought/Sold rows are walked in (date, ledger order) against a
// FIFO queue of open lots. A Bought pushes a lot at its net cost per unit,
// which bakes commission into the cost basis; a Sold consumes lots oldest
// first. The ledger must be stable-sorted before calling.
func matchEquities(l *Ledger) []MatchResult {
	groups, order := l.groupBySymbol(Transaction.IsEquityTrade)

	var results []MatchResult
	for _, symbol := range order {
		if r, ok := matchSymbol(l, symbol, groups[symbol]); ok {
			results = append(results, r)
		}
	}
	return results
}

// matchSymbol runs the FIFO pass for one symbol. ok is false when no sale
// ever consumed a lot, in which case the symbol is left out of the report.
func matchSymbol(l *Ledger, symbol string, txs []Transaction) (MatchResult, bool) {
	var queue lotQueue
	r := MatchResult{Symbol: symbol, Realized: USD(0)}
	weightedDays := decimal.Zero

	for _, tx := range txs {
		switch tx.Kind {
		case KindBought:
			queue.push(lot{
				date:        tx.Date,
				remaining:   tx.Quantity.Abs(),
				costPerUnit: buyCostPerUnit(l, tx),
			})

		case KindSold:
			want := tx.Quantity.Abs()
			c := queue.consume(want, sellProceedsPerUnit(l, tx), tx.Date)
			if c.matched.IsZero() {
				l.warnf(0, "sell of %s %s has no owned inventory to match, ignored", want, symbol)
				continue
			}
			r.Realized = r.Realized.Add(c.realized)
			r.Matched = r.Matched.Add(c.matched)
			r.LastDisposed = tx.Date
			if r.FirstAcquired.IsZero() || c.oldest.Before(r.FirstAcquired) {
				r.FirstAcquired = c.oldest
			}
			weightedDays = weightedDays.Add(c.weightedDays)
			if c.matched.LessThan(want) {
				l.warnf(0, "sell of %s %s exceeds owned inventory, excess %s ignored",
					want, symbol, want.Sub(c.matched))
			}
		}
	}

	if r.Matched.IsZero() {
		return MatchResult{}, false
	}
	r.AvgHoldingDays, _ = weightedDays.Div(r.Matched.value).Float64()
	return r, true
}

// buyCostPerUnit derives the net cost per unit of a Bought row from its cash
// amount (-amount / quantity). When the row violates the sign convention the
// stated unit price is used instead of failing the batch.
func buyCostPerUnit(l *Ledger, tx Transaction) Money {
	if tx.violatesBuyConvention() {
		l.warnf(0, "buy of %s breaks the sign convention (quantity %s, amount %s), using stated price",
			tx.Symbol, tx.Quantity, tx.Amount)
		return tx.Price
	}
	return tx.Amount.Neg().Div(tx.Quantity)
}

// sellProceedsPerUnit derives the net sale per unit of a Sold row from its
// cash amount (amount / |quantity|), with the same stated-price fallback.
func sellProceedsPerUnit(l *Ledger, tx Transaction) Money {
	if tx.violatesSellConvention() {
		l.warnf(0, "sell of %s breaks the sign convention (quantity %s, amount %s), using stated price",
			tx.Symbol, tx.Quantity, tx.Amount)
		return tx.Price
	}
	return tx.Amount.Div(tx.Quantity.Abs())
}
