package earnings

// OptionCloseResult is the netted cash outcome of one closed option
// position. The option symbol already encodes contract identity (underlying,
// expiry, strike, side), so netting per symbol nets per contract.
type OptionCloseResult struct {
	Symbol string
	Net    Money
	Opened Date // earliest bought-to-open, zero for e.g. assignment-only rows
	Closed Date // latest closing row
}

// closedOptions nets the cash flows of option positions that were actually
// closed: a symbol qualifies as soon as one sold-to-close, exercised or
// expired row exists. Open-only symbols are dropped entirely, because the
// engine does not value open positions. The ledger must be stable-sorted
// before calling.
func closedOptions(l *Ledger) []OptionCloseResult {
	groups, order := l.groupBySymbol(Transaction.IsOptionLeg)

	var results []OptionCloseResult
	for _, symbol := range order {
		txs := groups[symbol]

		closed := false
		for _, tx := range txs {
			if tx.IsOptionClosing() {
				closed = true
				break
			}
		}
		if !closed {
			continue
		}

		r := OptionCloseResult{Symbol: symbol, Net: USD(0)}
		for _, tx := range txs {
			r.Net = r.Net.Add(tx.Amount)
			switch {
			case tx.Kind == KindBoughtToOpen:
				if r.Opened.IsZero() || tx.Date.Before(r.Opened) {
					r.Opened = tx.Date
				}
			case tx.IsOptionClosing():
				if tx.Date.After(r.Closed) {
					r.Closed = tx.Date
				}
			}
		}
		results = append(results, r)
	}
	return results
}
