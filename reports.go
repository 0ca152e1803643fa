package earnings

import "sort"

// EquityRow is one line of the equity table: a match result plus its share
// of the equity category total.
type EquityRow struct {
	MatchResult
	Share Percent
}

// OptionRow is one line of the options table.
type OptionRow struct {
	OptionCloseResult
	Share Percent
}

// IncomeTableRow is one line of the dividend, money-market or interest table.
type IncomeTableRow struct {
	IncomeRow
	Share Percent
}

// EarningsReport is the structured result of one report run: five category
// tables with per-row shares, category totals and the grand total. It is the
// sole interface handed to rendering and export collaborators, and it is
// read-only once built.
type EarningsReport struct {
	Equities    []EquityRow
	Options     []OptionRow
	Dividends   []IncomeTableRow
	MoneyMarket []IncomeTableRow
	Interest    []IncomeTableRow

	EquityTotal      Money
	OptionTotal      Money
	DividendTotal    Money
	MoneyMarketTotal Money
	InterestTotal    Money
	GrandTotal       Money

	Warnings []Warning
}

// NewEarningsReport runs the whole pipeline over the ledger: stable sort,
// FIFO equity matching, closed-option netting and income aggregation, then
// assembles totals and percentage shares. It never fails: a malformed or
// empty ledger degrades to a smaller (or all-zero) report with warnings.
func NewEarningsReport(l *Ledger) *EarningsReport {
	l.stableSort()

	r := &EarningsReport{
		EquityTotal:      USD(0),
		OptionTotal:      USD(0),
		DividendTotal:    USD(0),
		MoneyMarketTotal: USD(0),
		InterestTotal:    USD(0),
	}

	for _, m := range matchEquities(l) {
		r.EquityTotal = r.EquityTotal.Add(m.Realized)
		r.Equities = append(r.Equities, EquityRow{MatchResult: m})
	}
	for _, o := range closedOptions(l) {
		r.OptionTotal = r.OptionTotal.Add(o.Net)
		r.Options = append(r.Options, OptionRow{OptionCloseResult: o})
	}
	for _, d := range companyDividends(l) {
		r.DividendTotal = r.DividendTotal.Add(d.Amount)
		r.Dividends = append(r.Dividends, IncomeTableRow{IncomeRow: d})
	}
	for _, m := range moneyMarketDividends(l) {
		r.MoneyMarketTotal = r.MoneyMarketTotal.Add(m.Amount)
		r.MoneyMarket = append(r.MoneyMarket, IncomeTableRow{IncomeRow: m})
	}
	for _, i := range otherInterest(l) {
		r.InterestTotal = r.InterestTotal.Add(i.Amount)
		r.Interest = append(r.Interest, IncomeTableRow{IncomeRow: i})
	}

	r.GrandTotal = r.EquityTotal.
		Add(r.OptionTotal).
		Add(r.DividendTotal).
		Add(r.MoneyMarketTotal).
		Add(r.InterestTotal)

	// Worst loss first is the reporting convention for the trading tables.
	sort.SliceStable(r.Equities, func(i, j int) bool {
		return r.Equities[i].Realized.LessThan(r.Equities[j].Realized)
	})
	sort.SliceStable(r.Options, func(i, j int) bool {
		return r.Options[i].Net.LessThan(r.Options[j].Net)
	})

	for i := range r.Equities {
		r.Equities[i].Share = r.Equities[i].Realized.ShareOf(r.EquityTotal)
	}
	for i := range r.Options {
		r.Options[i].Share = r.Options[i].Net.ShareOf(r.OptionTotal)
	}
	for i := range r.Dividends {
		r.Dividends[i].Share = r.Dividends[i].Amount.ShareOf(r.DividendTotal)
	}
	for i := range r.MoneyMarket {
		r.MoneyMarket[i].Share = r.MoneyMarket[i].Amount.ShareOf(r.MoneyMarketTotal)
	}
	for i := range r.Interest {
		r.Interest[i].Share = r.Interest[i].Amount.ShareOf(r.InterestTotal)
	}

	r.Warnings = l.Warnings()
	return r
}
