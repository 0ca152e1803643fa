package earnings

import (
	"regexp"
	"sort"
)

// IncomeCategory identifies the bucket an income row belongs to. The three
// buckets are mutually exclusive: a row lands in exactly one.
type IncomeCategory string

const (
	CompanyDividend     IncomeCategory = "company-dividend"
	MoneyMarketDividend IncomeCategory = "money-market-dividend"
	OtherInterest       IncomeCategory = "other-interest"
)

// IncomeRow is one aggregated income line: a dividend payer, a calendar
// month of money-market dividends, or a single interest payment.
type IncomeRow struct {
	Key      string // symbol, month, or payment description
	Amount   Money
	First    Date
	Last     Date
	Category IncomeCategory
}

// moneyMarketDividendRe recognizes the payment wording money-market sweep
// funds put on their dividend rows.
var moneyMarketDividendRe = regexp.MustCompile(`(?i)\bMONEY\s+(MARKET|FUND|INV)\b|\bSWEEP\b.*\bDIV`)

// isMoneyMarketDividend reports whether the row is a money-market fund
// dividend, classified on its description text like the statements name them.
func isMoneyMarketDividend(tx Transaction) bool {
	if !tx.IsIncome() {
		return false
	}
	return moneyMarketDividendRe.MatchString(tx.Description)
}

// companyDividends groups Dividend and QualifiedDividend rows on equity
// symbols by payer, with the first and last payment date.
func companyDividends(l *Ledger) []IncomeRow {
	groups, order := l.groupBySymbol(func(tx Transaction) bool {
		if tx.Class != ClassEquity {
			return false
		}
		if tx.Kind != KindDividend && tx.Kind != KindQualifiedDividend {
			return false
		}
		return !isMoneyMarketDividend(tx)
	})

	var rows []IncomeRow
	for _, symbol := range order {
		row := IncomeRow{Key: symbol, Amount: USD(0), Category: CompanyDividend}
		for _, tx := range groups[symbol] {
			row.Amount = row.Amount.Add(tx.Amount)
			row.First, row.Last = widen(row.First, row.Last, tx.Date)
		}
		rows = append(rows, row)
	}
	return rows
}

// moneyMarketDividends groups money-market dividend rows by calendar
// month. Rows with an unparseable date keep contributing to the sum under
// the "unknown" month, they are only lost to date-sensitive grouping.
func moneyMarketDividends(l *Ledger) []IncomeRow {
	byMonth := make(map[Month]*IncomeRow)
	var months []Month
	for tx := range l.Transactions() {
		if !isMoneyMarketDividend(tx) {
			continue
		}
		month := tx.Date.MonthOf()
		row, ok := byMonth[month]
		if !ok {
			row = &IncomeRow{Key: month.String(), Amount: USD(0), Category: MoneyMarketDividend}
			byMonth[month] = row
			months = append(months, month)
		}
		row.Amount = row.Amount.Add(tx.Amount)
		row.First, row.Last = widen(row.First, row.Last, tx.Date)
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	rows := make([]IncomeRow, 0, len(months))
	for _, m := range months {
		rows = append(rows, *byMonth[m])
	}
	return rows
}

// otherInterest lists the money-market-fund interest and dividend payments
// that are not money-market dividends, one row per payment.
func otherInterest(l *Ledger) []IncomeRow {
	var rows []IncomeRow
	for tx := range l.Transactions() {
		if tx.Class != ClassMoneyMarket || !tx.IsIncome() {
			continue
		}
		if isMoneyMarketDividend(tx) {
			continue
		}
		key := tx.Description
		if key == "" {
			key = tx.Symbol
		}
		rows = append(rows, IncomeRow{
			Key:      key,
			Amount:   tx.Amount,
			First:    tx.Date,
			Last:     tx.Date,
			Category: OtherInterest,
		})
	}
	return rows
}

// widen grows a [first, last] date range with d, skipping zero dates so rows
// without a parseable date never distort the range.
func widen(first, last, d Date) (Date, Date) {
	if d.IsZero() {
		return first, last
	}
	if first.IsZero() || d.Before(first) {
		first = d
	}
	if last.IsZero() || d.After(last) {
		last = d
	}
	return first, last
}
