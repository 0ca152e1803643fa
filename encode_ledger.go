package earnings

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// The canonical column names of a brokerage activity export. Header matching
// is tolerant: case and spaces are ignored, and the common aliases below are
// accepted.
var ledgerColumns = map[string]string{
	"date":            "date",
	"transactiondate": "date",
	"action":          "type",
	"transactiontype": "type",
	"type":            "type",
	"securitytype":    "class",
	"security":        "class",
	"symbol":          "symbol",
	"quantity":        "quantity",
	"amount":          "amount",
	"price":           "price",
	"commission":      "commission",
	"feescomm":        "commission",
	"description":     "description",
}

// DecodeLedger reads a tabular brokerage activity export and returns the
// validated ledger. A malformed row fails that row, not the batch: it is
// dropped (or kept without a date when only the date is bad) and recorded in
// the ledger's warnings. Only an unreadable stream or a missing required
// column is a hard error.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read ledger header: %w", err)
	}
	cols := make(map[string]int)
	for i, name := range header {
		key := strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", ""), "/", "")
		if canonical, ok := ledgerColumns[key]; ok {
			if _, dup := cols[canonical]; !dup {
				cols[canonical] = i
			}
		}
	}
	for _, required := range []string{"date", "type", "symbol", "amount"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("ledger is missing required column %q", required)
		}
	}

	ledger := NewLedger()
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			ledger.warnf(row, "unreadable row: %v", err)
			continue
		}
		tx, err := decodeRow(record, cols, ledger, row)
		if err != nil {
			ledger.warnf(row, "%v", err)
			continue
		}
		ledger.Append(tx)
	}
	return ledger, nil
}

// decodeRow converts one CSV record into a Transaction.
func decodeRow(record []string, cols map[string]int, l *Ledger, row int) (Transaction, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	kind, err := ParseTxKind(field("type"))
	if err != nil {
		return Transaction{}, err
	}

	class, err := ParseSecurityClass(field("class"))
	if err != nil {
		// Exports leave the security type blank on cash rows; infer the
		// class from the kind before giving up on the row.
		if inferred, ok := inferClass(kind, field("symbol")); ok {
			class = inferred
		} else {
			return Transaction{}, err
		}
	}

	tx := Transaction{
		Symbol:      field("symbol"),
		Kind:        kind,
		Class:       class,
		Description: field("description"),
	}

	// An unparseable date excludes the row from date-sensitive aggregation
	// only; the amount still counts, so the row survives with a zero date.
	if raw := field("date"); raw != "" {
		if d, err := ParseDate(raw); err != nil {
			l.warnf(row, "%v, row kept without a date", err)
		} else {
			tx.Date = d
		}
	}

	if raw := field("quantity"); raw != "" {
		qty, err := parseDecimal(raw)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid quantity %q", raw)
		}
		tx.Quantity = Q(qty)
	}
	if raw := field("price"); raw != "" {
		price, err := parseDecimal(raw)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid price %q", raw)
		}
		tx.Price = USD(price)
	}

	var commission decimal.Decimal
	if raw := field("commission"); raw != "" {
		if c, err := parseDecimal(raw); err == nil {
			commission = c
		}
	}

	if raw := field("amount"); raw != "" {
		amount, err := parseDecimal(raw)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid amount %q", raw)
		}
		tx.Amount = USD(amount)
	} else {
		// Some exports leave the amount blank on trade rows, synthesize it
		// from price x quantity with the commission folded in.
		if tx.Price.IsZero() || tx.Quantity.IsZero() {
			return Transaction{}, fmt.Errorf("row has no amount and no price/quantity to derive one")
		}
		gross := tx.Price.Mul(tx.Quantity).Neg()
		tx.Amount = gross.Sub(USD(commission))
	}

	return tx, nil
}

// inferClass guesses the security class of rows whose security-type cell is
// blank. Cash income without a symbol is money market activity; everything
// else stays unknown.
func inferClass(kind TxKind, symbol string) (SecurityClass, bool) {
	switch kind {
	case KindBoughtToOpen, KindSoldToClose, KindOptionExercised, KindOptionExpired:
		return ClassOption, true
	case KindInterestIncome:
		return ClassMoneyMarket, true
	case KindDividend, KindQualifiedDividend:
		if symbol == "" {
			return ClassMoneyMarket, true
		}
		return ClassEquity, true
	case KindBought, KindSold:
		return ClassEquity, true
	}
	return "", false
}

// parseDecimal reads the numeric cell formats of brokerage exports:
// currency signs, thousands separators, and parentheses for negatives.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
