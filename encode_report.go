package earnings

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for EquityRow.
func (r EquityRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", r.Symbol)
	w.Append("realized", r.Realized)
	w.Append("matchedQuantity", r.Matched)
	w.Optional("firstAcquired", r.FirstAcquired)
	w.Optional("lastDisposed", r.LastDisposed)
	w.Append("avgHoldingDays", r.AvgHoldingDays)
	w.Append("share", r.Share)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for OptionRow.
func (r OptionRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", r.Symbol)
	w.Append("net", r.Net)
	w.Optional("opened", r.Opened)
	w.Optional("closed", r.Closed)
	w.Append("share", r.Share)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for IncomeTableRow.
func (r IncomeTableRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("key", r.Key)
	w.Append("category", r.Category)
	w.Append("amount", r.Amount)
	w.Optional("first", r.First)
	w.Optional("last", r.Last)
	w.Append("share", r.Share)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for EarningsReport,
// with a stable field order.
func (r *EarningsReport) MarshalJSON() ([]byte, error) {
	warnings := make([]string, 0, len(r.Warnings))
	for _, warning := range r.Warnings {
		warnings = append(warnings, warning.String())
	}

	var w jsonObjectWriter
	w.Append("equityTotal", r.EquityTotal)
	w.Append("optionTotal", r.OptionTotal)
	w.Append("dividendTotal", r.DividendTotal)
	w.Append("moneyMarketTotal", r.MoneyMarketTotal)
	w.Append("interestTotal", r.InterestTotal)
	w.Append("grandTotal", r.GrandTotal)
	w.Append("equities", r.Equities)
	w.Append("options", r.Options)
	w.Append("dividends", r.Dividends)
	w.Append("moneyMarket", r.MoneyMarket)
	w.Append("interest", r.Interest)
	w.Append("warnings", warnings)
	return w.MarshalJSON()
}

// EncodeReport writes the report as indented JSON for export collaborators.
func EncodeReport(w io.Writer, r *EarningsReport) error {
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode report: %w", err)
	}
	if _, err := w.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	return nil
}
