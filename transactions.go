package earnings

import (
	"fmt"
	"strings"
)

// TxKind is a typed string identifying what a ledger row records.
type TxKind string

// The closed set of transaction kinds the engine understands. Any other
// wording found in an export is rejected at parse time with a row warning,
// never silently folded into a wrong bucket.
const (
	KindBought            TxKind = "bought"
	KindSold              TxKind = "sold"
	KindDividend          TxKind = "dividend"
	KindQualifiedDividend TxKind = "qualified-dividend"
	KindInterestIncome    TxKind = "interest"
	KindBoughtToOpen      TxKind = "bought-to-open"
	KindSoldToClose       TxKind = "sold-to-close"
	KindOptionExercised   TxKind = "exercised"
	KindOptionExpired     TxKind = "expired"
)

// ParseTxKind maps the transaction-type wording of brokerage exports onto the
// closed TxKind set.
func ParseTxKind(s string) (TxKind, error) {
	switch normalize(s) {
	case "bought", "buy":
		return KindBought, nil
	case "sold", "sell":
		return KindSold, nil
	case "dividend", "div", "cash dividend", "special dividend":
		return KindDividend, nil
	case "qualified dividend", "qualified div", "qual dividend":
		return KindQualifiedDividend, nil
	case "interest", "bank interest", "credit interest", "interest income":
		return KindInterestIncome, nil
	case "bought to open", "buy to open":
		return KindBoughtToOpen, nil
	case "sold to close", "sell to close":
		return KindSoldToClose, nil
	case "exercised", "options exercised", "exchange or exercise":
		return KindOptionExercised, nil
	case "expired", "options expired":
		return KindOptionExpired, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// SecurityClass is a typed string identifying the class of the instrument.
type SecurityClass string

const (
	ClassEquity      SecurityClass = "equity"
	ClassOption      SecurityClass = "option"
	ClassMoneyMarket SecurityClass = "money-market"
)

// ParseSecurityClass maps the security-type wording of brokerage exports onto
// the closed SecurityClass set.
func ParseSecurityClass(s string) (SecurityClass, error) {
	switch normalize(s) {
	case "equity", "stock", "etf", "etfs & closed end funds", "equities":
		return ClassEquity, nil
	case "option", "options":
		return ClassOption, nil
	case "money market fund", "money market", "mmf", "cash and money market":
		return ClassMoneyMarket, nil
	default:
		return "", fmt.Errorf("unknown security type %q", s)
	}
}

// normalize lowercases and collapses whitespace for tolerant matching.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Transaction is one normalized, immutable ledger row.
//
// Quantity is signed: positive when acquiring, negative when disposing.
// Amount is the signed cash effect: negative for cash out, positive for cash
// in. Buys and sells of the same leg therefore carry opposite signs; rows
// that violate the convention are tolerated and handled with a fallback, not
// rejected.
type Transaction struct {
	Symbol      string
	Kind        TxKind
	Class       SecurityClass
	Date        Date // zero when the source date was unparseable
	Quantity    Quantity
	Amount      Money
	Price       Money // stated unit price, the sign-violation fallback
	Description string
}

// IsEquityTrade reports whether the row takes part in FIFO lot matching.
func (t Transaction) IsEquityTrade() bool {
	return t.Class == ClassEquity && (t.Kind == KindBought || t.Kind == KindSold)
}

// IsOptionLeg reports whether the row is part of an option position.
func (t Transaction) IsOptionLeg() bool {
	if t.Class != ClassOption {
		return false
	}
	switch t.Kind {
	case KindBoughtToOpen, KindSoldToClose, KindOptionExercised, KindOptionExpired:
		return true
	}
	return false
}

// IsOptionClosing reports whether the row terminates an option position.
func (t Transaction) IsOptionClosing() bool {
	if t.Class != ClassOption {
		return false
	}
	switch t.Kind {
	case KindSoldToClose, KindOptionExercised, KindOptionExpired:
		return true
	}
	return false
}

// IsIncome reports whether the row is non-trading cash income.
func (t Transaction) IsIncome() bool {
	switch t.Kind {
	case KindDividend, KindQualifiedDividend, KindInterestIncome:
		return true
	}
	return false
}

// violatesBuyConvention reports a Bought row whose signs do not follow the
// quantity-positive, amount-negative convention.
func (t Transaction) violatesBuyConvention() bool {
	return !t.Quantity.IsPositive() || !t.Amount.IsNegative()
}

// violatesSellConvention reports a Sold row whose signs do not follow the
// quantity-negative, amount-positive convention.
func (t Transaction) violatesSellConvention() bool {
	return !t.Quantity.IsNegative() || !t.Amount.IsPositive()
}
