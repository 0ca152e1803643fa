package earnings

import "time"

// Constructors used by tests across the package to build ledgers tersely.

func day(y int, m time.Month, d int) Date { return NewDate(y, m, d) }

// buy returns an equity Bought row following the sign convention
// (positive quantity, negative cash amount).
func buy(sym string, on Date, qty, amount float64) Transaction {
	return Transaction{
		Symbol: sym, Kind: KindBought, Class: ClassEquity,
		Date: on, Quantity: Q(qty), Amount: USD(amount),
	}
}

// sell returns an equity Sold row following the sign convention
// (negative quantity, positive cash amount).
func sell(sym string, on Date, qty, amount float64) Transaction {
	return Transaction{
		Symbol: sym, Kind: KindSold, Class: ClassEquity,
		Date: on, Quantity: Q(qty), Amount: USD(amount),
	}
}

// optLeg returns an option row of the given kind.
func optLeg(kind TxKind, sym string, on Date, amount float64) Transaction {
	return Transaction{
		Symbol: sym, Kind: kind, Class: ClassOption,
		Date: on, Quantity: Q(1), Amount: USD(amount),
	}
}

// income returns an income row of the given kind and class.
func income(kind TxKind, class SecurityClass, sym string, on Date, amount float64, desc string) Transaction {
	return Transaction{
		Symbol: sym, Kind: kind, Class: class,
		Date: on, Amount: USD(amount), Description: desc,
	}
}
