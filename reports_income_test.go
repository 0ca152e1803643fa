package earnings

import (
	"testing"
	"time"
)

const mmDesc = "FUND X MONEY MARKET DIV PAYMENT"

func TestCompanyDividends_GroupedByPayer(t *testing.T) {
	l := NewLedger(
		income(KindDividend, ClassEquity, "ACME", day(2024, time.March, 15), 25, "ACME CORP CASH DIV"),
		income(KindQualifiedDividend, ClassEquity, "ACME", day(2024, time.June, 15), 30, "ACME CORP CASH DIV"),
		income(KindDividend, ClassEquity, "BOLT", day(2024, time.April, 1), 10, "BOLT INC CASH DIV"),
	)
	l.stableSort()

	rows := companyDividends(l)
	if len(rows) != 2 {
		t.Fatalf("companyDividends() returned %d rows, want 2", len(rows))
	}
	byKey := map[string]IncomeRow{}
	for _, r := range rows {
		byKey[r.Key] = r
	}
	acme := byKey["ACME"]
	if want := USD(55); !acme.Amount.Equal(want) {
		t.Errorf("ACME amount = %s, want %s", acme.Amount, want)
	}
	if got, want := acme.First, day(2024, time.March, 15); got != want {
		t.Errorf("ACME first = %s, want %s", got, want)
	}
	if got, want := acme.Last, day(2024, time.June, 15); got != want {
		t.Errorf("ACME last = %s, want %s", got, want)
	}
}

func TestMoneyMarketDividends_GroupedByMonth(t *testing.T) {
	l := NewLedger(
		income(KindDividend, ClassMoneyMarket, "SWPXX", day(2024, time.March, 5), 1.5, mmDesc),
		income(KindDividend, ClassMoneyMarket, "SWPXX", day(2024, time.March, 25), 2.5, mmDesc),
		income(KindDividend, ClassMoneyMarket, "SWPXX", day(2024, time.April, 5), 3, mmDesc),
	)
	l.stableSort()

	rows := moneyMarketDividends(l)
	if len(rows) != 2 {
		t.Fatalf("moneyMarketDividends() returned %d rows, want 2", len(rows))
	}
	if rows[0].Key != "2024-03" || rows[1].Key != "2024-04" {
		t.Fatalf("months = %q, %q, want 2024-03, 2024-04", rows[0].Key, rows[1].Key)
	}
	if want := USD(4); !rows[0].Amount.Equal(want) {
		t.Errorf("2024-03 amount = %s, want %s", rows[0].Amount, want)
	}
}

func TestMoneyMarketDividends_UndatedRowKeepsItsAmount(t *testing.T) {
	// A row with an unparseable date is lost to monthly grouping only, its
	// amount still counts under the "unknown" month.
	undated := income(KindDividend, ClassMoneyMarket, "SWPXX", Date{}, 2, mmDesc)
	l := NewLedger(
		undated,
		income(KindDividend, ClassMoneyMarket, "SWPXX", day(2024, time.March, 5), 1, mmDesc),
	)
	l.stableSort()

	rows := moneyMarketDividends(l)
	if len(rows) != 2 {
		t.Fatalf("moneyMarketDividends() returned %d rows, want 2", len(rows))
	}
	if rows[0].Key != "unknown" {
		t.Fatalf("first month = %q, want \"unknown\" (sorts first)", rows[0].Key)
	}
	if want := USD(2); !rows[0].Amount.Equal(want) {
		t.Errorf("unknown-month amount = %s, want %s", rows[0].Amount, want)
	}
}

func TestIncomeBucketsAreMutuallyExclusive(t *testing.T) {
	// One money-market dividend, one plain interest payment, one company
	// dividend: each lands in exactly one bucket.
	l := NewLedger(
		income(KindDividend, ClassMoneyMarket, "SWPXX", day(2024, time.March, 5), 4, mmDesc),
		income(KindInterestIncome, ClassMoneyMarket, "", day(2024, time.March, 31), 2, "BANK CREDIT INTEREST"),
		income(KindDividend, ClassEquity, "ACME", day(2024, time.March, 15), 25, "ACME CORP CASH DIV"),
	)
	l.stableSort()

	dividends := companyDividends(l)
	mm := moneyMarketDividends(l)
	interest := otherInterest(l)

	if len(dividends) != 1 || dividends[0].Key != "ACME" {
		t.Errorf("companyDividends() = %v, want only ACME", dividends)
	}
	if len(mm) != 1 || !mm[0].Amount.Equal(USD(4)) {
		t.Errorf("moneyMarketDividends() = %v, want one row of $4.00", mm)
	}
	if len(interest) != 1 || !interest[0].Amount.Equal(USD(2)) {
		t.Errorf("otherInterest() = %v, want one row of $2.00", interest)
	}
	if interest[0].Key != "BANK CREDIT INTEREST" {
		t.Errorf("interest key = %q, want the payment description", interest[0].Key)
	}
}

func TestOtherInterest_OneRowPerPayment(t *testing.T) {
	l := NewLedger(
		income(KindInterestIncome, ClassMoneyMarket, "", day(2024, time.January, 31), 2, "BANK CREDIT INTEREST"),
		income(KindInterestIncome, ClassMoneyMarket, "", day(2024, time.February, 29), 3, "BANK CREDIT INTEREST"),
	)
	l.stableSort()

	rows := otherInterest(l)
	if len(rows) != 2 {
		t.Fatalf("otherInterest() returned %d rows, want one row per payment", len(rows))
	}
}
