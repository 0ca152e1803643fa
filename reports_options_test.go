package earnings

import (
	"testing"
	"time"
)

func TestClosedOptions_OpenOnlyExcluded(t *testing.T) {
	l := NewLedger(
		optLeg(KindBoughtToOpen, "ACME 06/20/2025 100.00 C", day(2024, time.May, 1), -250),
	)
	l.stableSort()

	if results := closedOptions(l); len(results) != 0 {
		t.Errorf("closedOptions() = %v, want none for an open-only position", results)
	}
}

func TestClosedOptions_ClosingRowQualifiesSymbol(t *testing.T) {
	sym := "ACME 06/20/2025 100.00 C"
	l := NewLedger(
		optLeg(KindBoughtToOpen, sym, day(2024, time.May, 1), -250),
		optLeg(KindSoldToClose, sym, day(2024, time.June, 1), 320),
	)
	l.stableSort()

	results := closedOptions(l)
	if len(results) != 1 {
		t.Fatalf("closedOptions() returned %d results, want 1", len(results))
	}
	r := results[0]
	if want := USD(70); !r.Net.Equal(want) {
		t.Errorf("Net = %s, want %s (sum of both rows)", r.Net, want)
	}
	if got, want := r.Opened, day(2024, time.May, 1); got != want {
		t.Errorf("Opened = %s, want %s", got, want)
	}
	if got, want := r.Closed, day(2024, time.June, 1); got != want {
		t.Errorf("Closed = %s, want %s", got, want)
	}
}

func TestClosedOptions_ExpirationAndExercise(t *testing.T) {
	testCases := []struct {
		name    string
		closing TxKind
		amount  float64
		want    Money
	}{
		{name: "expired worthless", closing: KindOptionExpired, amount: 0, want: USD(-250)},
		{name: "exercised", closing: KindOptionExercised, amount: 500, want: USD(250)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sym := "ACME 06/20/2025 100.00 P"
			l := NewLedger(
				optLeg(KindBoughtToOpen, sym, day(2024, time.May, 1), -250),
				optLeg(tc.closing, sym, day(2024, time.June, 20), tc.amount),
			)
			l.stableSort()

			results := closedOptions(l)
			if len(results) != 1 {
				t.Fatalf("closedOptions() returned %d results, want 1", len(results))
			}
			if !results[0].Net.Equal(tc.want) {
				t.Errorf("Net = %s, want %s", results[0].Net, tc.want)
			}
		})
	}
}

func TestClosedOptions_ContractsAreIndependent(t *testing.T) {
	// Two different contracts on the same underlying stay separate rows,
	// and an open contract never leaks into a closed one.
	call := "ACME 06/20/2025 100.00 C"
	put := "ACME 06/20/2025 90.00 P"
	l := NewLedger(
		optLeg(KindBoughtToOpen, call, day(2024, time.May, 1), -250),
		optLeg(KindBoughtToOpen, put, day(2024, time.May, 2), -150),
		optLeg(KindSoldToClose, call, day(2024, time.June, 1), 400),
	)
	l.stableSort()

	results := closedOptions(l)
	if len(results) != 1 {
		t.Fatalf("closedOptions() returned %d results, want 1", len(results))
	}
	if results[0].Symbol != call {
		t.Errorf("closed symbol = %q, want %q", results[0].Symbol, call)
	}
	if want := USD(150); !results[0].Net.Equal(want) {
		t.Errorf("Net = %s, want %s", results[0].Net, want)
	}
}
