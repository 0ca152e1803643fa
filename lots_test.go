package earnings

import (
	"testing"
	"time"
)

func TestLotQueue_ConsumeAcrossLots(t *testing.T) {
	var q lotQueue
	q.push(lot{date: day(2024, time.January, 2), remaining: Q(10), costPerUnit: USD(10)})
	q.push(lot{date: day(2024, time.February, 2), remaining: Q(10), costPerUnit: USD(20)})

	c := q.consume(Q(12), USD(15), day(2024, time.March, 2))

	// 10x(15-10) + 2x(15-20) = 40
	if want := USD(40); !c.realized.Equal(want) {
		t.Errorf("consume() realized = %s, want %s", c.realized, want)
	}
	if !c.matched.Equal(Q(12)) {
		t.Errorf("consume() matched = %s, want 12", c.matched)
	}
	if got, want := c.oldest, day(2024, time.January, 2); got != want {
		t.Errorf("consume() oldest = %s, want %s", got, want)
	}
	if q.Len() != 1 {
		t.Errorf("queue length = %d, want 1 (second lot partially consumed)", q.Len())
	}
}

func TestLotQueue_ExactExhaustionEmptiesQueue(t *testing.T) {
	var q lotQueue
	q.push(lot{date: day(2024, time.January, 2), remaining: Q(5), costPerUnit: USD(10)})
	q.push(lot{date: day(2024, time.January, 3), remaining: Q(5), costPerUnit: USD(10)})

	c := q.consume(Q(10), USD(12), day(2024, time.June, 1))

	if q.Len() != 0 {
		t.Errorf("queue length = %d, want 0 after selling all owned quantity", q.Len())
	}
	if !c.matched.Equal(Q(10)) {
		t.Errorf("matched = %s, want total bought quantity 10", c.matched)
	}
	if want := USD(20); !c.realized.Equal(want) {
		t.Errorf("realized = %s, want %s", c.realized, want)
	}
}

func TestLotQueue_OverConsumeLeavesRemainderUnmatched(t *testing.T) {
	var q lotQueue
	q.push(lot{date: day(2024, time.January, 2), remaining: Q(3), costPerUnit: USD(10)})

	c := q.consume(Q(8), USD(11), day(2024, time.June, 1))

	if !c.matched.Equal(Q(3)) {
		t.Errorf("matched = %s, want 3 (no cost basis is invented for the excess)", c.matched)
	}
	if want := USD(3); !c.realized.Equal(want) {
		t.Errorf("realized = %s, want %s", c.realized, want)
	}
	if q.Len() != 0 {
		t.Errorf("queue length = %d, want 0", q.Len())
	}
}

func TestLotQueue_WeightedHoldingDays(t *testing.T) {
	var q lotQueue
	q.push(lot{date: day(2024, time.January, 1), remaining: Q(2), costPerUnit: USD(10)})

	c := q.consume(Q(2), USD(10), day(2024, time.January, 11))

	if got := c.weightedDays.String(); got != "20" {
		t.Errorf("weightedDays = %s, want 20 (10 days x 2 shares)", got)
	}
}
