package earnings

import "github.com/shopspring/decimal"

// lot represents a single open purchase of a security, used for cost basis
// calculations. Lots are scratch state of one matching pass, never persisted.
type lot struct {
	date        Date
	remaining   Quantity
	costPerUnit Money
}

// lotQueue is a FIFO of open lots for one symbol. Consumption advances a head
// cursor instead of re-slicing the front, so draining the queue stays linear.
type lotQueue struct {
	lots []lot
	head int
}

// push appends a new lot at the back of the queue.
func (q *lotQueue) push(l lot) { q.lots = append(q.lots, l) }

// Len returns the number of open lots.
func (q *lotQueue) Len() int { return len(q.lots) - q.head }

// consumption is the outcome of taking a sale out of the queue.
type consumption struct {
	realized     Money           // (sale per unit - lot cost per unit) * take, summed
	matched      Quantity        // quantity actually taken from lots
	oldest       Date            // acquisition date of the first lot touched
	weightedDays decimal.Decimal // holding days * take, summed over matched lots
}

// consume takes up to want units off the front of the queue, oldest lot
// first, realizing against salePerUnit. If want exceeds the open inventory
// the remainder is left unmatched: no cost basis is invented for it.
func (q *lotQueue) consume(want Quantity, salePerUnit Money, saleDate Date) consumption {
	var c consumption
	c.realized = Money{cur: salePerUnit.cur}
	for want.IsPositive() && q.Len() > 0 {
		current := &q.lots[q.head]
		take := current.remaining.Min(want)

		c.realized = c.realized.Add(salePerUnit.Sub(current.costPerUnit).Mul(take))
		c.matched = c.matched.Add(take)
		if c.oldest.IsZero() {
			c.oldest = current.date
		}
		if !current.date.IsZero() && !saleDate.IsZero() {
			days := decimal.NewFromInt(int64(current.date.DaysUntil(saleDate)))
			c.weightedDays = c.weightedDays.Add(days.Mul(take.value))
		}

		want = want.Sub(take)
		current.remaining = current.remaining.Sub(take)
		if current.remaining.IsZero() {
			q.head++
		}
	}
	return c
}
