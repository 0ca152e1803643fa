package earnings

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// readDateFormats are the accepted input layouts, from strict ISO to the
// permissive month/day/year found in brokerage exports.
var readDateFormats = []string{
	DateFormat,
	"2006-1-2",
	"01/02/2006",
	"1/2/2006",
}

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// ParseDate parses a date string in any of the accepted layouts.
// A trailing "as of <date>" annotation, as emitted by some brokers on
// settlement rows, is stripped before parsing.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if i := strings.Index(strings.ToLower(s), " as of "); i >= 0 {
		s = s[:i]
	}
	for _, layout := range readDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in date RFC3339
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// DaysUntil returns the number of whole days from d to x.
func (d Date) DaysUntil(x Date) int {
	return int(x.time().Sub(d.time()) / (24 * time.Hour))
}

// MonthOf returns the calendar month the date belongs to.
func (d Date) MonthOf() Month { return Month{y: d.y, m: d.m} }

// MarshalJSON implements the json.Marshaler interface, zero dates render as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Month identifies a calendar month, the grouping key of the monthly
// money-market dividend table.
type Month struct {
	y int
	m time.Month
}

// String formats the month as "2006-01". The zero Month, used for rows whose
// date could not be parsed, renders as "unknown".
func (m Month) String() string {
	if m == (Month{}) {
		return "unknown"
	}
	return fmt.Sprintf("%04d-%02d", m.y, int(m.m))
}

// Before reports whether month m is before month n. The zero Month sorts first.
func (m Month) Before(n Month) bool {
	if m.y != n.y {
		return m.y < n.y
	}
	return m.m < n.m
}
