package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Periodicity determines the calendar interval a habit is tracked against.
type Periodicity string

const (
	Daily   Periodicity = "daily"
	Weekly  Periodicity = "weekly"
	Monthly Periodicity = "monthly"
	Yearly  Periodicity = "yearly"
)

// ErrInvalidPeriodicity is returned when a periodicity value is not one of
// daily, weekly, monthly, or yearly.
var ErrInvalidPeriodicity = errors.New("invalid periodicity")

// Parse converts a string into a Periodicity. Matching is case-insensitive.
func Parse(s string) (Periodicity, error) {
	switch Periodicity(strings.ToLower(strings.TrimSpace(s))) {
	case Daily:
		return Daily, nil
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	case Yearly:
		return Yearly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriodicity, s)
	}
}

// Valid reports whether p is a recognized periodicity.
func (p Periodicity) Valid() bool {
	switch p {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

func (p Periodicity) String() string {
	return string(p)
}

// All returns every periodicity in display order.
func All() []Periodicity {
	return []Periodicity{Daily, Weekly, Monthly, Yearly}
}

// Key identifies the calendar period a timestamp falls in. Two timestamps in
// the same period map to equal keys. The index counts periods from a fixed
// reference (1970-01-01), so the distance between two keys is exact calendar
// distance regardless of month lengths or leap years.
type Key struct {
	Periodicity Periodicity
	index       int
}

// Of maps a timestamp to the key of the period containing it. The calendar
// date is taken in the timestamp's own location; weekly keys group by ISO
// week (Monday through Sunday), so continuity does not depend on which
// weekday a completion lands on.
func Of(t time.Time, p Periodicity) Key {
	y, m, d := t.Date()
	var idx int
	switch p {
	case Daily:
		idx = dayIndex(y, m, d)
	case Weekly:
		// 1970-01-05 was a Monday, so Monday-aligned weeks start at
		// day index 4. Flooring groups Mon..Sun together.
		idx = floorDiv(dayIndex(y, m, d)-4, 7)
	case Monthly:
		idx = y*12 + int(m) - 1
	case Yearly:
		idx = y
	}
	return Key{Periodicity: p, index: idx}
}

// Distance returns the number of periods separating k from other: zero when
// they are the same period, positive when other is later. Keys of differing
// periodicities are not comparable; the caller guarantees they match.
func (k Key) Distance(other Key) int {
	return other.index - k.index
}

// Next returns the canonical successor period.
func (k Key) Next() Key {
	return Key{Periodicity: k.Periodicity, index: k.index + 1}
}

// Previous returns the immediately preceding period.
func (k Key) Previous() Key {
	return Key{Periodicity: k.Periodicity, index: k.index - 1}
}

// Before reports whether k is an earlier period than other.
func (k Key) Before(other Key) bool {
	return k.index < other.index
}

// Adjacent reports whether b is the immediate successor of a.
func Adjacent(a, b Key) bool {
	return a.Periodicity == b.Periodicity && a.Distance(b) == 1
}

// Start returns the first instant of the period in UTC.
func (k Key) Start() time.Time {
	switch k.Periodicity {
	case Daily:
		return epoch.AddDate(0, 0, k.index)
	case Weekly:
		return epoch.AddDate(0, 0, k.index*7+4)
	case Monthly:
		y := floorDiv(k.index, 12)
		m := k.index - y*12
		return time.Date(y, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
	case Yearly:
		return time.Date(k.index, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// String renders the canonical label for the period: 2024-01-31, 2024-W05,
// 2024-01, or 2024 depending on periodicity.
func (k Key) String() string {
	start := k.Start()
	switch k.Periodicity {
	case Daily:
		return start.Format("2006-01-02")
	case Weekly:
		year, week := start.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return start.Format("2006-01")
	case Yearly:
		return start.Format("2006")
	}
	return "invalid"
}

var epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// dayIndex returns the number of calendar days between the given civil date
// and 1970-01-01. Midnight UTC is always an exact multiple of 86400 seconds,
// so the division is exact for dates on either side of the epoch.
func dayIndex(y int, m time.Month, d int) int {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(t.Unix() / 86400)
}

// floorDiv divides rounding toward negative infinity, which Go's integer
// division does not do for negative operands.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
