package dateutil

import (
	"fmt"
	"slices"
	"time"
)

const day = 24 * time.Hour

// Date is a calendar day without time-of-day or zone.
// The zero value is not a valid date. Date is comparable and is used
// directly as a map key, so two equal days always hash the same.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the normalized date for year/month/day.
// Out of range values roll over the way time.Date does (Feb 30 -> Mar 2).
func NewDate(year int, month time.Month, dayOfMonth int) Date {
	return FromTime(time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC))
}

// FromTime takes the calendar day of t in t's own location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(IsoLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return FromTime(t), nil
}

// MustParseDate is ParseDate for literals known to be valid
func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of the day
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after d; n may be negative
func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

// AddDays is the free-function form of Date.AddDays
func AddDays(d Date, n int) Date {
	return d.AddDays(n)
}

// SameDay reports whether a and b name the same calendar day
func SameDay(a, b Date) bool {
	return a.year == b.year && a.month == b.month && a.day == b.day
}

// DaysBetween returns the signed number of days from a to b
func DaysBetween(a, b Date) int {
	return int(b.Time().Sub(a.Time()) / day)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekday reports Monday-Friday
func (d Date) IsWeekday() bool {
	return IsWeekday(d.Time())
}

// IsWeekend reports Saturday or Sunday
func (d Date) IsWeekend() bool {
	return IsWeekend(d.Time())
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// Compare returns -1, 0 or +1 in chronological order
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Sort orders dates chronologically in place
func Sort(dates []Date) {
	slices.SortFunc(dates, Date.Compare)
}

// Each calls fn for every day in [start, end]
func Each(start, end Date, fn func(Date)) {
	for current := start; !current.After(end); current = current.AddDays(1) {
		fn(current)
	}
}
