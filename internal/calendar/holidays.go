package calendar

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/username/leave-planner/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMalformedDate is returned when a holiday date is not YYYY-MM-DD
	ErrMalformedDate = errors.New("malformed holiday date")

	// ErrMalformedTable is returned when the table is not a name -> date(s) mapping
	ErrMalformedTable = errors.New("malformed holiday table")
)

// HolidayTable maps a holiday name to its days. Multi-day holidays keep their order.
type HolidayTable map[string][]dateutil.Date

// Holiday is a single named entry of the table
type Holiday struct {
	Name  string          `json:"name"`
	Dates []dateutil.Date `json:"dates"`
}

// dateList accepts either a single date string or a list of them
type dateList []string

func (l *dateList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = dateList{value.Value}
	case yaml.SequenceNode:
		items := make(dateList, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: line %d: nested lists are not allowed", ErrMalformedTable, item.Line)
			}
			items = append(items, item.Value)
		}
		*l = items
	default:
		return fmt.Errorf("%w: line %d: expected a date or a list of dates", ErrMalformedTable, value.Line)
	}
	return nil
}

// DecodeHolidayTable reads a YAML (or JSON, which YAML accepts) table
func DecodeHolidayTable(r io.Reader) (HolidayTable, error) {
	raw := map[string]dateList{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return HolidayTable{}, nil
		}
		if errors.Is(err, ErrMalformedTable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}

	converted := make(map[string][]string, len(raw))
	for name, dates := range raw {
		converted[name] = dates
	}
	return ParseHolidayTable(converted)
}

// ParseHolidayTable converts string dates into a HolidayTable
func ParseHolidayTable(raw map[string][]string) (HolidayTable, error) {
	table := make(HolidayTable, len(raw))
	for name, values := range raw {
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: holiday %q has no dates", ErrMalformedTable, name)
		}
		dates := make([]dateutil.Date, 0, len(values))
		for _, value := range values {
			date, err := dateutil.ParseDate(value)
			if err != nil {
				return nil, fmt.Errorf("%w: holiday %q: %q", ErrMalformedDate, name, value)
			}
			dates = append(dates, date)
		}
		table[name] = dates
	}
	return table, nil
}

// Dates flattens the table into a set of unique days
func (t HolidayTable) Dates() HolidaySet {
	set := make(HolidaySet)
	for _, dates := range t {
		set.Add(dates...)
	}
	return set
}

// Entries returns the holidays ordered by their first day, then by name
func (t HolidayTable) Entries() []Holiday {
	entries := make([]Holiday, 0, len(t))
	for name, dates := range t {
		entries = append(entries, Holiday{Name: name, Dates: slices.Clone(dates)})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Dates[0], entries[j].Dates[0]
		if a == b {
			return entries[i].Name < entries[j].Name
		}
		return a.Before(b)
	})
	return entries
}

// HolidaySet is a set of calendar days keyed by the day itself
type HolidaySet map[dateutil.Date]struct{}

// NewHolidaySet builds a set from the given days
func NewHolidaySet(dates ...dateutil.Date) HolidaySet {
	set := make(HolidaySet, len(dates))
	set.Add(dates...)
	return set
}

func (s HolidaySet) Add(dates ...dateutil.Date) {
	for _, d := range dates {
		s[d] = struct{}{}
	}
}

func (s HolidaySet) Contains(date dateutil.Date) bool {
	_, ok := s[date]
	return ok
}

func (s HolidaySet) Len() int {
	return len(s)
}

// Union returns a new set holding the days of both sets
func (s HolidaySet) Union(other HolidaySet) HolidaySet {
	out := make(HolidaySet, len(s)+len(other))
	for d := range s {
		out[d] = struct{}{}
	}
	for d := range other {
		out[d] = struct{}{}
	}
	return out
}

// Sorted returns the days in chronological order
func (s HolidaySet) Sorted() []dateutil.Date {
	dates := make([]dateutil.Date, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	dateutil.Sort(dates)
	return dates
}

// Bounds returns the earliest and latest day; ok is false for an empty set
func (s HolidaySet) Bounds() (first, last dateutil.Date, ok bool) {
	for d := range s {
		if !ok || d.Before(first) {
			first = d
		}
		if !ok || d.After(last) {
			last = d
		}
		ok = true
	}
	return first, last, ok
}

// InYear keeps only the days that fall in year
func (s HolidaySet) InYear(year int) HolidaySet {
	out := make(HolidaySet)
	for d := range s {
		if d.Year() == year {
			out[d] = struct{}{}
		}
	}
	return out
}
