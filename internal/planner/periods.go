package planner

import (
	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/pkg/dateutil"
)

const (
	// MinPeriodLength is the shortest run reported as a consecutive period
	MinPeriodLength = 3

	periodMargin = 7
)

// Period is a run of calendar-adjacent off days, oldest first
type Period []dateutil.Date

func (p Period) First() dateutil.Date { return p[0] }
func (p Period) Last() dateutil.Date  { return p[len(p)-1] }
func (p Period) Len() int             { return len(p) }

// ConsecutivePeriods merges leaves, holidays and the weekends around them and
// returns every run of at least MinPeriodLength adjacent days, plus the total
// number of days across those runs.
func ConsecutivePeriods(leaves []dateutil.Date, holidays calendar.HolidaySet) ([]Period, int) {
	days := holidays.Union(calendar.NewHolidaySet(leaves...))

	first, last, ok := days.Bounds()
	if !ok {
		return nil, 0
	}

	dateutil.Each(first.AddDays(-periodMargin), last.AddDays(periodMargin), func(d dateutil.Date) {
		if d.IsWeekend() {
			days.Add(d)
		}
	})

	var periods []Period
	var current Period
	flush := func() {
		if len(current) >= MinPeriodLength {
			periods = append(periods, current)
		}
	}

	for _, d := range days.Sorted() {
		if len(current) == 0 || dateutil.DaysBetween(current.Last(), d) == 1 {
			current = append(current, d)
			continue
		}
		flush()
		current = Period{d}
	}
	flush()

	total := 0
	for _, p := range periods {
		total += p.Len()
	}
	return periods, total
}

// ComputeAllOffDays returns every weekend day, holiday and leave day that
// falls inside year.
func ComputeAllOffDays(year int, holidays calendar.HolidaySet, leaves []dateutil.Date) calendar.HolidaySet {
	off := holidays.InYear(year)
	dateutil.Each(dateutil.NewDate(year, 1, 1), dateutil.NewDate(year, 12, 31), func(d dateutil.Date) {
		if d.IsWeekend() {
			off.Add(d)
		}
	})
	for _, d := range leaves {
		if d.Year() == year {
			off.Add(d)
		}
	}
	return off
}
