package calendar

import (
	"context"

	"github.com/username/leave-planner/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeLeave
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Classify tells how a day is spent given the holidays and the proposed leaves.
// Holidays win over weekends, weekends over leaves.
func Classify(date dateutil.Date, holidays, leaves HolidaySet) DayType {
	switch {
	case holidays.Contains(date):
		return DayTypeHoliday
	case date.IsWeekend():
		return DayTypeWeekend
	case leaves.Contains(date):
		return DayTypeLeave
	default:
		return DayTypeWorkday
	}
}

// Source loads a holiday table
type Source interface {
	// Load returns the table; malformed entries are an error
	Load(ctx context.Context) (HolidayTable, error)

	// Name identifies the source in logs
	Name() string
}
