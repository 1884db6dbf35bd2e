package planner

import (
	"fmt"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/pkg/dateutil"
)

// scanMargin widens the holiday range so surrounding weekends join their clusters
const scanMargin = 10

// Cluster is a maximal run of consecutive non-working days in chronological order
type Cluster []dateutil.Date

// First returns the earliest day of the cluster
func (c Cluster) First() dateutil.Date { return c[0] }

// Last returns the latest day of the cluster
func (c Cluster) Last() dateutil.Date { return c[len(c)-1] }

// IsOffDay reports whether date is a Saturday, Sunday or holiday
func IsOffDay(date dateutil.Date, holidays calendar.HolidaySet) bool {
	return date.IsWeekend() || holidays.Contains(date)
}

// BuildClusters scans [start, end] and groups consecutive off days.
// Clusters come out in scan order and never share a day.
func BuildClusters(start, end dateutil.Date, holidays calendar.HolidaySet) ([]Cluster, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}

	var clusters []Cluster
	var current Cluster

	dateutil.Each(start, end, func(day dateutil.Date) {
		if IsOffDay(day, holidays) {
			current = append(current, day)
			return
		}
		if len(current) > 0 {
			clusters = append(clusters, current)
			current = nil
		}
	})

	if len(current) > 0 {
		clusters = append(clusters, current)
	}
	return clusters, nil
}

// ScanWindow returns the range to cluster: from ten days before the first
// holiday to ten days after the last. With no holidays the target year is
// used instead, so weekends alone still produce clusters.
func ScanWindow(holidays calendar.HolidaySet, year int) (start, end dateutil.Date) {
	first, last, ok := holidays.Bounds()
	if !ok {
		first = dateutil.NewDate(year, 1, 1)
		last = dateutil.NewDate(year, 12, 31)
	}
	return first.AddDays(-scanMargin), last.AddDays(scanMargin)
}
