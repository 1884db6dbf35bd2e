package planner

import (
	"sort"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/pkg/dateutil"
)

const (
	// MaxBridgeableWorkingDays is the longest gap that still yields candidates
	MaxBridgeableWorkingDays = 7

	baseScore       = 15
	adjacencyWindow = 7
	adjacencyBonus  = 5
	nearThreshold   = 7
	denseThreshold  = 10
)

// Candidate is a weekday inside a short gap together with its desirability score
type Candidate struct {
	Date  dateutil.Date `json:"date"`
	Score int           `json:"score"`
}

// Gap describes the working days strictly between two adjacent clusters
type Gap struct {
	Start       dateutil.Date // last day of the earlier cluster
	End         dateutil.Date // first day of the later cluster
	Days        int
	WorkingDays int
}

// NewGap measures the gap between two clusters in scan order
func NewGap(before, after Cluster) Gap {
	gap := Gap{
		Start: before.Last(),
		End:   after.First(),
	}
	gap.Days = dateutil.DaysBetween(gap.Start, gap.End) - 1
	for offset := 1; offset <= gap.Days; offset++ {
		if gap.Start.AddDays(offset).IsWeekday() {
			gap.WorkingDays++
		}
	}
	return gap
}

// Bridgeable reports whether the gap is short enough to take leave in
func (g Gap) Bridgeable() bool {
	return g.WorkingDays <= MaxBridgeableWorkingDays
}

// ScoreCandidates walks every adjacent cluster pair and scores the
// weekdays of each bridgeable gap.
func ScoreCandidates(clusters []Cluster, holidays calendar.HolidaySet) []Candidate {
	var candidates []Candidate

	for i := 0; i+1 < len(clusters); i++ {
		before, after := clusters[i], clusters[i+1]
		gap := NewGap(before, after)
		if !gap.Bridgeable() {
			continue
		}

		for offset := 1; offset <= gap.Days; offset++ {
			day := gap.Start.AddDays(offset)
			if !day.IsWeekday() || holidays.Contains(day) {
				continue
			}
			candidates = append(candidates, Candidate{
				Date:  day,
				Score: scoreLeave(day, gap.WorkingDays, before, after),
			})
		}
	}
	return candidates
}

// scoreLeave favors short gaps and days surrounded by many off days
func scoreLeave(day dateutil.Date, workingDays int, before, after Cluster) int {
	score := baseScore - workingDays

	adjacent := countNear(day, before) + countNear(day, after)
	if adjacent >= nearThreshold {
		score += adjacencyBonus
	}
	if adjacent >= denseThreshold {
		score += adjacencyBonus
	}
	return score
}

func countNear(day dateutil.Date, cluster Cluster) int {
	n := 0
	for _, d := range cluster {
		diff := dateutil.DaysBetween(day, d)
		if diff >= -adjacencyWindow && diff <= adjacencyWindow {
			n++
		}
	}
	return n
}

// SelectLeaves keeps the maxLeaves best candidates, highest score first and
// earlier day on ties, and returns their days in chronological order.
// The input slice is not modified.
func SelectLeaves(candidates []Candidate, maxLeaves int) []dateutil.Date {
	if maxLeaves <= 0 {
		return nil
	}

	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Date.Before(ranked[j].Date)
	})

	if len(ranked) > maxLeaves {
		ranked = ranked[:maxLeaves]
	}

	leaves := make([]dateutil.Date, len(ranked))
	for i, c := range ranked {
		leaves[i] = c.Date
	}
	dateutil.Sort(leaves)
	return leaves
}
