package planner

import (
	"fmt"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// Plan is the outcome of a leave selection
type Plan struct {
	Year           int                 `json:"year"`
	MaxLeaves      int                 `json:"maxLeaves"`
	ProposedLeaves []dateutil.Date     `json:"proposedLeaves"`
	Holidays       calendar.HolidaySet `json:"-"`
	Candidates     int                 `json:"candidates"`
}

// Planner computes leave plans for one year against a fixed holiday set.
// It keeps no state between calls.
type Planner struct {
	year     int
	holidays calendar.HolidaySet
	logger   *zap.Logger
}

// NewPlanner creates a new Planner. The holiday set is shared, not copied,
// and must not be modified afterwards.
func NewPlanner(year int, holidays calendar.HolidaySet, logger *zap.Logger) *Planner {
	return &Planner{
		year:     year,
		holidays: holidays,
		logger:   logger,
	}
}

func (p *Planner) Year() int { return p.year }

func (p *Planner) Holidays() calendar.HolidaySet { return p.holidays }

// ComputeLeavePlan proposes at most maxLeaves leave days
func (p *Planner) ComputeLeavePlan(maxLeaves int) (*Plan, error) {
	if err := ValidateLeaveCount(maxLeaves); err != nil {
		return nil, err
	}

	start, end := ScanWindow(p.holidays, p.year)
	clusters, err := BuildClusters(start, end, p.holidays)
	if err != nil {
		return nil, fmt.Errorf("failed to build clusters: %w", err)
	}

	candidates := ScoreCandidates(clusters, p.holidays)
	leaves := SelectLeaves(candidates, maxLeaves)

	p.logger.Debug("Leave plan computed",
		zap.Int("max_leaves", maxLeaves),
		zap.Stringer("scan_start", start),
		zap.Stringer("scan_end", end),
		zap.Int("clusters", len(clusters)),
		zap.Int("candidates", len(candidates)),
		zap.Int("proposed", len(leaves)))

	return &Plan{
		Year:           p.year,
		MaxLeaves:      maxLeaves,
		ProposedLeaves: leaves,
		Holidays:       p.holidays,
		Candidates:     len(candidates),
	}, nil
}

// ComputeConsecutivePeriods groups leaves with the planner's holidays
func (p *Planner) ComputeConsecutivePeriods(leaves []dateutil.Date) ([]Period, int) {
	return ConsecutivePeriods(leaves, p.holidays)
}

// ComputeAllOffDays counts off days of the planner's year
func (p *Planner) ComputeAllOffDays(leaves []dateutil.Date) calendar.HolidaySet {
	return ComputeAllOffDays(p.year, p.holidays, leaves)
}
