package report

import (
	"fmt"
	"io"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/internal/locale"
	"github.com/username/leave-planner/internal/planner"
	"github.com/username/leave-planner/pkg/dateutil"
)

// Summary is everything computed for one leave budget. It does not depend on
// the display language.
type Summary struct {
	Year                 int                `json:"year"`
	MaxLeaves            int                `json:"maxLeaves"`
	ProposedLeaves       []dateutil.Date    `json:"proposedLeaves"`
	Periods              []planner.Period   `json:"periods"`
	TotalConsecutiveDays int                `json:"totalConsecutiveDays"`
	TotalOffDays         int                `json:"totalOffDays"`
	Holidays             []calendar.Holiday `json:"holidays"`

	holidays calendar.HolidaySet
	leaves   calendar.HolidaySet
}

// Build computes the plan for maxLeaves and everything derived from it
func Build(p *planner.Planner, table calendar.HolidayTable, maxLeaves int) (*Summary, error) {
	plan, err := p.ComputeLeavePlan(maxLeaves)
	if err != nil {
		return nil, err
	}

	periods, total := p.ComputeConsecutivePeriods(plan.ProposedLeaves)
	offDays := p.ComputeAllOffDays(plan.ProposedLeaves)

	return &Summary{
		Year:                 plan.Year,
		MaxLeaves:            plan.MaxLeaves,
		ProposedLeaves:       plan.ProposedLeaves,
		Periods:              periods,
		TotalConsecutiveDays: total,
		TotalOffDays:         offDays.Len(),
		Holidays:             table.Entries(),
		holidays:             p.Holidays(),
		leaves:               calendar.NewHolidaySet(plan.ProposedLeaves...),
	}, nil
}

// Classify tells how the summary treats a day
func (s *Summary) Classify(d dateutil.Date) calendar.DayType {
	return calendar.Classify(d, s.holidays, s.leaves)
}

// PeriodView is a consecutive period ready for display
type PeriodView struct {
	First  string `json:"first"`
	Last   string `json:"last"`
	Length int    `json:"length"`
	Line   string `json:"line"`
}

// HolidayView is a holiday ready for display
type HolidayView struct {
	Name  string   `json:"name"`
	Dates []string `json:"dates"`
}

// View holds the localized strings of a summary
type View struct {
	Lang          locale.Lang   `json:"lang"`
	ProposedTitle string        `json:"proposedTitle"`
	Leaves        []string      `json:"leaves"`
	PeriodsTitle  string        `json:"periodsTitle"`
	Periods       []PeriodView  `json:"periods"`
	TotalPeriods  string        `json:"totalPeriods"`
	TotalOffDays  string        `json:"totalOffDays"`
	HolidaysTitle string        `json:"holidaysTitle"`
	Holidays      []HolidayView `json:"holidays"`
}

// Localize renders the summary with the given messages. It does not
// recompute anything.
func (s *Summary) Localize(m *locale.Messages) *View {
	v := &View{
		Lang:          m.Lang,
		ProposedTitle: m.ProposedTitle(s.Year, s.MaxLeaves, len(s.ProposedLeaves)),
		Leaves:        make([]string, 0, len(s.ProposedLeaves)),
		PeriodsTitle:  m.PeriodsTitle,
		Periods:       make([]PeriodView, 0, len(s.Periods)),
		TotalPeriods:  m.TotalPeriods(s.TotalConsecutiveDays),
		TotalOffDays:  m.TotalOffDays(s.Year, s.TotalOffDays),
		HolidaysTitle: m.HolidaysTitle,
		Holidays:      make([]HolidayView, 0, len(s.Holidays)),
	}

	for _, leave := range s.ProposedLeaves {
		v.Leaves = append(v.Leaves, m.FormatLong(leave))
	}

	for _, period := range s.Periods {
		first, last := m.FormatShort(period.First()), m.FormatShort(period.Last())
		v.Periods = append(v.Periods, PeriodView{
			First:  first,
			Last:   last,
			Length: period.Len(),
			Line:   m.PeriodLine(first, last, period.Len()),
		})
	}

	for _, h := range s.Holidays {
		hv := HolidayView{Name: h.Name, Dates: make([]string, 0, len(h.Dates))}
		for _, d := range h.Dates {
			hv.Dates = append(hv.Dates, m.FormatLong(d))
		}
		v.Holidays = append(v.Holidays, hv)
	}

	return v
}

// WriteText prints the view the way the terminal report looks
func WriteText(w io.Writer, v *View) error {
	ew := &errWriter{w: w}

	ew.printf("\n%s\n", v.ProposedTitle)
	for _, leave := range v.Leaves {
		ew.printf("%s\n", leave)
	}

	ew.printf("\n%s\n", v.PeriodsTitle)
	for _, period := range v.Periods {
		ew.printf("- %s\n", period.Line)
	}

	ew.printf("\n%s\n", v.TotalPeriods)
	ew.printf("%s\n", v.TotalOffDays)

	if ew.err != nil {
		return fmt.Errorf("failed to write report: %w", ew.err)
	}
	return nil
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
