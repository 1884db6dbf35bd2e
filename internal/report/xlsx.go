package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/username/leave-planner/internal/locale"
	"github.com/username/leave-planner/pkg/dateutil"
)

const (
	SheetPlan     = "Plan"
	SheetPeriods  = "Periods"
	SheetHolidays = "Holidays"
	SheetCalendar = "Calendar"
)

// Exporter writes summaries as xlsx workbooks
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Export builds a workbook with the plan, the periods, the holidays and a
// day by day calendar of the year
func (e *Exporter) Export(s *Summary, m *locale.Messages) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetPlan); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	rows := [][]any{{m.DateHeader, m.DayHeader}}
	for _, leave := range s.ProposedLeaves {
		rows = append(rows, []any{leave.String(), m.WeekdayName(leave)})
	}
	rows = append(rows, []any{}, []any{m.ProposedTitle(s.Year, s.MaxLeaves, len(s.ProposedLeaves))})
	if err := writeRows(f, SheetPlan, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	f.SetColWidth(SheetPlan, "A", "A", 14)
	f.SetColWidth(SheetPlan, "B", "B", 14)

	rows = [][]any{{m.StartHeader, m.EndHeader, m.LengthHeader}}
	for _, period := range s.Periods {
		rows = append(rows, []any{period.First().String(), period.Last().String(), period.Len()})
	}
	rows = append(rows, []any{},
		[]any{m.TotalPeriods(s.TotalConsecutiveDays)},
		[]any{m.TotalOffDays(s.Year, s.TotalOffDays)})
	if err := newSheet(f, SheetPeriods, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	f.SetColWidth(SheetPeriods, "A", "C", 14)

	rows = [][]any{{m.NameHeader, m.DateHeader, m.DayHeader}}
	for _, h := range s.Holidays {
		for _, d := range h.Dates {
			rows = append(rows, []any{h.Name, d.String(), m.WeekdayName(d)})
		}
	}
	if err := newSheet(f, SheetHolidays, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	f.SetColWidth(SheetHolidays, "A", "A", 30)
	f.SetColWidth(SheetHolidays, "B", "C", 14)

	// one row per day of the year
	rows = [][]any{{m.DateHeader, m.DayHeader, m.TypeHeader}}
	start := dateutil.NewDate(s.Year, 1, 1)
	end := dateutil.NewDate(s.Year, 12, 31)
	dateutil.Each(start, end, func(d dateutil.Date) {
		rows = append(rows, []any{d.String(), m.WeekdayName(d), m.DayType(s.Classify(d))})
	})
	if err := newSheet(f, SheetCalendar, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	f.SetColWidth(SheetCalendar, "A", "C", 16)

	f.SetActiveSheet(0)
	return f, nil
}

// WriteXLSX exports the summary and writes the workbook to w
func WriteXLSX(w io.Writer, s *Summary, m *locale.Messages) error {
	f, err := NewExporter().Export(s, m)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func newSheet(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	return writeRows(f, sheet, rows, headerStyle)
}

func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return f.SetRowStyle(sheet, 1, 1, headerStyle)
}
