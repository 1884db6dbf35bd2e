package planner

import (
	"testing"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/pkg/dateutil"
	"go.uber.org/zap"
)

func TestConsecutivePeriods(t *testing.T) {
	tests := []struct {
		name      string
		leaves    []string
		holidays  []string
		wantSpans [][2]string
		wantTotal int
	}{
		{
			name:      "empty",
			wantTotal: 0,
		},
		{
			name:      "midweek holiday alone",
			holidays:  []string{"2025-01-01"},
			wantTotal: 0,
		},
		{
			name:      "bridged new year",
			leaves:    []string{"2024-12-30", "2024-12-31", "2025-01-02", "2025-01-03"},
			holidays:  []string{"2025-01-01"},
			wantSpans: [][2]string{{"2024-12-28", "2025-01-05"}},
			wantTotal: 9,
		},
		{
			name:      "long weekend holiday",
			holidays:  []string{"2025-06-06", "2025-06-07", "2025-06-08", "2025-06-09"},
			wantSpans: [][2]string{{"2025-06-06", "2025-06-09"}},
			wantTotal: 4,
		},
		{
			name:      "friday leave makes three days",
			leaves:    []string{"2025-05-02"},
			holidays:  []string{"2025-05-01"},
			wantSpans: [][2]string{{"2025-05-01", "2025-05-04"}},
			wantTotal: 4,
		},
		{
			name:      "leaves only",
			leaves:    []string{"2025-07-14"},
			wantSpans: [][2]string{{"2025-07-12", "2025-07-14"}},
			wantTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holidays := calendar.NewHolidaySet(dates(tt.holidays...)...)
			periods, total := ConsecutivePeriods(dates(tt.leaves...), holidays)

			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if len(periods) != len(tt.wantSpans) {
				t.Fatalf("periods = %v, want %v", periods, tt.wantSpans)
			}
			for i, p := range periods {
				if p.First().String() != tt.wantSpans[i][0] || p.Last().String() != tt.wantSpans[i][1] {
					t.Errorf("period[%d] = %v..%v, want %v", i, p.First(), p.Last(), tt.wantSpans[i])
				}
			}
		})
	}
}

func TestConsecutivePeriods_Builtin2025(t *testing.T) {
	p := NewPlanner(2025, builtinHolidays(t), zap.NewNop())
	plan, err := p.ComputeLeavePlan(DefaultLeaves)
	if err != nil {
		t.Fatalf("ComputeLeavePlan() error = %v", err)
	}

	periods, total := p.ComputeConsecutivePeriods(plan.ProposedLeaves)
	if len(periods) != 8 {
		t.Errorf("periods = %d, want 8", len(periods))
	}
	if total != 46 {
		t.Errorf("total = %d, want 46", total)
	}

	sum := 0
	for _, period := range periods {
		if period.Len() < MinPeriodLength {
			t.Errorf("period %v shorter than %d", period, MinPeriodLength)
		}
		for i := 1; i < period.Len(); i++ {
			if dateutil.DaysBetween(period[i-1], period[i]) != 1 {
				t.Errorf("period %v not adjacent at %v", period.First(), period[i])
			}
		}
		sum += period.Len()
	}
	if sum != total {
		t.Errorf("sum of lengths %d != total %d", sum, total)
	}
}

func TestComputeAllOffDays(t *testing.T) {
	holidays := builtinHolidays(t)

	off := ComputeAllOffDays(2025, holidays, nil)
	if off.Len() != 114 {
		t.Errorf("off days = %d, want 114 (104 weekend days + 10 weekday holidays)", off.Len())
	}

	off = ComputeAllOffDays(2025, holidays, dates("2024-12-30", "2025-01-02", "2025-05-02"))
	if off.Len() != 116 {
		t.Errorf("off days with leaves = %d, want 116", off.Len())
	}

	p := NewPlanner(2025, holidays, zap.NewNop())
	plan, err := p.ComputeLeavePlan(DefaultLeaves)
	if err != nil {
		t.Fatalf("ComputeLeavePlan() error = %v", err)
	}
	if got := p.ComputeAllOffDays(plan.ProposedLeaves).Len(); got != 126 {
		t.Errorf("off days for default plan = %d, want 126", got)
	}
}
