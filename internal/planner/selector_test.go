package planner

import (
	"reflect"
	"testing"

	"github.com/username/leave-planner/internal/calendar"
)

func TestNewGap(t *testing.T) {
	gap := NewGap(Cluster(dates("2024-12-28", "2024-12-29")), Cluster(dates("2025-01-01")))

	if gap.Start != d("2024-12-29") || gap.End != d("2025-01-01") {
		t.Errorf("gap bounds = %v..%v", gap.Start, gap.End)
	}
	if gap.Days != 2 {
		t.Errorf("Days = %d, want 2", gap.Days)
	}
	if gap.WorkingDays != 2 {
		t.Errorf("WorkingDays = %d, want 2", gap.WorkingDays)
	}
	if !gap.Bridgeable() {
		t.Error("Bridgeable() = false, want true")
	}
}

func TestScoreCandidates_NewYear(t *testing.T) {
	holidays := calendar.NewHolidaySet(d("2025-01-01"))
	clusters, err := BuildClusters(d("2024-12-28"), d("2025-01-05"), holidays)
	if err != nil {
		t.Fatalf("BuildClusters() error = %v", err)
	}

	got := ScoreCandidates(clusters, holidays)
	want := []Candidate{
		{Date: d("2024-12-30"), Score: 13},
		{Date: d("2024-12-31"), Score: 13},
		{Date: d("2025-01-02"), Score: 13},
		{Date: d("2025-01-03"), Score: 13},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScoreCandidates() = %v, want %v", got, want)
	}
}

func TestScoreCandidates_GateSkipsLongGaps(t *testing.T) {
	// Ten working days between the two weekends
	clusters := []Cluster{
		dates("2025-01-04", "2025-01-05"),
		dates("2025-01-18", "2025-01-19"),
	}

	gap := NewGap(clusters[0], clusters[1])
	if gap.WorkingDays != 10 || gap.Bridgeable() {
		t.Fatalf("gap = %+v, want 10 unbridgeable working days", gap)
	}

	if got := ScoreCandidates(clusters, calendar.NewHolidaySet()); len(got) != 0 {
		t.Errorf("ScoreCandidates() = %v, want none", got)
	}
}

func TestScoreCandidates_GateBoundary(t *testing.T) {
	// Seven working days: Mon 6th .. Tue 14th minus the weekend
	clusters := []Cluster{
		dates("2025-01-04", "2025-01-05"),
		dates("2025-01-15"),
	}
	got := ScoreCandidates(clusters, calendar.NewHolidaySet())
	if len(got) != 7 {
		t.Fatalf("candidates = %d, want 7", len(got))
	}
	for _, c := range got {
		if !c.Date.IsWeekday() {
			t.Errorf("weekend candidate %v", c.Date)
		}
		if c.Score != 8 {
			t.Errorf("%v score = %d, want 8", c.Date, c.Score)
		}
	}
}

func TestScoreCandidates_AdjacencyBonus(t *testing.T) {
	tests := []struct {
		name     string
		holidays []string
		day      string
		want     int
	}{
		{
			// 9 day cluster after a 5 day gap: 7 nearby days on the Friday
			name:     "one bonus",
			holidays: []string{"2025-03-31", "2025-04-01", "2025-04-02", "2025-04-03", "2025-04-04"},
			day:      "2025-03-28",
			want:     15,
		},
		{
			name:     "below threshold",
			holidays: []string{"2025-03-31", "2025-04-01", "2025-04-02", "2025-04-03", "2025-04-04"},
			day:      "2025-03-25",
			want:     10,
		},
		{
			// single bridge day between 9 and 6 day clusters
			name: "both bonuses",
			holidays: []string{
				"2025-03-31", "2025-04-01", "2025-04-02", "2025-04-03", "2025-04-04",
				"2025-04-08", "2025-04-09", "2025-04-10", "2025-04-11",
			},
			day:  "2025-04-07",
			want: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holidays := calendar.NewHolidaySet(dates(tt.holidays...)...)
			start, end := ScanWindow(holidays, 2025)
			clusters, err := BuildClusters(start, end, holidays)
			if err != nil {
				t.Fatalf("BuildClusters() error = %v", err)
			}

			for _, c := range ScoreCandidates(clusters, holidays) {
				if c.Date == d(tt.day) {
					if c.Score != tt.want {
						t.Errorf("score(%s) = %d, want %d", tt.day, c.Score, tt.want)
					}
					return
				}
			}
			t.Errorf("%s is not a candidate", tt.day)
		})
	}
}

func TestSelectLeaves(t *testing.T) {
	candidates := []Candidate{
		{Date: d("2025-01-10"), Score: 10},
		{Date: d("2025-01-02"), Score: 13},
		{Date: d("2025-01-06"), Score: 10},
		{Date: d("2024-12-30"), Score: 13},
		{Date: d("2025-05-02"), Score: 14},
	}
	original := append([]Candidate(nil), candidates...)

	tests := []struct {
		name      string
		maxLeaves int
		want      []string
	}{
		{"top one", 1, []string{"2025-05-02"}},
		{"tie broken by earlier date", 2, []string{"2024-12-30", "2025-05-02"}},
		{"chronological output", 4, []string{"2024-12-30", "2025-01-02", "2025-01-06", "2025-05-02"}},
		{"more than available", 30, []string{"2024-12-30", "2025-01-02", "2025-01-06", "2025-01-10", "2025-05-02"}},
		{"zero", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectLeaves(candidates, tt.maxLeaves)
			if len(got) != len(tt.want) {
				t.Fatalf("SelectLeaves() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].String() != tt.want[i] {
					t.Errorf("SelectLeaves()[%d] = %v, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}

	if !reflect.DeepEqual(candidates, original) {
		t.Error("SelectLeaves() modified its input")
	}
}
