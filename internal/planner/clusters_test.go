package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/pkg/dateutil"
)

func d(s string) dateutil.Date {
	return dateutil.MustParseDate(s)
}

func dates(values ...string) []dateutil.Date {
	out := make([]dateutil.Date, len(values))
	for i, v := range values {
		out[i] = d(v)
	}
	return out
}

func builtinHolidays(t *testing.T) calendar.HolidaySet {
	t.Helper()
	table, err := calendar.NewBuiltinSource().Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load builtin table: %v", err)
	}
	return table.Dates()
}

func TestBuildClusters_NewYear(t *testing.T) {
	holidays := calendar.NewHolidaySet(d("2025-01-01"))

	clusters, err := BuildClusters(d("2024-12-27"), d("2025-01-05"), holidays)
	if err != nil {
		t.Fatalf("BuildClusters() error = %v", err)
	}

	want := [][]string{
		{"2024-12-28", "2024-12-29"},
		{"2025-01-01"},
		{"2025-01-04", "2025-01-05"},
	}
	if len(clusters) != len(want) {
		t.Fatalf("clusters = %v, want %d clusters", clusters, len(want))
	}
	for i, cluster := range clusters {
		if len(cluster) != len(want[i]) {
			t.Fatalf("cluster[%d] = %v, want %v", i, cluster, want[i])
		}
		for j, day := range cluster {
			if day.String() != want[i][j] {
				t.Errorf("cluster[%d][%d] = %v, want %s", i, j, day, want[i][j])
			}
		}
	}
}

func TestBuildClusters_StartAndEndOnOffDays(t *testing.T) {
	// Sunday through Saturday: both ends are open clusters
	clusters, err := BuildClusters(d("2025-01-05"), d("2025-01-11"), calendar.NewHolidaySet())
	if err != nil {
		t.Fatalf("BuildClusters() error = %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("clusters = %v, want 2", clusters)
	}
	if clusters[0].First() != d("2025-01-05") || clusters[1].Last() != d("2025-01-11") {
		t.Errorf("clusters = %v", clusters)
	}
}

func TestBuildClusters_SingleDay(t *testing.T) {
	clusters, err := BuildClusters(d("2025-01-06"), d("2025-01-06"), calendar.NewHolidaySet())
	if err != nil {
		t.Fatalf("BuildClusters() error = %v", err)
	}
	if len(clusters) != 0 {
		t.Errorf("clusters = %v, want none for a single Monday", clusters)
	}
}

func TestBuildClusters_InvalidRange(t *testing.T) {
	_, err := BuildClusters(d("2025-01-02"), d("2025-01-01"), calendar.NewHolidaySet())
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("BuildClusters() error = %v, want ErrInvalidRange", err)
	}
}

func TestBuildClusters_Properties(t *testing.T) {
	holidays := builtinHolidays(t)
	start, end := ScanWindow(holidays, 2025)

	clusters, err := BuildClusters(start, end, holidays)
	if err != nil {
		t.Fatalf("BuildClusters() error = %v", err)
	}

	seen := make(map[dateutil.Date]int)
	for i, cluster := range clusters {
		if len(cluster) == 0 {
			t.Fatalf("cluster[%d] is empty", i)
		}
		for j, day := range cluster {
			if !IsOffDay(day, holidays) {
				t.Errorf("cluster[%d] holds working day %v", i, day)
			}
			if j > 0 && dateutil.DaysBetween(cluster[j-1], day) != 1 {
				t.Errorf("cluster[%d] is not contiguous at %v", i, day)
			}
			if prev, ok := seen[day]; ok {
				t.Errorf("%v in clusters %d and %d", day, prev, i)
			}
			seen[day] = i
		}
		if i > 0 && dateutil.DaysBetween(clusters[i-1].Last(), cluster.First()) < 2 {
			t.Errorf("clusters %d and %d are not separated by a working day", i-1, i)
		}
	}

	dateutil.Each(start, end, func(day dateutil.Date) {
		if _, ok := seen[day]; IsOffDay(day, holidays) != ok {
			t.Errorf("%v off=%v but clustered=%v", day, IsOffDay(day, holidays), ok)
		}
	})
}

func TestScanWindow(t *testing.T) {
	start, end := ScanWindow(builtinHolidays(t), 2025)
	if start != d("2024-12-22") || end != d("2025-11-08") {
		t.Errorf("ScanWindow() = %v..%v, want 2024-12-22..2025-11-08", start, end)
	}

	start, end = ScanWindow(calendar.NewHolidaySet(), 2026)
	if start != d("2025-12-22") || end != d("2027-01-10") {
		t.Errorf("ScanWindow(empty) = %v..%v, want 2025-12-22..2027-01-10", start, end)
	}
}
