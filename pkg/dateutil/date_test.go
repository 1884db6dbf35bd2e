package dateutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		n     int
		want  Date
	}{
		{"same month", NewDate(2025, time.January, 10), 5, NewDate(2025, time.January, 15)},
		{"month boundary", NewDate(2025, time.January, 30), 3, NewDate(2025, time.February, 2)},
		{"year boundary backwards", NewDate(2025, time.January, 1), -10, NewDate(2024, time.December, 22)},
		{"year boundary forwards", NewDate(2025, time.October, 29), 10, NewDate(2025, time.November, 8)},
		{"leap day", NewDate(2024, time.February, 28), 1, NewDate(2024, time.February, 29)},
		{"after leap day", NewDate(2024, time.February, 28), 2, NewDate(2024, time.March, 1)},
		{"non leap year", NewDate(2025, time.February, 28), 1, NewDate(2025, time.March, 1)},
		{"zero", NewDate(2025, time.June, 6), 0, NewDate(2025, time.June, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddDays(tt.start, tt.n)
			if !SameDay(got, tt.want) {
				t.Errorf("AddDays(%v, %d) = %v, want %v", tt.start, tt.n, got, tt.want)
			}
		})
	}
}

func TestNewDateNormalizes(t *testing.T) {
	got := NewDate(2025, time.February, 30)
	if got != NewDate(2025, time.March, 2) {
		t.Errorf("NewDate(2025-02-30) = %v, want 2025-03-02", got)
	}
}

func TestDateAsMapKey(t *testing.T) {
	set := map[Date]struct{}{}
	set[MustParseDate("2025-01-01")] = struct{}{}
	set[NewDate(2024, time.December, 32)] = struct{}{}
	set[FromTime(time.Date(2025, 1, 1, 23, 59, 0, 0, time.FixedZone("TRT", 3*3600)))] = struct{}{}

	if len(set) != 1 {
		t.Errorf("expected equal days to collapse to one key, got %d keys", len(set))
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-12-29", "2025-01-01", 3},
		{"2025-01-01", "2024-12-29", -3},
		{"2025-03-01", "2025-03-31", 30},
		{"2024-02-01", "2024-03-01", 29},
		{"2025-06-06", "2025-06-06", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"->"+tt.b, func(t *testing.T) {
			got := DaysBetween(MustParseDate(tt.a), MustParseDate(tt.b))
			if got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"ISO format YYYY-MM-DD", "2025-01-15", NewDate(2025, time.January, 15), false},
		{"dotted format rejected", "15.01.2025", Date{}, true},
		{"impossible day", "2025-02-30", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && result != tt.want {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestCompareAndSort(t *testing.T) {
	dates := []Date{
		MustParseDate("2025-06-09"),
		MustParseDate("2024-12-30"),
		MustParseDate("2025-01-02"),
		MustParseDate("2025-01-01"),
	}
	Sort(dates)

	want := []string{"2024-12-30", "2025-01-01", "2025-01-02", "2025-06-09"}
	for i, d := range dates {
		if d.String() != want[i] {
			t.Errorf("dates[%d] = %s, want %s", i, d, want[i])
		}
	}

	if !dates[0].Before(dates[1]) || !dates[3].After(dates[2]) {
		t.Error("Before/After disagree with sort order")
	}
}

func TestEach(t *testing.T) {
	var got []Date
	Each(MustParseDate("2024-12-30"), MustParseDate("2025-01-02"), func(d Date) {
		got = append(got, d)
	})
	if len(got) != 4 {
		t.Fatalf("Each visited %d days, want 4", len(got))
	}
	if got[2] != MustParseDate("2025-01-01") {
		t.Errorf("third day = %v, want 2025-01-01", got[2])
	}
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Date{"d": NewDate(2025, time.April, 23)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"d":"2025-04-23"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var back struct{ D Date }
	if err := json.Unmarshal([]byte(`{"D":"2025-05-19"}`), &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.D != NewDate(2025, time.May, 19) {
		t.Errorf("Unmarshal() = %v", back.D)
	}
}
