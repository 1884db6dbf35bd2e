package locale

import (
	"fmt"

	"github.com/username/leave-planner/pkg/dateutil"
)

// FormatLong renders weekday, day, month and year
func (m *Messages) FormatLong(d dateutil.Date) string {
	month := m.months[d.Month()-1]
	weekday := m.weekdays[d.Weekday()]
	if m.Lang == English {
		return fmt.Sprintf("%s, %02d %s %d", weekday, d.Day(), month, d.Year())
	}
	return fmt.Sprintf("%02d %s %d, %s", d.Day(), month, d.Year(), weekday)
}

// FormatShort renders day and month
func (m *Messages) FormatShort(d dateutil.Date) string {
	return fmt.Sprintf("%02d %s", d.Day(), m.months[d.Month()-1])
}
