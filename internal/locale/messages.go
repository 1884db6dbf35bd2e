package locale

import (
	"fmt"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/pkg/dateutil"
)

// Messages is the string table of one language
type Messages struct {
	Lang Lang

	PageTitle      string
	MaxLeavesLabel string
	Calculate      string
	HolidaysTitle  string
	PeriodsTitle   string
	InvalidCount   string
	GenericError   string

	DateHeader   string
	DayHeader    string
	TypeHeader   string
	StartHeader  string
	EndHeader    string
	LengthHeader string
	NameHeader   string

	dayTypes map[calendar.DayType]string

	months   [12]string
	weekdays [7]string // Sunday first, like time.Weekday

	proposedTitle string // year, days used, days requested
	periodLine    string // first, last, length
	totalPeriods  string
	totalOffDays  string // year, count
	daysSuffix    string
}

var catalog = map[Lang]*Messages{
	Turkish: {
		Lang:           Turkish,
		PageTitle:      "İzin Planlayıcı",
		MaxLeavesLabel: "Maksimum izin günü sayısı",
		Calculate:      "Hesapla",
		HolidaysTitle:  "Resmi Tatiller",
		PeriodsTitle:   "Uzun Hafta Sonu/Tatil Dönemleri:",
		InvalidCount:   "Lütfen 1-30 arasında bir sayı girin.",
		GenericError:   "Bir hata oluştu. Lütfen tekrar deneyin.",
		DateHeader:     "Tarih",
		DayHeader:      "Gün",
		TypeHeader:     "Tür",
		StartHeader:    "Başlangıç",
		EndHeader:      "Bitiş",
		LengthHeader:   "Gün sayısı",
		NameHeader:     "Tatil",
		dayTypes: map[calendar.DayType]string{
			calendar.DayTypeWorkday: "İş günü",
			calendar.DayTypeWeekend: "Hafta sonu",
			calendar.DayTypeHoliday: "Resmi tatil",
			calendar.DayTypeLeave:   "İzin",
		},
		months: [12]string{
			"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
			"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
		},
		weekdays:      [7]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"},
		proposedTitle: "%d için Önerilen İzin Günleri (%d günün %d günü kullanılıyor):",
		periodLine:    "%s ile %s arası: %d gün",
		totalPeriods:  "Toplam ardışık tatil günleri: %d",
		totalOffDays:  "%d yılında toplam tatil günleri (tüm haftasonları + resmi tatiller + izinler): %d",
		daysSuffix:    "gün",
	},
	English: {
		Lang:           English,
		PageTitle:      "Leave Planner",
		MaxLeavesLabel: "Maximum number of leave days",
		Calculate:      "Calculate",
		HolidaysTitle:  "Public Holidays",
		PeriodsTitle:   "Long Weekends/Holiday Periods:",
		InvalidCount:   "Please enter a number between 1 and 30.",
		GenericError:   "Something went wrong. Please try again.",
		DateHeader:     "Date",
		DayHeader:      "Day",
		TypeHeader:     "Type",
		StartHeader:    "Start",
		EndHeader:      "End",
		LengthHeader:   "Days",
		NameHeader:     "Holiday",
		dayTypes: map[calendar.DayType]string{
			calendar.DayTypeWorkday: "Workday",
			calendar.DayTypeWeekend: "Weekend",
			calendar.DayTypeHoliday: "Public holiday",
			calendar.DayTypeLeave:   "Leave",
		},
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		proposedTitle: "Suggested Leave Days for %d (using %[3]d of %[2]d days):",
		periodLine:    "%s to %s: %d days",
		totalPeriods:  "Total consecutive days off: %d",
		totalOffDays:  "Total days off in %d (all weekends + public holidays + leaves): %d",
		daysSuffix:    "days",
	},
}

// ProposedTitle heads the list of proposed leave days
func (m *Messages) ProposedTitle(year, requested, used int) string {
	return fmt.Sprintf(m.proposedTitle, year, requested, used)
}

// PeriodLine describes one consecutive period
func (m *Messages) PeriodLine(first, last string, length int) string {
	return fmt.Sprintf(m.periodLine, first, last, length)
}

func (m *Messages) TotalPeriods(total int) string {
	return fmt.Sprintf(m.totalPeriods, total)
}

func (m *Messages) TotalOffDays(year, count int) string {
	return fmt.Sprintf(m.totalOffDays, year, count)
}

// Days renders a day count such as "4 gün"
func (m *Messages) Days(n int) string {
	return fmt.Sprintf("%d %s", n, m.daysSuffix)
}

// DayType names a kind of day
func (m *Messages) DayType(t calendar.DayType) string {
	if label, ok := m.dayTypes[t]; ok {
		return label
	}
	return t.String()
}

// WeekdayName is the localized name of the day of week of d
func (m *Messages) WeekdayName(d dateutil.Date) string {
	return m.weekdays[d.Weekday()]
}
