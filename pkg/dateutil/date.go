package dateutil

import (
	"time"
)

const DateFormat = "2006-01-02"

// Date truncates a time to midnight UTC. All calendar-date fields in the
// database hold values produced by this function, which keeps day arithmetic
// exact regardless of the wall-clock timezone.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// DaysBetween returns to - from in whole days. Negative when to is before
// from.
func DaysBetween(from, to time.Time) int {
	return int(Date(to).Sub(Date(from)).Hours() / 24)
}

// BeginningOfDay truncates to local midnight. Cron scheduling uses it to
// align runs on day boundaries of the server timezone.
func BeginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func NextDay(t time.Time) time.Time {
	return BeginningOfDay(t).AddDate(0, 0, 1)
}

func IsConsecutiveDay(last, current time.Time) bool {
	return DaysBetween(last, current) == 1
}

// WeekStart returns the Monday of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	d := Date(t)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	return d.AddDate(0, 0, -offset)
}

func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}

// Weekdays returns Monday through Friday of the ISO week containing t.
func Weekdays(t time.Time) []time.Time {
	monday := WeekStart(t)
	days := make([]time.Time, 0, 5)
	for i := 0; i < 5; i++ {
		days = append(days, monday.AddDate(0, 0, i))
	}

	return days
}
