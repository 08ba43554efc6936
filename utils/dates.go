// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

var germanWeekdays = [...]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

// FormatGermanDate renders a date the way the website shows it,
// e.g. "Montag, 06.05.2024". A nil date becomes "Nicht angegeben".
func FormatGermanDate(t *time.Time) string {
	if t == nil {
		return "Nicht angegeben"
	}
	return fmt.Sprintf("%s, %s", germanWeekdays[t.Weekday()], t.Format("02.01.2006"))
}
