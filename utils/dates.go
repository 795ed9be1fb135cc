// utils/dates.go
package utils

import "time"

// DayFormat is how dates cross the wire. Days are local-calendar days;
// formatting in UTC would shift entries around midnight.
const DayFormat = "2006-01-02"

func Today() string {
	return FormatDay(time.Now())
}

func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.Local)
}

// ValidDay reports whether s is a well-formed YYYY-MM-DD date.
func ValidDay(s string) bool {
	_, err := ParseDay(s)
	return err == nil
}

// DaysBefore returns the day n days before the given one. A malformed input
// comes back unchanged so callers can surface it as-is.
func DaysBefore(day string, n int) string {
	t, err := ParseDay(day)
	if err != nil {
		return day
	}
	return FormatDay(t.AddDate(0, 0, -n))
}
