package utils

import (
	"time"

	"github.com/julianstephens/timecraft/internal/constants"
)

// FormatISO formats a time as a YYYY-MM-DD date string.
func FormatISO(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseISO parses a YYYY-MM-DD date string at local midnight.
func ParseISO(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// Today returns the current calendar day at local midnight.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// TodayISO returns today's date string (YYYY-MM-DD).
func TodayISO() string {
	return FormatISO(Today())
}

// AddDays returns the date n calendar days after t.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// CycleDay describes one calendar day of a cycle for display purposes.
type CycleDay struct {
	ISO     string
	DayName string // three-letter weekday name
	Month   int
	Day     int
}

// CycleDays enumerates the seven calendar days of a cycle starting on the
// given date.
func CycleDays(startDate string) ([]CycleDay, error) {
	start, err := ParseISO(startDate)
	if err != nil {
		return nil, err
	}
	days := make([]CycleDay, 0, constants.CycleDays)
	for i := 0; i < constants.CycleDays; i++ {
		d := AddDays(start, i)
		days = append(days, CycleDay{
			ISO:     FormatISO(d),
			DayName: d.Weekday().String()[:3],
			Month:   int(d.Month()),
			Day:     d.Day(),
		})
	}
	return days, nil
}

// DisplayHour maps a stored hour on the 0-25 scale to the clock hour shown
// to the user. Hours past 24 belong to the next day visually only; the
// stored value keeps the unwrapped scale.
func DisplayHour(h int) int {
	if h >= 24 {
		return h - 24
	}
	return h
}

// WrapTemplateEnd normalizes an onboarding template's end hour: ends past
// 24 collapse onto the same calendar day (e.g. sleep 23-31 is stored as
// 23-7). This differs from the schedule grid, which stores hours up to 25
// and wraps only at display time; the stored-data convention is
// deliberately not reconciled here.
func WrapTemplateEnd(endH int) int {
	if endH > 24 {
		return endH - 24
	}
	return endH
}

// WithinCycle reports whether the date falls inside [start, end]. ISO date
// strings compare correctly as plain strings.
func WithinCycle(date, startDate, endDate string) bool {
	return date >= startDate && date <= endDate
}
