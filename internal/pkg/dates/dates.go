// Package dates holds helpers for the calendar-day precision the booking
// domain works at. All dates are normalized to midnight UTC; time of day and
// timezones carry no meaning anywhere in the system.
package dates

import (
	"errors"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysIn reports the number of days in the given month; day zero of the
// following month is the last day of this one.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func Format(t time.Time) string {
	return t.Format(Layout)
}
