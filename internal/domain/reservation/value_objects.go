package reservation

import (
	"errors"
	"time"

	"hotelier/internal/pkg/dates"
)

var ErrInvalidStay = errors.New("check-out must be after check-in")

// Stay is a calendar-day date range: nights run from check-in (inclusive) to
// check-out (exclusive), so a guest checking out never pays for the
// check-out day itself.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	checkIn = dates.Normalize(checkIn)
	checkOut = dates.Normalize(checkOut)
	if !checkOut.After(checkIn) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s Stay) CheckIn() time.Time {
	return s.checkIn
}

func (s Stay) CheckOut() time.Time {
	return s.checkOut
}

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Covers reports whether date falls inside the stay treated as a closed
// interval: the check-out day itself counts as occupied.
func (s Stay) Covers(date time.Time) bool {
	date = dates.Normalize(date)
	return !date.Before(s.checkIn) && !date.After(s.checkOut)
}

// OverlapsRange uses the half-open [checkIn, checkOut) test, so back-to-back
// bookings sharing a turnover date do not conflict. Range overlap is looser
// than the closed-interval Covers; the two must not be unified.
func (s Stay) OverlapsRange(checkIn, checkOut time.Time) bool {
	checkIn = dates.Normalize(checkIn)
	checkOut = dates.Normalize(checkOut)
	return s.checkIn.Before(checkOut) && s.checkOut.After(checkIn)
}

func (s Stay) Overlaps(other Stay) bool {
	return s.OverlapsRange(other.checkIn, other.checkOut)
}

// EachNight visits every billed day of the stay in order, check-in inclusive
// and check-out exclusive.
func (s Stay) EachNight(fn func(day time.Time)) {
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
