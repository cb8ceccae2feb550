package hotel

import (
	"errors"
	"time"

	"hotelier/internal/pkg/dates"
)

var (
	ErrInvalidWindowRange      = errors.New("window start must not be after end")
	ErrInvalidWindowMultiplier = errors.New("window multiplier must be between 0.5 and 1.5")
)

const (
	MinWindowMultiplier = 0.5
	MaxWindowMultiplier = 1.5
)

// RateWindow applies a multiplier to the nightly rate for every date in its
// inclusive [start, end] range.
type RateWindow struct {
	start      time.Time
	end        time.Time
	multiplier float64
}

func NewRateWindow(start, end time.Time, multiplier float64) (RateWindow, error) {
	start = dates.Normalize(start)
	end = dates.Normalize(end)
	if start.After(end) {
		return RateWindow{}, ErrInvalidWindowRange
	}
	if multiplier < MinWindowMultiplier || multiplier > MaxWindowMultiplier {
		return RateWindow{}, ErrInvalidWindowMultiplier
	}
	return RateWindow{start: start, end: end, multiplier: multiplier}, nil
}

func (w RateWindow) Contains(date time.Time) bool {
	date = dates.Normalize(date)
	return !date.Before(w.start) && !date.After(w.end)
}

func (w RateWindow) Start() time.Time    { return w.start }
func (w RateWindow) End() time.Time      { return w.end }
func (w RateWindow) Multiplier() float64 { return w.multiplier }
