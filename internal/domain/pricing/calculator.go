// Package pricing computes pre-discount stay totals from the room's
// category-marked-up nightly rate and the hotel's date-window modifiers.
package pricing

import (
	"time"

	"hotelier/internal/domain/hotel"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
)

type Calculator interface {
	Quote(r *room.Room, h *hotel.Hotel, stay reservation.Stay) float64
}

type NightlyCalculator struct{}

func NewNightlyCalculator() *NightlyCalculator {
	return &NightlyCalculator{}
}

// Quote accumulates effectiveRate × modifier for every billed night of the
// stay. The effective rate is recomputed from the raw base price on each
// call, so the markup never compounds.
func (c *NightlyCalculator) Quote(r *room.Room, h *hotel.Hotel, stay reservation.Stay) float64 {
	total := 0.0
	stay.EachNight(func(day time.Time) {
		total += r.EffectiveRate() * h.ModifierFor(day)
	})
	return total
}
