// Package booking runs the full booking pipeline: availability check,
// pre-discount quote, promo adjustment, reservation creation and earnings
// accrual.
package booking

import (
	"errors"

	"hotelier/internal/domain/discount"
	"hotelier/internal/domain/hotel"
	"hotelier/internal/domain/pricing"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/sequence"
)

var ErrRoomUnavailable = errors.New("room is not available for the requested dates")

type Factory struct {
	clock      clock.Clock
	sequence   sequence.Generator
	calculator pricing.Calculator
}

func NewFactory(clk clock.Clock, seq sequence.Generator, calc pricing.Calculator) *Factory {
	return &Factory{
		clock:      clk,
		sequence:   seq,
		calculator: calc,
	}
}

// Book reserves the room for the stay. Conflicts use the half-open range
// semantics, so a stay starting on another's check-out date is accepted.
// The hotel's earnings grow by the post-discount final price — actual
// revenue, not the pre-discount quote.
func (f *Factory) Book(
	h *hotel.Hotel,
	r *room.Room,
	guestName string,
	stay reservation.Stay,
	discountCode string,
) (*reservation.Reservation, discount.Result, error) {
	if !r.AvailableFor(stay.CheckIn(), stay.CheckOut()) {
		return nil, discount.Result{}, ErrRoomUnavailable
	}

	res, err := reservation.New(f.sequence.Next(), guestName, r.Name(), stay, f.clock.Now())
	if err != nil {
		return nil, discount.Result{}, err
	}

	quoted := f.calculator.Quote(r, h, stay)
	result := discount.Apply(discountCode, quoted, stay, r.EffectiveRate())
	res.SetPricing(result.Code, quoted, result.Total, result.Applied)

	r.AddReservation(res)
	h.AddEarnings(res.FinalPrice())
	return res, result, nil
}

// Simulate prices a stay without reserving anything.
func (f *Factory) Simulate(
	h *hotel.Hotel,
	r *room.Room,
	stay reservation.Stay,
	discountCode string,
) (quoted float64, result discount.Result) {
	quoted = f.calculator.Quote(r, h, stay)
	result = discount.Apply(discountCode, quoted, stay, r.EffectiveRate())
	return quoted, result
}
