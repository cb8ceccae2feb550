package room

import (
	"errors"
	"strings"
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/pkg/dates"
)

var (
	ErrEmptyName         = errors.New("room name cannot be empty")
	ErrNegativeBasePrice = errors.New("base price cannot be negative")
	ErrHasReservations   = errors.New("room has reservations")
)

// Room owns its reservation list. Availability is answered from that list
// alone; there is no separate occupancy index to drift out of sync.
type Room struct {
	name         string
	basePrice    float64
	category     Category
	reservations []*reservation.Reservation
}

func New(name string, basePrice float64, category Category) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if basePrice < 0 {
		return nil, ErrNegativeBasePrice
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return &Room{
		name:      name,
		basePrice: basePrice,
		category:  category,
	}, nil
}

// EffectiveRate is the nightly rate after category markup, before any
// date-window adjustment.
func (r *Room) EffectiveRate() float64 {
	return r.basePrice * r.category.Multiplier()
}

// AvailableOn treats reservations as closed intervals: the check-out day
// itself counts as occupied for single-date queries.
func (r *Room) AvailableOn(date time.Time) bool {
	for _, res := range r.reservations {
		if res.Stay().Covers(date) {
			return false
		}
	}
	return true
}

// AvailableFor uses the half-open overlap test, allowing back-to-back stays
// that share a turnover date.
func (r *Room) AvailableFor(checkIn, checkOut time.Time) bool {
	for _, res := range r.reservations {
		if res.Stay().OverlapsRange(checkIn, checkOut) {
			return false
		}
	}
	return true
}

func (r *Room) AddReservation(res *reservation.Reservation) {
	r.reservations = append(r.reservations, res)
}

func (r *Room) RemoveReservation(id int64) bool {
	for i, res := range r.reservations {
		if res.ID() == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Room) FindReservation(id int64) *reservation.Reservation {
	for _, res := range r.reservations {
		if res.ID() == id {
			return res
		}
	}
	return nil
}

func (r *Room) HasReservations() bool {
	return len(r.reservations) > 0
}

func (r *Room) HasActiveReservations(now time.Time) bool {
	for _, res := range r.reservations {
		if res.Active(now) {
			return true
		}
	}
	return false
}

// MonthCalendar lists every day of the month with its single-date
// availability status.
func (r *Room) MonthCalendar(year int, month time.Month) []CalendarDay {
	days := dates.DaysIn(year, month)
	calendar := make([]CalendarDay, 0, days)
	for day := 1; day <= days; day++ {
		status := DayBooked
		if r.AvailableOn(dates.Day(year, month, day)) {
			status = DayAvailable
		}
		calendar = append(calendar, CalendarDay{Day: day, Status: status})
	}
	return calendar
}

// SetBasePrice is reachable only through the hotel-level bulk update, which
// enforces the price floor and the active-reservation gate.
func (r *Room) SetBasePrice(price float64) {
	r.basePrice = price
}

func (r *Room) Name() string                             { return r.name }
func (r *Room) BasePrice() float64                       { return r.basePrice }
func (r *Room) Category() Category                       { return r.category }
func (r *Room) Reservations() []*reservation.Reservation { return r.reservations }
