package queries

import (
	"context"
	"time"

	"hotelier/internal/domain/hotel"
	"hotelier/internal/pkg/dates"
	"hotelier/internal/pkg/errs"
)

var ErrInvalidMonth = errs.New("month must be between 1 and 12")

type AvailabilityQueries interface {
	Occupancy(ctx context.Context, hotelName string, date time.Time) (*OccupancyView, error)
	AvailableRooms(ctx context.Context, hotelName string, checkIn, checkOut time.Time) ([]string, error)
	RoomCalendar(ctx context.Context, hotelName, roomName string, year int, month int) ([]CalendarDayView, error)
}

type availabilityQueriesImpl struct {
	store ReadStore
}

func NewAvailabilityQueries(store ReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

// Occupancy answers the single-date view: counts use the closed-interval
// check, so rooms are still "booked" on their check-out day.
func (q *availabilityQueriesImpl) Occupancy(ctx context.Context, hotelName string, date time.Time) (*OccupancyView, error) {
	date = dates.Normalize(date)
	var view *OccupancyView
	err := q.store.View(ctx, hotelName, func(h *hotel.Hotel) error {
		view = &OccupancyView{
			Date:           date,
			TotalRooms:     h.TotalRooms(),
			TotalAvailable: h.TotalAvailable(date),
			TotalBooked:    h.TotalBooked(date),
			AvailableRooms: h.AvailableRoomNames(date),
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return view, nil
}

// AvailableRooms answers the range view with half-open overlap semantics, in
// room-list order.
func (q *availabilityQueriesImpl) AvailableRooms(ctx context.Context, hotelName string, checkIn, checkOut time.Time) ([]string, error) {
	if !dates.Normalize(checkOut).After(dates.Normalize(checkIn)) {
		return nil, ErrInvalidStayRange
	}
	var names []string
	err := q.store.View(ctx, hotelName, func(h *hotel.Hotel) error {
		names = h.AvailableRoomNamesForRange(checkIn, checkOut)
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return names, nil
}

func (q *availabilityQueriesImpl) RoomCalendar(ctx context.Context, hotelName, roomName string, year int, month int) ([]CalendarDayView, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	var days []CalendarDayView
	err := q.store.View(ctx, hotelName, func(h *hotel.Hotel) error {
		r := h.Room(roomName)
		if r == nil {
			return ErrRoomNotFound
		}
		for _, d := range r.MonthCalendar(year, time.Month(month)) {
			days = append(days, CalendarDayView{Day: d.Day, Status: string(d.Status)})
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return days, nil
}
