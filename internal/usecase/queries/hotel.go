package queries

import (
	"context"
	"errors"
	"time"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/hotel"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra/memstore"
	"hotelier/internal/pkg/errs"
)

var (
	ErrHotelNotFound       = errs.New("hotel not found")
	ErrRoomNotFound        = errs.New("room not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidStayRange    = errs.New("invalid stay range")
)

type HotelQueries interface {
	ListHotels(ctx context.Context) ([]HotelSummary, error)
	GetHotel(ctx context.Context, name string) (*HotelView, error)
	GetRoom(ctx context.Context, hotelName, roomName string) (*RoomView, error)
	ListReservations(ctx context.Context, hotelName string) ([]ReservationView, error)
	GetReservation(ctx context.Context, hotelName string, id int64) (*ReservationView, error)
	SimulateQuote(ctx context.Context, params QuoteParams) (*QuoteView, error)
}

type QuoteParams struct {
	HotelName    string
	RoomName     string
	CheckIn      time.Time
	CheckOut     time.Time
	DiscountCode string
}

type hotelQueriesImpl struct {
	store   ReadStore
	factory *booking.Factory
}

func NewHotelQueries(store ReadStore, factory *booking.Factory) HotelQueries {
	return &hotelQueriesImpl{store: store, factory: factory}
}

func (q *hotelQueriesImpl) ListHotels(ctx context.Context) ([]HotelSummary, error) {
	summaries := []HotelSummary{}
	err := q.store.EachHotel(ctx, func(h *hotel.Hotel) {
		summaries = append(summaries, HotelSummary{
			Name:          h.Name(),
			TotalRooms:    h.TotalRooms(),
			TotalEarnings: h.TotalEarnings(),
		})
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (q *hotelQueriesImpl) GetHotel(ctx context.Context, name string) (*HotelView, error) {
	var view *HotelView
	err := q.store.View(ctx, name, func(h *hotel.Hotel) error {
		windows := make([]RateWindowView, 0, len(h.RateWindows()))
		for _, w := range h.RateWindows() {
			windows = append(windows, RateWindowView{
				Start:      w.Start(),
				End:        w.End(),
				Multiplier: w.Multiplier(),
			})
		}
		rooms := make([]RoomSummary, 0, h.TotalRooms())
		for _, r := range h.Rooms() {
			rooms = append(rooms, RoomSummary{
				Name:      r.Name(),
				Category:  r.Category().String(),
				BasePrice: r.BasePrice(),
			})
		}
		view = &HotelView{
			Name:          h.Name(),
			TotalRooms:    h.TotalRooms(),
			TotalEarnings: h.TotalEarnings(),
			RateWindows:   windows,
			Rooms:         rooms,
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return view, nil
}

func (q *hotelQueriesImpl) GetRoom(ctx context.Context, hotelName, roomName string) (*RoomView, error) {
	var view *RoomView
	err := q.store.View(ctx, hotelName, func(h *hotel.Hotel) error {
		r := h.Room(roomName)
		if r == nil {
			return ErrRoomNotFound
		}
		view = &RoomView{
			Name:         r.Name(),
			Category:     r.Category().String(),
			BasePrice:    r.BasePrice(),
			NightlyRate:  r.EffectiveRate(),
			Reservations: reservationViews(r),
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return view, nil
}

func (q *hotelQueriesImpl) ListReservations(ctx context.Context, hotelName string) ([]ReservationView, error) {
	views := []ReservationView{}
	err := q.store.View(ctx, hotelName, func(h *hotel.Hotel) error {
		for _, r := range h.Rooms() {
			views = append(views, reservationViews(r)...)
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return views, nil
}

func (q *hotelQueriesImpl) GetReservation(ctx context.Context, hotelName string, id int64) (*ReservationView, error) {
	var view *ReservationView
	err := q.store.View(ctx, hotelName, func(h *hotel.Hotel) error {
		for _, r := range h.Rooms() {
			if res := r.FindReservation(id); res != nil {
				v := reservationView(res)
				view = &v
				return nil
			}
		}
		return ErrReservationNotFound
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return view, nil
}

// SimulateQuote runs the pricing pipeline without touching any state.
func (q *hotelQueriesImpl) SimulateQuote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	stay, err := reservation.NewStay(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	var view *QuoteView
	err = q.store.View(ctx, params.HotelName, func(h *hotel.Hotel) error {
		r := h.Room(params.RoomName)
		if r == nil {
			return ErrRoomNotFound
		}
		quoted, result := q.factory.Simulate(h, r, stay, params.DiscountCode)
		code := reservation.NoDiscountCode
		if result.Applied {
			code = result.Code
		}
		view = &QuoteView{
			RoomName:        r.Name(),
			Nights:          stay.Nights(),
			NightlyRate:     r.EffectiveRate(),
			QuotedPrice:     quoted,
			FinalPrice:      result.Total,
			DiscountCode:    code,
			DiscountApplied: result.Applied,
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return view, nil
}

func reservationViews(r *room.Room) []ReservationView {
	views := make([]ReservationView, 0, len(r.Reservations()))
	for _, res := range r.Reservations() {
		views = append(views, reservationView(res))
	}
	return views
}

func reservationView(res *reservation.Reservation) ReservationView {
	return ReservationView{
		ID:           res.ID(),
		GuestName:    res.GuestName(),
		RoomName:     res.RoomName(),
		CheckIn:      res.Stay().CheckIn(),
		CheckOut:     res.Stay().CheckOut(),
		Nights:       res.Stay().Nights(),
		DiscountCode: res.DiscountCode(),
		QuotedPrice:  res.QuotedPrice(),
		FinalPrice:   res.FinalPrice(),
		CreatedAt:    res.CreatedAt(),
	}
}

func mapStoreErr(err error) error {
	if errors.Is(err, memstore.ErrHotelNotFound) {
		return errs.Mark(err, ErrHotelNotFound)
	}
	return err
}
