package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/hotel"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/infra/memstore"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayRange      = errs.New("check-out must be after check-in")
	ErrInvalidGuestName      = errs.New("guest name cannot be empty")
	ErrRoomUnavailable       = errs.New("room is not available for the requested dates")
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrIdempotencyInProgress = errs.New("booking with this idempotency key is in progress")
)

type BookRoomParams struct {
	HotelName    string
	RoomName     string
	GuestName    string
	CheckIn      time.Time
	CheckOut     time.Time
	DiscountCode string
}

type BookRoomResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type BookingCommands interface {
	BookRoom(ctx context.Context, params BookRoomParams, idempotencyKey uuid.UUID) (*BookRoomResult, error)
	CancelReservation(ctx context.Context, hotelName string, reservationID int64) error
}

type bookingCommandsImpl struct {
	store          HotelStore
	idempotency    IdempotencyStore
	factory        *booking.Factory
	hotelQueries   queries.HotelQueries
	clock          clock.Clock
	idempotencyTTL time.Duration
}

func NewBookingCommands(
	store HotelStore,
	idempotency IdempotencyStore,
	factory *booking.Factory,
	hotelQueries queries.HotelQueries,
	clk clock.Clock,
	idempotencyTTL time.Duration,
) BookingCommands {
	return &bookingCommandsImpl{
		store:          store,
		idempotency:    idempotency,
		factory:        factory,
		hotelQueries:   hotelQueries,
		clock:          clk,
		idempotencyTTL: idempotencyTTL,
	}
}

// BookRoom is the full booking flow: stay validation, half-open availability
// check, nightly quote, discount adjustment, reservation creation. A
// replayed idempotency key returns the original reservation untouched.
func (c *bookingCommandsImpl) BookRoom(ctx context.Context, params BookRoomParams, idempotencyKey uuid.UUID) (*BookRoomResult, error) {
	replay, err := c.idempotency.Begin(ctx, idempotencyKey, c.clock.Now(), c.idempotencyTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyInProgress)
	}
	if replay != nil {
		view, getErr := c.hotelQueries.GetReservation(ctx, replay.HotelName, replay.ReservationID)
		if getErr != nil {
			return nil, getErr
		}
		return &BookRoomResult{Reservation: view, IsReplayed: true}, nil
	}

	view, err := c.createReservation(ctx, params)
	if err != nil {
		c.idempotency.Abort(ctx, idempotencyKey)
		return nil, err
	}

	ref := memstore.BookingRef{HotelName: params.HotelName, ReservationID: view.ID}
	if completeErr := c.idempotency.Complete(ctx, idempotencyKey, ref); completeErr != nil {
		slog.Warn("failed to record idempotency result", "error", completeErr)
	}

	return &BookRoomResult{Reservation: view, IsReplayed: false}, nil
}

func (c *bookingCommandsImpl) createReservation(ctx context.Context, params BookRoomParams) (*queries.ReservationView, error) {
	stay, err := reservation.NewStay(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	var view *queries.ReservationView
	err = c.store.Update(ctx, params.HotelName, func(h *hotel.Hotel) error {
		r := h.Room(params.RoomName)
		if r == nil {
			return ErrRoomNotFound
		}
		res, result, bookErr := c.factory.Book(h, r, params.GuestName, stay, params.DiscountCode)
		if bookErr != nil {
			return bookErr
		}
		if params.DiscountCode != "" && !result.Applied {
			slog.Warn("discount code not applied",
				"code", params.DiscountCode,
				"hotel", h.Name(),
				"room", r.Name(),
			)
		}
		view = &queries.ReservationView{
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
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrRoomUnavailable):
			return nil, errs.Mark(err, ErrRoomUnavailable)
		case errors.Is(err, reservation.ErrEmptyGuestName):
			return nil, errs.Mark(err, ErrInvalidGuestName)
		default:
			return nil, mapHotelErr(err)
		}
	}
	return view, nil
}

// CancelReservation removes the reservation and frees the room. Earnings are
// an accumulator of booked revenue and are deliberately not rolled back.
func (c *bookingCommandsImpl) CancelReservation(ctx context.Context, hotelName string, reservationID int64) error {
	err := c.store.Update(ctx, hotelName, func(h *hotel.Hotel) error {
		for _, r := range h.Rooms() {
			if r.RemoveReservation(reservationID) {
				return nil
			}
		}
		return ErrReservationNotFound
	})
	if err != nil {
		return mapHotelErr(err)
	}
	return nil
}
