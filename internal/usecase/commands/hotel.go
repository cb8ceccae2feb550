package commands

import (
	"context"
	"errors"
	"time"

	"hotelier/internal/domain/hotel"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra/memstore"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
)

var (
	ErrHotelNotFound        = errs.New("hotel not found")
	ErrHotelAlreadyExists   = errs.New("hotel already exists")
	ErrHotelHasReservations = errs.New("hotel has reservations")
	ErrRoomNotFound         = errs.New("room not found")
	ErrRoomAlreadyExists    = errs.New("room already exists")
	ErrRoomLimitReached     = errs.New("room limit reached")
	ErrRoomHasReservations  = errs.New("room has reservations")
	ErrInvalidRoom          = errs.New("invalid room parameters")
	ErrInvalidHotelName     = errs.New("invalid hotel name")
	ErrActiveReservations   = errs.New("hotel has active reservations")
	ErrPriceBelowMinimum    = errs.New("base price below minimum")
	ErrInvalidRateWindow    = errs.New("invalid rate window")
	ErrRateWindowNotFound   = errs.New("rate window not found")
)

type HotelCommands interface {
	CreateHotel(ctx context.Context, name string) error
	RenameHotel(ctx context.Context, name, newName string) error
	DeleteHotel(ctx context.Context, name string) error
	AddRoom(ctx context.Context, hotelName, roomName string, basePrice float64, category string) error
	RemoveRoom(ctx context.Context, hotelName, roomName string) error
	UpdateBasePrice(ctx context.Context, hotelName string, newPrice float64) error
	AddRateWindow(ctx context.Context, hotelName string, start, end time.Time, multiplier float64) error
	RemoveRateWindow(ctx context.Context, hotelName string, index int) error
}

type hotelCommandsImpl struct {
	store HotelStore
	clock clock.Clock
}

func NewHotelCommands(store HotelStore, clk clock.Clock) HotelCommands {
	return &hotelCommandsImpl{store: store, clock: clk}
}

func (c *hotelCommandsImpl) CreateHotel(ctx context.Context, name string) error {
	h, err := hotel.New(name)
	if err != nil {
		return errs.Mark(err, ErrInvalidHotelName)
	}
	if err := c.store.CreateHotel(ctx, h); err != nil {
		return mapHotelErr(err)
	}
	return nil
}

func (c *hotelCommandsImpl) RenameHotel(ctx context.Context, name, newName string) error {
	if err := c.store.RenameHotel(ctx, name, newName); err != nil {
		if errors.Is(err, hotel.ErrEmptyName) {
			return errs.Mark(err, ErrInvalidHotelName)
		}
		return mapHotelErr(err)
	}
	return nil
}

func (c *hotelCommandsImpl) DeleteHotel(ctx context.Context, name string) error {
	if err := c.store.DeleteHotel(ctx, name); err != nil {
		return mapHotelErr(err)
	}
	return nil
}

func (c *hotelCommandsImpl) AddRoom(ctx context.Context, hotelName, roomName string, basePrice float64, category string) error {
	cat, err := room.ParseCategory(category)
	if err != nil {
		return errs.Mark(err, ErrInvalidRoom)
	}
	err = c.store.Update(ctx, hotelName, func(h *hotel.Hotel) error {
		_, addErr := h.AddRoom(roomName, basePrice, cat)
		return addErr
	})
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrRoomLimitReached):
			return errs.Mark(err, ErrRoomLimitReached)
		case errors.Is(err, hotel.ErrRoomAlreadyExists):
			return errs.Mark(err, ErrRoomAlreadyExists)
		case errors.Is(err, room.ErrEmptyName), errors.Is(err, room.ErrNegativeBasePrice):
			return errs.Mark(err, ErrInvalidRoom)
		default:
			return mapHotelErr(err)
		}
	}
	return nil
}

func (c *hotelCommandsImpl) RemoveRoom(ctx context.Context, hotelName, roomName string) error {
	err := c.store.Update(ctx, hotelName, func(h *hotel.Hotel) error {
		return h.RemoveRoom(roomName)
	})
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrRoomNotFound):
			return errs.Mark(err, ErrRoomNotFound)
		case errors.Is(err, room.ErrHasReservations):
			return errs.Mark(err, ErrRoomHasReservations)
		default:
			return mapHotelErr(err)
		}
	}
	return nil
}

// UpdateBasePrice applies a hotel-wide rate change. The domain gate rejects
// it while any reservation anywhere in the hotel still has a future
// check-out, or when the new price undercuts the floor.
func (c *hotelCommandsImpl) UpdateBasePrice(ctx context.Context, hotelName string, newPrice float64) error {
	err := c.store.Update(ctx, hotelName, func(h *hotel.Hotel) error {
		return h.UpdateBasePrice(newPrice, c.clock.Now())
	})
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrActiveReservations):
			return errs.Mark(err, ErrActiveReservations)
		case errors.Is(err, hotel.ErrPriceBelowMinimum):
			return errs.Mark(err, ErrPriceBelowMinimum)
		default:
			return mapHotelErr(err)
		}
	}
	return nil
}

func (c *hotelCommandsImpl) AddRateWindow(ctx context.Context, hotelName string, start, end time.Time, multiplier float64) error {
	w, err := hotel.NewRateWindow(start, end, multiplier)
	if err != nil {
		return errs.Mark(err, ErrInvalidRateWindow)
	}
	err = c.store.Update(ctx, hotelName, func(h *hotel.Hotel) error {
		h.AddRateWindow(w)
		return nil
	})
	if err != nil {
		return mapHotelErr(err)
	}
	return nil
}

func (c *hotelCommandsImpl) RemoveRateWindow(ctx context.Context, hotelName string, index int) error {
	err := c.store.Update(ctx, hotelName, func(h *hotel.Hotel) error {
		return h.RemoveRateWindow(index)
	})
	if err != nil {
		if errors.Is(err, hotel.ErrWindowNotFound) {
			return errs.Mark(err, ErrRateWindowNotFound)
		}
		return mapHotelErr(err)
	}
	return nil
}

func mapHotelErr(err error) error {
	switch {
	case errors.Is(err, memstore.ErrHotelNotFound):
		return errs.Mark(err, ErrHotelNotFound)
	case errors.Is(err, memstore.ErrHotelAlreadyExists):
		return errs.Mark(err, ErrHotelAlreadyExists)
	case errors.Is(err, memstore.ErrHotelNotEmpty):
		return errs.Mark(err, ErrHotelHasReservations)
	default:
		return err
	}
}
