package commands

import (
	"context"
	"time"

	"hotelier/internal/domain/hotel"
	"hotelier/internal/infra/memstore"

	"github.com/google/uuid"
)

// HotelStore is the write-side port. Mutations run inside Update closures so
// the store can hold its lock for the whole aggregate operation.
type HotelStore interface {
	CreateHotel(ctx context.Context, h *hotel.Hotel) error
	RenameHotel(ctx context.Context, name, newName string) error
	DeleteHotel(ctx context.Context, name string) error
	Update(ctx context.Context, name string, fn func(*hotel.Hotel) error) error
}

type IdempotencyStore interface {
	Begin(ctx context.Context, key uuid.UUID, now time.Time, ttl time.Duration) (*memstore.BookingRef, error)
	Complete(ctx context.Context, key uuid.UUID, ref memstore.BookingRef) error
	Abort(ctx context.Context, key uuid.UUID)
}
