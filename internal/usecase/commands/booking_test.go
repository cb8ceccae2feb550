//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/discount"
	"hotelier/internal/domain/pricing"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra/memstore"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/sequence"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
	"hotelier/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	store        *memstore.Store
	clock        *clock.MockClock
	hotelCmds    commands.HotelCommands
	bookingCmds  commands.BookingCommands
	hotelQueries queries.HotelQueries
	availability queries.AvailabilityQueries
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	store := memstore.NewStore()
	clk := clock.NewMockClock(builder.Day(2024, time.June, 1))
	factory := booking.NewFactory(clk, sequence.NewFixed(1), pricing.NewNightlyCalculator())
	hotelQueries := queries.NewHotelQueries(store, factory)

	f := &bookingFixture{
		store:        store,
		clock:        clk,
		hotelCmds:    commands.NewHotelCommands(store, clk),
		hotelQueries: hotelQueries,
		availability: queries.NewAvailabilityQueries(store),
	}
	f.bookingCmds = commands.NewBookingCommands(
		store, memstore.NewIdempotencyStore(), factory, hotelQueries, clk, 24*time.Hour,
	)

	require.NoError(t, f.hotelCmds.CreateHotel(context.Background(), "Seaside Inn"))
	require.NoError(t, f.hotelCmds.AddRoom(context.Background(), "Seaside Inn", "101", 1000.0, room.CategoryStandard.String()))
	return f
}

func (f *bookingFixture) params() commands.BookRoomParams {
	return commands.BookRoomParams{
		HotelName: "Seaside Inn",
		RoomName:  "101",
		GuestName: "Alice",
		CheckIn:   builder.Day(2024, time.June, 10),
		CheckOut:  builder.Day(2024, time.June, 12),
	}
}

func TestBookRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("books and exposes both prices", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.params()
		params.DiscountCode = discount.CodeEmployee

		result, err := f.bookingCmds.BookRoom(ctx, params, uuid.New())
		require.NoError(t, err)

		assert.False(t, result.IsReplayed)
		assert.Equal(t, int64(1), result.Reservation.ID)
		assert.Equal(t, 2, result.Reservation.Nights)
		assert.Equal(t, 2000.0, result.Reservation.QuotedPrice)
		assert.Equal(t, 1800.0, result.Reservation.FinalPrice)
		assert.Equal(t, discount.CodeEmployee, result.Reservation.DiscountCode)
	})

	t.Run("rejects a same-day stay", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.params()
		params.CheckOut = params.CheckIn

		_, err := f.bookingCmds.BookRoom(ctx, params, uuid.New())
		require.ErrorIs(t, err, commands.ErrInvalidStayRange)
	})

	t.Run("rejects an empty guest name", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.params()
		params.GuestName = ""

		_, err := f.bookingCmds.BookRoom(ctx, params, uuid.New())
		require.ErrorIs(t, err, commands.ErrInvalidGuestName)
	})

	t.Run("rejects an overlapping stay", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.bookingCmds.BookRoom(ctx, f.params(), uuid.New())
		require.NoError(t, err)

		overlap := f.params()
		overlap.GuestName = "Bob"
		overlap.CheckIn = builder.Day(2024, time.June, 11)
		overlap.CheckOut = builder.Day(2024, time.June, 13)
		_, err = f.bookingCmds.BookRoom(ctx, overlap, uuid.New())
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("unknown hotel and room", func(t *testing.T) {
		f := newBookingFixture(t)

		params := f.params()
		params.HotelName = "Nowhere"
		_, err := f.bookingCmds.BookRoom(ctx, params, uuid.New())
		require.ErrorIs(t, err, commands.ErrHotelNotFound)

		params = f.params()
		params.RoomName = "999"
		_, err = f.bookingCmds.BookRoom(ctx, params, uuid.New())
		require.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("replays the same key without double booking", func(t *testing.T) {
		f := newBookingFixture(t)
		key := uuid.New()

		first, err := f.bookingCmds.BookRoom(ctx, f.params(), key)
		require.NoError(t, err)
		second, err := f.bookingCmds.BookRoom(ctx, f.params(), key)
		require.NoError(t, err)

		assert.False(t, first.IsReplayed)
		assert.True(t, second.IsReplayed)
		assert.Equal(t, first.Reservation.ID, second.Reservation.ID)

		all, err := f.hotelQueries.ListReservations(ctx, "Seaside Inn")
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("a failed booking releases the key", func(t *testing.T) {
		f := newBookingFixture(t)
		key := uuid.New()

		bad := f.params()
		bad.GuestName = ""
		_, err := f.bookingCmds.BookRoom(ctx, bad, key)
		require.Error(t, err)

		result, err := f.bookingCmds.BookRoom(ctx, f.params(), key)
		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("frees the room but keeps the earnings", func(t *testing.T) {
		f := newBookingFixture(t)
		result, err := f.bookingCmds.BookRoom(ctx, f.params(), uuid.New())
		require.NoError(t, err)

		require.NoError(t, f.bookingCmds.CancelReservation(ctx, "Seaside Inn", result.Reservation.ID))

		names, err := f.availability.AvailableRooms(ctx, "Seaside Inn",
			builder.Day(2024, time.June, 10), builder.Day(2024, time.June, 12))
		require.NoError(t, err)
		assert.Equal(t, []string{"101"}, names)

		hotels, err := f.hotelQueries.ListHotels(ctx)
		require.NoError(t, err)
		require.Len(t, hotels, 1)
		assert.Equal(t, 2000.0, hotels[0].TotalEarnings)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newBookingFixture(t)
		err := f.bookingCmds.CancelReservation(ctx, "Seaside Inn", 42)
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f := newBookingFixture(t)
		err := f.bookingCmds.CancelReservation(ctx, "Nowhere", 1)
		require.ErrorIs(t, err, commands.ErrHotelNotFound)
	})
}
