//go:build unit

package room_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/pkg/dates"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T, category room.Category) *room.Room {
	t.Helper()
	r, err := room.New("101", 1000.0, category)
	require.NoError(t, err)
	return r
}

func reserve(t *testing.T, r *room.Room, id int64, checkIn, checkOut time.Time) *reservation.Reservation {
	t.Helper()
	stay, err := reservation.NewStay(checkIn, checkOut)
	require.NoError(t, err)
	res, err := reservation.New(id, "Alice", r.Name(), stay, checkIn)
	require.NoError(t, err)
	r.AddReservation(res)
	return res
}

func TestNewRoom(t *testing.T) {
	t.Run("rejects empty name", func(t *testing.T) {
		_, err := room.New("  ", 1000.0, room.CategoryStandard)
		require.ErrorIs(t, err, room.ErrEmptyName)
	})

	t.Run("rejects negative base price", func(t *testing.T) {
		_, err := room.New("101", -1.0, room.CategoryStandard)
		require.ErrorIs(t, err, room.ErrNegativeBasePrice)
	})

	t.Run("rejects invalid category", func(t *testing.T) {
		_, err := room.New("101", 1000.0, room.Category("Suite"))
		require.ErrorIs(t, err, room.ErrInvalidCategory)
	})
}

func TestEffectiveRate(t *testing.T) {
	r := newRoom(t, room.CategoryExecutive)

	// Recomputed from the raw base on every call, never compounding.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1350.0, r.EffectiveRate())
	}
	assert.Equal(t, 1000.0, r.BasePrice())
}

func TestAvailability(t *testing.T) {
	r := newRoom(t, room.CategoryStandard)
	reserve(t, r, 1, dates.Day(2024, time.March, 10), dates.Day(2024, time.March, 15))

	t.Run("single date uses closed interval", func(t *testing.T) {
		assert.True(t, r.AvailableOn(dates.Day(2024, time.March, 9)))
		assert.False(t, r.AvailableOn(dates.Day(2024, time.March, 10)))
		assert.False(t, r.AvailableOn(dates.Day(2024, time.March, 12)))
		// The check-out day itself counts as occupied for date queries.
		assert.False(t, r.AvailableOn(dates.Day(2024, time.March, 15)))
		assert.True(t, r.AvailableOn(dates.Day(2024, time.March, 16)))
	})

	t.Run("range uses half-open interval", func(t *testing.T) {
		assert.False(t, r.AvailableFor(dates.Day(2024, time.March, 12), dates.Day(2024, time.March, 14)))
		assert.False(t, r.AvailableFor(dates.Day(2024, time.March, 8), dates.Day(2024, time.March, 11)))
		assert.False(t, r.AvailableFor(dates.Day(2024, time.March, 14), dates.Day(2024, time.March, 20)))
		assert.False(t, r.AvailableFor(dates.Day(2024, time.March, 8), dates.Day(2024, time.March, 20)))
		// Back-to-back stays sharing the turnover date are allowed.
		assert.True(t, r.AvailableFor(dates.Day(2024, time.March, 15), dates.Day(2024, time.March, 18)))
		assert.True(t, r.AvailableFor(dates.Day(2024, time.March, 8), dates.Day(2024, time.March, 10)))
	})
}

func TestMonthCalendar(t *testing.T) {
	r := newRoom(t, room.CategoryStandard)
	reserve(t, r, 1, dates.Day(2024, time.February, 27), dates.Day(2024, time.February, 29))

	calendar := r.MonthCalendar(2024, time.February)
	require.Len(t, calendar, 29) // leap year

	want := []room.CalendarDay{
		{Day: 26, Status: room.DayAvailable},
		{Day: 27, Status: room.DayBooked},
		{Day: 28, Status: room.DayBooked},
		{Day: 29, Status: room.DayBooked},
	}
	if diff := cmp.Diff(want, calendar[25:]); diff != "" {
		t.Errorf("calendar tail mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveReservation(t *testing.T) {
	r := newRoom(t, room.CategoryStandard)
	res := reserve(t, r, 7, dates.Day(2024, time.May, 1), dates.Day(2024, time.May, 3))

	assert.False(t, r.AvailableOn(dates.Day(2024, time.May, 2)))
	assert.True(t, r.RemoveReservation(res.ID()))
	assert.True(t, r.AvailableOn(dates.Day(2024, time.May, 2)))
	assert.False(t, r.RemoveReservation(res.ID()))
}

func TestHasActiveReservations(t *testing.T) {
	r := newRoom(t, room.CategoryStandard)
	reserve(t, r, 1, dates.Day(2024, time.January, 1), dates.Day(2024, time.January, 5))

	assert.True(t, r.HasActiveReservations(dates.Day(2024, time.January, 3)))
	// Past check-out no longer counts as active, but the record remains.
	assert.False(t, r.HasActiveReservations(dates.Day(2024, time.January, 5)))
	assert.True(t, r.HasReservations())
}
