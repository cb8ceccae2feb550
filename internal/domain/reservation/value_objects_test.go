//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/pkg/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStay(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  bool
		nights   int
	}{
		{
			name:     "one night",
			checkIn:  dates.Day(2024, time.January, 1),
			checkOut: dates.Day(2024, time.January, 2),
			nights:   1,
		},
		{
			name:     "week long",
			checkIn:  dates.Day(2024, time.January, 1),
			checkOut: dates.Day(2024, time.January, 8),
			nights:   7,
		},
		{
			name:     "same day rejected",
			checkIn:  dates.Day(2024, time.January, 1),
			checkOut: dates.Day(2024, time.January, 1),
			wantErr:  true,
		},
		{
			name:     "reversed rejected",
			checkIn:  dates.Day(2024, time.January, 5),
			checkOut: dates.Day(2024, time.January, 1),
			wantErr:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stay, err := reservation.NewStay(tc.checkIn, tc.checkOut)
			if tc.wantErr {
				require.ErrorIs(t, err, reservation.ErrInvalidStay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.nights, stay.Nights())
		})
	}
}

func TestStayNormalizesToMidnightUTC(t *testing.T) {
	stay, err := reservation.NewStay(
		time.Date(2024, time.June, 1, 23, 30, 0, 0, time.UTC),
		time.Date(2024, time.June, 3, 4, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, dates.Day(2024, time.June, 1), stay.CheckIn())
	assert.Equal(t, dates.Day(2024, time.June, 3), stay.CheckOut())
	assert.Equal(t, 2, stay.Nights())
}

func TestEachNightExcludesCheckOut(t *testing.T) {
	stay, err := reservation.NewStay(dates.Day(2024, time.June, 1), dates.Day(2024, time.June, 4))
	require.NoError(t, err)

	var days []time.Time
	stay.EachNight(func(day time.Time) {
		days = append(days, day)
	})

	assert.Equal(t, []time.Time{
		dates.Day(2024, time.June, 1),
		dates.Day(2024, time.June, 2),
		dates.Day(2024, time.June, 3),
	}, days)
}

func TestStayOverlap(t *testing.T) {
	stay, err := reservation.NewStay(dates.Day(2024, time.June, 10), dates.Day(2024, time.June, 15))
	require.NoError(t, err)

	assert.True(t, stay.OverlapsRange(dates.Day(2024, time.June, 14), dates.Day(2024, time.June, 20)))
	assert.True(t, stay.OverlapsRange(dates.Day(2024, time.June, 1), dates.Day(2024, time.June, 11)))
	assert.False(t, stay.OverlapsRange(dates.Day(2024, time.June, 15), dates.Day(2024, time.June, 20)))
	assert.False(t, stay.OverlapsRange(dates.Day(2024, time.June, 1), dates.Day(2024, time.June, 10)))
}

func TestCoversIncludesCheckOutDay(t *testing.T) {
	stay, err := reservation.NewStay(dates.Day(2024, time.June, 10), dates.Day(2024, time.June, 15))
	require.NoError(t, err)

	assert.True(t, stay.Covers(dates.Day(2024, time.June, 10)))
	assert.True(t, stay.Covers(dates.Day(2024, time.June, 15)))
	assert.False(t, stay.Covers(dates.Day(2024, time.June, 16)))
	assert.False(t, stay.Covers(dates.Day(2024, time.June, 9)))
}
