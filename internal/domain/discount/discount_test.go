//go:build unit

package discount_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/discount"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/pkg/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stay(t *testing.T, checkIn, checkOut time.Time) reservation.Stay {
	t.Helper()
	s, err := reservation.NewStay(checkIn, checkOut)
	require.NoError(t, err)
	return s
}

func TestApply(t *testing.T) {
	cases := []struct {
		name        string
		code        string
		total       float64
		checkIn     time.Time
		checkOut    time.Time
		nightlyRate float64
		wantTotal   float64
		wantApplied bool
	}{
		{
			name:        "employee code takes 10 percent off",
			code:        discount.CodeEmployee,
			total:       1000.0,
			checkIn:     dates.Day(2024, time.June, 1),
			checkOut:    dates.Day(2024, time.June, 2),
			nightlyRate: 1000.0,
			wantTotal:   900.0,
			wantApplied: true,
		},
		{
			name:        "long stay waives one night at five nights",
			code:        discount.CodeLongStay,
			total:       5000.0,
			checkIn:     dates.Day(2024, time.June, 1),
			checkOut:    dates.Day(2024, time.June, 6),
			nightlyRate: 1000.0,
			wantTotal:   4000.0,
			wantApplied: true,
		},
		{
			name:        "long stay does not engage at four nights",
			code:        discount.CodeLongStay,
			total:       4000.0,
			checkIn:     dates.Day(2024, time.June, 1),
			checkOut:    dates.Day(2024, time.June, 5),
			nightlyRate: 1000.0,
			wantTotal:   4000.0,
		},
		{
			name:        "payday applies when a billed night lands on the 15th",
			code:        discount.CodePayday,
			total:       2000.0,
			checkIn:     dates.Day(2024, time.June, 14),
			checkOut:    dates.Day(2024, time.June, 16),
			nightlyRate: 1000.0,
			wantTotal:   1860.0,
			wantApplied: true,
		},
		{
			name:        "payday applies on the 30th",
			code:        discount.CodePayday,
			total:       1000.0,
			checkIn:     dates.Day(2024, time.June, 30),
			checkOut:    dates.Day(2024, time.July, 1),
			nightlyRate: 1000.0,
			wantTotal:   930.0,
			wantApplied: true,
		},
		{
			name:        "payday ignores a check-out on the 15th",
			code:        discount.CodePayday,
			total:       1000.0,
			checkIn:     dates.Day(2024, time.June, 14),
			checkOut:    dates.Day(2024, time.June, 15),
			nightlyRate: 1000.0,
			wantTotal:   1000.0,
		},
		{
			name:        "payday misses a stay between paydays",
			code:        discount.CodePayday,
			total:       3000.0,
			checkIn:     dates.Day(2024, time.June, 16),
			checkOut:    dates.Day(2024, time.June, 19),
			nightlyRate: 1000.0,
			wantTotal:   3000.0,
		},
		{
			name:        "unknown code is a no-op",
			code:        "BOGUS",
			total:       1000.0,
			checkIn:     dates.Day(2024, time.June, 1),
			checkOut:    dates.Day(2024, time.June, 2),
			nightlyRate: 1000.0,
			wantTotal:   1000.0,
		},
		{
			name:        "no code is a no-op",
			code:        reservation.NoDiscountCode,
			total:       1000.0,
			checkIn:     dates.Day(2024, time.June, 1),
			checkOut:    dates.Day(2024, time.June, 2),
			nightlyRate: 1000.0,
			wantTotal:   1000.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := discount.Apply(tc.code, tc.total, stay(t, tc.checkIn, tc.checkOut), tc.nightlyRate)
			assert.Equal(t, tc.code, got.Code)
			assert.InDelta(t, tc.wantTotal, got.Total, 1e-9)
			assert.Equal(t, tc.wantApplied, got.Applied)
		})
	}
}

func TestApplyNeverGoesNegative(t *testing.T) {
	// A free night worth more than the modified total clamps at zero.
	s := stay(t, dates.Day(2024, time.June, 1), dates.Day(2024, time.June, 6))
	got := discount.Apply(discount.CodeLongStay, 500.0, s, 1000.0)
	assert.True(t, got.Applied)
	assert.Equal(t, 0.0, got.Total)
}
