package queries

import (
	"context"
	"time"

	"hotelier/internal/domain/hotel"
)

// ReadStore is the read-side port: closures run under the store's read lock
// and build plain view structs before returning.
type ReadStore interface {
	View(ctx context.Context, name string, fn func(*hotel.Hotel) error) error
	EachHotel(ctx context.Context, fn func(*hotel.Hotel)) error
}

type HotelSummary struct {
	Name          string
	TotalRooms    int
	TotalEarnings float64
}

type RateWindowView struct {
	Start      time.Time
	End        time.Time
	Multiplier float64
}

type HotelView struct {
	Name          string
	TotalRooms    int
	TotalEarnings float64
	RateWindows   []RateWindowView
	Rooms         []RoomSummary
}

type RoomSummary struct {
	Name      string
	Category  string
	BasePrice float64
}

type RoomView struct {
	Name         string
	Category     string
	BasePrice    float64
	NightlyRate  float64
	Reservations []ReservationView
}

type ReservationView struct {
	ID           int64
	GuestName    string
	RoomName     string
	CheckIn      time.Time
	CheckOut     time.Time
	Nights       int
	DiscountCode string
	QuotedPrice  float64
	FinalPrice   float64
	CreatedAt    time.Time
}

type OccupancyView struct {
	Date           time.Time
	TotalRooms     int
	TotalAvailable int
	TotalBooked    int
	AvailableRooms []string
}

type CalendarDayView struct {
	Day    int
	Status string
}

type QuoteView struct {
	RoomName        string
	Nights          int
	NightlyRate     float64
	QuotedPrice     float64
	FinalPrice      float64
	DiscountCode    string
	DiscountApplied bool
}
