//go:build unit

package builder

import (
	"time"

	domhotel "hotelier/internal/domain/hotel"
	domroom "hotelier/internal/domain/room"
	"hotelier/internal/pkg/dates"
)

type RoomSpec struct {
	Name      string
	BasePrice float64
	Category  domroom.Category
}

type WindowSpec struct {
	Start      time.Time
	End        time.Time
	Multiplier float64
}

type HotelBuilder struct {
	Name    string
	Rooms   []RoomSpec
	Windows []WindowSpec
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		Name: "Seaside Inn",
		Rooms: []RoomSpec{
			{Name: "101", BasePrice: 1000.0, Category: domroom.CategoryStandard},
		},
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) WithRoom(name string, basePrice float64, category domroom.Category) *HotelBuilder {
	b.Rooms = append(b.Rooms, RoomSpec{Name: name, BasePrice: basePrice, Category: category})
	return b
}

func (b *HotelBuilder) WithWindow(start, end time.Time, multiplier float64) *HotelBuilder {
	b.Windows = append(b.Windows, WindowSpec{Start: start, End: end, Multiplier: multiplier})
	return b
}

func (b *HotelBuilder) BuildDomain() (*domhotel.Hotel, error) {
	h, err := domhotel.New(b.Name)
	if err != nil {
		return nil, err
	}
	for _, r := range b.Rooms {
		if _, err := h.AddRoom(r.Name, r.BasePrice, r.Category); err != nil {
			return nil, err
		}
	}
	for _, w := range b.Windows {
		window, err := domhotel.NewRateWindow(w.Start, w.End, w.Multiplier)
		if err != nil {
			return nil, err
		}
		h.AddRateWindow(window)
	}
	return h, nil
}

// Day is a shorthand for building test dates.
func Day(year int, month time.Month, day int) time.Time {
	return dates.Day(year, month, day)
}
