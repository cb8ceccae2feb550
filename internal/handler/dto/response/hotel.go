package response

import (
	"hotelier/internal/pkg/dates"
	"hotelier/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type HotelSummaryResponse struct {
	Name          string  `json:"name"`
	TotalRooms    int     `json:"totalRooms"`
	TotalEarnings float64 `json:"totalEarnings"`
	Currency      string  `json:"currency"`
}

type RateWindowResponse struct {
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Multiplier float64 `json:"multiplier"`
}

type RoomSummaryResponse struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	BasePrice float64 `json:"basePrice"`
}

type HotelResponse struct {
	Name          string                `json:"name"`
	TotalRooms    int                   `json:"totalRooms"`
	TotalEarnings float64               `json:"totalEarnings"`
	Currency      string                `json:"currency"`
	RateWindows   []RateWindowResponse  `json:"rateWindows"`
	Rooms         []RoomSummaryResponse `json:"rooms"`
}

type RoomResponse struct {
	Name         string                `json:"name"`
	Category     string                `json:"category"`
	BasePrice    float64               `json:"basePrice"`
	NightlyRate  float64               `json:"nightlyRate"`
	Currency     string                `json:"currency"`
	Reservations []ReservationResponse `json:"reservations"`
}

type OccupancyResponse struct {
	Date           string   `json:"date"`
	TotalRooms     int      `json:"totalRooms"`
	TotalAvailable int      `json:"totalAvailable"`
	TotalBooked    int      `json:"totalBooked"`
	AvailableRooms []string `json:"availableRooms"`
}

type CalendarDayResponse struct {
	Day    int    `json:"day"`
	Status string `json:"status"`
}

func FromHotelSummary(rm queries.HotelSummary, currency string) HotelSummaryResponse {
	var resp HotelSummaryResponse
	_ = copier.Copy(&resp, &rm)
	resp.Currency = currency
	return resp
}

func FromHotelView(rm *queries.HotelView, currency string) *HotelResponse {
	resp := &HotelResponse{
		Name:          rm.Name,
		TotalRooms:    rm.TotalRooms,
		TotalEarnings: rm.TotalEarnings,
		Currency:      currency,
		RateWindows:   make([]RateWindowResponse, 0, len(rm.RateWindows)),
		Rooms:         make([]RoomSummaryResponse, 0, len(rm.Rooms)),
	}
	for _, w := range rm.RateWindows {
		resp.RateWindows = append(resp.RateWindows, RateWindowResponse{
			StartDate:  dates.Format(w.Start),
			EndDate:    dates.Format(w.End),
			Multiplier: w.Multiplier,
		})
	}
	for _, r := range rm.Rooms {
		var room RoomSummaryResponse
		_ = copier.Copy(&room, &r)
		resp.Rooms = append(resp.Rooms, room)
	}
	return resp
}

func FromRoomView(rm *queries.RoomView, currency string) *RoomResponse {
	resp := &RoomResponse{
		Name:         rm.Name,
		Category:     rm.Category,
		BasePrice:    rm.BasePrice,
		NightlyRate:  rm.NightlyRate,
		Currency:     currency,
		Reservations: make([]ReservationResponse, 0, len(rm.Reservations)),
	}
	for _, res := range rm.Reservations {
		resp.Reservations = append(resp.Reservations, FromReservationView(&res, currency))
	}
	return resp
}

func FromOccupancyView(rm *queries.OccupancyView) *OccupancyResponse {
	return &OccupancyResponse{
		Date:           dates.Format(rm.Date),
		TotalRooms:     rm.TotalRooms,
		TotalAvailable: rm.TotalAvailable,
		TotalBooked:    rm.TotalBooked,
		AvailableRooms: rm.AvailableRooms,
	}
}

func FromCalendar(rm []queries.CalendarDayView) []CalendarDayResponse {
	resp := make([]CalendarDayResponse, 0, len(rm))
	for _, d := range rm {
		resp = append(resp, CalendarDayResponse{Day: d.Day, Status: d.Status})
	}
	return resp
}
