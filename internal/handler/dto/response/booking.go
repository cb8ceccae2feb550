package response

import (
	"time"

	"hotelier/internal/pkg/dates"
	"hotelier/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           int64     `json:"id"`
	GuestName    string    `json:"guestName"`
	RoomName     string    `json:"roomName"`
	CheckIn      string    `json:"checkIn"`
	CheckOut     string    `json:"checkOut"`
	Nights       int       `json:"nights"`
	DiscountCode string    `json:"discountCode"`
	QuotedPrice  float64   `json:"quotedPrice"`
	FinalPrice   float64   `json:"finalPrice"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
}

type QuoteResponse struct {
	RoomName        string  `json:"roomName"`
	Nights          int     `json:"nights"`
	NightlyRate     float64 `json:"nightlyRate"`
	QuotedPrice     float64 `json:"quotedPrice"`
	FinalPrice      float64 `json:"finalPrice"`
	DiscountCode    string  `json:"discountCode"`
	DiscountApplied bool    `json:"discountApplied"`
	Currency        string  `json:"currency"`
}

func FromReservationView(rm *queries.ReservationView, currency string) ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	resp.CheckIn = dates.Format(rm.CheckIn)
	resp.CheckOut = dates.Format(rm.CheckOut)
	resp.Currency = currency
	return resp
}

func FromQuoteView(rm *queries.QuoteView, currency string) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, rm)
	resp.Currency = currency
	return &resp
}
