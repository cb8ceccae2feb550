package request

import "strings"

type CreateReservationRequest struct {
	RoomName     string  `json:"room_name" binding:"required"`
	GuestName    string  `json:"guest_name" binding:"required"`
	CheckIn      string  `json:"check_in" binding:"required"`
	CheckOut     string  `json:"check_out" binding:"required"`
	DiscountCode *string `json:"discount_code,omitempty"`
}

func (r CreateReservationRequest) GetDiscountCode() string {
	if r.DiscountCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.DiscountCode)
}

type QuoteRequest struct {
	RoomName     string  `json:"room_name" binding:"required"`
	CheckIn      string  `json:"check_in" binding:"required"`
	CheckOut     string  `json:"check_out" binding:"required"`
	DiscountCode *string `json:"discount_code,omitempty"`
}

func (r QuoteRequest) GetDiscountCode() string {
	if r.DiscountCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.DiscountCode)
}
