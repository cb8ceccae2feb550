package reservation

import (
	"errors"
	"time"
)

// NoDiscountCode is stored when a booking carried no recognized promo code.
const NoDiscountCode = "N/A"

var ErrEmptyGuestName = errors.New("guest name cannot be empty")

// Reservation is created at booking time and never mutated afterwards except
// for the discount-code / pricing assignment that immediately follows
// creation. Both the pre-discount quote and the final price are retained for
// display and audit.
type Reservation struct {
	id           int64
	guestName    string
	roomName     string
	stay         Stay
	discountCode string
	quotedPrice  float64
	finalPrice   float64
	createdAt    time.Time
}

func New(id int64, guestName, roomName string, stay Stay, createdAt time.Time) (*Reservation, error) {
	if guestName == "" {
		return nil, ErrEmptyGuestName
	}
	return &Reservation{
		id:           id,
		guestName:    guestName,
		roomName:     roomName,
		stay:         stay,
		discountCode: NoDiscountCode,
		createdAt:    createdAt,
	}, nil
}

// SetPricing records the outcome of the quote/discount pipeline. When no
// discount applied the stored code stays NoDiscountCode.
func (r *Reservation) SetPricing(code string, quoted, final float64, applied bool) {
	if applied {
		r.discountCode = code
	}
	r.quotedPrice = quoted
	r.finalPrice = final
}

// Active reports whether the stay is still running: a reservation is active
// until its check-out date has passed.
func (r *Reservation) Active(now time.Time) bool {
	return r.stay.CheckOut().After(now)
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) GuestName() string    { return r.guestName }
func (r *Reservation) RoomName() string     { return r.roomName }
func (r *Reservation) Stay() Stay           { return r.stay }
func (r *Reservation) DiscountCode() string { return r.discountCode }
func (r *Reservation) QuotedPrice() float64 { return r.quotedPrice }
func (r *Reservation) FinalPrice() float64  { return r.finalPrice }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
