package hotel

import (
	"errors"
	"strings"
	"time"

	"hotelier/internal/domain/room"
)

const (
	// MaxRooms caps how many rooms a single hotel may hold.
	MaxRooms = 50
	// MinBasePrice is the floor enforced on hotel-wide base price updates.
	MinBasePrice = 100.0
)

var (
	ErrEmptyName          = errors.New("hotel name cannot be empty")
	ErrRoomLimitReached   = errors.New("hotel already has the maximum number of rooms")
	ErrRoomAlreadyExists  = errors.New("room with this name already exists")
	ErrRoomNotFound       = errors.New("room not found")
	ErrWindowNotFound     = errors.New("rate window not found")
	ErrActiveReservations = errors.New("hotel has active reservations")
	ErrPriceBelowMinimum  = errors.New("new base price is below the minimum")
)

// Hotel owns its rooms and rate windows. Room order is insertion order and
// availability listings preserve it. totalEarnings only ever grows; it is an
// accumulator of booked revenue, never recomputed from the reservation lists
// and never reduced by cancellations.
type Hotel struct {
	name          string
	rooms         []*room.Room
	windows       []RateWindow
	totalEarnings float64
}

func New(name string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Hotel{name: name}, nil
}

func (h *Hotel) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	h.name = name
	return nil
}

func (h *Hotel) AddRoom(name string, basePrice float64, category room.Category) (*room.Room, error) {
	if len(h.rooms) >= MaxRooms {
		return nil, ErrRoomLimitReached
	}
	if h.Room(name) != nil {
		return nil, ErrRoomAlreadyExists
	}
	r, err := room.New(name, basePrice, category)
	if err != nil {
		return nil, err
	}
	h.rooms = append(h.rooms, r)
	return r, nil
}

func (h *Hotel) RemoveRoom(name string) error {
	for i, r := range h.rooms {
		if strings.EqualFold(r.Name(), name) {
			if r.HasReservations() {
				return room.ErrHasReservations
			}
			h.rooms = append(h.rooms[:i], h.rooms[i+1:]...)
			return nil
		}
	}
	return ErrRoomNotFound
}

// Room looks a room up by name, case-insensitively.
func (h *Hotel) Room(name string) *room.Room {
	for _, r := range h.rooms {
		if strings.EqualFold(r.Name(), name) {
			return r
		}
	}
	return nil
}

func (h *Hotel) Rooms() []*room.Room {
	return h.rooms
}

func (h *Hotel) TotalRooms() int {
	return len(h.rooms)
}

func (h *Hotel) AddRateWindow(w RateWindow) {
	h.windows = append(h.windows, w)
}

func (h *Hotel) RemoveRateWindow(index int) error {
	if index < 0 || index >= len(h.windows) {
		return ErrWindowNotFound
	}
	h.windows = append(h.windows[:index], h.windows[index+1:]...)
	return nil
}

func (h *Hotel) RateWindows() []RateWindow {
	return h.windows
}

// ModifierFor scans the windows in insertion order and returns the first
// match; overlapping windows do not compose. No match means neutral 1.0.
func (h *Hotel) ModifierFor(date time.Time) float64 {
	for _, w := range h.windows {
		if w.Contains(date) {
			return w.Multiplier()
		}
	}
	return 1.0
}

// UpdateBasePrice sets every room's base price at once. It is gated on the
// whole hotel being quiet: a single future check-out anywhere blocks it.
func (h *Hotel) UpdateBasePrice(price float64, now time.Time) error {
	if h.HasActiveReservations(now) {
		return ErrActiveReservations
	}
	if price < MinBasePrice {
		return ErrPriceBelowMinimum
	}
	for _, r := range h.rooms {
		r.SetBasePrice(price)
	}
	return nil
}

func (h *Hotel) HasActiveReservations(now time.Time) bool {
	for _, r := range h.rooms {
		if r.HasActiveReservations(now) {
			return true
		}
	}
	return false
}

func (h *Hotel) HasReservations() bool {
	for _, r := range h.rooms {
		if r.HasReservations() {
			return true
		}
	}
	return false
}

func (h *Hotel) AddEarnings(amount float64) {
	h.totalEarnings += amount
}

// AvailableRoomNames filters rooms by the single-date check, preserving
// room-list order.
func (h *Hotel) AvailableRoomNames(date time.Time) []string {
	names := make([]string, 0, len(h.rooms))
	for _, r := range h.rooms {
		if r.AvailableOn(date) {
			names = append(names, r.Name())
		}
	}
	return names
}

// AvailableRoomNamesForRange filters rooms by the half-open range check,
// preserving room-list order.
func (h *Hotel) AvailableRoomNamesForRange(checkIn, checkOut time.Time) []string {
	names := make([]string, 0, len(h.rooms))
	for _, r := range h.rooms {
		if r.AvailableFor(checkIn, checkOut) {
			names = append(names, r.Name())
		}
	}
	return names
}

func (h *Hotel) TotalAvailable(date time.Time) int {
	count := 0
	for _, r := range h.rooms {
		if r.AvailableOn(date) {
			count++
		}
	}
	return count
}

func (h *Hotel) TotalBooked(date time.Time) int {
	return len(h.rooms) - h.TotalAvailable(date)
}

func (h *Hotel) Name() string           { return h.name }
func (h *Hotel) TotalEarnings() float64 { return h.totalEarnings }
