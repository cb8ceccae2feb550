package room

import "errors"

var ErrInvalidCategory = errors.New("invalid room category")

// Category is a closed set; a room's category never changes after creation.
type Category string

const (
	CategoryStandard  Category = "Standard"
	CategoryDeluxe    Category = "Deluxe"
	CategoryExecutive Category = "Executive"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryStandard, CategoryDeluxe, CategoryExecutive:
		return Category(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// Multiplier is the fixed markup over the raw stored base price. The markup
// is always recomputed from the unadjusted base, never stored back into it,
// so repeated rate calculations cannot compound.
func (c Category) Multiplier() float64 {
	switch c {
	case CategoryDeluxe:
		return 1.20
	case CategoryExecutive:
		return 1.35
	default:
		return 1.0
	}
}

type DayStatus string

const (
	DayAvailable DayStatus = "Available"
	DayBooked    DayStatus = "Booked"
)

// CalendarDay is one entry of a room's monthly availability view.
type CalendarDay struct {
	Day    int
	Status DayStatus
}
