package venue

import "errors"

// DefaultMaxPrice is the system-wide price ceiling in rupees.
const DefaultMaxPrice = 200000

type PriceRange struct {
	min int
	max int
}

// NewPriceRange keeps the floor fixed at zero; callers only choose the ceiling.
func NewPriceRange(max int) PriceRange {
	if max < 0 {
		max = 0
	}
	return PriceRange{min: 0, max: max}
}

func DefaultPriceRange() PriceRange {
	return NewPriceRange(DefaultMaxPrice)
}

func (p PriceRange) Min() int {
	return p.min
}

func (p PriceRange) Max() int {
	return p.max
}

// Contains is inclusive at both bounds.
func (p PriceRange) Contains(price int) bool {
	return price >= p.min && price <= p.max
}

type Coordinates struct {
	lat float64
	lng float64
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 {
		return Coordinates{}, errors.New("latitude out of range")
	}
	if lng < -180 || lng > 180 {
		return Coordinates{}, errors.New("longitude out of range")
	}
	return Coordinates{lat: lat, lng: lng}, nil
}

func (c Coordinates) Lat() float64 {
	return c.lat
}

func (c Coordinates) Lng() float64 {
	return c.lng
}

type Rating struct {
	value float64
}

func NewRating(value float64) (Rating, error) {
	if value < 0 || value > 5 {
		return Rating{}, errors.New("rating must be between 0 and 5")
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() float64 {
	return r.value
}
