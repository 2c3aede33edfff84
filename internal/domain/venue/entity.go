package venue

import "errors"

var (
	ErrEmptyID         = errors.New("venue id cannot be empty")
	ErrEmptyName       = errors.New("venue name cannot be empty")
	ErrInvalidCity     = errors.New("invalid venue city")
	ErrInvalidType     = errors.New("invalid venue type")
	ErrNegativePrice   = errors.New("price per event cannot be negative")
	ErrInvalidCapacity = errors.New("guest capacity must be positive")
	ErrNegativeReviews = errors.New("review count cannot be negative")
)

// Venue is an immutable, catalog-owned record. Created at catalog load,
// never mutated during a session.
type Venue struct {
	id            string
	name          string
	city          City
	address       string
	pricePerEvent int
	guestCapacity int
	venueType     Type
	amenities     []string
	description   string
	imageURL      string
	gallery       []string
	rating        Rating
	reviews       int
	coordinates   Coordinates
}

func New(
	id, name string,
	city City,
	address string,
	pricePerEvent, guestCapacity int,
	venueType Type,
	amenities []string,
	description, imageURL string,
	gallery []string,
	rating Rating,
	reviews int,
	coordinates Coordinates,
) (*Venue, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if !city.IsValid() {
		return nil, ErrInvalidCity
	}
	if !venueType.IsValid() {
		return nil, ErrInvalidType
	}
	if pricePerEvent < 0 {
		return nil, ErrNegativePrice
	}
	if guestCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if reviews < 0 {
		return nil, ErrNegativeReviews
	}

	return &Venue{
		id:            id,
		name:          name,
		city:          city,
		address:       address,
		pricePerEvent: pricePerEvent,
		guestCapacity: guestCapacity,
		venueType:     venueType,
		amenities:     amenities,
		description:   description,
		imageURL:      imageURL,
		gallery:       gallery,
		rating:        rating,
		reviews:       reviews,
		coordinates:   coordinates,
	}, nil
}

func (v *Venue) ID() string               { return v.id }
func (v *Venue) Name() string             { return v.name }
func (v *Venue) City() City               { return v.city }
func (v *Venue) Address() string          { return v.address }
func (v *Venue) PricePerEvent() int       { return v.pricePerEvent }
func (v *Venue) GuestCapacity() int       { return v.guestCapacity }
func (v *Venue) Type() Type               { return v.venueType }
func (v *Venue) Amenities() []string      { return v.amenities }
func (v *Venue) Description() string      { return v.description }
func (v *Venue) ImageURL() string         { return v.imageURL }
func (v *Venue) Gallery() []string        { return v.gallery }
func (v *Venue) Rating() Rating           { return v.rating }
func (v *Venue) Reviews() int             { return v.reviews }
func (v *Venue) Coordinates() Coordinates { return v.coordinates }
