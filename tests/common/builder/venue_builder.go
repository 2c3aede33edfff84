//go:build unit

package builder

import (
	domvenue "gather-venues/internal/domain/venue"
	"gather-venues/internal/usecase/queries"
)

type VenueBuilder struct {
	ID            string
	Name          string
	City          domvenue.City
	Address       string
	PricePerEvent int
	GuestCapacity int
	Type          domvenue.Type
	Amenities     []string
	Description   string
	ImageURL      string
	Gallery       []string
	Rating        float64
	Reviews       int
	Lat           float64
	Lng           float64
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:            "v-test-01",
		Name:          "Test Banquet Hall",
		City:          domvenue.CityPune,
		Address:       "12 MG Road, Pune",
		PricePerEvent: 85000,
		GuestCapacity: 500,
		Type:          domvenue.TypeBanquetHall,
		Amenities:     []string{"Parking", "Catering"},
		Description:   "A spacious hall for large events.",
		ImageURL:      "https://example.com/hall.jpg",
		Gallery:       []string{"https://example.com/hall-1.jpg"},
		Rating:        4.5,
		Reviews:       120,
		Lat:           18.5204,
		Lng:           73.8567,
	}
}

func (b *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(b)
	return b
}

func (b *VenueBuilder) BuildDomain() (*domvenue.Venue, error) {
	rating, err := domvenue.NewRating(b.Rating)
	if err != nil {
		return nil, err
	}
	coords, err := domvenue.NewCoordinates(b.Lat, b.Lng)
	if err != nil {
		return nil, err
	}
	return domvenue.New(
		b.ID,
		b.Name,
		b.City,
		b.Address,
		b.PricePerEvent,
		b.GuestCapacity,
		b.Type,
		b.Amenities,
		b.Description,
		b.ImageURL,
		b.Gallery,
		rating,
		b.Reviews,
		coords,
	)
}

func (b *VenueBuilder) BuildListItem() *queries.VenueListItem {
	return &queries.VenueListItem{
		ID:            b.ID,
		Name:          b.Name,
		City:          b.City.String(),
		Address:       b.Address,
		PricePerEvent: b.PricePerEvent,
		GuestCapacity: b.GuestCapacity,
		Type:          b.Type.String(),
		ImageURL:      b.ImageURL,
		Rating:        b.Rating,
		Reviews:       b.Reviews,
	}
}

func (b *VenueBuilder) BuildView() *queries.VenueView {
	return &queries.VenueView{
		ID:            b.ID,
		Name:          b.Name,
		City:          b.City.String(),
		Address:       b.Address,
		PricePerEvent: b.PricePerEvent,
		GuestCapacity: b.GuestCapacity,
		Type:          b.Type.String(),
		Amenities:     b.Amenities,
		Description:   b.Description,
		ImageURL:      b.ImageURL,
		Gallery:       b.Gallery,
		Rating:        b.Rating,
		Reviews:       b.Reviews,
		Lat:           b.Lat,
		Lng:           b.Lng,
	}
}
