package queries

import (
	"context"

	"gather-venues/internal/domain/availability"
	"gather-venues/internal/domain/venue"
	"gather-venues/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// VenueCatalog is the read-side port onto the static catalog.
type VenueCatalog interface {
	All() []*venue.Venue
	FindByID(id string) (*venue.Venue, bool)
}

type VenueQueries interface {
	ListCities(ctx context.Context) []string
	ListVenues(ctx context.Context, criteria venue.Criteria) []*VenueListItem
	GetVenue(ctx context.Context, id string) (*VenueView, error)
	Availability(ctx context.Context, venueID string, year, month int) (*AvailabilityView, error)
}

type venueQueriesImpl struct {
	catalog  VenueCatalog
	provider availability.Provider
}

func NewVenueQueries(catalog VenueCatalog, provider availability.Provider) VenueQueries {
	return &venueQueriesImpl{
		catalog:  catalog,
		provider: provider,
	}
}

func (q *venueQueriesImpl) ListCities(_ context.Context) []string {
	cities := venue.AllCities()
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.String()
	}
	return names
}

func (q *venueQueriesImpl) ListVenues(_ context.Context, criteria venue.Criteria) []*VenueListItem {
	matched := venue.Filter(q.catalog.All(), criteria)
	items := make([]*VenueListItem, len(matched))
	for i, v := range matched {
		items[i] = toListItem(v)
	}
	return items
}

func (q *venueQueriesImpl) GetVenue(_ context.Context, id string) (*VenueView, error) {
	v, ok := q.catalog.FindByID(id)
	if !ok {
		return nil, errs.ErrVenueNotFound
	}
	return toVenueView(v), nil
}

func (q *venueQueriesImpl) Availability(_ context.Context, venueID string, year, month int) (*AvailabilityView, error) {
	if _, ok := q.catalog.FindByID(venueID); !ok {
		return nil, errs.ErrVenueNotFound
	}
	days, err := q.provider.BookedDays(venueID, year, month)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate availability")
	}
	return &AvailabilityView{
		VenueID:    venueID,
		Year:       year,
		Month:      month,
		BookedDays: days,
	}, nil
}

func toListItem(v *venue.Venue) *VenueListItem {
	return &VenueListItem{
		ID:            v.ID(),
		Name:          v.Name(),
		City:          v.City().String(),
		Address:       v.Address(),
		PricePerEvent: v.PricePerEvent(),
		GuestCapacity: v.GuestCapacity(),
		Type:          v.Type().String(),
		ImageURL:      v.ImageURL(),
		Rating:        v.Rating().Value(),
		Reviews:       v.Reviews(),
	}
}

func toVenueView(v *venue.Venue) *VenueView {
	view := &VenueView{}
	// Flat fields share names with the list item projection.
	_ = copier.Copy(view, toListItem(v))
	view.Amenities = v.Amenities()
	view.Description = v.Description()
	view.Gallery = v.Gallery()
	view.Lat = v.Coordinates().Lat()
	view.Lng = v.Coordinates().Lng()
	return view
}
