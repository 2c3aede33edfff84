//go:build unit

package queries_test

import (
	"context"
	"testing"

	"gather-venues/internal/domain/availability"
	"gather-venues/internal/domain/venue"
	"gather-venues/internal/pkg/errs"
	"gather-venues/internal/usecase/queries"
	"gather-venues/tests/common/builder"
	queriesmock "gather-venues/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVenueQueries(t *testing.T) {
	newMocks := func(t *testing.T) (*queriesmock.MockVenueCatalog, queries.VenueQueries) {
		ctrl := gomock.NewController(t)
		catalog := queriesmock.NewMockVenueCatalog(ctrl)
		return catalog, queries.NewVenueQueries(catalog, availability.NewRandomProvider())
	}

	t.Run("list cities", func(t *testing.T) {
		_, q := newMocks(t)
		assert.Equal(t, []string{"Pune", "Bangalore", "Mumbai"}, q.ListCities(context.Background()))
	})

	t.Run("list venues applies the filter", func(t *testing.T) {
		catalog, q := newMocks(t)

		puneVenue, err := builder.NewVenueBuilder().BuildDomain()
		require.NoError(t, err)
		b := builder.NewVenueBuilder()
		b.ID = "v-blr-01"
		b.City = venue.CityBangalore
		blrVenue, err := b.BuildDomain()
		require.NoError(t, err)

		catalog.EXPECT().All().Return([]*venue.Venue{puneVenue, blrVenue})

		items := q.ListVenues(context.Background(), venue.DefaultCriteria().WithCity(venue.CityPune))
		require.Len(t, items, 1)
		assert.Equal(t, puneVenue.ID(), items[0].ID)
		assert.Equal(t, "Pune", items[0].City)
	})

	t.Run("get venue projects the full detail", func(t *testing.T) {
		catalog, q := newMocks(t)

		v, err := builder.NewVenueBuilder().BuildDomain()
		require.NoError(t, err)
		catalog.EXPECT().FindByID(v.ID()).Return(v, true)

		view, err := q.GetVenue(context.Background(), v.ID())
		require.NoError(t, err)
		assert.Equal(t, v.ID(), view.ID)
		assert.Equal(t, v.Name(), view.Name)
		assert.Equal(t, v.Amenities(), view.Amenities)
		assert.Equal(t, v.Coordinates().Lat(), view.Lat)
		assert.Equal(t, v.Coordinates().Lng(), view.Lng)
	})

	t.Run("get venue not found", func(t *testing.T) {
		catalog, q := newMocks(t)
		catalog.EXPECT().FindByID("v-missing").Return(nil, false)

		_, err := q.GetVenue(context.Background(), "v-missing")
		require.ErrorIs(t, err, errs.ErrVenueNotFound)
	})

	t.Run("availability for a known venue", func(t *testing.T) {
		catalog, q := newMocks(t)

		v, err := builder.NewVenueBuilder().BuildDomain()
		require.NoError(t, err)
		catalog.EXPECT().FindByID(v.ID()).Return(v, true)

		view, err := q.Availability(context.Background(), v.ID(), 2026, 9)
		require.NoError(t, err)
		assert.Equal(t, v.ID(), view.VenueID)
		assert.Equal(t, 2026, view.Year)
		assert.Equal(t, 9, view.Month)
		assert.NotEmpty(t, view.BookedDays)
	})

	t.Run("availability for an unknown venue", func(t *testing.T) {
		catalog, q := newMocks(t)
		catalog.EXPECT().FindByID("v-missing").Return(nil, false)

		_, err := q.Availability(context.Background(), "v-missing", 2026, 9)
		require.ErrorIs(t, err, errs.ErrVenueNotFound)
	})
}
