//go:build unit

package venue_test

import (
	"testing"

	"gather-venues/internal/domain/venue"
	"gather-venues/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) []*venue.Venue {
	t.Helper()

	specs := []struct {
		id    string
		name  string
		city  venue.City
		typ   venue.Type
		price int
	}{
		{"v-pune-01", "Royal Gardens", venue.CityPune, venue.TypeBanquetHall, 85000},
		{"v-pune-02", "The Velvet Lounge", venue.CityPune, venue.TypeLounge, 45000},
		{"v-pune-03", "Mulshi Meadows Resort", venue.CityPune, venue.TypeResort, 150000},
		{"v-blr-01", "Cubbon Pavilion", venue.CityBangalore, venue.TypeBanquetHall, 95000},
		{"v-mum-01", "Madh Island Shores", venue.CityMumbai, venue.TypeResort, 200000},
	}

	catalog := make([]*venue.Venue, 0, len(specs))
	for _, s := range specs {
		b := builder.NewVenueBuilder()
		b.ID = s.id
		b.Name = s.name
		b.City = s.city
		b.Type = s.typ
		b.PricePerEvent = s.price
		v, err := b.BuildDomain()
		require.NoError(t, err)
		catalog = append(catalog, v)
	}
	return catalog
}

func matchedIDs(vs []*venue.Venue) []string {
	ids := make([]string, len(vs))
	for i, v := range vs {
		ids[i] = v.ID()
	}
	return ids
}

func TestFilter(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("no city yields empty result", func(t *testing.T) {
		got := venue.Filter(catalog, venue.DefaultCriteria())
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("city restricts to members in catalog order", func(t *testing.T) {
		criteria := venue.DefaultCriteria().WithCity(venue.CityPune)
		got := matchedIDs(venue.Filter(catalog, criteria))
		want := []string{"v-pune-01", "v-pune-02", "v-pune-03"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("filtered venues mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("search term is case-insensitive substring on name", func(t *testing.T) {
		criteria := venue.DefaultCriteria().WithCity(venue.CityPune)
		criteria.SearchTerm = "ROYAL"
		got := matchedIDs(venue.Filter(catalog, criteria))
		want := []string{"v-pune-01"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("filtered venues mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("price ceiling is inclusive", func(t *testing.T) {
		criteria := venue.DefaultCriteria().WithCity(venue.CityMumbai)
		criteria.PriceRange = venue.NewPriceRange(200000)
		require.Equal(t, []string{"v-mum-01"}, matchedIDs(venue.Filter(catalog, criteria)))

		criteria.PriceRange = venue.NewPriceRange(199999)
		require.Empty(t, venue.Filter(catalog, criteria))
	})

	t.Run("type set is a membership test", func(t *testing.T) {
		criteria := venue.DefaultCriteria().WithCity(venue.CityPune)
		criteria.Types = []venue.Type{venue.TypeLounge, venue.TypeResort}
		got := matchedIDs(venue.Filter(catalog, criteria))
		want := []string{"v-pune-02", "v-pune-03"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("filtered venues mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty type set imposes no restriction", func(t *testing.T) {
		criteria := venue.DefaultCriteria().WithCity(venue.CityBangalore)
		criteria.Types = nil
		require.Equal(t, []string{"v-blr-01"}, matchedIDs(venue.Filter(catalog, criteria)))
	})

	t.Run("all conditions combine with AND", func(t *testing.T) {
		criteria := venue.DefaultCriteria().WithCity(venue.CityPune)
		criteria.SearchTerm = "resort"
		criteria.PriceRange = venue.NewPriceRange(150000)
		criteria.Types = []venue.Type{venue.TypeResort}
		require.Equal(t, []string{"v-pune-03"}, matchedIDs(venue.Filter(catalog, criteria)))

		// Tighten one condition and the match disappears.
		criteria.PriceRange = venue.NewPriceRange(149999)
		require.Empty(t, venue.Filter(catalog, criteria))
	})

	t.Run("filter does not mutate its inputs", func(t *testing.T) {
		criteria := venue.DefaultCriteria().WithCity(venue.CityPune)
		before := matchedIDs(catalog)
		_ = venue.Filter(catalog, criteria)
		require.Equal(t, before, matchedIDs(catalog))
	})
}
