//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gather-venues/internal/domain/venue"
	"gather-venues/internal/handler/api"
	resdto "gather-venues/internal/handler/dto/response"
	"gather-venues/internal/pkg/errs"
	"gather-venues/internal/usecase/queries"
	"gather-venues/tests/common/builder"
	"gather-venues/tests/common/httptest"
	queriesmock "gather-venues/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockVenueQueries
	handler     *api.VenueHandler
}

func (s *VenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockVenueQueries(s.mockCtrl)
	s.handler = api.NewVenueHandler(s.mockQueries)

	s.router.GET("/cities", s.handler.ListCities)
	s.router.GET("/venues", s.handler.ListVenues)
	s.router.GET("/venues/:id", s.handler.GetVenue)
	s.router.GET("/venues/:id/availability", s.handler.Availability)
}

func (s *VenueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVenueHandlerSuite(t *testing.T) {
	suite.Run(t, new(VenueHandlerTestSuite))
}

func (s *VenueHandlerTestSuite) TestListCities() {
	s.mockQueries.EXPECT().ListCities(gomock.Any()).Return([]string{"Pune", "Bangalore", "Mumbai"})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cities", nil)

	var cities []string
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cities)
	s.Equal([]string{"Pune", "Bangalore", "Mumbai"}, cities)
}

func (s *VenueHandlerTestSuite) TestListVenues() {
	s.Run("city and filters forwarded as criteria", func() {
		item := builder.NewVenueBuilder().BuildListItem()
		expected := venue.DefaultCriteria().WithCity(venue.CityPune)
		expected.SearchTerm = "royal"
		expected.PriceRange = venue.NewPriceRange(100000)
		expected.Types = []venue.Type{venue.TypeBanquetHall}

		s.mockQueries.EXPECT().
			ListVenues(gomock.Any(), expected).
			Return([]*queries.VenueListItem{item})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/venues?city=Pune&q=royal&maxPrice=100000&types=Banquet+Hall", nil)

		var response []resdto.VenueListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(item.ID, response[0].ID)
		s.Equal(item.Name, response[0].Name)
	})

	s.Run("unknown city yields an empty listing", func() {
		s.mockQueries.EXPECT().
			ListVenues(gomock.Any(), venue.DefaultCriteria()).
			Return([]*queries.VenueListItem{})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues?city=Atlantis", nil)

		var response []resdto.VenueListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("malformed price ceiling", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues?city=Pune&maxPrice=lots", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "maxPrice")
	})

	s.Run("unknown venue type", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues?city=Pune&types=Rooftop", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "unknown venue type")
	})
}

func (s *VenueHandlerTestSuite) TestGetVenue() {
	s.Run("found", func() {
		view := builder.NewVenueBuilder().BuildView()
		s.mockQueries.EXPECT().GetVenue(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+view.ID, nil)

		var response resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Lat, response.Lat)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetVenue(gomock.Any(), "v-missing").Return(nil, errs.ErrVenueNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/v-missing", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Venue not found")
	})
}

func (s *VenueHandlerTestSuite) TestAvailability() {
	s.Run("booked days for the requested month", func() {
		view := &queries.AvailabilityView{
			VenueID:    "v-test-01",
			Year:       2026,
			Month:      9,
			BookedDays: []int{3, 7, 12, 18, 25},
		}
		s.mockQueries.EXPECT().Availability(gomock.Any(), "v-test-01", 2026, 9).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/v-test-01/availability?year=2026&month=9", nil)

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal([]int{3, 7, 12, 18, 25}, response.BookedDays)
	})

	s.Run("missing query parameters", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/v-test-01/availability", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "year and month")
	})

	s.Run("month out of range", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/v-test-01/availability?year=2026&month=13", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "year and month")
	})

	s.Run("unknown venue", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), "v-missing", 2026, 9).Return(nil, errs.ErrVenueNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/v-missing/availability?year=2026&month=9", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Venue not found")
	})
}
