//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gather-venues/internal/handler/api"
	reqdto "gather-venues/internal/handler/dto/request"
	resdto "gather-venues/internal/handler/dto/response"
	"gather-venues/internal/pkg/errs"
	"gather-venues/internal/usecase/queries"
	"gather-venues/tests/common/httptest"
	"gather-venues/tests/common/testutil"
	commandsmock "gather-venues/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSearchCommands
	handler      *api.SearchHandler
}

func (s *SearchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSearchCommands(s.mockCtrl)
	s.handler = api.NewSearchHandler(s.mockCommands)

	s.router.POST("/search", s.handler.LandingSearch)
}

func (s *SearchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchHandlerSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}

func (s *SearchHandlerTestSuite) TestLandingSearch() {
	reqBody := reqdto.LandingSearchRequest{
		EventType: "Wedding",
		City:      "Pune",
		Budget:    "120000",
	}

	s.Run("maps the submission to a listing result", func() {
		result := &queries.SearchResultView{
			View:     "LISTING",
			City:     "Pune",
			Types:    []string{"Banquet Hall", "Resort", "Party Lawn"},
			MinPrice: 0,
			MaxPrice: 120000,
		}
		s.mockCommands.EXPECT().
			LandingSearch(gomock.Any(), "Wedding", "Pune", "120000").
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/search", reqBody)

		var response resdto.LandingSearchResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal("LISTING", response.View)
		s.Equal("Pune", response.City)
		s.Equal(120000, response.MaxPrice)
		s.Len(response.Types, 3)
	})

	s.Run("missing city is a field-level validation failure", func() {
		s.mockCommands.EXPECT().
			LandingSearch(gomock.Any(), "Wedding", "", "120000").
			Return(nil, errs.ErrCityRequired)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("city", ""))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/search", body)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "City is required")

		var response struct {
			Field string `json:"field"`
		}
		httptest.DecodeResponseBody(s.T(), w.Body, &response)
		s.Equal("city", response.Field)
	})

	s.Run("invalid parameters", func() {
		s.mockCommands.EXPECT().
			LandingSearch(gomock.Any(), "Wedding", "Pune", "cheap").
			Return(nil, errs.ErrDomainValidationFailed)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("budget", "cheap"))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/search", body)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid search parameters")
	})

	s.Run("malformed request body", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("budget", 12345))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/search", body)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}
