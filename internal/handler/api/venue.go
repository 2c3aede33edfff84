package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gather-venues/internal/domain/venue"
	resdto "gather-venues/internal/handler/dto/response"
	"gather-venues/internal/pkg/errs"
	"gather-venues/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venueQueries queries.VenueQueries
}

func NewVenueHandler(venueQueries queries.VenueQueries) *VenueHandler {
	return &VenueHandler{
		venueQueries: venueQueries,
	}
}

// @Summary List cities
// @Description List the cities venues can be browsed in
// @Tags venues
// @Produce json
// @Success 200 {array} string
// @Router /cities [get]
func (h *VenueHandler) ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, h.venueQueries.ListCities(c.Request.Context()))
}

// @Summary List venues
// @Description List venues filtered by city, search term, price ceiling and types
// @Tags venues
// @Produce json
// @Param city query string false "City name; without it the result is empty"
// @Param q query string false "Case-insensitive name search term"
// @Param maxPrice query int false "Inclusive price ceiling"
// @Param types query string false "Comma-separated venue types"
// @Success 200 {array} resdto.VenueListResponse
// @Failure 400 {object} map[string]string
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	criteria, err := h.parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	items := h.venueQueries.ListVenues(c.Request.Context(), criteria)
	response := make([]*resdto.VenueListResponse, len(items))
	for i, rm := range items {
		response[i] = resdto.FromVenueListItem(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get venue
// @Description Get venue details by ID
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	view, err := h.venueQueries.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}

// @Summary Venue availability
// @Description Booked days for the displayed month
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/availability [get]
func (h *VenueHandler) Availability(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "year and month query parameters are required",
		})
		return
	}

	view, err := h.venueQueries.Availability(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

func (h *VenueHandler) parseCriteria(c *gin.Context) (venue.Criteria, error) {
	criteria := venue.DefaultCriteria()
	criteria.SearchTerm = c.Query("q")

	if cityParam := c.Query("city"); cityParam != "" {
		city := venue.City(cityParam)
		// Unknown cities stay unset and yield an empty listing.
		if city.IsValid() {
			criteria = criteria.WithCity(city)
		}
	}

	if maxParam := c.Query("maxPrice"); maxParam != "" {
		maxPrice, err := strconv.Atoi(maxParam)
		if err != nil || maxPrice < 0 {
			return venue.Criteria{}, errors.New("maxPrice must be a non-negative integer")
		}
		criteria.PriceRange = venue.NewPriceRange(maxPrice)
	}

	if typesParam := c.Query("types"); typesParam != "" {
		for _, raw := range strings.Split(typesParam, ",") {
			t := venue.Type(strings.TrimSpace(raw))
			if !t.IsValid() {
				return venue.Criteria{}, errors.New("unknown venue type: " + raw)
			}
			criteria.Types = append(criteria.Types, t)
		}
	}

	return criteria, nil
}
