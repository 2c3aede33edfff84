package api

import (
	"errors"
	"net/http"

	reqdto "gather-venues/internal/handler/dto/request"
	resdto "gather-venues/internal/handler/dto/response"
	"gather-venues/internal/pkg/errs"
	"gather-venues/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchCommands commands.SearchCommands
}

func NewSearchHandler(searchCommands commands.SearchCommands) *SearchHandler {
	return &SearchHandler{
		searchCommands: searchCommands,
	}
}

// @Summary Landing search
// @Description Map a landing form submission to listing criteria
// @Tags search
// @Accept json
// @Produce json
// @Param request body reqdto.LandingSearchRequest true "Landing search"
// @Success 200 {object} resdto.LandingSearchResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /search [post]
func (h *SearchHandler) LandingSearch(c *gin.Context) {
	var req reqdto.LandingSearchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.searchCommands.LandingSearch(c.Request.Context(), req.EventType, req.City, req.Budget)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCityRequired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "City is required",
				"field": "city",
			})
		case errors.Is(err, errs.ErrDomainValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid search parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSearchResultView(result))
}
