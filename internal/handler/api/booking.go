package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "gather-venues/internal/handler/dto/request"
	resdto "gather-venues/internal/handler/dto/response"
	"gather-venues/internal/pkg/errs"
	"gather-venues/internal/usecase/commands"
	"gather-venues/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Start booking flow
// @Description Create a fresh SELECTION flow for a venue
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.StartFlowRequest true "Flow request"
// @Success 201 {object} resdto.FlowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking-flows [post]
func (h *BookingHandler) StartFlow(c *gin.Context) {
	var req reqdto.StartFlowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.StartFlow(c.Request.Context(), req.VenueID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", "/api/booking-flows/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromFlowView(view))
}

// @Summary Get booking flow
// @Description Current published state of a flow
// @Tags bookings
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} map[string]string
// @Router /booking-flows/{id} [get]
func (h *BookingHandler) GetFlow(c *gin.Context) {
	flowID, ok := h.parseFlowID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetFlow(c.Request.Context(), flowID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(view))
}

// @Summary Update selection
// @Description Set date, time slot and/or guest count on a SELECTION draft
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body reqdto.UpdateSelectionRequest true "Selection update"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking-flows/{id}/selection [patch]
func (h *BookingHandler) UpdateSelection(c *gin.Context) {
	flowID, ok := h.parseFlowID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateSelectionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.UpdateSelection(c.Request.Context(), flowID, commands.SelectionParams{
		Date:       req.Date,
		TimeSlotID: req.TimeSlotID,
		Guests:     req.Guests,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(view))
}

// @Summary Proceed to confirmation
// @Description SELECTION to CONFIRMATION; requires a complete draft
// @Tags bookings
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking-flows/{id}/proceed [post]
func (h *BookingHandler) Proceed(c *gin.Context) {
	h.transition(c, h.bookingCommands.Proceed)
}

// @Summary Edit selection
// @Description CONFIRMATION back to SELECTION, draft preserved
// @Tags bookings
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking-flows/{id}/edit [post]
func (h *BookingHandler) Edit(c *gin.Context) {
	h.transition(c, h.bookingCommands.Edit)
}

// @Summary Confirm booking
// @Description Commit the draft after the simulated processing delay
// @Tags bookings
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.ConfirmResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking-flows/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	flowID, ok := h.parseFlowID(c)
	if !ok {
		return
	}

	result, err := h.bookingCommands.Confirm(c.Request.Context(), flowID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}

// @Summary Reset flow
// @Description Back to a fresh SELECTION ("Make another booking")
// @Tags bookings
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} map[string]string
// @Router /booking-flows/{id}/reset [post]
func (h *BookingHandler) Reset(c *gin.Context) {
	h.transition(c, h.bookingCommands.ResetFlow)
}

// @Summary Abandon flow
// @Description Drop the flow session without persisting anything
// @Tags bookings
// @Param id path string true "Flow ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /booking-flows/{id} [delete]
func (h *BookingHandler) Abandon(c *gin.Context) {
	flowID, ok := h.parseFlowID(c)
	if !ok {
		return
	}

	if err := h.bookingCommands.AbandonFlow(c.Request.Context(), flowID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List bookings
// @Description All committed booking records in insertion order
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	views, err := h.bookingQueries.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromBookingView(rm)
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) transition(c *gin.Context, fn func(ctx context.Context, flowID uuid.UUID) (*queries.FlowView, error)) {
	flowID, ok := h.parseFlowID(c)
	if !ok {
		return
	}

	view, err := fn(c.Request.Context(), flowID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(view))
}

func (h *BookingHandler) parseFlowID(c *gin.Context) (uuid.UUID, bool) {
	flowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid flow ID format",
		})
		return uuid.Nil, false
	}
	return flowID, true
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrFlowNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking flow not found",
		})
	case errors.Is(err, errs.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
	case errors.Is(err, errs.ErrIncompleteDraft):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Date, time slot and guest count are required to proceed",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Transition not allowed from the current step",
		})
	case errors.Is(err, errs.ErrInvalidTimeSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
	case errors.Is(err, errs.ErrInvalidGuestCount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest count",
		})
	case errors.Is(err, errs.ErrDayUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Selected day is unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
