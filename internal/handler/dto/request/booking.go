package request

import "time"

type StartFlowRequest struct {
	VenueID string `json:"venueId" binding:"required"`
}

// UpdateSelectionRequest carries a partial selection update; omitted
// fields leave the draft untouched.
type UpdateSelectionRequest struct {
	Date       *time.Time `json:"date,omitempty"`
	TimeSlotID *string    `json:"timeSlotId,omitempty"`
	Guests     *string    `json:"guests,omitempty"`
}
