package response

import (
	"time"

	"gather-venues/internal/usecase/commands"
	"gather-venues/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FlowResponse struct {
	ID            uuid.UUID  `json:"id"`
	VenueID       string     `json:"venueId"`
	VenueName     string     `json:"venueName"`
	Price         int        `json:"price"`
	GuestCapacity int        `json:"guestCapacity"`
	Step          string     `json:"step"`
	Date          *time.Time `json:"date,omitempty"`
	TimeSlotID    *string    `json:"timeSlotId,omitempty"`
	TimeSlotLabel *string    `json:"timeSlotLabel,omitempty"`
	Guests        *string    `json:"guests,omitempty"`
}

type BookingResponse struct {
	ID            string     `json:"id"`
	VenueID       string     `json:"venueId"`
	VenueName     string     `json:"venueName"`
	VenueImage    string     `json:"venueImage"`
	Date          *time.Time `json:"date"`
	TimeSlotID    string     `json:"timeSlotId"`
	TimeSlotLabel string     `json:"timeSlotLabel"`
	Guests        string     `json:"guests"`
	Price         int        `json:"price"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type ConfirmResponse struct {
	Flow      *FlowResponse    `json:"flow"`
	Booking   *BookingResponse `json:"booking"`
	Persisted bool             `json:"persisted"`
}

func FromFlowView(rm *queries.FlowView) *FlowResponse {
	resp := &FlowResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromConfirmResult(rm *commands.ConfirmResult) *ConfirmResponse {
	return &ConfirmResponse{
		Flow:      FromFlowView(rm.Flow),
		Booking:   FromBookingView(rm.Booking),
		Persisted: rm.Persisted,
	}
}
