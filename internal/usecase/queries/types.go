package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type VenueListItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Address       string  `json:"address"`
	PricePerEvent int     `json:"price_per_event"`
	GuestCapacity int     `json:"guest_capacity"`
	Type          string  `json:"type"`
	ImageURL      string  `json:"image_url"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
}

type VenueView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	Address       string   `json:"address"`
	PricePerEvent int      `json:"price_per_event"`
	GuestCapacity int      `json:"guest_capacity"`
	Type          string   `json:"type"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	Gallery       []string `json:"gallery"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
}

type AvailabilityView struct {
	VenueID    string `json:"venue_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	BookedDays []int  `json:"booked_days"`
}

// FlowView is the published state of one booking flow instance. The
// summary fields are filled from the owning venue so the confirmation
// step can render without a second lookup.
type FlowView struct {
	ID            uuid.UUID  `json:"id"`
	VenueID       string     `json:"venue_id"`
	VenueName     string     `json:"venue_name"`
	Price         int        `json:"price"`
	GuestCapacity int        `json:"guest_capacity"`
	Step          string     `json:"step"`
	Date          *time.Time `json:"date,omitempty"`
	TimeSlotID    *string    `json:"time_slot_id,omitempty"`
	TimeSlotLabel *string    `json:"time_slot_label,omitempty"`
	Guests        *string    `json:"guests,omitempty"`
}

type BookingView struct {
	ID            string     `json:"id"`
	VenueID       string     `json:"venue_id"`
	VenueName     string     `json:"venue_name"`
	VenueImage    string     `json:"venue_image"`
	Date          *time.Time `json:"date"`
	TimeSlotID    string     `json:"time_slot_id"`
	TimeSlotLabel string     `json:"time_slot_label"`
	Guests        string     `json:"guests"`
	Price         int        `json:"price"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SearchResultView tells the host application where to navigate and
// with which criteria after a successful landing search.
type SearchResultView struct {
	View     string   `json:"view"`
	City     string   `json:"city"`
	Types    []string `json:"types"`
	MinPrice int      `json:"min_price"`
	MaxPrice int      `json:"max_price"`
}
