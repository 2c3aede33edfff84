package response

import (
	"gather-venues/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type VenueListResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Address       string  `json:"address"`
	PricePerEvent int     `json:"pricePerEvent"`
	GuestCapacity int     `json:"guestCapacity"`
	Type          string  `json:"type"`
	ImageURL      string  `json:"imageUrl"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
}

type VenueResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	Address       string   `json:"address"`
	PricePerEvent int      `json:"pricePerEvent"`
	GuestCapacity int      `json:"guestCapacity"`
	Type          string   `json:"type"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	Gallery       []string `json:"gallery"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
}

type AvailabilityResponse struct {
	VenueID    string `json:"venueId"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	BookedDays []int  `json:"bookedDays"`
}

func FromVenueListItem(rm *queries.VenueListItem) *VenueListResponse {
	resp := &VenueListResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromVenueView(rm *queries.VenueView) *VenueResponse {
	resp := &VenueResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	resp := &AvailabilityResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
