//go:build unit

package builder

import (
	"time"

	dombooking "gather-venues/internal/domain/booking"
	"gather-venues/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	FlowID        uuid.UUID
	VenueID       string
	VenueName     string
	VenueImage    string
	Price         int
	GuestCapacity int
	Date          time.Time
	TimeSlot      dombooking.TimeSlot
	Guests        string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		FlowID:        uuid.New(),
		VenueID:       "v-test-01",
		VenueName:     "Test Banquet Hall",
		VenueImage:    "https://example.com/hall.jpg",
		Price:         85000,
		GuestCapacity: 500,
		Date:          time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:      dombooking.SlotEvening,
		Guests:        "200",
		CreatedAt:     time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDraft walks a fresh draft to the requested step. The builder's
// values must pass validation, so errors here fail the construction.
func (b *BookingBuilder) BuildDraft(step dombooking.Step) (*dombooking.Draft, error) {
	draft := dombooking.NewDraft(b.VenueID)
	if step == dombooking.StepSelection {
		return draft, nil
	}

	if err := draft.SetDate(b.Date); err != nil {
		return nil, err
	}
	if err := draft.SetTimeSlot(b.TimeSlot); err != nil {
		return nil, err
	}
	guests, err := dombooking.NewGuestCount(b.Guests, b.GuestCapacity)
	if err != nil {
		return nil, err
	}
	if err := draft.SetGuests(guests); err != nil {
		return nil, err
	}
	if err := draft.Proceed(); err != nil {
		return nil, err
	}
	if step == dombooking.StepConfirmation {
		return draft, nil
	}

	if err := draft.Complete(); err != nil {
		return nil, err
	}
	return draft, nil
}

func (b *BookingBuilder) BuildFlowView(step dombooking.Step) *queries.FlowView {
	view := &queries.FlowView{
		ID:            b.FlowID,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		Price:         b.Price,
		GuestCapacity: b.GuestCapacity,
		Step:          step.String(),
	}
	if step != dombooking.StepSelection {
		date := b.Date
		slotID := b.TimeSlot.ID()
		slotLabel := b.TimeSlot.Label()
		guests := b.Guests
		view.Date = &date
		view.TimeSlotID = &slotID
		view.TimeSlotLabel = &slotLabel
		view.Guests = &guests
	}
	return view
}

func (b *BookingBuilder) BuildRecord(id string) *dombooking.Record {
	date := b.Date
	return &dombooking.Record{
		ID:            id,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		VenueImage:    b.VenueImage,
		Date:          &date,
		TimeSlotID:    b.TimeSlot.ID(),
		TimeSlotLabel: b.TimeSlot.Label(),
		Guests:        b.Guests,
		Price:         b.Price,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildBookingView(id string) *queries.BookingView {
	date := b.Date
	return &queries.BookingView{
		ID:            id,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		VenueImage:    b.VenueImage,
		Date:          &date,
		TimeSlotID:    b.TimeSlot.ID(),
		TimeSlotLabel: b.TimeSlot.Label(),
		Guests:        b.Guests,
		Price:         b.Price,
		CreatedAt:     b.CreatedAt,
	}
}
