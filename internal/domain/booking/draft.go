package booking

import (
	"errors"
	"time"
)

var (
	ErrIncompleteDraft   = errors.New("date, time slot and guest count are required")
	ErrInvalidTransition = errors.New("invalid booking flow transition")
	ErrInvalidTimeSlot   = errors.New("invalid time slot")
)

// Draft is the in-progress, unconfirmed selection of date, time slot
// and guests for one venue. Transitions:
//
//	SELECTION -> CONFIRMATION (Proceed, requires a complete draft)
//	CONFIRMATION -> SELECTION (Edit, draft preserved)
//	CONFIRMATION -> SUCCESS   (Complete)
//	any -> SELECTION          (Reset, draft cleared)
//
// No other transitions are valid.
type Draft struct {
	venueID  string
	step     Step
	date     *time.Time
	timeSlot *TimeSlot
	guests   *GuestCount
}

func NewDraft(venueID string) *Draft {
	return &Draft{
		venueID: venueID,
		step:    StepSelection,
	}
}

func (d *Draft) VenueID() string     { return d.venueID }
func (d *Draft) Step() Step          { return d.step }
func (d *Draft) Date() *time.Time    { return d.date }
func (d *Draft) TimeSlot() *TimeSlot { return d.timeSlot }
func (d *Draft) Guests() *GuestCount { return d.guests }

// IsComplete reports whether all three selection fields are populated.
func (d *Draft) IsComplete() bool {
	return d.date != nil && d.timeSlot != nil && d.guests != nil
}

func (d *Draft) SetDate(date time.Time) error {
	if d.step != StepSelection {
		return ErrInvalidTransition
	}
	d.date = &date
	return nil
}

func (d *Draft) SetTimeSlot(slot TimeSlot) error {
	if d.step != StepSelection {
		return ErrInvalidTransition
	}
	if !slot.IsValid() {
		return ErrInvalidTimeSlot
	}
	d.timeSlot = &slot
	return nil
}

func (d *Draft) SetGuests(guests GuestCount) error {
	if d.step != StepSelection {
		return ErrInvalidTransition
	}
	d.guests = &guests
	return nil
}

// Proceed moves an incomplete draft nowhere: the caller surfaces the
// failure by refusing the transition, not by mutating state.
func (d *Draft) Proceed() error {
	if d.step != StepSelection {
		return ErrInvalidTransition
	}
	if !d.IsComplete() {
		return ErrIncompleteDraft
	}
	d.step = StepConfirmation
	return nil
}

// Edit returns to SELECTION preserving the draft.
func (d *Draft) Edit() error {
	if d.step != StepConfirmation {
		return ErrInvalidTransition
	}
	d.step = StepSelection
	return nil
}

// Complete marks the flow successful after the commit has run.
func (d *Draft) Complete() error {
	if d.step != StepConfirmation {
		return ErrInvalidTransition
	}
	d.step = StepSuccess
	return nil
}

// Reset clears the draft back to a fresh SELECTION, keeping the venue.
func (d *Draft) Reset() {
	d.step = StepSelection
	d.date = nil
	d.timeSlot = nil
	d.guests = nil
}
