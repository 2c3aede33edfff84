package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Venue errors
	ErrVenueNotFound = errors.New("venue not found")

	// Search errors
	ErrCityRequired = errors.New("city is required")
	ErrInvalidCity  = errors.New("invalid city")

	// Booking flow errors
	ErrFlowNotFound      = errors.New("booking flow not found")
	ErrIncompleteDraft   = errors.New("booking draft is incomplete")
	ErrInvalidTransition = errors.New("invalid booking flow transition")
	ErrInvalidTimeSlot   = errors.New("invalid time slot")
	ErrInvalidGuestCount = errors.New("invalid guest count")
	ErrDayUnavailable    = errors.New("selected day is unavailable")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrPersistenceFailed = errors.New("persistence failed")
	ErrStorageFailed     = errors.New("storage operation failed")
)
