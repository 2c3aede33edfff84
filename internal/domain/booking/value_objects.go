package booking

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmptyGuestCount           = errors.New("guest count cannot be empty")
	ErrGuestCountNotANumber      = errors.New("guest count must be a number")
	ErrGuestCountTooSmall        = errors.New("guest count must be at least 1")
	ErrGuestCountExceedsCapacity = errors.New("guest count exceeds venue capacity")
)

// GuestCount is the approximate guest figure entered as free text,
// bounded above by the venue's capacity. The raw string form is kept
// because the persisted record stores it verbatim.
type GuestCount struct {
	raw   string
	count int
}

func NewGuestCount(raw string, capacity int) (GuestCount, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return GuestCount{}, ErrEmptyGuestCount
	}
	count, err := strconv.Atoi(trimmed)
	if err != nil {
		return GuestCount{}, ErrGuestCountNotANumber
	}
	if count < 1 {
		return GuestCount{}, ErrGuestCountTooSmall
	}
	if count > capacity {
		return GuestCount{}, ErrGuestCountExceedsCapacity
	}
	return GuestCount{raw: trimmed, count: count}, nil
}

func (g GuestCount) String() string {
	return g.raw
}

func (g GuestCount) Count() int {
	return g.count
}
