package availability

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

const (
	minBookedDays = 5
	maxBookedDays = 8
	// Booked days are drawn from [1,28] so the set is valid in any month.
	maxBookableDay = 28
)

// Provider answers which days of a month are already taken for a venue.
// The placeholder implementation below generates them; a real backend
// can satisfy the same contract later.
type Provider interface {
	BookedDays(venueID string, year, month int) ([]int, error)
}

// RandomProvider generates 5-8 distinct booked days per month, with no
// relation to real booking data. The draw is seeded by
// (venue, year, month) so a displayed month is stable while every month
// gets its own set.
type RandomProvider struct{}

func NewRandomProvider() *RandomProvider {
	return &RandomProvider{}
}

func (p *RandomProvider) BookedDays(venueID string, year, month int) ([]int, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	rng := rand.New(rand.NewSource(seed(venueID, year, month)))
	count := minBookedDays + rng.Intn(maxBookedDays-minBookedDays+1)

	booked := make(map[int]struct{}, count)
	for len(booked) < count {
		day := rng.Intn(maxBookableDay) + 1
		booked[day] = struct{}{}
	}

	days := make([]int, 0, count)
	for day := range booked {
		days = append(days, day)
	}
	sort.Ints(days)
	return days, nil
}

func seed(venueID string, year, month int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%d", venueID, year, month)
	return int64(h.Sum64())
}
