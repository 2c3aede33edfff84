package search

import (
	"errors"
	"strconv"

	"gather-venues/internal/domain/venue"
)

var (
	ErrCityRequired  = errors.New("city is required")
	ErrInvalidBudget = errors.New("budget must be a non-negative integer")
)

// eventTypeFilters maps an event category to the venue types that suit
// it. Unrecognized or empty categories map to no restriction.
var eventTypeFilters = map[EventType][]venue.Type{
	EventWedding:   {venue.TypeBanquetHall, venue.TypeResort, venue.TypePartyLawn},
	EventBirthday:  {venue.TypeBanquetHall, venue.TypeLounge, venue.TypePartyLawn},
	EventCorporate: {venue.TypeBanquetHall, venue.TypeLounge, venue.TypeResort},
	EventSocial:    {venue.TypeLounge, venue.TypePartyLawn},
}

// MapLandingSearch translates the landing form submission into concrete
// filter criteria. A missing city is a validation failure and produces
// no criteria. An absent budget resets the ceiling to the default.
func MapLandingSearch(eventType EventType, city venue.City, budget string) (venue.Criteria, error) {
	if city == "" {
		return venue.Criteria{}, ErrCityRequired
	}
	if !city.IsValid() {
		return venue.Criteria{}, ErrCityRequired
	}

	criteria := venue.DefaultCriteria().WithCity(city)
	criteria.Types = eventTypeFilters[eventType]

	if budget != "" {
		parsed, err := strconv.Atoi(budget)
		if err != nil || parsed < 0 {
			return venue.Criteria{}, ErrInvalidBudget
		}
		criteria.PriceRange = venue.NewPriceRange(parsed)
	}

	return criteria, nil
}
