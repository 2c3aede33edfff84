package commands

import (
	"context"
	"errors"

	"gather-venues/internal/domain/search"
	"gather-venues/internal/domain/venue"
	"gather-venues/internal/pkg/errs"
	"gather-venues/internal/usecase/queries"
)

// SearchCommands runs the landing search: event type and budget are
// translated into filter criteria and the host is told to navigate to
// the listing.
type SearchCommands interface {
	LandingSearch(ctx context.Context, eventType, city, budget string) (*queries.SearchResultView, error)
}

type searchCommandsImpl struct{}

func NewSearchCommands() SearchCommands {
	return &searchCommandsImpl{}
}

func (c *searchCommandsImpl) LandingSearch(_ context.Context, eventType, city, budget string) (*queries.SearchResultView, error) {
	criteria, err := search.MapLandingSearch(search.EventType(eventType), venue.City(city), budget)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrCityRequired):
			return nil, errs.ErrCityRequired
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
		}
	}

	types := make([]string, len(criteria.Types))
	for i, t := range criteria.Types {
		types[i] = t.String()
	}

	return &queries.SearchResultView{
		View:     "LISTING",
		City:     criteria.City.String(),
		Types:    types,
		MinPrice: criteria.PriceRange.Min(),
		MaxPrice: criteria.PriceRange.Max(),
	}, nil
}
