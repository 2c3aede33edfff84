package venue

import "strings"

// Criteria is the active combination of city, search term, price ceiling
// and venue types restricting the displayed venue list.
type Criteria struct {
	City       *City
	SearchTerm string
	PriceRange PriceRange
	Types      []Type
}

// DefaultCriteria has no city: listings require an explicit city context.
func DefaultCriteria() Criteria {
	return Criteria{
		PriceRange: DefaultPriceRange(),
	}
}

func (c Criteria) WithCity(city City) Criteria {
	c.City = &city
	return c
}

func (c Criteria) hasType(t Type) bool {
	for _, candidate := range c.Types {
		if candidate == t {
			return true
		}
	}
	return false
}

// Filter returns the venues matching the criteria, preserving catalog
// order. All conditions are AND-combined. Without a city the result is
// always empty. Pure: safe to recompute on every input change.
func Filter(catalog []*Venue, c Criteria) []*Venue {
	if c.City == nil {
		return []*Venue{}
	}

	matched := make([]*Venue, 0, len(catalog))
	term := strings.ToLower(c.SearchTerm)
	for _, v := range catalog {
		if v.City() != *c.City {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(v.Name()), term) {
			continue
		}
		if !c.PriceRange.Contains(v.PricePerEvent()) {
			continue
		}
		if len(c.Types) > 0 && !c.hasType(v.Type()) {
			continue
		}
		matched = append(matched, v)
	}
	return matched
}
