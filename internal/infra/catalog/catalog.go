package catalog

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"os"

	"gather-venues/internal/domain/venue"
	"gather-venues/internal/infra"
	"gather-venues/internal/pkg/config"
)

//go:embed venues.json
var embeddedVenues []byte

// record is the on-disk shape of one catalog entry.
type record struct {
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
	Coordinates   struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"coordinates"`
}

// Catalog is the static, read-only venue collection, fixed at startup.
type Catalog struct {
	venues []*venue.Venue
	byID   map[string]*venue.Venue
}

// Load reads the configured catalog file, falling back to the embedded
// dataset. Invalid records fail the load: the catalog is configuration
// and a broken one should stop startup.
func Load(cfg config.CatalogConfig, logger *slog.Logger) (*Catalog, error) {
	data := embeddedVenues
	if cfg.Path != "" {
		fileData, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, infra.WrapRepoErr(logger, infra.KindStorageFailure, "failed to read catalog file", err)
		}
		data = fileData
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDecodeFailure, "failed to decode catalog", err)
	}

	venues := make([]*venue.Venue, 0, len(records))
	byID := make(map[string]*venue.Venue, len(records))
	for _, r := range records {
		v, err := toDomain(r)
		if err != nil {
			return nil, infra.WrapRepoErr(logger, infra.KindInvalidCatalog, "invalid catalog record "+r.ID, err)
		}
		venues = append(venues, v)
		byID[v.ID()] = v
	}

	logger.Info("venue catalog loaded", "venues", len(venues))
	return &Catalog{venues: venues, byID: byID}, nil
}

func toDomain(r record) (*venue.Venue, error) {
	rating, err := venue.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	coords, err := venue.NewCoordinates(r.Coordinates.Lat, r.Coordinates.Lng)
	if err != nil {
		return nil, err
	}
	return venue.New(
		r.ID,
		r.Name,
		venue.City(r.City),
		r.Address,
		r.PricePerEvent,
		r.GuestCapacity,
		venue.Type(r.Type),
		r.Amenities,
		r.Description,
		r.ImageURL,
		r.Gallery,
		rating,
		r.Reviews,
		coords,
	)
}

// All returns the venues in catalog order.
func (c *Catalog) All() []*venue.Venue {
	return c.venues
}

func (c *Catalog) FindByID(id string) (*venue.Venue, bool) {
	v, ok := c.byID[id]
	return v, ok
}
