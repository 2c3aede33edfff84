package booking

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

var ErrDraftNotConfirmed = errors.New("draft has not reached confirmation")

// Record is a persisted, confirmed booking entry. Field names follow
// the storage format; guests stays in its raw string form.
type Record struct {
	ID            string     `json:"id"`
	VenueID       string     `json:"venueId"`
	VenueName     string     `json:"venueName"`
	VenueImage    string     `json:"venueImage"`
	Date          *time.Time `json:"date"`
	TimeSlotID    string     `json:"timeSlotId"`
	TimeSlotLabel string     `json:"timeSlotLabel"`
	Guests        string     `json:"guests"`
	Price         int        `json:"price"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// VenueSpec carries the venue attributes a record snapshots at commit.
type VenueSpec struct {
	ID       string
	Name     string
	ImageURL string
	Price    int
}

// NewRecord builds the persisted record from a confirmed draft.
func NewRecord(id string, draft *Draft, spec VenueSpec, now time.Time) (*Record, error) {
	if draft.Step() != StepConfirmation {
		return nil, ErrDraftNotConfirmed
	}
	if !draft.IsComplete() {
		return nil, ErrIncompleteDraft
	}

	return &Record{
		ID:            id,
		VenueID:       spec.ID,
		VenueName:     spec.Name,
		VenueImage:    spec.ImageURL,
		Date:          draft.Date(),
		TimeSlotID:    draft.TimeSlot().ID(),
		TimeSlotLabel: draft.TimeSlot().Label(),
		Guests:        draft.Guests().String(),
		Price:         spec.Price,
		CreatedAt:     now,
	}, nil
}

// IDGenerator issues time-based record IDs. A monotonic counter suffix
// keeps IDs unique when two commits land in the same millisecond.
type IDGenerator struct {
	mu     sync.Mutex
	lastMs int64
	seq    int
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := now.UnixMilli()
	if ms == g.lastMs {
		g.seq++
		return strconv.FormatInt(ms, 10) + "-" + strconv.Itoa(g.seq)
	}
	g.lastMs = ms
	g.seq = 0
	return strconv.FormatInt(ms, 10)
}
