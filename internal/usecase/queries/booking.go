package queries

import (
	"context"

	"gather-venues/internal/domain/booking"
	"gather-venues/internal/infra/flowstore"
	"gather-venues/internal/pkg/errs"

	"github.com/google/uuid"
)

// RecordReadStore is the read-side port onto the persisted bookings.
type RecordReadStore interface {
	LoadAll(ctx context.Context) ([]*booking.Record, error)
}

// FlowReadStore is the read-side port onto the live flow sessions.
type FlowReadStore interface {
	Get(id uuid.UUID) (*flowstore.Flow, bool)
}

type BookingQueries interface {
	GetFlow(ctx context.Context, id uuid.UUID) (*FlowView, error)
	ListBookings(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	flows   FlowReadStore
	records RecordReadStore
	catalog VenueCatalog
}

func NewBookingQueries(flows FlowReadStore, records RecordReadStore, catalog VenueCatalog) BookingQueries {
	return &bookingQueriesImpl{
		flows:   flows,
		records: records,
		catalog: catalog,
	}
}

func (q *bookingQueriesImpl) GetFlow(_ context.Context, id uuid.UUID) (*FlowView, error) {
	flow, ok := q.flows.Get(id)
	if !ok {
		return nil, errs.ErrFlowNotFound
	}
	v, ok := q.catalog.FindByID(flow.Draft.VenueID())
	if !ok {
		return nil, errs.ErrVenueNotFound
	}
	return FlowViewOf(flow, v.Name(), v.PricePerEvent(), v.GuestCapacity()), nil
}

// ListBookings returns all committed records in insertion order; with
// no prior data the result is an empty list, never an error.
func (q *bookingQueriesImpl) ListBookings(ctx context.Context) ([]*BookingView, error) {
	records, err := q.records.LoadAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load bookings")
	}
	views := make([]*BookingView, len(records))
	for i, r := range records {
		views[i] = BookingViewOf(r)
	}
	return views, nil
}

// FlowViewOf projects a flow and its venue summary into a read model.
// Shared with the command side, which returns flow state after every
// transition.
func FlowViewOf(flow *flowstore.Flow, venueName string, price, capacity int) *FlowView {
	view := &FlowView{
		ID:            flow.ID,
		VenueID:       flow.Draft.VenueID(),
		VenueName:     venueName,
		Price:         price,
		GuestCapacity: capacity,
		Step:          flow.Draft.Step().String(),
		Date:          flow.Draft.Date(),
	}
	if slot := flow.Draft.TimeSlot(); slot != nil {
		id := slot.ID()
		label := slot.Label()
		view.TimeSlotID = &id
		view.TimeSlotLabel = &label
	}
	if guests := flow.Draft.Guests(); guests != nil {
		raw := guests.String()
		view.Guests = &raw
	}
	return view
}

func BookingViewOf(r *booking.Record) *BookingView {
	return &BookingView{
		ID:            r.ID,
		VenueID:       r.VenueID,
		VenueName:     r.VenueName,
		VenueImage:    r.VenueImage,
		Date:          r.Date,
		TimeSlotID:    r.TimeSlotID,
		TimeSlotLabel: r.TimeSlotLabel,
		Guests:        r.Guests,
		Price:         r.Price,
		CreatedAt:     r.CreatedAt,
	}
}
