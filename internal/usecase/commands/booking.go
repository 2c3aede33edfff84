package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gather-venues/internal/domain/availability"
	"gather-venues/internal/domain/booking"
	"gather-venues/internal/domain/venue"
	"gather-venues/internal/infra/flowstore"
	"gather-venues/internal/pkg/clock"
	"gather-venues/internal/pkg/config"
	"gather-venues/internal/pkg/errs"
	"gather-venues/internal/usecase/queries"

	"github.com/google/uuid"
)

// VenueCatalog is the command-side port onto the static catalog.
type VenueCatalog interface {
	FindByID(id string) (*venue.Venue, bool)
}

// FlowStore holds the live booking flow sessions.
type FlowStore interface {
	Create(draft *booking.Draft) *flowstore.Flow
	Get(id uuid.UUID) (*flowstore.Flow, bool)
	Delete(id uuid.UUID)
}

// RecordStore is the write-side port onto the persisted bookings.
type RecordStore interface {
	Append(ctx context.Context, record *booking.Record) error
}

// SelectionParams carries a partial selection update; nil fields are
// left untouched.
type SelectionParams struct {
	Date       *time.Time
	TimeSlotID *string
	Guests     *string
}

// ConfirmResult reports the commit outcome. Persisted is false when the
// record could not be stored; the flow still reaches SUCCESS, but the
// caller gets to decide what to tell the user.
type ConfirmResult struct {
	Flow      *queries.FlowView
	Booking   *queries.BookingView
	Persisted bool
}

type BookingCommands interface {
	StartFlow(ctx context.Context, venueID string) (*queries.FlowView, error)
	UpdateSelection(ctx context.Context, flowID uuid.UUID, params SelectionParams) (*queries.FlowView, error)
	Proceed(ctx context.Context, flowID uuid.UUID) (*queries.FlowView, error)
	Edit(ctx context.Context, flowID uuid.UUID) (*queries.FlowView, error)
	Confirm(ctx context.Context, flowID uuid.UUID) (*ConfirmResult, error)
	ResetFlow(ctx context.Context, flowID uuid.UUID) (*queries.FlowView, error)
	AbandonFlow(ctx context.Context, flowID uuid.UUID) error
}

type bookingCommandsImpl struct {
	catalog  VenueCatalog
	flows    FlowStore
	records  RecordStore
	provider availability.Provider
	clock    clock.Clock
	ids      *booking.IDGenerator
	cfg      config.BookingConfig
	logger   *slog.Logger
}

func NewBookingCommands(
	catalog VenueCatalog,
	flows FlowStore,
	records RecordStore,
	provider availability.Provider,
	clk clock.Clock,
	ids *booking.IDGenerator,
	cfg config.BookingConfig,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		catalog:  catalog,
		flows:    flows,
		records:  records,
		provider: provider,
		clock:    clk,
		ids:      ids,
		cfg:      cfg,
		logger:   logger,
	}
}

func (c *bookingCommandsImpl) StartFlow(_ context.Context, venueID string) (*queries.FlowView, error) {
	v, ok := c.catalog.FindByID(venueID)
	if !ok {
		return nil, errs.ErrVenueNotFound
	}
	flow := c.flows.Create(booking.NewDraft(venueID))
	return c.viewOf(flow, v), nil
}

func (c *bookingCommandsImpl) UpdateSelection(_ context.Context, flowID uuid.UUID, params SelectionParams) (*queries.FlowView, error) {
	flow, v, err := c.lookup(flowID)
	if err != nil {
		return nil, err
	}

	// Validate every field before the first mutation; a rejected
	// update must leave the draft untouched.
	if params.Date != nil {
		if err := c.checkDayAvailable(v.ID(), *params.Date); err != nil {
			return nil, err
		}
	}
	if params.TimeSlotID != nil {
		if !booking.TimeSlot(*params.TimeSlotID).IsValid() {
			return nil, mapDraftErr(booking.ErrInvalidTimeSlot)
		}
	}
	var guests *booking.GuestCount
	if params.Guests != nil {
		g, err := booking.NewGuestCount(*params.Guests, v.GuestCapacity())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidGuestCount)
		}
		guests = &g
	}

	if params.Date != nil {
		if err := flow.Draft.SetDate(*params.Date); err != nil {
			return nil, mapDraftErr(err)
		}
	}
	if params.TimeSlotID != nil {
		if err := flow.Draft.SetTimeSlot(booking.TimeSlot(*params.TimeSlotID)); err != nil {
			return nil, mapDraftErr(err)
		}
	}
	if guests != nil {
		if err := flow.Draft.SetGuests(*guests); err != nil {
			return nil, mapDraftErr(err)
		}
	}

	return c.viewOf(flow, v), nil
}

func (c *bookingCommandsImpl) Proceed(_ context.Context, flowID uuid.UUID) (*queries.FlowView, error) {
	flow, v, err := c.lookup(flowID)
	if err != nil {
		return nil, err
	}
	if err := flow.Draft.Proceed(); err != nil {
		return nil, mapDraftErr(err)
	}
	return c.viewOf(flow, v), nil
}

func (c *bookingCommandsImpl) Edit(_ context.Context, flowID uuid.UUID) (*queries.FlowView, error) {
	flow, v, err := c.lookup(flowID)
	if err != nil {
		return nil, err
	}
	if err := flow.Draft.Edit(); err != nil {
		return nil, mapDraftErr(err)
	}
	return c.viewOf(flow, v), nil
}

// Confirm commits the draft: after the simulated processing delay the
// record is appended to the store and the flow advances to SUCCESS.
// A failed append degrades to Persisted=false rather than blocking the
// user-visible flow.
func (c *bookingCommandsImpl) Confirm(ctx context.Context, flowID uuid.UUID) (*ConfirmResult, error) {
	flow, v, err := c.lookup(flowID)
	if err != nil {
		return nil, err
	}
	if flow.Draft.Step() != booking.StepConfirmation {
		return nil, errs.ErrInvalidTransition
	}

	c.clock.Sleep(c.cfg.ConfirmDelay)

	now := c.clock.Now()
	record, err := booking.NewRecord(c.ids.Next(now), flow.Draft, booking.VenueSpec{
		ID:       v.ID(),
		Name:     v.Name(),
		ImageURL: v.ImageURL(),
		Price:    v.PricePerEvent(),
	}, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	persisted := true
	if appendErr := c.records.Append(ctx, record); appendErr != nil {
		persisted = false
		c.logger.Error("failed to persist booking, continuing to success",
			"booking_id", record.ID,
			"venue_id", record.VenueID,
			"error", errs.Mark(appendErr, errs.ErrPersistenceFailed))
	}

	if err := flow.Draft.Complete(); err != nil {
		return nil, mapDraftErr(err)
	}

	return &ConfirmResult{
		Flow:      c.viewOf(flow, v),
		Booking:   queries.BookingViewOf(record),
		Persisted: persisted,
	}, nil
}

func (c *bookingCommandsImpl) ResetFlow(_ context.Context, flowID uuid.UUID) (*queries.FlowView, error) {
	flow, v, err := c.lookup(flowID)
	if err != nil {
		return nil, err
	}
	flow.Draft.Reset()
	return c.viewOf(flow, v), nil
}

// AbandonFlow drops the session outright; nothing about it is persisted.
func (c *bookingCommandsImpl) AbandonFlow(_ context.Context, flowID uuid.UUID) error {
	if _, ok := c.flows.Get(flowID); !ok {
		return errs.ErrFlowNotFound
	}
	c.flows.Delete(flowID)
	return nil
}

func (c *bookingCommandsImpl) lookup(flowID uuid.UUID) (*flowstore.Flow, *venue.Venue, error) {
	flow, ok := c.flows.Get(flowID)
	if !ok {
		return nil, nil, errs.ErrFlowNotFound
	}
	v, ok := c.catalog.FindByID(flow.Draft.VenueID())
	if !ok {
		return nil, nil, errs.ErrVenueNotFound
	}
	return flow, v, nil
}

// checkDayAvailable rejects dates whose day of month is in the booked
// set for the displayed month.
func (c *bookingCommandsImpl) checkDayAvailable(venueID string, date time.Time) error {
	days, err := c.provider.BookedDays(venueID, date.Year(), int(date.Month()))
	if err != nil {
		return errs.Wrap(err, "failed to check availability")
	}
	snapshot := availability.NewSnapshot(date.Year(), int(date.Month()), days)
	if err := snapshot.Select(date.Day()); err != nil {
		return errs.Mark(err, errs.ErrDayUnavailable)
	}
	return nil
}

func (c *bookingCommandsImpl) viewOf(flow *flowstore.Flow, v *venue.Venue) *queries.FlowView {
	return queries.FlowViewOf(flow, v.Name(), v.PricePerEvent(), v.GuestCapacity())
}

func mapDraftErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrIncompleteDraft):
		return errs.Mark(err, errs.ErrIncompleteDraft)
	case errors.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, booking.ErrInvalidTimeSlot):
		return errs.Mark(err, errs.ErrInvalidTimeSlot)
	default:
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	}
}
