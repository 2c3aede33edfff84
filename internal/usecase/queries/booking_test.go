//go:build unit

package queries_test

import (
	"context"
	"testing"

	"gather-venues/internal/domain/booking"
	"gather-venues/internal/infra/flowstore"
	"gather-venues/internal/pkg/errs"
	"gather-venues/internal/usecase/queries"
	"gather-venues/tests/common/builder"
	queriesmock "gather-venues/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries(t *testing.T) {
	newMocks := func(t *testing.T) (*queriesmock.MockFlowReadStore, *queriesmock.MockRecordReadStore, *queriesmock.MockVenueCatalog, queries.BookingQueries) {
		ctrl := gomock.NewController(t)
		flows := queriesmock.NewMockFlowReadStore(ctrl)
		records := queriesmock.NewMockRecordReadStore(ctrl)
		catalog := queriesmock.NewMockVenueCatalog(ctrl)
		return flows, records, catalog, queries.NewBookingQueries(flows, records, catalog)
	}

	t.Run("get flow fills the venue summary", func(t *testing.T) {
		flows, _, catalog, q := newMocks(t)

		v, err := builder.NewVenueBuilder().BuildDomain()
		require.NoError(t, err)
		draft, err := builder.NewBookingBuilder().BuildDraft(booking.StepConfirmation)
		require.NoError(t, err)

		flowID := uuid.New()
		flows.EXPECT().Get(flowID).Return(&flowstore.Flow{ID: flowID, Draft: draft}, true)
		catalog.EXPECT().FindByID(v.ID()).Return(v, true)

		view, err := q.GetFlow(context.Background(), flowID)
		require.NoError(t, err)
		assert.Equal(t, flowID, view.ID)
		assert.Equal(t, booking.StepConfirmation.String(), view.Step)
		assert.Equal(t, v.Name(), view.VenueName)
		assert.Equal(t, v.PricePerEvent(), view.Price)
		assert.Equal(t, v.GuestCapacity(), view.GuestCapacity)
		require.NotNil(t, view.Date)
		require.NotNil(t, view.TimeSlotID)
		assert.Equal(t, "evening", *view.TimeSlotID)
		assert.Equal(t, "Evening", *view.TimeSlotLabel)
	})

	t.Run("get flow not found", func(t *testing.T) {
		flows, _, _, q := newMocks(t)

		flowID := uuid.New()
		flows.EXPECT().Get(flowID).Return(nil, false)

		_, err := q.GetFlow(context.Background(), flowID)
		require.ErrorIs(t, err, errs.ErrFlowNotFound)
	})

	t.Run("list bookings in insertion order", func(t *testing.T) {
		_, records, _, q := newMocks(t)

		stored := []*booking.Record{
			builder.NewBookingBuilder().BuildRecord("1756715400000"),
			builder.NewBookingBuilder().BuildRecord("1756715400001"),
		}
		records.EXPECT().LoadAll(gomock.Any()).Return(stored, nil)

		views, err := q.ListBookings(context.Background())
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "1756715400000", views[0].ID)
		assert.Equal(t, "1756715400001", views[1].ID)
	})

	t.Run("empty store lists as empty", func(t *testing.T) {
		_, records, _, q := newMocks(t)
		records.EXPECT().LoadAll(gomock.Any()).Return([]*booking.Record{}, nil)

		views, err := q.ListBookings(context.Background())
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
