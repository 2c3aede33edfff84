//go:build unit

package bookingstore_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"gather-venues/internal/infra/bookingstore"
	"gather-venues/internal/pkg/config"
	"gather-venues/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*bookingstore.FileStore, string) {
	t.Helper()

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := bookingstore.NewFileStore(config.StoreConfig{Dir: dir}, logger)
	require.NoError(t, err)
	return store, dir
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store loads as empty list", func(t *testing.T) {
		store, _ := newStore(t)
		records, err := store.LoadAll(ctx)
		require.NoError(t, err)
		require.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("append preserves insertion order", func(t *testing.T) {
		store, _ := newStore(t)
		first := builder.NewBookingBuilder().BuildRecord("1756715400000")
		second := builder.NewBookingBuilder().BuildRecord("1756715400001")

		require.NoError(t, store.Append(ctx, first))
		require.NoError(t, store.Append(ctx, second))

		records, err := store.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "1756715400000", records[0].ID)
		assert.Equal(t, "1756715400001", records[1].ID)
	})

	t.Run("loading twice without a write returns equal lists", func(t *testing.T) {
		store, _ := newStore(t)
		record := builder.NewBookingBuilder().BuildRecord("1756715400000")
		require.NoError(t, store.Append(ctx, record))

		first, err := store.LoadAll(ctx)
		require.NoError(t, err)
		second, err := store.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("record fields survive the round trip", func(t *testing.T) {
		store, _ := newStore(t)
		record := builder.NewBookingBuilder().BuildRecord("1756715400000")
		require.NoError(t, store.Append(ctx, record))

		records, err := store.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)

		got := records[0]
		assert.Equal(t, record.VenueID, got.VenueID)
		assert.Equal(t, record.VenueName, got.VenueName)
		assert.Equal(t, record.TimeSlotID, got.TimeSlotID)
		assert.Equal(t, record.TimeSlotLabel, got.TimeSlotLabel)
		assert.Equal(t, record.Guests, got.Guests)
		assert.Equal(t, record.Price, got.Price)
		require.NotNil(t, got.Date)
		assert.True(t, record.Date.Equal(*got.Date))
		assert.True(t, record.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("corrupt data reads as empty and recovers on write", func(t *testing.T) {
		store, dir := newStore(t)
		path := filepath.Join(dir, "gather_venues_bookings.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		records, err := store.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)

		// The next append starts over from an empty list.
		require.NoError(t, store.Append(ctx, builder.NewBookingBuilder().BuildRecord("1756715400000")))
		records, err = store.LoadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("store directory is created on demand", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		_, err := bookingstore.NewFileStore(config.StoreConfig{Dir: dir}, logger)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
