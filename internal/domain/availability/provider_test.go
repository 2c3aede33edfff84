//go:build unit

package availability_test

import (
	"testing"

	"gather-venues/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomProviderBookedDays(t *testing.T) {
	provider := availability.NewRandomProvider()

	t.Run("generates 5 to 8 distinct days within 1..28", func(t *testing.T) {
		for month := 1; month <= 12; month++ {
			days, err := provider.BookedDays("v-test-01", 2026, month)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, len(days), 5, "month %d", month)
			assert.LessOrEqual(t, len(days), 8, "month %d", month)

			seen := make(map[int]struct{}, len(days))
			for _, day := range days {
				assert.GreaterOrEqual(t, day, 1)
				assert.LessOrEqual(t, day, 28)
				_, dup := seen[day]
				assert.False(t, dup, "duplicate day %d in month %d", day, month)
				seen[day] = struct{}{}
			}
		}
	})

	t.Run("sorted ascending", func(t *testing.T) {
		days, err := provider.BookedDays("v-test-01", 2026, 9)
		require.NoError(t, err)
		for i := 1; i < len(days); i++ {
			assert.Less(t, days[i-1], days[i])
		}
	})

	t.Run("stable for the same venue and month", func(t *testing.T) {
		first, err := provider.BookedDays("v-test-01", 2026, 9)
		require.NoError(t, err)
		second, err := provider.BookedDays("v-test-01", 2026, 9)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("months draw independent sets", func(t *testing.T) {
		base, err := provider.BookedDays("v-test-01", 2026, 1)
		require.NoError(t, err)

		allSame := true
		for month := 2; month <= 12; month++ {
			days, err := provider.BookedDays("v-test-01", 2026, month)
			require.NoError(t, err)
			if !assert.ObjectsAreEqual(base, days) {
				allSame = false
			}
		}
		assert.False(t, allSame, "every month produced the same booked set")
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := provider.BookedDays("v-test-01", 2026, 0)
		require.ErrorIs(t, err, availability.ErrInvalidMonth)
		_, err = provider.BookedDays("v-test-01", 2026, 13)
		require.ErrorIs(t, err, availability.ErrInvalidMonth)
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("selecting a free day", func(t *testing.T) {
		snapshot := availability.NewSnapshot(2026, 9, []int{3, 7, 12})
		require.NoError(t, snapshot.Select(15))
		require.NotNil(t, snapshot.Selected())
		assert.Equal(t, 15, *snapshot.Selected())
	})

	t.Run("booked day is rejected with no state change", func(t *testing.T) {
		snapshot := availability.NewSnapshot(2026, 9, []int{3, 7, 12})
		require.NoError(t, snapshot.Select(15))

		err := snapshot.Select(7)
		require.ErrorIs(t, err, availability.ErrDayBooked)
		require.NotNil(t, snapshot.Selected())
		assert.Equal(t, 15, *snapshot.Selected())
	})

	t.Run("day outside any month", func(t *testing.T) {
		snapshot := availability.NewSnapshot(2026, 9, nil)
		require.ErrorIs(t, snapshot.Select(0), availability.ErrDayOutOfRange)
		require.ErrorIs(t, snapshot.Select(32), availability.ErrDayOutOfRange)
	})

	t.Run("changing month clears the selection", func(t *testing.T) {
		snapshot := availability.NewSnapshot(2026, 9, []int{3})
		require.NoError(t, snapshot.Select(15))

		snapshot.ChangeMonth(2026, 10, []int{5, 6})
		assert.Nil(t, snapshot.Selected())
		assert.Equal(t, 10, snapshot.Month())
		assert.True(t, snapshot.IsBooked(5))
		assert.False(t, snapshot.IsBooked(3))
	})
}
