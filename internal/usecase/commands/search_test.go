//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gather-venues/internal/domain/venue"
	"gather-venues/internal/pkg/errs"
	"gather-venues/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingSearch(t *testing.T) {
	searchCommands := commands.NewSearchCommands()

	t.Run("maps the form to listing criteria", func(t *testing.T) {
		result, err := searchCommands.LandingSearch(context.Background(), "Wedding", "Pune", "120000")
		require.NoError(t, err)

		assert.Equal(t, "LISTING", result.View)
		assert.Equal(t, "Pune", result.City)
		assert.Equal(t, 0, result.MinPrice)
		assert.Equal(t, 120000, result.MaxPrice)

		want := []string{"Banquet Hall", "Resort", "Party Lawn"}
		if diff := cmp.Diff(want, result.Types); diff != "" {
			t.Errorf("mapped types mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("absent budget keeps the default ceiling", func(t *testing.T) {
		result, err := searchCommands.LandingSearch(context.Background(), "Social", "Mumbai", "")
		require.NoError(t, err)
		assert.Equal(t, venue.DefaultMaxPrice, result.MaxPrice)
	})

	t.Run("missing city", func(t *testing.T) {
		_, err := searchCommands.LandingSearch(context.Background(), "Wedding", "", "")
		require.ErrorIs(t, err, errs.ErrCityRequired)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := searchCommands.LandingSearch(context.Background(), "Wedding", "Atlantis", "")
		require.ErrorIs(t, err, errs.ErrCityRequired)
	})

	t.Run("malformed budget", func(t *testing.T) {
		_, err := searchCommands.LandingSearch(context.Background(), "Wedding", "Pune", "cheap")
		require.ErrorIs(t, err, errs.ErrDomainValidationFailed)
	})
}
