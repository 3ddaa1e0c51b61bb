package energy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energialab.xyz/energy-monitor-service/pkg/energy"
	_ "energialab.xyz/energy-monitor-service/pkg/testing"
)

// Manaus is UTC-4 year round, so local midnight is 04:00 UTC.
func TestResolveDay(t *testing.T) {
	window, err := energy.ResolveDay("2024-03-10")
	require.NoError(t, err)

	assert.Equal(t, energy.GranularityDay, window.Granularity)
	assert.Equal(t, time.Date(2024, 3, 10, 4, 0, 0, 0, time.UTC), window.Start.UTC())
	assert.Equal(t, time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC), window.End.UTC())
	assert.Equal(t, 24*time.Hour, window.End.Sub(window.Start))
}

func TestResolveWeek(t *testing.T) {
	// 2024-03-13 is a Wednesday; the containing week starts Sunday 2024-03-10.
	window, err := energy.ResolveWeek("2024-03-13")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 4, 0, 0, 0, time.UTC), window.Start.UTC())
	assert.Equal(t, time.Date(2024, 3, 17, 4, 0, 0, 0, time.UTC), window.End.UTC())

	// A Sunday is its own week start.
	sunday, err := energy.ResolveWeek("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, window.Start, sunday.Start)
}

func TestResolveMonth(t *testing.T) {
	window, err := energy.ResolveMonth("2024-02-15")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 4, 0, 0, 0, time.UTC), window.Start.UTC())
	assert.Equal(t, time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC), window.End.UTC())
}

func TestResolveRange(t *testing.T) {
	window, err := energy.ResolveRange("2024-03-10", "2024-03-12")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 4, 0, 0, 0, time.UTC), window.Start.UTC())
	// End of day on the end date, half-open.
	assert.Equal(t, time.Date(2024, 3, 13, 4, 0, 0, 0, time.UTC), window.End.UTC())
}

func TestResolveInvalidDate(t *testing.T) {
	cases := []string{"", "not-a-date", "2024-13-40", "10/03/2024"}
	for _, date := range cases {
		_, err := energy.ResolveDay(date)
		assert.ErrorIs(t, err, energy.ErrInvalidDate, "date %q", date)
	}

	_, err := energy.ResolveRange("2024-03-10", "bogus")
	assert.ErrorIs(t, err, energy.ErrInvalidDate)
}

func TestResolveDispatch(t *testing.T) {
	for _, granularity := range []energy.Granularity{energy.GranularityDay, energy.GranularityWeek, energy.GranularityMonth} {
		window, err := energy.Resolve(granularity, "2024-03-10")
		require.NoError(t, err)
		assert.Equal(t, granularity, window.Granularity)
	}

	_, err := energy.Resolve("fortnight", "2024-03-10")
	assert.ErrorIs(t, err, energy.ErrInvalidDate)
}
