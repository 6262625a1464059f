package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWallClock(t *testing.T) {
	want := time.Date(2026, 1, 30, 12, 5, 0, 0, time.UTC)

	for _, in := range []string{
		"2026-01-30T12:05:00",
		"2026-01-30T12:05:00Z",
		"2026-01-30T12:05:00+03:00",
	} {
		got, err := ParseWallClock(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(want), "%s parsed to %s", in, got)
	}

	_, err := ParseWallClock("30/01/2026 12:05")
	assert.Error(t, err)
}

func TestFormatWallClock_NoZoneSuffix(t *testing.T) {
	s := FormatWallClock(time.Date(2026, 1, 30, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-01-30T09:00:00", s)
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2026-01-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDay("2026-01-30T15:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-30", FormatDay(got))

	_, err = ParseDay("January 30")
	assert.Error(t, err)
}

func TestMinutesOfDay(t *testing.T) {
	m, ok := MinutesOfDay("09:30")
	require.True(t, ok)
	assert.Equal(t, 570, m)

	m, ok = MinutesOfDay("24:00")
	require.True(t, ok)
	assert.Equal(t, 1440, m)

	_, ok = MinutesOfDay("9:30am")
	assert.False(t, ok)
	_, ok = MinutesOfDay("25:00")
	assert.False(t, ok)
}
