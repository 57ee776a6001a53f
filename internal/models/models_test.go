package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:05:30")
	require.NoError(t, err)
	assert.Equal(t, ClockTime{Hour: 9, Minute: 5, Second: 30}, c)
	assert.InDelta(t, 545.5, c.Minutes(), 1e-9)
	assert.Equal(t, "09:05:30", c.String())

	c, err = ParseClock(" 23:59:59 ")
	require.NoError(t, err)
	assert.Equal(t, 23, c.Hour)
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, text := range []string{"", "09:05", "09:05:30:00", "aa:05:30", "24:00:00", "09:60:00", "09:00:60", "-1:00:00", "9.5:00:00"} {
		_, err := ParseClock(text)
		assert.Error(t, err, "input %q", text)
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("00:00:30")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)

	d, err = ParseDuration("26:01:00")
	require.NoError(t, err)
	assert.Equal(t, 26*time.Hour+time.Minute, d)

	d, err = ParseDuration("00:00:00")
	require.NoError(t, err)
	assert.Zero(t, d)

	for _, text := range []string{"00:00", "00:-1:00", "x:00:00", "00:61:00"} {
		_, err := ParseDuration(text)
		assert.Error(t, err, "input %q", text)
	}
}

func TestClockOf(t *testing.T) {
	now := time.Date(2026, 10, 18, 14, 7, 9, 500, time.UTC)
	assert.Equal(t, ClockTime{Hour: 14, Minute: 7, Second: 9}, ClockOf(now))
}

func TestStatusDecode(t *testing.T) {
	assert.Equal(t, StatusFailure, SubdailyStatuses.Decode(0))
	assert.Equal(t, StatusSuccess, SubdailyStatuses.Decode(1))
	assert.Equal(t, StatusFailure, SubdailyStatuses.Decode(2))
	assert.Equal(t, StatusRetry, SubdailyStatuses.Decode(3))
	assert.Equal(t, StatusCanceled, SubdailyStatuses.Decode(4))

	assert.Equal(t, StatusUnknown, DailyStatuses.Decode(0))
	assert.Equal(t, StatusSuccess, DailyStatuses.Decode(1))
	assert.Equal(t, StatusCanceled, DailyStatuses.Decode(4))

	for _, code := range []int{-1, 5, 99, 1 << 20} {
		assert.Equal(t, StatusUnknown, SubdailyStatuses.Decode(code), "code %d", code)
		assert.Equal(t, StatusUnknown, DailyStatuses.Decode(code), "code %d", code)
	}
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "green", StatusSuccess.Color())
	assert.Equal(t, "red", StatusFailure.Color())
	assert.Equal(t, "orange", StatusRetry.Color())
	assert.Equal(t, "grey", StatusCanceled.Color())
	assert.Equal(t, "white", StatusUnknown.Color())
	assert.Equal(t, "white", Status("bogus").Color())
}

func TestParseViewKind(t *testing.T) {
	kind, err := ParseViewKind("Daily")
	require.NoError(t, err)
	assert.Equal(t, ViewDaily, kind)

	kind, err = ParseViewKind("")
	require.NoError(t, err)
	assert.Equal(t, ViewSubdaily, kind)

	_, err = ParseViewKind("weekly")
	assert.Error(t, err)
}

func TestViewPolicies(t *testing.T) {
	sub := ViewFor(ViewSubdaily)
	assert.Equal(t, 8, sub.FreqSubdayType)
	assert.Equal(t, 5.0, sub.MinVisibleMinutes)
	assert.Equal(t, 30*time.Second, sub.ReloadInterval)
	assert.False(t, sub.SingleBranchRollover)
	assert.Equal(t, 80, sub.DefaultPort)

	daily := ViewFor(ViewDaily)
	assert.Equal(t, 1, daily.FreqSubdayType)
	assert.Equal(t, 0.3, daily.BarWidth)
	assert.Zero(t, daily.ReloadInterval)
	assert.True(t, daily.SingleBranchRollover)
	assert.True(t, daily.ClampPan)
	assert.Equal(t, 3002, daily.DefaultPort)
}
