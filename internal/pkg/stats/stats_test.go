package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

func callAt(status types.CallStatus, created time.Time) types.Call {
	return types.Call{Status: status, CreatedAt: types.Timestamp{Time: created}}
}

func TestPickup(t *testing.T) {
	now := time.Now()
	calls := []types.Call{
		callAt(types.StatusCompleted, now),
		callAt(types.StatusCompleted, now),
		callAt(types.StatusFailed, now),
		callAt(types.StatusInitiated, now),
	}

	s := Pickup(calls)
	assert.Equal(t, 2, s.Answered)
	assert.Equal(t, 1, s.Unanswered)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 4, s.Total)

	rate, ok := s.Rate()
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, rate, 1e-9)
	assert.Equal(t, "67%", s.FormatRate())
}

func TestPickupNoDecidedCalls(t *testing.T) {
	s := Pickup([]types.Call{callAt(types.StatusInitiated, time.Now())})
	_, ok := s.Rate()
	assert.False(t, ok)
	assert.Equal(t, "n/a", s.FormatRate())

	empty := Pickup(nil)
	assert.Equal(t, "n/a", empty.FormatRate())
}

func TestDailyVolume(t *testing.T) {
	now := time.Date(2025, 8, 20, 15, 0, 0, 0, time.UTC)
	calls := []types.Call{
		callAt(types.StatusCompleted, now.Add(-1*time.Hour)),               // today
		callAt(types.StatusCompleted, now.AddDate(0, 0, -1)),               // yesterday
		callAt(types.StatusFailed, now.AddDate(0, 0, -1).Add(2*time.Hour)), // yesterday
		callAt(types.StatusCompleted, now.AddDate(0, 0, -10)),              // outside window
	}

	series := DailyVolume(calls, 7, now)
	require.Len(t, series, 7)

	// Oldest first, today last.
	assert.Equal(t, 0, series[0].Count)
	assert.Equal(t, 2, series[5].Count)
	assert.Equal(t, 1, series[6].Count)
	assert.True(t, series[0].Date.Before(series[6].Date))
}

func TestDailyVolumeSkipsZeroTimestamps(t *testing.T) {
	now := time.Date(2025, 8, 20, 15, 0, 0, 0, time.UTC)
	series := DailyVolume([]types.Call{{Status: types.StatusCompleted}}, 3, now)
	require.Len(t, series, 3)
	for _, d := range series {
		assert.Equal(t, 0, d.Count)
	}
}

func TestAverageDuration(t *testing.T) {
	d1, d2 := 60, 120
	calls := []types.Call{
		{DurationSeconds: &d1},
		{DurationSeconds: &d2},
		{}, // no duration reported
	}

	avg, ok := AverageDuration(calls)
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, avg)

	_, ok = AverageDuration(nil)
	assert.False(t, ok)
}
