package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestValidScore(t *testing.T) {
	tests := []struct {
		name  string
		score *float64
		want  bool
	}{
		{name: "nil", score: nil, want: false},
		{name: "zero", score: f64(0), want: true},
		{name: "one", score: f64(1), want: true},
		{name: "mid", score: f64(0.42), want: true},
		{name: "negative", score: f64(-0.1), want: false},
		{name: "above one", score: f64(1.01), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidScore(tt.score))
		})
	}
}

func TestValidRating(t *testing.T) {
	tests := []struct {
		name   string
		rating *float64
		want   bool
	}{
		{name: "nil", rating: nil, want: false},
		{name: "low bound", rating: f64(1), want: true},
		{name: "high bound", rating: f64(10), want: true},
		{name: "zero", rating: f64(0), want: false},
		{name: "eleven", rating: f64(11), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRating(tt.rating))
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "0.82", FormatScore(f64(0.82)))
	assert.Equal(t, "n/a", FormatScore(nil))
	assert.Equal(t, "n/a", FormatScore(f64(3.5)), "out of range renders as n/a, not an error")

	assert.Equal(t, "7/10", FormatRating(f64(7)))
	assert.Equal(t, "n/a", FormatRating(f64(0.2)))
	assert.Equal(t, "n/a", FormatRating(nil))

	assert.Equal(t, "positive", FormatSentiment(SentimentPositive))
	assert.Equal(t, "unknown", FormatSentiment(""))
	assert.Equal(t, "unknown", FormatSentiment("ecstatic"))

	assert.Equal(t, "2:05", FormatSeconds(125))
	assert.Equal(t, "0:00", FormatSeconds(0))
	assert.Equal(t, "-", FormatSeconds(-1))
}

func TestInsightsDecodeSparse(t *testing.T) {
	// Older records carry only the original columns. Every newer field must
	// decode to its absent form without failing.
	raw := `{"call_id":"c-1","sentiment":"positive","topics":["billing"],"pain_points":[],"opportunities":null,"extracted_at":"2025-08-20T14:02:11"}`

	var ins Insights
	require.NoError(t, json.Unmarshal([]byte(raw), &ins))

	assert.Equal(t, "c-1", ins.CallID)
	assert.True(t, ins.Sentiment.Known())
	assert.Nil(t, ins.ChurnScore)
	assert.Nil(t, ins.GymRating)
	assert.Nil(t, ins.Confidence)
	assert.Nil(t, ins.CustomInstructionAnswers)
	assert.Equal(t, "n/a", FormatScore(ins.ChurnScore))
	assert.Equal(t, "n/a", FormatRating(ins.GymRating))
	assert.False(t, ins.ExtractedAt.IsZero())
}

func TestCallDuration(t *testing.T) {
	secs := 125
	c := Call{DurationSeconds: &secs}
	d, ok := c.Duration()
	require.True(t, ok)
	assert.Equal(t, "2:05", FormatSeconds(int(d.Seconds())))
	assert.Equal(t, "2:05", c.FormatDuration())

	var missing Call
	_, ok = missing.Duration()
	assert.False(t, ok)
	assert.Equal(t, "-", missing.FormatDuration())
	assert.Equal(t, "", missing.Transcript())
}

func TestSegmentNumbers(t *testing.T) {
	seg := Segment{PhoneNumbers: []SegmentMember{
		{PhoneNumber: "+15551230001"},
		{PhoneNumber: "+15551230002"},
		{PhoneNumber: "+15551230001"},
	}}

	// Order preserved, duplicates kept.
	assert.Equal(t, []string{"+15551230001", "+15551230002", "+15551230001"}, seg.Numbers())
}

func TestCallStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, StatusInitiated.Terminal())
}
