package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChurnSegment(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"phone_numbers":[{"phone_number":"+1555000001"},{"phone_number":"+1555000002"}]}`))
	})

	threshold := 0.7
	client, _ := newTestClient(t, handler)
	seg, err := client.ChurnSegment(context.Background(), ScoreSegmentParams{Threshold: &threshold})
	require.NoError(t, err)

	assert.Equal(t, "/api/calls/user-segments/churn", gotPath)
	assert.Equal(t, []string{"0.7"}, gotQuery["threshold"])
	assert.Equal(t, []string{"100"}, gotQuery["limit"], "default limit applies")
	assert.Equal(t, []string{"+1555000001", "+1555000002"}, seg.Numbers())
}

func TestRevenueSegmentDefaults(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calls/user-segments/revenue", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"phone_numbers":[]}`))
	})

	client, _ := newTestClient(t, handler)
	seg, err := client.RevenueSegment(context.Background(), ScoreSegmentParams{Limit: 25})
	require.NoError(t, err)

	assert.Equal(t, []string{"25"}, gotQuery["limit"])
	assert.NotContains(t, gotQuery, "threshold", "nil threshold uses the backend default")
	assert.Empty(t, seg.Numbers())
}

func TestFilterSegment(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calls/user-segments/filter", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"phone_numbers":[{"phone_number":"+1555000003"}]}`))
	})

	client, _ := newTestClient(t, handler)
	seg, err := client.FilterSegment(context.Background(), FilterSegmentParams{
		Metric: "gym_rating",
		Op:     "lt",
		Value:  5,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"gym_rating"}, gotQuery["metric"])
	assert.Equal(t, []string{"lt"}, gotQuery["op"])
	assert.Equal(t, []string{"5"}, gotQuery["value"])
	assert.Len(t, seg.Numbers(), 1)
}

func TestFilterSegmentValidation(t *testing.T) {
	client, err := New(Config{})
	require.NoError(t, err)

	_, err = client.FilterSegment(context.Background(), FilterSegmentParams{Op: "lt", Value: 5})
	assert.ErrorContains(t, err, "metric is required")

	_, err = client.FilterSegment(context.Background(), FilterSegmentParams{Metric: "gym_rating", Value: 5})
	assert.ErrorContains(t, err, "operator is required")
}

func TestPromptSegment(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calls/user-segments/prompt", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"phone_numbers":[{"phone_number":"+1555000004"}]}`))
	})

	client, _ := newTestClient(t, handler)
	seg, err := client.PromptSegment(context.Background(), PromptSegmentParams{
		Prompt: "members who complained about parking",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"members who complained about parking"}, gotQuery["q"])
	assert.Len(t, seg.Numbers(), 1)

	_, err = client.PromptSegment(context.Background(), PromptSegmentParams{})
	assert.ErrorContains(t, err, "prompt is required")
}

func TestSearchCalls(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calls/search", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"query":"billing","search_type":"nlp","total_results":1,"calls":[{"call_id":"c-1","phone_number":"+1555000001","status":"completed","created_at":"2025-08-20T10:00:00","insights":{"call_id":"c-1","sentiment":"negative","extracted_at":"2025-08-20T10:30:00"}}]}`))
	})

	client, _ := newTestClient(t, handler)
	result, err := client.SearchCalls(context.Background(), SearchQuery{Query: "billing"})
	require.NoError(t, err)

	assert.Equal(t, []string{"nlp"}, gotQuery["search_type"], "nlp is the default type")
	assert.Equal(t, 1, result.TotalResults)
	require.Len(t, result.Calls, 1)
	require.NotNil(t, result.Calls[0].Insights, "embedded insights decode")
}

func TestSearchCallsValidation(t *testing.T) {
	client, err := New(Config{})
	require.NoError(t, err)

	_, err = client.SearchCalls(context.Background(), SearchQuery{})
	assert.ErrorContains(t, err, "query is required")

	_, err = client.SearchCalls(context.Background(), SearchQuery{Query: "x", SearchType: "vibes"})
	assert.ErrorContains(t, err, "invalid search type")
}

func TestDashboardSummary(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calls/dashboard/summary", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"total_calls":42,"sentiment":{"positive":20,"neutral":12,"negative":10},"top_pain_points":[{"name":"crowded at 6pm","count":7}],"high_interest_quotes":[{"quote":"I'd pay for PT","sentiment":"positive","phone_number":"+1555000001","call_id":"c-1"}],"revenue_opportunities":5,"avg_confidence":0.88}`))
	})

	client, _ := newTestClient(t, handler)
	summary, err := client.DashboardSummary(context.Background(), SummaryQuery{StartDate: "2025-08-01"})
	require.NoError(t, err)

	assert.Equal(t, []string{"gym_001"}, gotQuery["gym_id"])
	assert.Equal(t, []string{"2025-08-01"}, gotQuery["start_date"])
	assert.Equal(t, 42, summary.TotalCalls)
	assert.Equal(t, 42, summary.Sentiment.Total())
	require.Len(t, summary.TopPainPoints, 1)
	require.NotNil(t, summary.AvgConfidence)
}
