package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// DefaultSegmentLimit caps segment membership when the caller does not.
const DefaultSegmentLimit = 100

// ScoreSegmentParams selects members by a score threshold.
type ScoreSegmentParams struct {
	Threshold *float64 // nil uses the backend default
	GymID     string
	Limit     int
}

func (p ScoreSegmentParams) params(defaultGym string) map[string]string {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultSegmentLimit
	}
	params := map[string]string{"limit": strconv.Itoa(limit)}
	if p.Threshold != nil {
		params["threshold"] = strconv.FormatFloat(*p.Threshold, 'f', -1, 64)
	}
	if gym := p.GymID; gym != "" {
		params["gym_id"] = gym
	} else if defaultGym != "" {
		params["gym_id"] = defaultGym
	}
	return params
}

// ChurnSegment returns members whose churn score crosses the threshold.
func (c *Client) ChurnSegment(ctx context.Context, p ScoreSegmentParams) (*types.Segment, error) {
	var seg types.Segment
	if err := c.get(ctx, "/api/calls/user-segments/churn", p.params(c.gymID), &seg); err != nil {
		return nil, err
	}
	return &seg, nil
}

// RevenueSegment returns members whose revenue interest crosses the threshold.
func (c *Client) RevenueSegment(ctx context.Context, p ScoreSegmentParams) (*types.Segment, error) {
	var seg types.Segment
	if err := c.get(ctx, "/api/calls/user-segments/revenue", p.params(c.gymID), &seg); err != nil {
		return nil, err
	}
	return &seg, nil
}

// FilterSegmentParams selects members by comparing a metric to a value.
type FilterSegmentParams struct {
	Metric string  // e.g. gym_rating, churn_score, confidence
	Op     string  // lt, lte, gt, gte, eq
	Value  float64
	GymID  string
	Limit  int
}

// FilterSegment returns members matching a metric comparison.
func (c *Client) FilterSegment(ctx context.Context, p FilterSegmentParams) (*types.Segment, error) {
	if p.Metric == "" {
		return nil, fmt.Errorf("metric is required")
	}
	if p.Op == "" {
		return nil, fmt.Errorf("comparison operator is required")
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultSegmentLimit
	}
	params := map[string]string{
		"metric": p.Metric,
		"op":     p.Op,
		"value":  strconv.FormatFloat(p.Value, 'f', -1, 64),
		"limit":  strconv.Itoa(limit),
	}
	if gym := c.gymOrDefault(p.GymID); gym != "" {
		params["gym_id"] = gym
	}

	var seg types.Segment
	if err := c.get(ctx, "/api/calls/user-segments/filter", params, &seg); err != nil {
		return nil, err
	}
	return &seg, nil
}

// PromptSegmentParams selects members via a natural-language condition the
// backend evaluates against stored insights.
type PromptSegmentParams struct {
	Prompt string
	GymID  string
	Limit  int
}

// PromptSegment returns members matching a free-form condition.
func (c *Client) PromptSegment(ctx context.Context, p PromptSegmentParams) (*types.Segment, error) {
	if p.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultSegmentLimit
	}
	params := map[string]string{
		"q":     p.Prompt,
		"limit": strconv.Itoa(limit),
	}
	if gym := c.gymOrDefault(p.GymID); gym != "" {
		params["gym_id"] = gym
	}

	var seg types.Segment
	if err := c.get(ctx, "/api/calls/user-segments/prompt", params, &seg); err != nil {
		return nil, err
	}
	return &seg, nil
}
