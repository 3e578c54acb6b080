package api

import (
	"context"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// SummaryQuery scopes the dashboard aggregate.
type SummaryQuery struct {
	GymID     string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// DashboardSummary fetches the backend's aggregate over analyzed calls.
func (c *Client) DashboardSummary(ctx context.Context, q SummaryQuery) (*types.DashboardSummary, error) {
	params := map[string]string{}
	if gym := c.gymOrDefault(q.GymID); gym != "" {
		params["gym_id"] = gym
	}
	if q.StartDate != "" {
		params["start_date"] = q.StartDate
	}
	if q.EndDate != "" {
		params["end_date"] = q.EndDate
	}

	var summary types.DashboardSummary
	if err := c.get(ctx, "/api/calls/dashboard/summary", params, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// HealthStatus is the backend's liveness report.
type HealthStatus struct {
	Status      string          `json:"status"`
	Environment string          `json:"environment"`
	Database    string          `json:"database"`
	Timestamp   types.Timestamp `json:"timestamp"`
}

// Health probes the backend health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.get(ctx, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
