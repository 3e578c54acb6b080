package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// InitiateRequest is the body of an initiate-calls request. Numbers are
// posted exactly as given: order preserved, duplicates allowed.
type InitiateRequest struct {
	PhoneNumbers       []string `json:"phone_numbers"`
	CustomInstructions []string `json:"custom_instructions,omitempty"`
}

// InitiatedCall is the per-number outcome of a batch initiation. Numbers
// the provider rejected come back with status "failed" and a placeholder
// call id; the batch itself still succeeds.
type InitiatedCall struct {
	PhoneNumber string           `json:"phone_number"`
	CallID      string           `json:"call_id"`
	Status      types.CallStatus `json:"status"`
}

// InitiateResult is the backend's acknowledgment of a batch initiation.
type InitiateResult struct {
	CallsInitiated []InitiatedCall `json:"calls_initiated"`
	Total          int             `json:"total"`
}

// SplitNumbers turns newline-delimited text into the number list of an
// InitiateRequest. Lines are trimmed, empty lines dropped, order kept, and
// duplicates preserved; the backend decides what to do with repeats.
func SplitNumbers(text string) []string {
	lines := strings.Split(text, "\n")
	numbers := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			numbers = append(numbers, trimmed)
		}
	}
	return numbers
}

// InitiateCalls dispatches feedback calls to the given numbers.
func (c *Client) InitiateCalls(ctx context.Context, req InitiateRequest) (*InitiateResult, error) {
	if len(req.PhoneNumbers) == 0 {
		return nil, fmt.Errorf("at least one phone number is required")
	}

	var result InitiateResult
	params := map[string]string{"gym_id": c.gymID}
	if err := c.post(ctx, "/api/calls/initiate", params, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListFilter narrows a call listing. Zero values mean "not filtered".
type ListFilter struct {
	GymID           string
	Status          string
	Sentiment       string
	PainPoint       string
	RevenueInterest *bool
	StartDate       string // YYYY-MM-DD
	EndDate         string // YYYY-MM-DD
	Limit           int
	Skip            int
}

func (f ListFilter) params(defaultGym string) map[string]string {
	params := map[string]string{
		"limit": strconv.Itoa(f.Limit),
		"skip":  strconv.Itoa(f.Skip),
	}
	if gym := f.GymID; gym != "" {
		params["gym_id"] = gym
	} else if defaultGym != "" {
		params["gym_id"] = defaultGym
	}
	if f.Status != "" {
		params["status"] = f.Status
	}
	if f.Sentiment != "" {
		params["sentiment"] = f.Sentiment
	}
	if f.PainPoint != "" {
		params["pain_point"] = f.PainPoint
	}
	if f.RevenueInterest != nil {
		params["revenue_interest"] = strconv.FormatBool(*f.RevenueInterest)
	}
	if f.StartDate != "" {
		params["start_date"] = f.StartDate
	}
	if f.EndDate != "" {
		params["end_date"] = f.EndDate
	}
	return params
}

// CallPage is one page of a call listing. TotalKnown distinguishes a
// server-reported total from the absent one of the bare-array response
// shape; callers estimate in the latter case.
type CallPage struct {
	Calls      []types.Call
	Total      int
	TotalKnown bool
}

// ListCalls fetches one page of calls. The backend has served two response
// shapes over time, a bare JSON array and a {"calls": ..., "total": ...}
// envelope; both normalize to a CallPage.
func (c *Client) ListCalls(ctx context.Context, filter ListFilter) (*CallPage, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	var raw json.RawMessage
	if err := c.get(ctx, "/api/calls", filter.params(c.gymID), &raw); err != nil {
		return nil, err
	}
	return normalizeCallPage(raw)
}

func normalizeCallPage(raw json.RawMessage) (*CallPage, error) {
	trimmed := firstNonSpace(raw)

	if trimmed == '[' {
		var calls []types.Call
		if err := json.Unmarshal(raw, &calls); err != nil {
			return nil, fmt.Errorf("failed to decode call list: %w", err)
		}
		return &CallPage{Calls: calls}, nil
	}

	var envelope struct {
		Calls []types.Call `json:"calls"`
		Total *int         `json:"total"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode call list: %w", err)
	}

	page := &CallPage{Calls: envelope.Calls}
	if envelope.Total != nil {
		page.Total = *envelope.Total
		page.TotalKnown = true
	}
	return page, nil
}

func firstNonSpace(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

// GetCall fetches a single call by id.
func (c *Client) GetCall(ctx context.Context, callID string) (*types.Call, error) {
	if callID == "" {
		return nil, fmt.Errorf("call id is required")
	}

	var call types.Call
	if err := c.get(ctx, "/api/calls/"+callID, nil, &call); err != nil {
		return nil, err
	}
	return &call, nil
}

// GetCallInsights fetches the analysis results for a call. Calls without
// insights yield a 404 *Error; IsNotFound distinguishes it from failure.
func (c *Client) GetCallInsights(ctx context.Context, callID string) (*types.Insights, error) {
	if callID == "" {
		return nil, fmt.Errorf("call id is required")
	}

	var insights types.Insights
	if err := c.get(ctx, "/api/calls/"+callID+"/insights", nil, &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

// AnalyzeResult acknowledges a triggered analysis. Insights are present
// when the backend analyzed synchronously.
type AnalyzeResult struct {
	CallID   string          `json:"call_id"`
	Status   string          `json:"status"`
	Insights *types.Insights `json:"insights,omitempty"`
}

// AnalyzeCall asks the backend to (re)run transcript analysis for a call.
func (c *Client) AnalyzeCall(ctx context.Context, callID string) (*AnalyzeResult, error) {
	if callID == "" {
		return nil, fmt.Errorf("call id is required")
	}

	var result AnalyzeResult
	if err := c.post(ctx, "/api/calls/"+callID+"/analyze", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteResult carries the backend's deletion acknowledgment.
type DeleteResult struct {
	Message string `json:"message"`
}

// DeleteCall removes a call and its insights.
func (c *Client) DeleteCall(ctx context.Context, callID string) (*DeleteResult, error) {
	if callID == "" {
		return nil, fmt.Errorf("call id is required")
	}

	var result DeleteResult
	if err := c.del(ctx, "/api/calls/"+callID, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
