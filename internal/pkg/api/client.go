// Package api provides the REST client for the VoiceWise backend.
// This package is used by CLI commands and TUI components for all
// call, insight, segment, and dashboard operations.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/logger"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/version"
)

// DefaultBaseURL is used when no backend address is configured.
const DefaultBaseURL = "http://localhost:8000"

// DefaultGymID matches the backend's development default.
const DefaultGymID = "gym_001"

// Config holds configuration for the API client
type Config struct {
	// BaseURL of the backend (scheme://host:port, no trailing path)
	BaseURL string

	// GymID scopes every gym-aware request. Operations may override it
	// per call; empty falls back to DefaultGymID.
	GymID string

	// Timeout for requests (default: 30s)
	Timeout time.Duration
}

// Client provides typed access to the backend REST API.
type Client struct {
	http  *resty.Client
	gymID string
}

// New creates a client for the given backend.
func New(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("invalid base URL %q: missing http:// or https:// scheme", config.BaseURL)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	gymID := config.GymID
	if gymID == "" {
		gymID = DefaultGymID
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", version.UserAgent()).
		SetHeader("Accept", "application/json")

	// One request id per request, for correlation with backend logs.
	httpClient.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	httpClient.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		logger.Debug("api response",
			"method", r.Request.Method,
			"url", r.Request.URL,
			"status", r.StatusCode(),
			"duration", r.Time().String())
		return nil
	})

	return &Client{
		http:  httpClient,
		gymID: gymID,
	}, nil
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// GymID returns the gym scope applied to gym-aware requests.
func (c *Client) GymID() string {
	return c.gymID
}

// gymOrDefault resolves a per-call gym override against the client scope.
func (c *Client) gymOrDefault(override string) string {
	if override != "" {
		return override
	}
	return c.gymID
}

// get runs a GET and decodes the response body into out when non-nil.
func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if err := responseError(resp); err != nil {
		return err
	}
	return decode(resp.Body(), out)
}

// post runs a POST with an optional JSON body and decodes the response.
func (c *Client) post(ctx context.Context, path string, params map[string]string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetQueryParams(params)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	if err := responseError(resp); err != nil {
		return err
	}
	return decode(resp.Body(), out)
}

// del runs a DELETE and decodes the response.
func (c *Client) del(ctx context.Context, path string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("DELETE %s: %w", path, err)
	}
	if err := responseError(resp); err != nil {
		return err
	}
	return decode(resp.Body(), out)
}

func decode(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
