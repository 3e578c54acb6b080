package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// Search types understood by the backend.
const (
	SearchTypePhone     = "phone"
	SearchTypeStatus    = "status"
	SearchTypeSentiment = "sentiment"
	SearchTypeNLP       = "nlp"
)

// ValidSearchType reports whether t is a recognized search type.
func ValidSearchType(t string) bool {
	switch t {
	case SearchTypePhone, SearchTypeStatus, SearchTypeSentiment, SearchTypeNLP:
		return true
	}
	return false
}

// SearchQuery describes one search request.
type SearchQuery struct {
	Query      string
	SearchType string // defaults to nlp
	GymID      string
	Limit      int
	Skip       int
}

// SearchResult is the backend's search response. Calls carry embedded
// insights when the matched record has them.
type SearchResult struct {
	Query              string         `json:"query"`
	SearchType         string         `json:"search_type"`
	TotalResults       int            `json:"total_results"`
	AggregatedInsights map[string]any `json:"aggregated_insights,omitempty"`
	Calls              []types.Call   `json:"calls"`
}

// SearchCalls searches calls by phone, status, sentiment, or free text.
func (c *Client) SearchCalls(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	if q.Query == "" {
		return nil, fmt.Errorf("search query is required")
	}

	searchType := q.SearchType
	if searchType == "" {
		searchType = SearchTypeNLP
	}
	if !ValidSearchType(searchType) {
		return nil, fmt.Errorf("invalid search type %q: want phone, status, sentiment, or nlp", q.SearchType)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	skip := q.Skip
	if skip < 0 {
		skip = 0
	}

	params := map[string]string{
		"query":       q.Query,
		"search_type": searchType,
		"limit":       strconv.Itoa(limit),
		"skip":        strconv.Itoa(skip),
	}
	if gym := c.gymOrDefault(q.GymID); gym != "" {
		params["gym_id"] = gym
	}

	var result SearchResult
	if err := c.get(ctx, "/api/calls/search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
