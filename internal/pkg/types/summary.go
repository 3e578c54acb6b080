package types

// SentimentBreakdown counts calls per sentiment class.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns the number of classified calls.
func (b SentimentBreakdown) Total() int {
	return b.Positive + b.Neutral + b.Negative
}

// PainPointCount is one entry of the ranked pain point list.
type PainPointCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// InterestQuote is a member quote flagged as high revenue interest.
type InterestQuote struct {
	Quote       string `json:"quote"`
	Sentiment   string `json:"sentiment"`
	PhoneNumber string `json:"phone_number"`
	CallID      string `json:"call_id"`
}

// DashboardSummary is the aggregate view the backend computes over a gym's
// analyzed calls. Averages are pointers since an empty result set has none.
type DashboardSummary struct {
	TotalCalls           int                `json:"total_calls"`
	Sentiment            SentimentBreakdown `json:"sentiment"`
	TopPainPoints        []PainPointCount   `json:"top_pain_points"`
	HighInterestQuotes   []InterestQuote    `json:"high_interest_quotes"`
	RevenueOpportunities int                `json:"revenue_opportunities"`
	AvgConfidence        *float64           `json:"avg_confidence,omitempty"`
	AvgDurationSeconds   *float64           `json:"avg_duration_seconds,omitempty"`
}
