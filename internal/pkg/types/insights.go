package types

import "fmt"

// Sentiment classification produced by the analysis pipeline.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Known reports whether the sentiment is one of the recognized values.
// Anything else renders as unknown rather than failing.
func (s Sentiment) Known() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Insights holds the analysis results extracted from a call transcript.
// Score fields are pointers: the analysis may omit any of them, and older
// records predate several of the columns.
type Insights struct {
	CallID                   string            `json:"call_id"`
	Sentiment                Sentiment         `json:"sentiment"`
	Topics                   []string          `json:"topics"`
	PainPoints               []string          `json:"pain_points"`
	Opportunities            []string          `json:"opportunities"`
	ChurnScore               *float64          `json:"churn_score,omitempty"`
	ChurnInterestQuote       *string           `json:"churn_interest_quote,omitempty"`
	RevenueInterestScore     *float64          `json:"revenue_interest_score,omitempty"`
	RevenueInterestQuote     *string           `json:"revenue_interest_quote,omitempty"`
	GymRating                *float64          `json:"gym_rating,omitempty"`
	Confidence               *float64          `json:"confidence,omitempty"`
	AnomalyScore             *float64          `json:"anomaly_score,omitempty"`
	CustomInstructionAnswers map[string]string `json:"custom_instruction_answers,omitempty"`
	ExtractedAt              Timestamp         `json:"extracted_at"`
}

// ValidScore reports whether p holds a score in [0, 1].
func ValidScore(p *float64) bool {
	return p != nil && *p >= 0 && *p <= 1
}

// ValidRating reports whether p holds a rating in [1, 10].
func ValidRating(p *float64) bool {
	return p != nil && *p >= 1 && *p <= 10
}

// FormatScore renders a [0, 1] score with two decimals. Absent or
// out-of-range values render as "n/a", never an error.
func FormatScore(p *float64) string {
	if !ValidScore(p) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *p)
}

// FormatRating renders a [1, 10] rating as "N/10", rounding to the nearest
// integer. Absent or out-of-range values render as "n/a".
func FormatRating(p *float64) string {
	if !ValidRating(p) {
		return "n/a"
	}
	return fmt.Sprintf("%.0f/10", *p)
}

// FormatSentiment renders the sentiment label, or "unknown" for values
// outside the recognized set.
func FormatSentiment(s Sentiment) string {
	if !s.Known() {
		return "unknown"
	}
	return string(s)
}

// FormatSeconds renders a second count as m:ss.
func FormatSeconds(secs int) string {
	if secs < 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
