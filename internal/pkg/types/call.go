package types

import (
	"time"
)

// CallStatus is the lifecycle state of an outbound feedback call.
type CallStatus string

const (
	StatusInitiated CallStatus = "initiated" // dispatched to the calling provider
	StatusCompleted CallStatus = "completed" // member answered, transcript available
	StatusFailed    CallStatus = "failed"    // not answered, rejected, or provider error
)

// Terminal reports whether the status is final. Initiated calls are still
// in flight and may gain a transcript later.
func (s CallStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Call represents a single outbound call record as returned by the backend.
// This type is shared between the API client, CLI commands, and TUI components.
type Call struct {
	CallID             string     `json:"call_id"`
	PhoneNumber        string     `json:"phone_number"`
	Status             CallStatus `json:"status"`
	DurationSeconds    *int       `json:"duration_seconds,omitempty"`
	CreatedAt          Timestamp  `json:"created_at"`
	RawTranscript      *string    `json:"raw_transcript,omitempty"`
	CustomInstructions []string   `json:"custom_instructions,omitempty"`
	Insights           *Insights  `json:"insights,omitempty"` // embedded by search/list responses only
}

// Duration returns the call duration when the backend reported one.
func (c *Call) Duration() (time.Duration, bool) {
	if c.DurationSeconds == nil {
		return 0, false
	}
	return time.Duration(*c.DurationSeconds) * time.Second, true
}

// Transcript returns the raw transcript, or "" when none exists yet.
func (c *Call) Transcript() string {
	if c.RawTranscript == nil {
		return ""
	}
	return *c.RawTranscript
}

// FormatDuration renders the duration as m:ss, or "-" when unknown.
func (c *Call) FormatDuration() string {
	d, ok := c.Duration()
	if !ok {
		return "-"
	}
	return FormatSeconds(int(d / time.Second))
}
