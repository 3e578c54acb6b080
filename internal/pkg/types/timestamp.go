package types

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp wraps time.Time to accept the backend's timestamp formats.
// The API serializes naive datetimes without a zone offset, so plain
// time.Time unmarshaling rejects them.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// UnmarshalJSON parses RFC 3339 timestamps as well as zone-less ISO 8601
// variants. Zone-less values are interpreted as UTC. Empty and null decode
// to the zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalJSON emits RFC 3339, or null for the zero time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Display renders the timestamp for humans, or "-" for the zero time.
func (t Timestamp) Display() string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
