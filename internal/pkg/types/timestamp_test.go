package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "rfc3339",
			in:   `"2025-08-20T14:02:11Z"`,
			want: time.Date(2025, 8, 20, 14, 2, 11, 0, time.UTC),
		},
		{
			name: "rfc3339 with offset",
			in:   `"2025-08-20T16:02:11+02:00"`,
			want: time.Date(2025, 8, 20, 14, 2, 11, 0, time.UTC),
		},
		{
			name: "naive datetime",
			in:   `"2025-08-20T14:02:11"`,
			want: time.Date(2025, 8, 20, 14, 2, 11, 0, time.UTC),
		},
		{
			name: "naive with microseconds",
			in:   `"2025-08-20T14:02:11.123456"`,
			want: time.Date(2025, 8, 20, 14, 2, 11, 123456000, time.UTC),
		},
		{
			name: "space separated",
			in:   `"2025-08-20 14:02:11"`,
			want: time.Date(2025, 8, 20, 14, 2, 11, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, ts.Equal(tt.want), "got %v, want %v", ts.Time, tt.want)
		})
	}
}

func TestTimestampUnmarshalNull(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
	assert.Equal(t, "-", ts.Display())
}

func TestTimestampUnmarshalInvalid(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte(`"yesterday"`), &ts)
	assert.Error(t, err)
}

func TestTimestampMarshal(t *testing.T) {
	ts := Timestamp{Time: time.Date(2025, 8, 20, 14, 2, 11, 0, time.UTC)}
	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-08-20T14:02:11Z"`, string(out))

	out, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}
