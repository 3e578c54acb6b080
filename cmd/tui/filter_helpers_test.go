package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  filterSpec
	}{
		{
			name:  "status token",
			input: "status:completed",
			want:  filterSpec{Status: "completed"},
		},
		{
			name:  "sentiment token",
			input: "sentiment:negative",
			want:  filterSpec{Sentiment: "negative"},
		},
		{
			name:  "both tokens",
			input: "status:failed sentiment:positive",
			want:  filterSpec{Status: "failed", Sentiment: "positive"},
		},
		{
			name:  "free text",
			input: "unhappy about the showers",
			want:  filterSpec{Query: "unhappy about the showers"},
		},
		{
			name:  "tokens mixed with free text",
			input: "status:completed trainer complaints",
			want:  filterSpec{Status: "completed", Query: "trainer complaints"},
		},
		{
			name:  "repeated token keeps the last value",
			input: "status:completed status:failed",
			want:  filterSpec{Status: "failed"},
		},
		{
			name:  "token values are lowercased",
			input: "status:COMPLETED sentiment:Negative",
			want:  filterSpec{Status: "completed", Sentiment: "negative"},
		},
		{
			name:  "extra whitespace is collapsed",
			input: "  billing   issues  ",
			want:  filterSpec{Query: "billing issues"},
		},
		{
			name:  "empty input",
			input: "",
			want:  filterSpec{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFilter(tt.input))
		})
	}
}

func TestFilterSpecDescribe(t *testing.T) {
	tests := []struct {
		name string
		spec filterSpec
		want string
	}{
		{
			name: "empty",
			spec: filterSpec{},
			want: "",
		},
		{
			name: "status only",
			spec: filterSpec{Status: "completed"},
			want: "status:completed",
		},
		{
			name: "status and sentiment",
			spec: filterSpec{Status: "completed", Sentiment: "negative"},
			want: "status:completed sentiment:negative",
		},
		{
			name: "free text wins over tokens",
			spec: filterSpec{Status: "completed", Query: "trainer complaints"},
			want: `search: "trainer complaints"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Describe())
		})
	}
}

func TestFilterSpecEmpty(t *testing.T) {
	assert.True(t, filterSpec{}.Empty())
	assert.False(t, filterSpec{Status: "completed"}.Empty())
	assert.False(t, filterSpec{Sentiment: "neutral"}.Empty())
	assert.False(t, filterSpec{Query: "showers"}.Empty())
}
