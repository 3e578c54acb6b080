package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a client pointed at a mock backend.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{BaseURL: server.URL, GymID: "gym_001", Timeout: 5 * time.Second})
	require.NoError(t, err)

	return client, server
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client, err := New(Config{})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.BaseURL())
		assert.Equal(t, DefaultGymID, client.GymID())
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		client, err := New(Config{BaseURL: "http://backend:8000/"})
		require.NoError(t, err)
		assert.Equal(t, "http://backend:8000", client.BaseURL())
	})

	t.Run("missing scheme", func(t *testing.T) {
		_, err := New(Config{BaseURL: "backend:8000"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing http:// or https:// scheme")
	})
}

func TestRequestHeaders(t *testing.T) {
	var gotRequestID, gotUserAgent string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","environment":"test","database":"connected","timestamp":"2025-08-20T10:00:00Z"}`))
	})

	client, _ := newTestClient(t, handler)
	_, err := client.Health(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, gotRequestID)
	assert.Len(t, gotRequestID, 36, "request id should be a UUID")
	assert.Contains(t, gotUserAgent, "voicewise/")
}

func TestRequestIDUniquePerRequest(t *testing.T) {
	seen := make(map[string]bool)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-Id")] = true
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	client, _ := newTestClient(t, handler)
	for i := 0; i < 3; i++ {
		_, err := client.Health(context.Background())
		require.NoError(t, err)
	}

	assert.Len(t, seen, 3)
}

func TestConnectionFailure(t *testing.T) {
	// A port nothing listens on; the error must be a transport error, not
	// an *Error.
	client, err := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.Health(context.Background())
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	var apiErr *Error
	assert.NotErrorAs(t, err, &apiErr)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "detail string surfaces verbatim",
			status: 404,
			body:   `{"detail":"Call abc-123 not found"}`,
			want:   "Call abc-123 not found",
		},
		{
			name:   "validation detail list",
			status: 422,
			body:   `{"detail":[{"loc":["query","gym_id"],"msg":"field required"},{"msg":"value error"}]}`,
			want:   "field required; value error",
		},
		{
			name:   "raw body fallback",
			status: 500,
			body:   `upstream exploded`,
			want:   "upstream exploded",
		},
		{
			name:   "empty body falls back to status text",
			status: 502,
			body:   ``,
			want:   "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.status, []byte(tt.body)))
		})
	}
}
