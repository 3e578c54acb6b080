package cmdutil

import (
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
)

func TestMapAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "not found", err: &api.Error{StatusCode: 404, Message: "Call x not found"}, want: ExitNotFoundError},
		{name: "bad request", err: &api.Error{StatusCode: 400, Message: "no transcript"}, want: ExitValidationError},
		{name: "unprocessable", err: &api.Error{StatusCode: 422, Message: "field required"}, want: ExitValidationError},
		{name: "bad gateway", err: &api.Error{StatusCode: 502, Message: "bad gateway"}, want: ExitConnectionError},
		{name: "server error", err: &api.Error{StatusCode: 500, Message: "boom"}, want: ExitGeneralError},
		{name: "transport failure", err: errors.New("dial tcp: connection refused"), want: ExitConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapAPIError(tt.err))
		})
	}
}

func TestConfigPrecedence(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Run("flag wins over config", func(t *testing.T) {
		viper.Set("api.url", "http://from-config:8000")
		assert.Equal(t, "http://flag:8000", GetStringConfig("api.url", "http://flag:8000"))
	})

	t.Run("config used when flag empty", func(t *testing.T) {
		viper.Set("api.url", "http://from-config:8000")
		assert.Equal(t, "http://from-config:8000", GetStringConfig("api.url", ""))
	})

	t.Run("int falls back to flag", func(t *testing.T) {
		assert.Equal(t, 25, GetIntConfig("segments.unset_key", 25))
	})

	t.Run("bool prefers config", func(t *testing.T) {
		viper.Set("some.flag", true)
		assert.True(t, GetBoolConfig("some.flag", false))
	})
}
