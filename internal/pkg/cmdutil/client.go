package cmdutil

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/output"
)

// Exit codes for CLI commands
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitConnectionError = 2
	ExitValidationError = 3
	ExitNotFoundError   = 4
)

// Common flags used across commands that talk to the backend
var (
	apiURLFlag  string
	gymIDFlag   string
	timeoutFlag time.Duration
)

// AddClientFlags adds common backend connection flags to a command.
func AddClientFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&apiURLFlag, "api-url", "", "Backend base URL (default http://localhost:8000)")
	cmd.Flags().StringVarP(&gymIDFlag, "gym", "g", "", "Gym id scoping the request (default gym_001)")
	cmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "Request timeout (default 30s)")

	// Bind to viper for config file support
	_ = viper.BindPFlag("api.url", cmd.Flags().Lookup("api-url"))
	_ = viper.BindPFlag("gym.id", cmd.Flags().Lookup("gym"))
	_ = viper.BindPFlag("api.timeout", cmd.Flags().Lookup("timeout"))
}

// GetClientConfig builds an api.Config from flags and viper settings.
// Flag values take precedence over config file values.
func GetClientConfig() api.Config {
	return api.Config{
		BaseURL: GetStringConfig("api.url", apiURLFlag),
		GymID:   GetStringConfig("gym.id", gymIDFlag),
		Timeout: GetDurationConfig("api.timeout", timeoutFlag),
	}
}

// NewClient creates an API client from the current configuration.
func NewClient() (*api.Client, error) {
	return api.New(GetClientConfig())
}

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// OutputError writes an error response to stderr in JSON format and exits
func OutputError(err error, exitCode int) {
	resp := ErrorResponse{
		Error: err.Error(),
		Code:  mapExitCodeToString(exitCode),
	}

	data, _ := output.MarshalJSONPretty(resp, false)
	fmt.Fprintln(os.Stderr, string(data))
	os.Exit(exitCode)
}

// OutputJSON writes a value to stdout as JSON, pretty-printed on a TTY.
func OutputJSON(v interface{}) error {
	return output.PrintJSON(v)
}

// MapAPIError maps a backend error to an appropriate exit code. Anything
// that is not an *api.Error is treated as a connection failure.
func MapAPIError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return ExitConnectionError
	}

	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return ExitNotFoundError
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ExitValidationError
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ExitConnectionError
	}
	return ExitGeneralError
}

func mapExitCodeToString(code int) string {
	switch code {
	case ExitSuccess:
		return "OK"
	case ExitConnectionError:
		return "CONNECTION_ERROR"
	case ExitValidationError:
		return "VALIDATION_ERROR"
	case ExitNotFoundError:
		return "NOT_FOUND"
	default:
		return "ERROR"
	}
}
