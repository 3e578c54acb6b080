package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Error is a non-2xx response from the backend. Message carries the
// backend's own wording; views surface it verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsNotFound returns true if the error is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsValidation returns true for request validation failures (400/422).
func IsValidation(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnprocessableEntity
}

// responseError converts a non-success response into an *Error.
func responseError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return &Error{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.StatusCode(), resp.Body()),
	}
}

// errorMessage extracts the human-readable message from an error body.
// The backend wraps messages as {"detail": "..."}; validation failures carry
// {"detail": [{"msg": ...}, ...]} instead. Anything unparseable falls back
// to the raw body, then to the status text.
func errorMessage(status int, body []byte) string {
	var detail struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && len(detail.Detail) > 0 {
		var msg string
		if err := json.Unmarshal(detail.Detail, &msg); err == nil {
			return msg
		}

		var fields []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(detail.Detail, &fields); err == nil && len(fields) > 0 {
			msgs := make([]string, 0, len(fields))
			for _, f := range fields {
				if f.Msg != "" {
					msgs = append(msgs, f.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; ")
			}
		}
	}

	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return http.StatusText(status)
}
