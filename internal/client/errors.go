// internal/client/errors.go
package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// APIError is a rejection from the remote API. Message is the server's
// human-readable reason and is surfaced to the user verbatim, except for
// the out-of-stock translation handled by the loans service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// decodeError extracts the server's message from a failure response. The
// API wraps errors as {"message": "..."}; if the body is not that shape the
// raw body is used, and an empty body falls back to the HTTP status text.
func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil || len(strings.TrimSpace(string(body))) == 0 {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var wrapped struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Message != "" {
		apiErr.Message = wrapped.Message
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}

// IsOutOfStock reports whether err is a remote rejection caused by the
// requested book having no available copies. The upstream API reports this
// condition in Spanish and only as free text, so the contract is a substring
// match on "stock" and "disponible"; this is the documented external
// interface requirement, not a heuristic this package invented.
func IsOutOfStock(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	msg := strings.ToLower(apiErr.Message)
	return strings.Contains(msg, "stock") || strings.Contains(msg, "disponible")
}
