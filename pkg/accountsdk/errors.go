package accountsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the accounts service.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("accounts: %d %s (%s)", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("accounts: %d %s", e.StatusCode, e.Message)
}

// Is matches on status code and message, so errors.Is(err, ErrUserExists)
// works against errors decoded from a response.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Message == t.Message
}

// Errors the service is known to return.
var (
	ErrUserExists         = &APIError{StatusCode: http.StatusBadRequest, Message: "User already exists"}
	ErrInvalidUserData    = &APIError{StatusCode: http.StatusBadRequest, Message: "Invalid User Data"}
	ErrInvalidCredentials = &APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrNoToken            = &APIError{StatusCode: http.StatusUnauthorized, Message: "Not authorized, no token"}
	ErrInvalidToken       = &APIError{StatusCode: http.StatusUnauthorized, Message: "Not authorized, invalid token"}
	ErrUserNotFound       = &APIError{StatusCode: http.StatusNotFound, Message: "User not found"}
)

// parseErrorResponse turns an error body into an *APIError. Bodies that are
// not JSON fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Error,
			Detail:     errResp.Detail,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
