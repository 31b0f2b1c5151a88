package service

import (
	"errors"
	"net/http"
)

// Error is an expected, client-facing failure. StatusCode and Message are
// written to the response as-is.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

var (
	ErrDuplicateEmail     = &Error{StatusCode: http.StatusBadRequest, Message: "User already exists"}
	ErrInvalidInput       = &Error{StatusCode: http.StatusBadRequest, Message: "Invalid User Data"}
	ErrMalformedBody      = &Error{StatusCode: http.StatusBadRequest, Message: "Invalid request body"}
	ErrInvalidCredentials = &Error{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrNoToken            = &Error{StatusCode: http.StatusUnauthorized, Message: "Not authorized, no token"}
	ErrInvalidToken       = &Error{StatusCode: http.StatusUnauthorized, Message: "Not authorized, invalid token"}
	ErrUserNotFound       = &Error{StatusCode: http.StatusNotFound, Message: "User not found"}
)

// AsError extracts the client-facing error from err, if there is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
