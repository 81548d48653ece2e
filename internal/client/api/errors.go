package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request could not reach the backend at all
	// (connection failure, timeout) or the response body was not the JSON
	// the contract promises.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is the backend's "not authenticated" signal: the
	// session cookie is missing, expired, or invalid.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-auth failure the backend explained in its payload,
// typically a validation rejection. The message is meant to be shown to the
// user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
