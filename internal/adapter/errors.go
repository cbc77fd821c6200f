package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected http status")

	// ErrTransport wraps failures that happen before any response arrives:
	// refused connections, DNS errors, timeouts.
	ErrTransport = errors.New("backend unreachable")

	ErrMissingAccessToken = errors.New("login response carries no access token")
)

// APIError describes a non-success HTTP response.
type APIError struct {
	StatusCode int
	// Detail is the "detail" message of the JSON error body, if any.
	Detail string
	// Body is the raw trimmed response body.
	Body string
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Body
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
}

// DetailOf returns the server supplied detail carried by err, or "".
func DetailOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
