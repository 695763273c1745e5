package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx response. It unwraps to the sentinel of its status
// code, so callers can use [errors.Is] for the category and [errors.As] for
// the server-provided code and message.
type APIError struct {
	Status  int
	Code    string
	Message string

	kind error
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s (http %d): %s", e.kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s (http %d, %s): %s", e.kind, e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// NewAPIError builds the error of a response with the given status and the
// server's code and message.
func NewAPIError(status int, code, message string) *APIError {
	kind, ok := statusErrors[status]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	return &APIError{Status: status, Code: code, Message: message, kind: kind}
}
