package api

import (
	"errors"
	"fmt"
	"net/http"
)

// UnreachableError means the backend could not be reached at all: DNS,
// connection refused, timeout. Distinct from the server answering with an
// error status.
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("cannot reach the Zen Space backend: %v", e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response, with the server's message when it
// provided one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// ParseError means the server answered 2xx with a body that is not the
// expected JSON. Snippet holds a truncated copy of the raw body.
type ParseError struct {
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("server returned invalid JSON: %s", e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsUnreachable reports whether err is a transport-level failure.
func IsUnreachable(err error) bool {
	var ue *UnreachableError
	return errors.As(err, &ue)
}

// IsUnauthorized reports whether err is an HTTP 401 response.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusUnauthorized
}
