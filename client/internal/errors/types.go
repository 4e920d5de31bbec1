// Package errors provides error classification for the client SDK.
package errors

import "fmt"

// ErrorKind tells callers which stage of a call failed.
type ErrorKind int

const (
	// HTTPStatus: the server answered with a non-2xx status.
	HTTPStatus ErrorKind = iota
	// Network: the request never produced a response (refused, reset, timeout, cancel).
	Network
	// Decode: a 2xx response body was not the expected JSON document.
	Decode
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case HTTPStatus:
		return "HTTPStatus"
	case Network:
		return "Network"
	case Decode:
		return "Decode"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ClassifiedError wraps a failed call with what is known about it.
type ClassifiedError struct {
	Kind       ErrorKind
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Message    string // "error" field of a JSON error body, if any
	Detail     string // "details" field of a JSON error body, if any
	Underlying error  // The original error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		if e.Message != "" {
			return fmt.Sprintf("[%s] HTTP %d: %s", e.Kind, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Kind, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Kind, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}
