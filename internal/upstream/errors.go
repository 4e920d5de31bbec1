package upstream

import (
	"errors"
	"fmt"
)

// Failure kinds of a forwarded call. Every error returned by Client.Get wraps exactly one.
var (
	// ErrRedirect: the backend answered 3xx. Redirects are never followed.
	ErrRedirect = errors.New("upstream redirected")
	// ErrHTTPStatus: the backend answered a non-2xx, non-3xx status.
	ErrHTTPStatus = errors.New("upstream error status")
	// ErrTransport: the call failed below HTTP or the payload could not be read or decoded.
	ErrTransport = errors.New("upstream transport failure")
)

// Error describes a failed upstream call.
type Error struct {
	Kind     error  // ErrRedirect, ErrHTTPStatus or ErrTransport
	URL      string // target URL including query
	Status   int    // 0 for transport failures
	Location string // Location header of a redirect
	Body     string // error body of an ErrHTTPStatus response, for logs only
	Err      error  // underlying cause of a transport failure
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Kind, ErrRedirect):
		return fmt.Sprintf("%v: HTTP %d to %q", e.Kind, e.Status, e.Location)
	case errors.Is(e.Kind, ErrHTTPStatus):
		return fmt.Sprintf("%v: HTTP %d", e.Kind, e.Status)
	default:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Cause is the underlying error message, or the kind when there is none.
func (e *Error) Cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.Error()
}
