package errors

import (
	"encoding/json"
	"fmt"
)

// errorBody mirrors the gateway's {"error", "details"} document.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// NewHTTPError creates a classified error for a non-2xx response. A JSON error body, when
// present, fills Message and Detail; anything else is ignored.
func NewHTTPError(statusCode int, body []byte, operation string) *ClassifiedError {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	return &ClassifiedError{
		Kind:       HTTPStatus,
		StatusCode: statusCode,
		Message:    eb.Error,
		Detail:     eb.Details,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewNetworkError creates a classified error for network-level failures.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Kind:       Network,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

// NewDecodeError creates a classified error for an unreadable 2xx payload.
func NewDecodeError(operation string, statusCode int, err error) *ClassifiedError {
	return &ClassifiedError{
		Kind:       Decode,
		Underlying: fmt.Errorf("%s decode error (HTTP %d): %w", operation, statusCode, err),
	}
}
