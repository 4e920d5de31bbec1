package client

import (
	"errors"

	errs "github.com/kj-nakamura/baby-wear-translator/client/internal/errors"
)

// ClassifiedError is returned by every failed Fetch call.
type ClassifiedError = errs.ClassifiedError

// ErrorKind tells which stage of a call failed.
type ErrorKind = errs.ErrorKind

const (
	KindHTTPStatus = errs.HTTPStatus
	KindNetwork    = errs.Network
	KindDecode     = errs.Decode
)

// StatusCode returns the HTTP status carried by err, or 0 when there was none.
func StatusCode(err error) int {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.StatusCode
	}
	return 0
}
