package httputil

import (
	"errors"
	"net/http"
)

// Shared error codes. Feature packages declare their own resource-scoped codes
// next to the errors that carry them.
const (
	CodeInvalidBody     = "request/invalid-body"
	CodeTooManyRequests = "request/too-many-requests"
	CodeInternal        = "internal-server-error"
)

// Error is a domain error carrying the HTTP status and the stable,
// slash-namespaced code the transport boundary writes out.
type Error struct {
	Status  int
	Code    string
	Details []string
}

func (e *Error) Error() string {
	return e.Code
}

// NewError builds a typed domain error.
func NewError(status int, code string, details ...string) *Error {
	return &Error{Status: status, Code: code, Details: details}
}

// InvalidBody is the 400 returned for malformed or failing request bodies,
// with one message per offending field.
func InvalidBody(details ...string) *Error {
	return NewError(http.StatusBadRequest, CodeInvalidBody, details...)
}

// IsDomainError reports whether err is a typed domain error, i.e. one that maps
// to a deliberate status rather than the generic 500.
func IsDomainError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}
