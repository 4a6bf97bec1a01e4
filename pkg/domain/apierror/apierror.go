package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	URLNotFound Code = "url_not_found"
	BadAction   Code = "bad_action"
	Internal    Code = "internal_error"
)

var statusByCode = map[Code]int{
	URLNotFound: http.StatusNotFound,
	BadAction:   http.StatusBadRequest,
	Internal:    http.StatusInternalServerError,
}

// Error is the typed failure returned by API operations. Message carries the
// detail shown to the caller, e.g. the URL that could not be handled.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches the underlying cause. It is kept for logging and never
// serialized.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) StatusCode() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func Is(err error, code Code) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Code == code
}
