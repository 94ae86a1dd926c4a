package apperrors

import (
	"errors"
	"net/http"
)

// Kind is the machine-readable class of a domain error
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindInvalidState        Kind = "invalid_state"
	KindMissingPrecondition Kind = "missing_precondition"
	KindValidation          Kind = "validation"
)

// Error is a domain error with a stable code and a human-readable message.
// The message is surfaced verbatim to the caller.
type Error struct {
	Kind    Kind   `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func InvalidState(code, message string) *Error {
	return &Error{Kind: KindInvalidState, Code: code, Message: message}
}

func MissingPrecondition(code, message string) *Error {
	return &Error{Kind: KindMissingPrecondition, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// AsError unwraps err into a domain *Error, or nil if it isn't one
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsKind reports whether err is a domain error of the given kind
func IsKind(err error, kind Kind) bool {
	e := AsError(err)
	return e != nil && e.Kind == kind
}

// HTTPStatus maps a domain error kind to an HTTP status code.
// Non-domain errors map to 500.
func HTTPStatus(err error) int {
	e := AsError(err)
	if e == nil {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidState:
		return http.StatusConflict
	case KindMissingPrecondition:
		return http.StatusUnprocessableEntity
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
