package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure independently of the HTTP status it maps to.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindConflict        Kind = "conflict"
	KindUnauthorized    Kind = "unauthorized"
	KindNotFound        Kind = "not_found"
	KindPayloadTooLarge Kind = "payload_too_large"
	KindStorage         Kind = "storage"
	KindInternal        Kind = "internal"
)

// Error is the uniform failure object returned by every service operation.
// Handlers serialize it as {"message": ..., "statusCode": ...}.
type Error struct {
	Kind       Kind   `json:"-"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message, StatusCode: http.StatusUnprocessableEntity}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message, StatusCode: http.StatusUnprocessableEntity}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message, StatusCode: http.StatusUnprocessableEntity}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// NotFoundActor reports a missing acting user. The source API answers these
// with 403 rather than 404.
func NotFoundActor(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, StatusCode: http.StatusForbidden}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindValidation, Message: message, StatusCode: http.StatusBadRequest}
}

func PayloadTooLarge(message string) *Error {
	return &Error{Kind: KindPayloadTooLarge, Message: message, StatusCode: http.StatusUnprocessableEntity}
}

func Storage(message string) *Error {
	return &Error{Kind: KindStorage, Message: message, StatusCode: http.StatusInternalServerError}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message, StatusCode: http.StatusInternalServerError}
}

// From maps any error to an *Error. Already-typed errors pass through
// unchanged; everything else becomes an internal error so no raw failure
// crosses the transport boundary.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("Something went wrong")
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
