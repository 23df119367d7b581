package domain

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies one entry of the closed application error taxonomy.
type ErrorCode string

const (
	CodeResourceExists      ErrorCode = "RESOURCE_EXISTS"
	CodeResourceNotFound    ErrorCode = "RESOURCE_NOT_FOUND"
	CodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	CodeValidationError     ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized        ErrorCode = "UNAUTHORIZED"
	CodeForbidden           ErrorCode = "FORBIDDEN"
	CodeInternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"
)

// Error is the application error type. Every component raises errors through
// the factory functions below so the taxonomy stays closed and the HTTP
// mapping is defined in exactly one place.
type Error struct {
	Message string
	Code    ErrorCode
	Status  int
	Details any
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if the raiser supplied one.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is makes two dictionary errors comparable by code via errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(message string, code ErrorCode, status int, details any) *Error {
	return &Error{Message: message, Code: code, Status: status, Details: details}
}

// ResourceExists reports a natural-key conflict (duplicate pet name, email).
func ResourceExists(resource string, details ...any) *Error {
	return newError(resource+" already exists", CodeResourceExists, http.StatusBadRequest, firstDetail(details))
}

// ResourceNotFound reports a missing entity. The id, when given, is echoed in
// the message so clients can correlate.
func ResourceNotFound(resource, id string, details ...any) *Error {
	msg := resource + " not found"
	if id != "" {
		msg = fmt.Sprintf("%s not found with id: %s", resource, id)
	}
	return newError(msg, CodeResourceNotFound, http.StatusNotFound, firstDetail(details))
}

// InvalidRequest reports malformed or missing input.
func InvalidRequest(message string, details ...any) *Error {
	return newError(message, CodeInvalidRequest, http.StatusBadRequest, firstDetail(details))
}

// ValidationError reports a request-body schema violation.
func ValidationError(message string, details ...any) *Error {
	return newError(message, CodeValidationError, http.StatusBadRequest, firstDetail(details))
}

// Unauthorized reports a missing or unusable credential.
func Unauthorized(message string, details ...any) *Error {
	if message == "" {
		message = "Unauthorized access"
	}
	return newError(message, CodeUnauthorized, http.StatusUnauthorized, firstDetail(details))
}

// Forbidden reports an authenticated but disallowed request.
func Forbidden(message string, details ...any) *Error {
	if message == "" {
		message = "Forbidden access"
	}
	return newError(message, CodeForbidden, http.StatusForbidden, firstDetail(details))
}

// Internal wraps an unexpected failure. The cause is preserved for logging
// and errors.Is/As but never serialized to clients.
func Internal(message string, cause error) *Error {
	if message == "" {
		message = "Internal Server Error"
	}
	e := newError(message, CodeInternalServerError, http.StatusInternalServerError, nil)
	e.cause = cause
	return e
}

func firstDetail(details []any) any {
	if len(details) == 0 {
		return nil
	}
	return details[0]
}
