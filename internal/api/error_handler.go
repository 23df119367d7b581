package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
)

// errorBody is the nested error object of the error envelope.
type errorBody struct {
	Name    string           `json:"name"`
	Code    domain.ErrorCode `json:"code,omitempty"`
	Details any              `json:"details,omitempty"`
	Stack   string           `json:"stack,omitempty"`
}

// errorEnvelope is the canonical shape of every 4xx/5xx response.
type errorEnvelope struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Error   errorBody `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that funnels every
// failure into the uniform error envelope:
//   - dictionary errors carry their own code, status, and details;
//   - echo's own errors (bind failures, unknown routes) are mapped onto the
//     closed taxonomy;
//   - anything else is logged and rendered as a generic 500.
//
// When includeStack is true (non-production), the underlying cause of an
// internal error is echoed in the envelope.
func NewHTTPErrorHandler(log zerolog.Logger, includeStack bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		env := resolveError(err, log, c, includeStack)
		_ = c.JSON(env.Status, env)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, includeStack bool) errorEnvelope {
	var appErr *domain.Error
	if errors.As(err, &appErr) {
		env := errorEnvelope{
			Status:  appErr.Status,
			Message: appErr.Message,
			Error: errorBody{
				Name:    errorName(appErr.Code),
				Code:    appErr.Code,
				Details: appErr.Details,
			},
		}
		if cause := appErr.Unwrap(); cause != nil {
			log.Error().
				Err(cause).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("code", string(appErr.Code)).
				Msg(appErr.Message)
			if includeStack {
				env.Error.Stack = cause.Error()
			}
		}
		return env
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := codeForStatus(he.Code)
		return errorEnvelope{
			Status:  he.Code,
			Message: fmt.Sprintf("%v", he.Message),
			Error:   errorBody{Name: errorName(code), Code: code},
		}
	}

	// Unexpected error: log the real cause, return a generic envelope.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	env := errorEnvelope{
		Status:  http.StatusInternalServerError,
		Message: "Internal Server Error",
		Error: errorBody{
			Name: errorName(domain.CodeInternalServerError),
			Code: domain.CodeInternalServerError,
		},
	}
	if includeStack {
		env.Error.Stack = err.Error()
	}
	return env
}

// codeForStatus maps framework-raised statuses onto the closed taxonomy.
func codeForStatus(status int) domain.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnsupportedMediaType:
		return domain.CodeInvalidRequest
	case http.StatusUnauthorized:
		return domain.CodeUnauthorized
	case http.StatusForbidden:
		return domain.CodeForbidden
	case http.StatusNotFound:
		return domain.CodeResourceNotFound
	default:
		return domain.CodeInternalServerError
	}
}

func errorName(code domain.ErrorCode) string {
	switch code {
	case domain.CodeResourceExists:
		return "ResourceExistsError"
	case domain.CodeResourceNotFound:
		return "NotFoundError"
	case domain.CodeInvalidRequest:
		return "InvalidRequestError"
	case domain.CodeValidationError:
		return "ValidationError"
	case domain.CodeUnauthorized:
		return "UnauthorizedError"
	case domain.CodeForbidden:
		return "ForbiddenError"
	default:
		return "InternalServerError"
	}
}
