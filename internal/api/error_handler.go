package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hrms-lite/hrms-api/internal/core/domain"
)

// errorBody is the canonical error envelope for all API errors. Every error
// response carries success=false and a message; validation failures add the
// per-field messages, and unexpected errors outside production add the cause.
type errorBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally; their message is only exposed
//     to the client when production is false.
//   - Renders the {success:false, message, ...} envelope on every error.
func NewHTTPErrorHandler(log zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c, production)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, production bool) (int, errorBody) {
	// Router-level 404: no handler matched the path.
	if errors.Is(err, echo.ErrNotFound) {
		return http.StatusNotFound, errorBody{
			Message: fmt.Sprintf("Route %s not found", c.Request().URL.Path),
		}
	}

	// Echo's own errors (bind failures, method not allowed, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorBody{Message: fmt.Sprintf("%v", he.Message)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorBody{
			Message: "Validation failed",
			Errors:  ve.Messages,
		}
	}

	var dup *domain.DuplicateKeyError
	if errors.As(err, &dup) {
		return http.StatusConflict, errorBody{
			Message: fmt.Sprintf("An employee with this %s already exists", dup.Field),
		}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, errorBody{Message: "Invalid employee ID format"}
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, errorBody{Message: "Employee not found"}
	case errors.Is(err, domain.ErrAttendanceNotFound):
		return http.StatusNotFound, errorBody{Message: "Attendance record not found"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	body := errorBody{Message: "Internal Server Error"}
	if !production {
		body.Error = err.Error()
	}
	return http.StatusInternalServerError, body
}
