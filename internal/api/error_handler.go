package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/domain"
)

// failureResponse is the canonical failure envelope; it mirrors the success
// envelope so clients parse every response the same way.
type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Collects all accumulated field errors for validation failures.
//   - Logs unexpected errors internally; outside development mode the
//     internal message is withheld from the client.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c, development)
		_ = c.JSON(code, failureResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) (int, string) {
	// Validation failures carry every violated rule at once.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}

	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			return http.StatusNotFound, "endpoint not found"
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, domain.ErrInvalidUserID):
		return http.StatusBadRequest, "Invalid user ID format"
	case errors.Is(err, domain.ErrEmailImmutable):
		return http.StatusBadRequest, "You can't update email"
	case errors.Is(err, domain.ErrNothingToUpdate):
		return http.StatusBadRequest, "Nothing to update"
	case errors.Is(err, domain.ErrNoImage):
		return http.StatusBadRequest, "No image provided"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadRequest, "File upload failed"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if development {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, "Internal Server Error"
}
