package http

import (
	"errors"
	"log/slog"
	"net/http"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/domain/services"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// unprocessable are business refusals of a well-formed request.
var unprocessable = []error{
	services.ErrStoreIsClosed,
	services.ErrPickupIsDisabled,
	settings.ErrOutOfDeliveryArea,
	catalog.ErrProductIsUnavailable,
}

// statusFor maps a use case error to the HTTP status it is reported with.
func statusFor(err error) int {
	var tierErr *settings.TierValidationError
	if errors.As(err, &tierErr) {
		return http.StatusUnprocessableEntity
	}
	for _, target := range unprocessable {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}

	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrAccessDenied), errors.Is(err, errs.ErrPolicyViolation):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders every error as servers.Error, carrying the
// notifications emitted while the request ran.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := statusFor(err)
		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}
		if code == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			message = http.StatusText(code)
		}

		body := servers.Error{
			Code:          code,
			Message:       message,
			Notifications: notificationsOf(c),
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", err)
		}
	}
}
