package middleware

import (
	"net/http"

	"vibecart/pkg/logger"

	"github.com/labstack/echo/v4"
)

type responseError struct {
	Message string `json:"message"`
}

// ErrorHandler is the echo HTTPErrorHandler. Handlers map domain errors to
// statuses themselves; this catches what escapes (404 routes, panics
// recovered by the Recover middleware, unhandled errors).
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "method", c.Request().Method, "path", c.Path(), "error", message)
	}

	if err := c.JSON(code, responseError{Message: message}); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
