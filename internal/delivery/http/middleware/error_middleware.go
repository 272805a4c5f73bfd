package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"gatedesk/internal/delivery/http/response"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/i18n"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors into the unified response envelope,
// localizing the user-facing message by the request's Accept-Language.
type ErrorMiddleware struct {
	logger  *slog.Logger
	catalog *i18n.Catalog
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, catalog *i18n.Catalog) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:  logger,
		catalog: catalog,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	lang := m.catalog.Match(c.Request().Header.Get("Accept-Language"))

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: m.catalog.Message(lang, appErr.ErrorCode(), appErr.Message()),
			Error: &response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg := fmt.Sprintf("%v", httpErr.Message)
		c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: msg,
			Error: &response.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: msg,
			},
		})

		return
	}

	// Default to internal error, log the original and return a generic message
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: m.catalog.Message(lang, "INTERNAL_ERROR", "Internal server error"),
		Error: &response.ErrorInfo{
			Code: "INTERNAL_ERROR",
		},
	})
}
