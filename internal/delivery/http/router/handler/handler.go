package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gatedesk/internal/delivery/http/middleware"
)

// pathUUID parses a UUID path parameter. The returned error renders as a 400
// through the central error handler.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" path parameter")
	}

	return id, nil
}

// requesterID extracts the authenticated user ID placed by the auth middleware.
func requesterID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	return id, nil
}
