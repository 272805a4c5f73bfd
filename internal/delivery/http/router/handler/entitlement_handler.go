package handler

import (
	"log/slog"
	"net/http"

	"gatedesk/internal/delivery/http/response"
	"gatedesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntitlementHandler exposes the requester's current credit entitlement.
type EntitlementHandler struct {
	uc     usecase.EntitlementUsecase
	logger *slog.Logger
}

// NewEntitlementHandler is the constructor for EntitlementHandler, injected by Fx.
func NewEntitlementHandler(uc usecase.EntitlementUsecase, logger *slog.Logger) *EntitlementHandler {
	return &EntitlementHandler{uc: uc, logger: logger}
}

// Resolve returns the requester's active plan with per-kind consumed counts.
func (h *EntitlementHandler) Resolve(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	entitlement, err := h.uc.Resolve(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entitlement, "")
}
