package handler

import (
	"log/slog"
	"net/http"

	"gatedesk/internal/delivery/http/response"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivePlanHandler serves plan grant endpoints.
type ActivePlanHandler struct {
	uc     usecase.ActivePlanUsecase
	logger *slog.Logger
}

// NewActivePlanHandler is the constructor for ActivePlanHandler, injected by Fx.
func NewActivePlanHandler(uc usecase.ActivePlanUsecase, logger *slog.Logger) *ActivePlanHandler {
	return &ActivePlanHandler{uc: uc, logger: logger}
}

type subscribeRequest struct {
	PlanID uuid.UUID `json:"plan_id" validate:"required"`
}

// Subscribe creates a pending grant of the plan for the requester.
func (h *ActivePlanHandler) Subscribe(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	grant, err := h.uc.Subscribe(c.Request().Context(), userID, req.PlanID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, grant, "Subscription created; pending activation")
}

// ListOwn returns all grants ever issued to the requester.
func (h *ActivePlanHandler) ListOwn(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	grants, err := h.uc.ListOwn(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grants, "")
}

// Get returns a grant the requester owns.
func (h *ActivePlanHandler) Get(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	grantID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	grant, err := h.uc.Get(c.Request().Context(), userID, grantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grant, "")
}

// Cancel transitions the requester's grant to cancelled.
func (h *ActivePlanHandler) Cancel(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	grantID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	grant, err := h.uc.Cancel(c.Request().Context(), userID, grantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grant, "Subscription cancelled")
}

// ActivateGrant promotes a pending grant to active. Admin surface.
func (h *ActivePlanHandler) ActivateGrant(c echo.Context) error {
	grantID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	grant, err := h.uc.ActivateGrant(c.Request().Context(), grantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grant, "Grant activated")
}

// ExpireGrant transitions an active grant to expired. Admin surface.
func (h *ActivePlanHandler) ExpireGrant(c echo.Context) error {
	grantID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	grant, err := h.uc.ExpireGrant(c.Request().Context(), grantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grant, "Grant expired")
}
