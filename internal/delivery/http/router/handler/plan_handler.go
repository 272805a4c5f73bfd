package handler

import (
	"log/slog"
	"net/http"

	"gatedesk/internal/delivery/http/response"
	"gatedesk/internal/domain/entity"
	"gatedesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlanHandler serves the plan catalog endpoints.
type PlanHandler struct {
	uc     usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlanUsecase, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{uc: uc, logger: logger}
}

type planRequest struct {
	Name           string  `json:"name" validate:"required"`
	BuildingCredit int     `json:"building_credit" validate:"gte=0"`
	UserCredit     int     `json:"user_credit" validate:"gte=0"`
	MonthlyVisits  int     `json:"monthly_visits" validate:"gte=0"`
	Price          float64 `json:"price" validate:"gte=0"`
}

func (r *planRequest) toInput() *usecase.PlanInput {
	return &usecase.PlanInput{
		Name:           r.Name,
		BuildingCredit: r.BuildingCredit,
		UserCredit:     r.UserCredit,
		MonthlyVisits:  r.MonthlyVisits,
		Price:          r.Price,
	}
}

// ListActivePlans returns the plans subscribers may purchase.
func (h *PlanHandler) ListActivePlans(c echo.Context) error {
	plans, err := h.uc.ListActivePlans(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plans, "")
}

// ListPlans returns the full catalog for admins.
func (h *PlanHandler) ListPlans(c echo.Context) error {
	plans, err := h.uc.ListPlans(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plans, "")
}

// GetPlan returns a single plan.
func (h *PlanHandler) GetPlan(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	plan, err := h.uc.GetPlan(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "")
}

// CreatePlan adds a plan to the catalog.
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	var req planRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := h.uc.CreatePlan(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, plan, "Plan created successfully")
}

// UpdatePlan replaces a plan's catalog fields.
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req planRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := h.uc.UpdatePlan(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Plan updated successfully")
}

// DeletePlan removes a plan from the catalog.
func (h *PlanHandler) DeletePlan(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePlan(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Plan deleted successfully")
}

// ActivatePlan toggles a plan active.
func (h *PlanHandler) ActivatePlan(c echo.Context) error {
	return h.setStatus(c, entity.StatusActive, "Plan activated successfully")
}

// DeactivatePlan toggles a plan inactive.
func (h *PlanHandler) DeactivatePlan(c echo.Context) error {
	return h.setStatus(c, entity.StatusInactive, "Plan deactivated successfully")
}

func (h *PlanHandler) setStatus(c echo.Context, status entity.Status, message string) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	plan, err := h.uc.SetPlanStatus(c.Request().Context(), id, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, message)
}
