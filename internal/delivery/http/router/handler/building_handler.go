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

// BuildingHandler serves the building registry endpoints.
type BuildingHandler struct {
	uc     usecase.BuildingUsecase
	logger *slog.Logger
}

// NewBuildingHandler is the constructor for BuildingHandler, injected by Fx.
func NewBuildingHandler(uc usecase.BuildingUsecase, logger *slog.Logger) *BuildingHandler {
	return &BuildingHandler{uc: uc, logger: logger}
}

type createBuildingRequest struct {
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address" validate:"required"`
	City      string  `json:"city" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Type      string  `json:"type" validate:"required,oneof=building complex tower"`
}

type updateBuildingRequest struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Type      *string  `json:"type" validate:"omitempty,oneof=building complex tower"`
}

func (r *updateBuildingRequest) toInput() *usecase.UpdateBuildingInput {
	input := &usecase.UpdateBuildingInput{
		Name:      r.Name,
		Address:   r.Address,
		City:      r.City,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
	if r.Type != nil {
		buildingType := entity.BuildingType(*r.Type)
		input.Type = &buildingType
	}

	return input
}

// Create registers a building for the requester, consuming one building credit.
func (h *BuildingHandler) Create(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req createBuildingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid building input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateBuildingInput{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Type:      entity.BuildingType(req.Type),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"building":                   output.Building,
		"remaining_building_credits": output.RemainingBuildingCredits,
		"remaining_user_credits":     output.RemainingUserCredits,
	}, "Building created successfully")
}

// ListOwn returns the requester's buildings.
func (h *BuildingHandler) ListOwn(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	buildings, err := h.uc.ListOwn(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buildings, "")
}

// Get returns a building the requester owns.
func (h *BuildingHandler) Get(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	buildingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	building, err := h.uc.Get(c.Request().Context(), userID, buildingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, building, "")
}

// Update edits a building the requester owns.
func (h *BuildingHandler) Update(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	buildingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateBuildingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid building input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	building, err := h.uc.Update(c.Request().Context(), userID, buildingID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, building, "Building updated successfully")
}

// Delete removes a building the requester owns.
func (h *BuildingHandler) Delete(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	buildingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, buildingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Building deleted successfully")
}

// Activate toggles a building the requester owns to active.
func (h *BuildingHandler) Activate(c echo.Context) error {
	return h.setStatus(c, entity.StatusActive, "Building activated successfully")
}

// Deactivate toggles a building the requester owns to inactive.
func (h *BuildingHandler) Deactivate(c echo.Context) error {
	return h.setStatus(c, entity.StatusInactive, "Building deactivated successfully")
}

func (h *BuildingHandler) setStatus(c echo.Context, status entity.Status, message string) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	buildingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	building, err := h.uc.SetStatus(c.Request().Context(), userID, buildingID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, building, message)
}

// AdminList returns all buildings regardless of owner.
func (h *BuildingHandler) AdminList(c echo.Context) error {
	buildings, err := h.uc.AdminList(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buildings, "")
}

// AdminGet returns any building by ID.
func (h *BuildingHandler) AdminGet(c echo.Context) error {
	buildingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	building, err := h.uc.AdminGet(c.Request().Context(), buildingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, building, "")
}

// AdminUpdate edits any building by ID.
func (h *BuildingHandler) AdminUpdate(c echo.Context) error {
	buildingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateBuildingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid building input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	building, err := h.uc.AdminUpdate(c.Request().Context(), buildingID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, building, "Building updated successfully")
}

// AdminDelete removes any building by ID.
func (h *BuildingHandler) AdminDelete(c echo.Context) error {
	buildingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.AdminDelete(c.Request().Context(), buildingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Building deleted successfully")
}

// AdminActivate toggles any building to active.
func (h *BuildingHandler) AdminActivate(c echo.Context) error {
	return h.adminSetStatus(c, entity.StatusActive, "Building activated successfully")
}

// AdminDeactivate toggles any building to inactive.
func (h *BuildingHandler) AdminDeactivate(c echo.Context) error {
	return h.adminSetStatus(c, entity.StatusInactive, "Building deactivated successfully")
}

func (h *BuildingHandler) adminSetStatus(c echo.Context, status entity.Status, message string) error {
	buildingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	building, err := h.uc.AdminSetStatus(c.Request().Context(), buildingID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, building, message)
}
