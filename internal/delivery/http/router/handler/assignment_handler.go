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

// AssignmentHandler serves doorman-to-building assignment endpoints.
type AssignmentHandler struct {
	uc     usecase.AssignmentUsecase
	logger *slog.Logger
}

// NewAssignmentHandler is the constructor for AssignmentHandler, injected by Fx.
func NewAssignmentHandler(uc usecase.AssignmentUsecase, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{uc: uc, logger: logger}
}

type assignDoormanRequest struct {
	BuildingID uuid.UUID `json:"building_id" validate:"required"`
	DoormanID  uuid.UUID `json:"doorman_id" validate:"required"`
}

// Assign links a doorman to a building the requester owns.
func (h *AssignmentHandler) Assign(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req assignDoormanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	assignment, err := h.uc.Assign(c.Request().Context(), userID, &usecase.AssignDoormanInput{
		BuildingID: req.BuildingID,
		DoormanID:  req.DoormanID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, assignment, "Doorman assigned successfully")
}

// Remove deactivates the link between a doorman and a building.
func (h *AssignmentHandler) Remove(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	buildingID, err := pathUUID(c, "buildingId")
	if err != nil {
		return err
	}

	doormanID, err := pathUUID(c, "doormanId")
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Request().Context(), userID, &usecase.AssignDoormanInput{
		BuildingID: buildingID,
		DoormanID:  doormanID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Doorman unassigned successfully")
}

// ListByBuilding returns all links for a building the requester owns.
func (h *AssignmentHandler) ListByBuilding(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	buildingID, err := pathUUID(c, "buildingId")
	if err != nil {
		return err
	}

	assignments, err := h.uc.ListByBuilding(c.Request().Context(), userID, buildingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assignments, "")
}

// Get returns the link for a building and doorman pair.
func (h *AssignmentHandler) Get(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	buildingID, err := pathUUID(c, "buildingId")
	if err != nil {
		return err
	}

	doormanID, err := pathUUID(c, "doormanId")
	if err != nil {
		return err
	}

	assignment, err := h.uc.Get(c.Request().Context(), userID, buildingID, doormanID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assignment, "")
}
