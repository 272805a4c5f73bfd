package handler

import (
	"log/slog"
	"net/http"

	"gatedesk/internal/delivery/http/response"
	"gatedesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DoormanHandler serves the doorman registry endpoints.
type DoormanHandler struct {
	uc     usecase.DoormanUsecase
	logger *slog.Logger
}

// NewDoormanHandler is the constructor for DoormanHandler, injected by Fx.
func NewDoormanHandler(uc usecase.DoormanUsecase, logger *slog.Logger) *DoormanHandler {
	return &DoormanHandler{uc: uc, logger: logger}
}

type registerDoormanRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required"`
	IDNumber string `json:"id_number" validate:"required"`
	City     string `json:"city"`
	Address  string `json:"address"`
}

type updateDoormanRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	City     *string `json:"city"`
	Address  *string `json:"address"`
}

// Register creates a doorman account under the requester's registrar
// identity, consuming one user credit.
func (h *DoormanHandler) Register(c echo.Context) error {
	registrarID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req registerDoormanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid doorman input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), registrarID, &usecase.RegisterDoormanInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		IDNumber: req.IDNumber,
		City:     req.City,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"doorman":                    output.Doorman,
		"remaining_building_credits": output.RemainingBuildingCredits,
		"remaining_user_credits":     output.RemainingUserCredits,
	}, "Doorman registered successfully")
}

// List returns the requester's doormen with their active assignments.
func (h *DoormanHandler) List(c echo.Context) error {
	registrarID, err := requesterID(c)
	if err != nil {
		return err
	}

	doormen, err := h.uc.List(c.Request().Context(), registrarID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doormen, "")
}

// Get returns a doorman registered by the requester.
func (h *DoormanHandler) Get(c echo.Context) error {
	registrarID, err := requesterID(c)
	if err != nil {
		return err
	}

	doormanID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	doorman, err := h.uc.Get(c.Request().Context(), registrarID, doormanID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doorman, "")
}

// Update edits a doorman registered by the requester.
func (h *DoormanHandler) Update(c echo.Context) error {
	registrarID, err := requesterID(c)
	if err != nil {
		return err
	}

	doormanID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateDoormanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid doorman input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	doorman, err := h.uc.Update(c.Request().Context(), registrarID, doormanID, &usecase.UpdateDoormanInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		City:     req.City,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doorman, "Doorman updated successfully")
}
