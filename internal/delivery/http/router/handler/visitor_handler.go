package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gatedesk/internal/delivery/http/response"
	"gatedesk/internal/domain/entity"
	"gatedesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VisitorHandler serves the visitor registry endpoints.
type VisitorHandler struct {
	uc     usecase.VisitorUsecase
	logger *slog.Logger
}

// NewVisitorHandler is the constructor for VisitorHandler, injected by Fx.
func NewVisitorHandler(uc usecase.VisitorUsecase, logger *slog.Logger) *VisitorHandler {
	return &VisitorHandler{uc: uc, logger: logger}
}

type visitorRequest struct {
	FullName   string    `json:"full_name" validate:"required"`
	IDNumber   string    `json:"id_number" validate:"required"`
	Birthday   time.Time `json:"birthday" validate:"required"`
	Gender     string    `json:"gender" validate:"required,oneof=male female other"`
	Region     string    `json:"region"`
	ExpireDate time.Time `json:"expire_date" validate:"required"`
	Phone      string    `json:"phone"`
}

func (r *visitorRequest) toInput() *usecase.VisitorInput {
	return &usecase.VisitorInput{
		FullName:   r.FullName,
		IDNumber:   r.IDNumber,
		Birthday:   r.Birthday,
		Gender:     entity.Gender(r.Gender),
		Region:     r.Region,
		ExpireDate: r.ExpireDate,
		Phone:      r.Phone,
	}
}

// Create registers a visitor.
func (h *VisitorHandler) Create(c echo.Context) error {
	var req visitorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visitor input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	visitor, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, visitor, "Visitor created successfully")
}

// Get returns a visitor by ID.
func (h *VisitorHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	visitor, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visitor, "")
}

// List returns all visitors.
func (h *VisitorHandler) List(c echo.Context) error {
	visitors, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visitors, "")
}

// Update replaces a visitor's record fields.
func (h *VisitorHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req visitorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visitor input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	visitor, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visitor, "Visitor updated successfully")
}

// Activate toggles a visitor to active.
// Delete removes a visitor from the registry.
func (h *VisitorHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Visitor deleted")
}

func (h *VisitorHandler) Activate(c echo.Context) error {
	return h.setStatus(c, entity.StatusActive, "Visitor activated successfully")
}

// Deactivate toggles a visitor to inactive.
func (h *VisitorHandler) Deactivate(c echo.Context) error {
	return h.setStatus(c, entity.StatusInactive, "Visitor deactivated successfully")
}

func (h *VisitorHandler) setStatus(c echo.Context, status entity.Status, message string) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	visitor, err := h.uc.SetStatus(c.Request().Context(), id, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visitor, message)
}
