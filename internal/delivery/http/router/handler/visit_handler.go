package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gatedesk/internal/delivery/http/response"
	"gatedesk/internal/domain/entity"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VisitHandler serves the visit log endpoints.
type VisitHandler struct {
	uc     usecase.VisitUsecase
	logger *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler, injected by Fx.
func NewVisitHandler(uc usecase.VisitUsecase, logger *slog.Logger) *VisitHandler {
	return &VisitHandler{uc: uc, logger: logger}
}

type createVisitRequest struct {
	BuildingID  uuid.UUID `json:"building_id" validate:"required"`
	VisitorID   uuid.UUID `json:"visitor_id" validate:"required"`
	Purpose     string    `json:"purpose"`
	Unit        string    `json:"unit"`
	CheckInDate time.Time `json:"check_in_date"`
}

type updateVisitRequest struct {
	Purpose *string `json:"purpose"`
	Unit    *string `json:"unit"`
}

// Create checks a visitor in at a building.
func (h *VisitHandler) Create(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req createVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	visit, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateVisitInput{
		BuildingID:  req.BuildingID,
		VisitorID:   req.VisitorID,
		Purpose:     req.Purpose,
		Unit:        req.Unit,
		CheckInDate: req.CheckInDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, visit, "Visit created successfully")
}

// List returns visits filtered by building, visitor, status and date range.
func (h *VisitHandler) List(c echo.Context) error {
	input := &usecase.ListVisitsInput{}

	if raw := c.QueryParam("building_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid building_id filter")
		}
		input.BuildingID = &id
	}

	if raw := c.QueryParam("visitor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid visitor_id filter")
		}
		input.VisitorID = &id
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.VisitStatus(raw)
		switch status {
		case entity.VisitPending, entity.VisitCompleted, entity.VisitCancelled:
			input.Status = &status
		default:
			return response.BadRequest(c, "INVALID_INPUT", "Unknown visit status filter")
		}
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid from filter")
		}
		input.From = &from
	}

	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid to filter")
		}
		input.To = &to
	}

	visits, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visits, "")
}

// Get returns a single visit.
func (h *VisitHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	visit, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visit, "")
}

// Update edits the purpose or unit of a visit.
func (h *VisitHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	visit, err := h.uc.Update(c.Request().Context(), id, &usecase.UpdateVisitInput{
		Purpose: req.Purpose,
		Unit:    req.Unit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visit, "Visit updated successfully")
}

// Delete removes a visit record.
func (h *VisitHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Visit deleted")
}

// Complete marks the visit completed and stamps the check-out time.
func (h *VisitHandler) Complete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	visit, err := h.uc.Complete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visit, "Visit completed")
}

// Cancel marks the visit cancelled.
func (h *VisitHandler) Cancel(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	visit, err := h.uc.Cancel(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visit, "Visit cancelled")
}
