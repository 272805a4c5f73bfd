package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gatedesk/internal/delivery/http/response"
	"gatedesk/internal/domain/entity"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LedgerHandler serves the credit ledger admin endpoints.
type LedgerHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler, injected by Fx.
func NewLedgerHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{uc: uc, logger: logger}
}

// List returns ledger rows newest first. Filters: user_id, type,
// include_deleted.
func (h *LedgerHandler) List(c echo.Context) error {
	input := &usecase.ListLedgerInput{}

	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid user_id filter")
		}
		input.UserID = &id
	}

	if raw := c.QueryParam("type"); raw != "" {
		creditType := entity.CreditType(raw)
		if !creditType.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown credit type filter")
		}
		input.Type = &creditType
	}

	if raw := c.QueryParam("include_deleted"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid include_deleted filter")
		}
		input.IncludeDeleted = include
	}

	rows, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// ListOwn returns the requester's own ledger rows. Filters: type,
// include_deleted.
func (h *LedgerHandler) ListOwn(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	input := &usecase.ListLedgerInput{}

	if raw := c.QueryParam("type"); raw != "" {
		creditType := entity.CreditType(raw)
		if !creditType.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown credit type filter")
		}
		input.Type = &creditType
	}

	if raw := c.QueryParam("include_deleted"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid include_deleted filter")
		}
		input.IncludeDeleted = include
	}

	rows, err := h.uc.ListOwn(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// GetOwn returns one of the requester's live ledger rows.
func (h *LedgerHandler) GetOwn(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	row, err := h.uc.GetOwn(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, row, "")
}

// SoftDeleteOwn releases a credit the requester consumed.
func (h *LedgerHandler) SoftDeleteOwn(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	row, err := h.uc.SoftDeleteOwn(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, row, "Ledger entry deleted")
}

// Get returns a single live ledger row.
func (h *LedgerHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	row, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, row, "")
}

// SoftDelete marks a ledger row deleted, releasing its credit.
func (h *LedgerHandler) SoftDelete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	row, err := h.uc.SoftDelete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, row, "Ledger entry deleted")
}

// Restore clears the deleted flag, re-consuming the credit.
func (h *LedgerHandler) Restore(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	row, err := h.uc.Restore(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, row, "Ledger entry restored")
}
