package repository

import (
	"context"
	"errors"
	"time"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVisitNotFound is returned when a visit does not exist.
var ErrVisitNotFound = errors.New("visit not found")

// ErrVisitAlreadyExists is returned when a visit for the same building,
// visitor and check-in date already exists.
var ErrVisitAlreadyExists = errors.New("visit already exists")

// VisitFilter narrows visit listings. Nil fields are ignored.
type VisitFilter struct {
	BuildingID *uuid.UUID
	VisitorID  *uuid.UUID
	Status     *entity.VisitStatus
	From       *time.Time
	To         *time.Time
}

// VisitRepository defines operations for the visit log.
type VisitRepository interface {
	// FindByID retrieves a visit by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// List retrieves visits matching the filter, newest check-in first.
	List(ctx context.Context, filter VisitFilter) ([]*entity.Visit, error)

	// Create persists a new visit. Returns ErrVisitAlreadyExists when the
	// building, visitor and check-in date collide with an existing row.
	Create(ctx context.Context, visit *entity.Visit) error

	// Update modifies an existing visit.
	Update(ctx context.Context, visit *entity.Visit) error

	// Delete removes a visit. Returns ErrVisitNotFound when no row matches
	// the ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
