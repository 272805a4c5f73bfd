package usecase

import (
	"context"
	"time"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateVisitInput defines the data required to check a visitor in.
type CreateVisitInput struct {
	BuildingID  uuid.UUID
	VisitorID   uuid.UUID
	Purpose     string
	Unit        string
	CheckInDate time.Time
}

// UpdateVisitInput defines the mutable visit fields.
type UpdateVisitInput struct {
	Purpose *string
	Unit    *string
}

// ListVisitsInput narrows visit listings.
type ListVisitsInput struct {
	BuildingID *uuid.UUID
	VisitorID  *uuid.UUID
	Status     *entity.VisitStatus
	From       *time.Time
	To         *time.Time
}

// VisitUsecase defines operations over the visit log. A visit is unique
// per building, visitor and check-in date; completion and cancellation are
// terminal.
type VisitUsecase interface {
	// Create checks a visitor in. Fails with VisitorNotFound when the
	// visitor reference is invalid and with DuplicateVisit when the same
	// visitor already checked in at the building on that date.
	Create(ctx context.Context, userID uuid.UUID, input *CreateVisitInput) (*entity.Visit, error)

	List(ctx context.Context, input *ListVisitsInput) ([]*entity.Visit, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Visit, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateVisitInput) (*entity.Visit, error)

	// Delete removes a visit record entirely, regardless of its status.
	Delete(ctx context.Context, id uuid.UUID) error

	// Complete marks the visit completed and stamps the check-out time.
	// Fails with Conflict when the visit already reached a terminal state.
	Complete(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// Cancel marks the visit cancelled without touching the check-out time.
	// Fails with Conflict when the visit already reached a terminal state.
	Cancel(ctx context.Context, id uuid.UUID) (*entity.Visit, error)
}
