package repository

import (
	"context"
	"errors"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlanNotFound is returned when a catalog plan does not exist.
var ErrPlanNotFound = errors.New("plan not found")

// ErrActivePlanNotFound is returned when no matching plan grant exists.
var ErrActivePlanNotFound = errors.New("active plan not found")

// PlanRepository defines operations for the admin-managed plan catalog.
type PlanRepository interface {
	// FindByID retrieves a plan by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)

	// List retrieves all plans, optionally restricted to a status.
	List(ctx context.Context, status *entity.Status) ([]*entity.Plan, error)

	// Create persists a new plan.
	Create(ctx context.Context, plan *entity.Plan) error

	// Update modifies an existing plan.
	Update(ctx context.Context, plan *entity.Plan) error

	// Delete removes a plan permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivePlanRepository defines operations for plan grants.
type ActivePlanRepository interface {
	// FindByID retrieves a grant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ActivePlan, error)

	// FindCurrentActive resolves the user's current entitlement source: the
	// most recently issued grant with active status, with the catalog plan
	// joined in.
	FindCurrentActive(ctx context.Context, userID uuid.UUID) (*entity.ActivePlan, error)

	// FindCurrentActiveForUpdate behaves like FindCurrentActive but locks the
	// grant row for the duration of the surrounding transaction. Credit-gated
	// creations use it to serialize concurrent consumption per user.
	FindCurrentActiveForUpdate(ctx context.Context, userID uuid.UUID) (*entity.ActivePlan, error)

	// ListByUser retrieves all grants ever issued to a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ActivePlan, error)

	// Create persists a new grant.
	Create(ctx context.Context, grant *entity.ActivePlan) error

	// UpdateStatus transitions a grant's lifecycle state.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ActivePlanStatus) error
}
