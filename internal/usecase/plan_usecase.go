package usecase

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanInput defines the data for creating or replacing a catalog plan.
type PlanInput struct {
	Name           string
	BuildingCredit int
	UserCredit     int
	MonthlyVisits  int
	Price          float64
}

// PlanUsecase defines operations over the admin-managed plan catalog.
type PlanUsecase interface {
	// ListActivePlans returns plans subscribers may purchase.
	ListActivePlans(ctx context.Context) ([]*entity.Plan, error)

	// Admin surface.

	ListPlans(ctx context.Context) ([]*entity.Plan, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*entity.Plan, error)
	CreatePlan(ctx context.Context, input *PlanInput) (*entity.Plan, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, input *PlanInput) (*entity.Plan, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error

	// SetPlanStatus toggles a plan between active and inactive with the
	// uniform no-op guard.
	SetPlanStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.Plan, error)
}
