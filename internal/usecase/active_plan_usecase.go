package usecase

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivePlanUsecase defines operations over plan grants. Subscribing only
// creates a pending grant; promotion to active belongs to the billing
// collaborator and is exposed on the admin surface.
type ActivePlanUsecase interface {
	// Subscribe creates a pending grant of the plan for the requester.
	Subscribe(ctx context.Context, userID, planID uuid.UUID) (*entity.ActivePlan, error)

	// ListOwn returns all grants ever issued to the requester, newest first.
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.ActivePlan, error)

	// Get returns a grant the requester owns.
	Get(ctx context.Context, userID, grantID uuid.UUID) (*entity.ActivePlan, error)

	// Cancel transitions the grant to cancelled. Owner-only regardless of
	// role; a grant already expired or cancelled cannot be cancelled again.
	Cancel(ctx context.Context, userID, grantID uuid.UUID) (*entity.ActivePlan, error)

	// Admin surface.

	// ActivateGrant promotes a pending grant to active.
	ActivateGrant(ctx context.Context, grantID uuid.UUID) (*entity.ActivePlan, error)

	// ExpireGrant transitions an active grant to expired.
	ExpireGrant(ctx context.Context, grantID uuid.UUID) (*entity.ActivePlan, error)
}
