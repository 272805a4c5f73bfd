package usecase

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// EntitlementUsecase resolves a user's current credit entitlement. The
// consumed counts are always recomputed from the ledger, never cached, so
// soft-deletes and restores take effect immediately.
type EntitlementUsecase interface {
	// Resolve returns the requester's active plan with consumed counts per
	// credit kind. Fails with NoActivePlan when no active grant exists.
	Resolve(ctx context.Context, userID uuid.UUID) (*entity.Entitlement, error)
}
