package usecase

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignDoormanInput identifies the building and doorman pair to link.
type AssignDoormanInput struct {
	BuildingID uuid.UUID
	DoormanID  uuid.UUID
}

// AssignmentUsecase defines operations over doorman-to-building links.
// A pair exists at most once; repeat assignments reuse the row and toggle
// its status instead of duplicating it.
type AssignmentUsecase interface {
	// Assign links a doorman to a building the requester owns. Fails with
	// AlreadyAssigned when an active link exists; reactivates a previously
	// deactivated link instead of inserting a second row.
	Assign(ctx context.Context, userID uuid.UUID, input *AssignDoormanInput) (*entity.DoormanAssignment, error)

	// Remove deactivates the link. Fails with AlreadyInactive when it is
	// not currently active.
	Remove(ctx context.Context, userID uuid.UUID, input *AssignDoormanInput) error

	// ListByBuilding returns all links for a building the requester owns.
	ListByBuilding(ctx context.Context, userID, buildingID uuid.UUID) ([]*entity.DoormanAssignment, error)

	// Get returns the link for a building and doorman pair.
	Get(ctx context.Context, userID uuid.UUID, buildingID, doormanID uuid.UUID) (*entity.DoormanAssignment, error)
}
