package repository

import (
	"context"
	"errors"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAssignmentNotFound is returned when no doorman assignment exists for
// the building and user pair.
var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentRepository defines operations for doorman-to-building links.
// A pair is created at most once; repeat assignments toggle the status.
type AssignmentRepository interface {
	// Find retrieves the assignment for a building and doorman pair.
	Find(ctx context.Context, buildingID, userID uuid.UUID) (*entity.DoormanAssignment, error)

	// ListByBuilding retrieves all assignments for a building.
	ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.DoormanAssignment, error)

	// ListByDoorman retrieves all assignments held by a doorman.
	ListByDoorman(ctx context.Context, userID uuid.UUID) ([]*entity.DoormanAssignment, error)

	// Create persists a new assignment.
	Create(ctx context.Context, assignment *entity.DoormanAssignment) error

	// UpdateStatus flips the status of an existing assignment.
	UpdateStatus(ctx context.Context, buildingID, userID uuid.UUID, status entity.Status) error
}
