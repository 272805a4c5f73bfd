package repository

import (
	"context"
	"errors"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBuildingNotFound is returned when a building does not exist.
var ErrBuildingNotFound = errors.New("building not found")

// BuildingRepository defines operations for the building registry.
type BuildingRepository interface {
	// FindByID retrieves a building by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error)

	// ListByOwner retrieves all buildings owned by a user.
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Building, error)

	// List retrieves all buildings.
	List(ctx context.Context) ([]*entity.Building, error)

	// Create persists a new building.
	Create(ctx context.Context, building *entity.Building) error

	// Update modifies an existing building.
	Update(ctx context.Context, building *entity.Building) error

	// Delete removes a building permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
