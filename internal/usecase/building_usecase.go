package usecase

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBuildingInput defines the data required to register a building.
type CreateBuildingInput struct {
	Name      string
	Address   string
	City      string
	Latitude  float64
	Longitude float64
	Type      entity.BuildingType
}

// UpdateBuildingInput defines the mutable building fields.
type UpdateBuildingInput struct {
	Name      *string
	Address   *string
	City      *string
	Latitude  *float64
	Longitude *float64
	Type      *entity.BuildingType
}

// CreateBuildingOutput returns the created building together with the
// requester's remaining credits after the consumption.
type CreateBuildingOutput struct {
	Building                 *entity.Building
	RemainingBuildingCredits int
	RemainingUserCredits     int
}

// BuildingUsecase defines operations over the building registry. Creation
// is entitlement-gated; mutations on the app surface are owner-only, the
// admin surface substitutes a role-only check.
type BuildingUsecase interface {
	// Create registers a building for the requester. The entitlement check,
	// the insert and the ledger append form one atomic unit, so two
	// concurrent creations cannot both spend the last credit. The QR
	// identifier and image are generated exactly once here.
	Create(ctx context.Context, userID uuid.UUID, input *CreateBuildingInput) (*CreateBuildingOutput, error)

	// ListOwn returns the requester's buildings.
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.Building, error)

	// Get returns a building the requester owns.
	Get(ctx context.Context, userID, buildingID uuid.UUID) (*entity.Building, error)

	// Update edits a building the requester owns.
	Update(ctx context.Context, userID, buildingID uuid.UUID, input *UpdateBuildingInput) (*entity.Building, error)

	// Delete removes a building the requester owns. The ledger row that paid
	// for it stays untouched; releasing the credit is an explicit ledger
	// soft-delete.
	Delete(ctx context.Context, userID, buildingID uuid.UUID) error

	// SetStatus toggles a building the requester owns between active and
	// inactive, guarding against no-op transitions.
	SetStatus(ctx context.Context, userID, buildingID uuid.UUID, status entity.Status) (*entity.Building, error)

	// Admin surface. Role-only authorization, no ownership check.

	AdminList(ctx context.Context) ([]*entity.Building, error)
	AdminGet(ctx context.Context, buildingID uuid.UUID) (*entity.Building, error)
	AdminUpdate(ctx context.Context, buildingID uuid.UUID, input *UpdateBuildingInput) (*entity.Building, error)
	AdminDelete(ctx context.Context, buildingID uuid.UUID) error
	AdminSetStatus(ctx context.Context, buildingID uuid.UUID, status entity.Status) (*entity.Building, error)
}
