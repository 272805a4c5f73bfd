package usecase

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDoormanInput defines the data required to register a doorman
// account under the caller's registrar identity.
type RegisterDoormanInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
	IDNumber string
	City     string
	Address  string
}

// UpdateDoormanInput defines the mutable doorman fields.
type UpdateDoormanInput struct {
	FullName *string
	Email    *string
	Phone    *string
	City     *string
	Address  *string
}

// RegisterDoormanOutput returns the created doorman together with the
// registrar's remaining credits after the consumption.
type RegisterDoormanOutput struct {
	Doorman                  *entity.User
	RemainingBuildingCredits int
	RemainingUserCredits     int
}

// DoormanWithAssignments pairs a doorman with their active building links.
type DoormanWithAssignments struct {
	Doorman     *entity.User
	Assignments []*entity.DoormanAssignment
}

// DoormanUsecase defines operations over doorman accounts. Registration
// spends one user credit of the registrar's active plan.
type DoormanUsecase interface {
	// Register creates a doorman account. The entitlement check, the user
	// insert and the ledger append form one atomic unit. Duplicate email,
	// phone or ID number fail before any credit is spent.
	Register(ctx context.Context, registrarID uuid.UUID, input *RegisterDoormanInput) (*RegisterDoormanOutput, error)

	// List returns doormen registered by the requester, each with their
	// active assignments.
	List(ctx context.Context, registrarID uuid.UUID) ([]*DoormanWithAssignments, error)

	// Get returns a doorman registered by the requester.
	Get(ctx context.Context, registrarID, doormanID uuid.UUID) (*DoormanWithAssignments, error)

	// Update edits a doorman registered by the requester.
	Update(ctx context.Context, registrarID, doormanID uuid.UUID, input *UpdateDoormanInput) (*entity.User, error)
}
