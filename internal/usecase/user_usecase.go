// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
type RegisterUserInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
	IDNumber string
	City     string
	Address  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AdminCreateUserInput defines the data an admin supplies to create a user directly.
type AdminCreateUserInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
	IDNumber string
	City     string
	Address  string
	Role     entity.Role
}

// UpdateUserInput defines the mutable user fields for admin edits.
type UpdateUserInput struct {
	FullName *string
	Email    *string
	Phone    *string
	City     *string
	Address  *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account with role user and sends a confirmation email.
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// ConfirmEmail marks the account's email as confirmed using the mailed token.
	ConfirmEmail(ctx context.Context, token string) error

	// Login authenticates by email and password and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Admin surface. Authorization is role-only; the handler gates on role=admin.

	ListUsers(ctx context.Context, role *entity.Role) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, input *AdminCreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// SetUserStatus toggles a user between active and inactive. Toggling to
	// the current state fails with AlreadyActive or AlreadyInactive.
	SetUserStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.User, error)
}
