// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrTokenNotFound is returned when an email confirmation token is not found.
var ErrTokenNotFound = errors.New("confirmation token not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a single user by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// FindByIDNumber retrieves a single user by their government ID number.
	FindByIDNumber(ctx context.Context, idNumber string) (*entity.User, error)

	// ListByRole retrieves all users holding the given role.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user permanently. Only the admin surface uses this.
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmailTokenRepository persists one-time email confirmation tokens.
type EmailTokenRepository interface {
	// Create persists a freshly issued token.
	Create(ctx context.Context, token *entity.EmailConfirmationToken) error

	// FindByToken retrieves a token by its code.
	FindByToken(ctx context.Context, token string) (*entity.EmailConfirmationToken, error)

	// Delete removes a redeemed or expired token.
	Delete(ctx context.Context, id uuid.UUID) error
}
