package usecase

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the profile fields a user may change themselves.
type UpdateProfileInput struct {
	FullName *string
	Email    *string
	Phone    *string
	City     *string
	Address  *string
}

// ChangePasswordInput defines the data required to change the account password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ProfileUsecase defines self-service account operations for the
// authenticated user.
type ProfileUsecase interface {
	// GetProfile returns the requester's own account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies partial edits to the requester's own account.
	// Changing the email re-checks the uniqueness constraint.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// ChangePassword verifies the current password before storing the new hash.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
}
