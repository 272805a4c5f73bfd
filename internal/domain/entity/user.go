package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. Email, phone and the government ID number
// are globally unique across all users regardless of role.
type User struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"fullname"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Phone          string    `json:"phone"`
	IDNumber       string    `json:"id_number"`
	City           string    `json:"city,omitempty"`
	Address        string    `json:"address,omitempty"`
	Role           Role      `json:"role"`
	Status         Status    `json:"status"`
	EmailConfirmed bool      `json:"email_confirmed"`
	PhoneConfirmed bool      `json:"phone_confirmed"`
	// RegistrarID references the user who created this account. It is set
	// for doormen registered under a plan holder, nil otherwise.
	RegistrarID *uuid.UUID `json:"registrar_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsDoorman reports whether the user holds the doorman role.
func (u *User) IsDoorman() bool {
	return u.Role == RoleDoorman
}

// EmailConfirmationToken is a short-lived one-time code mailed to a freshly
// registered user.
type EmailConfirmationToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the token can no longer be redeemed.
func (t *EmailConfirmationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
