package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName       string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(30);unique;not null"`
	IDNumber       string    `gorm:"type:varchar(50);unique;not null"`
	City           string    `gorm:"type:varchar(100)"`
	Address        string    `gorm:"type:varchar(255)"`
	Role           string    `gorm:"type:varchar(20);not null;index"`
	Status         string    `gorm:"type:varchar(20);not null;default:active"`
	EmailConfirmed bool      `gorm:"not null;default:false"`
	PhoneConfirmed bool      `gorm:"not null;default:false"`
	RegistrarID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	ConfirmationTokens []EmailConfirmationTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// EmailConfirmationTokenModel mirrors the 'email_confirmation_tokens' table.
// Rows are deleted on redemption, so the table only ever holds pending codes.
type EmailConfirmationTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(10);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailConfirmationTokenModel) TableName() string {
	return "email_confirmation_tokens"
}
